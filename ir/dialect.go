package ir

import "fmt"

// Dialect identifies the SQL vendor variant that shapes the final output.
// The set is closed: every dialect declares its extra table fields
// explicitly in dialectFields below, on top of the shared base schema.
type Dialect string

const (
	DialectSQL       Dialect = "sql" // generic default
	DialectMSSQL     Dialect = "mssql"
	DialectMySQL     Dialect = "mysql"
	DialectOracle    Dialect = "oracle"
	DialectHQL       Dialect = "hql"
	DialectSnowflake Dialect = "snowflake"
	DialectRedshift  Dialect = "redshift"
	DialectBigQuery  Dialect = "bigquery"
)

// Dialects lists every supported output mode.
var Dialects = []Dialect{
	DialectSQL,
	DialectMSSQL,
	DialectMySQL,
	DialectOracle,
	DialectHQL,
	DialectSnowflake,
	DialectRedshift,
	DialectBigQuery,
}

// ParseDialect validates an output_mode tag.
func ParseDialect(mode string) (Dialect, error) {
	if mode == "" {
		return DialectSQL, nil
	}
	for _, d := range Dialects {
		if Dialect(mode) == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("unsupported output mode %q", mode)
}

// SchemaKey returns the record key naming the table's namespace. BigQuery
// models namespaces as datasets; everything else uses schemas.
func (d Dialect) SchemaKey() string {
	if d == DialectBigQuery {
		return "dataset"
	}
	return "schema"
}

// dialectFields lists the extra table fields each dialect recognizes on
// top of the base schema. A key found here is a "main" field for that
// dialect (it does not fall into table_properties) and is serialized only
// when present in the raw input and only for its own dialect.
var dialectFields = map[Dialect][]string{
	DialectSQL: nil,
	DialectMSSQL: {
		"on_primary",
		"textimage_on",
		"with",
		"period_for_system_time",
	},
	DialectMySQL: {
		"engine",
		"default_charset",
		"collate",
		"auto_increment",
	},
	DialectOracle: {
		"storage",
		"organization_index",
		"compress",
	},
	DialectHQL: {
		"external",
		"transient",
		"stored_as",
		"row_format",
		"fields_terminated_by",
		"lines_terminated_by",
		"collection_items_terminated_by",
		"map_keys_terminated_by",
		"location",
	},
	DialectSnowflake: {
		"clone",
		"cluster_by",
		"primary_key_enforced",
		"with_tag",
		"retention_period",
		"change_tracking",
	},
	DialectRedshift: {
		"diststyle",
		"distkey",
		"sortkey",
		"encode",
		"temp",
	},
	DialectBigQuery: {
		"dataset",
		"project",
		"cluster_by",
		"options",
	},
}

// fieldRules returns the full filter table for this dialect: the base
// schema plus the dialect's own extras. Extras of other dialects are not
// part of the result; unrecognized input keys land in table_properties
// and bypass the per-field rules entirely.
func (d Dialect) fieldRules() map[string]fieldRule {
	rules := make(map[string]fieldRule, len(baseFieldRules)+8)
	for k, v := range baseFieldRules {
		rules[k] = v
	}
	for _, name := range dialectFields[d] {
		rules[name] = fieldRule{excludeIfNotProvided: true, dialects: []Dialect{d}}
	}
	if d == DialectBigQuery {
		// dataset replaces schema as the namespace field; schema stays a
		// recognized key so it never leaks into table_properties
		rules["dataset"] = fieldRule{}
		rules["schema"] = fieldRule{excludeAlways: true}
	}
	return rules
}

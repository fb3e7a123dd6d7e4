package ir

import "slices"

// fieldRule is the static output classification of one entity field.
// Zero value means the field is always serialized.
type fieldRule struct {
	excludeAlways        bool      // internal/working field, never serialized
	excludeIfNotProvided bool      // serialized only if the key existed in the raw input
	excludeIfEmpty       bool      // serialized only if the resolved value is non-empty
	dialects             []Dialect // non-nil: serialized only for these dialects
}

// baseFieldRules is the filter table shared by every dialect. Dialect
// extras are layered on top in Dialect.fieldRules.
var baseFieldRules = map[string]fieldRule{
	"table_name":     {},
	"schema":         {},
	"primary_key":    {},
	"columns":        {},
	"alter":          {},
	"checks":         {},
	"index":          {},
	"partitioned_by": {},
	"tablespace":     {},

	"constraints":   {excludeIfNotProvided: true},
	"if_not_exists": {excludeIfNotProvided: true},
	"partition_by":  {excludeIfNotProvided: true},
	"replace":       {excludeIfNotProvided: true},
	"comment":       {excludeIfNotProvided: true},
	"like":          {excludeIfNotProvided: true},

	"table_properties": {excludeIfEmpty: true},

	// working fields consumed during reconciliation
	"unique":           {excludeAlways: true},
	"unique_statement": {excludeAlways: true},
	"ref_columns":      {excludeAlways: true},
	"references":       {excludeAlways: true},
	"output_mode":      {excludeAlways: true},
}

// include applies the filter in its fixed precedence order: always-excluded
// first, then the raw-input presence check, then the emptiness check, then
// the dialect allow-list. The order is a contract: an always-excluded field
// must never leak, and an empty-but-provided field still appears unless the
// dialect restriction also rejects it.
func (r fieldRule) include(d Dialect, provided, empty bool) bool {
	if r.excludeAlways {
		return false
	}
	if r.excludeIfNotProvided && !provided {
		return false
	}
	if r.excludeIfEmpty && empty {
		return false
	}
	if r.dialects != nil && !slices.Contains(r.dialects, d) {
		return false
	}
	return true
}

// isEmpty reports whether a resolved value counts as empty for the
// exclude-if-empty rule: nil, zero scalars, and empty containers.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	case []Record:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	case Record:
		return len(val) == 0
	default:
		return false
	}
}

package ir

// Column is one live table column. Name, nullability, uniqueness and the
// transient primary-key flag are modeled explicitly because reconciliation
// rewrites them; every other parser-provided key (type, size, default,
// check, references, ...) rides along in Attrs and round-trips into the
// output untouched.
type Column struct {
	Name     string
	Nullable bool // true until proven otherwise
	Unique   bool
	Attrs    Record

	// consumed exactly once during primary-key resolution, never serialized
	primaryKey bool
}

// decodeColumn builds a live column from a parser column record.
func decodeColumn(rec Record) *Column {
	c := &Column{
		Name:     rec.String("name"),
		Nullable: true,
		Attrs:    make(Record, len(rec)),
	}
	if rec.Has("nullable") {
		c.Nullable = rec.Bool("nullable")
	}
	c.Unique = rec.Bool("unique")
	c.primaryKey = rec.Bool("primary_key")
	for k, v := range rec {
		switch k {
		case "name", "nullable", "unique", "primary_key":
		default:
			c.Attrs[k] = v
		}
	}
	return c
}

// AsRecord serializes the column. The primary-key flag is already gone by
// construction; nullable and unique always appear.
func (c *Column) AsRecord() Record {
	out := make(Record, len(c.Attrs)+3)
	for k, v := range c.Attrs {
		out[k] = v
	}
	out["name"] = c.Name
	out["nullable"] = c.Nullable
	out["unique"] = c.Unique
	return out
}

// AlterLedger accumulates the effects of ALTER statements applied to one
// table. Dropped and modified columns are single slots holding the most
// recent victim only; the other families append.
type AlterLedger struct {
	Columns        []Record
	Checks         []Record
	Uniques        []Record
	Defaults       []Record
	PrimaryKeys    []Record
	RenamedColumns []Record
	DroppedColumn  *Column
	ModifiedColumn *Column
}

// AsRecord serializes the ledger with only the touched families present.
// An untouched ledger serializes as an empty map, not nil.
func (a *AlterLedger) AsRecord() Record {
	out := Record{}
	if len(a.Columns) > 0 {
		out["columns"] = a.Columns
	}
	if len(a.Checks) > 0 {
		out["checks"] = a.Checks
	}
	if len(a.Uniques) > 0 {
		out["uniques"] = a.Uniques
	}
	if len(a.Defaults) > 0 {
		out["defaults"] = a.Defaults
	}
	if len(a.PrimaryKeys) > 0 {
		out["primary_keys"] = a.PrimaryKeys
	}
	if len(a.RenamedColumns) > 0 {
		out["renamed_columns"] = a.RenamedColumns
	}
	if a.DroppedColumn != nil {
		out["dropped_columns"] = a.DroppedColumn.AsRecord()
	}
	if a.ModifiedColumn != nil {
		out["modified_columns"] = a.ModifiedColumn.AsRecord()
	}
	return out
}

// Table is the canonical entity built from a CREATE TABLE record. It is
// created once, mutated in place by every later ALTER/INDEX statement
// naming it, and serialized at the end of the run.
type Table struct {
	Schema        string // serialized under the dialect's schema key
	Name          string
	Columns       []*Column
	PrimaryKey    []string // non-nil after resolution, even when empty
	Alter         AlterLedger
	Checks        []any
	Index         []Record
	PartitionedBy []any
	Tablespace    any
	Constraints   Record
	Extras        Record // recognized base/dialect fields kept by raw key
	Properties    Record // unrecognized raw keys, serialized as table_properties

	dialect  Dialect
	provided map[string]struct{} // raw input keys; drives the not-provided filter

	// working lists consumed during the initial build
	refColumns []Record
	uniqueList []string
	uniqueStmt []string
}

func (t *Table) wasProvided(key string) bool {
	_, ok := t.provided[key]
	return ok
}

// AsRecord serializes the table through the dialect's field filter table.
func (t *Table) AsRecord() Record {
	rules := t.dialect.fieldRules()
	out := Record{}
	emit := func(key string, val any) {
		if rules[key].include(t.dialect, t.wasProvided(key), isEmpty(val)) {
			out[key] = val
		}
	}

	emit(t.dialect.SchemaKey(), t.Schema)
	emit("table_name", t.Name)

	cols := make([]Record, 0, len(t.Columns))
	for _, c := range t.Columns {
		cols = append(cols, c.AsRecord())
	}
	emit("columns", cols)

	emit("primary_key", t.PrimaryKey)
	emit("alter", t.Alter.AsRecord())
	emit("checks", t.Checks)
	emit("index", t.Index)
	emit("partitioned_by", t.PartitionedBy)
	emit("tablespace", t.Tablespace)
	emit("constraints", t.Constraints)
	emit("table_properties", t.Properties)

	for k, v := range t.Extras {
		emit(k, v)
	}
	return out
}

// findColumn locates a live column by quote/case-normalized name.
func (t *Table) findColumn(name string) (int, *Column) {
	want := normalizeName(name)
	for i, c := range t.Columns {
		if normalizeName(c.Name) == want {
			return i, c
		}
	}
	return -1, nil
}

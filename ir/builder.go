package ir

// buildTable turns a CREATE-TABLE-shaped record into a canonical Table:
// select the dialect's field schema, partition the raw keys into
// recognized fields and extra table properties, retain the full raw key
// set for the not-provided filter, then resolve constraints and
// references. Registration is the caller's job.
//
// The caller guarantees rec carries a table_name; records without one are
// not tables and take the pass-through path instead.
func buildTable(rec Record, d Dialect) *Table {
	rec = rec.Clone()
	if d == DialectBigQuery && rec.Has("schema") && !rec.Has("dataset") {
		rec["dataset"] = rec["schema"]
	}

	rules := d.fieldRules()
	t := &Table{
		PrimaryKey:    []string{},
		Checks:        []any{},
		Index:         []Record{},
		PartitionedBy: []any{},
		Extras:        Record{},
		Properties:    Record{},
		dialect:       d,
		provided:      make(map[string]struct{}, len(rec)),
	}

	// the provided set spans every original key, including the ones that
	// end up classified as table properties
	for k := range rec {
		t.provided[k] = struct{}{}
	}

	t.Schema = rec.String(d.SchemaKey())
	t.Name = rec.String("table_name")
	for _, colRec := range rec.Records("columns") {
		t.Columns = append(t.Columns, decodeColumn(colRec))
	}
	if pk := rec.Strings("primary_key"); len(pk) > 0 {
		t.PrimaryKey = pk
	}
	if rec.Has("checks") {
		t.Checks = rec.List("checks")
	}
	if rec.Has("partitioned_by") {
		t.PartitionedBy = rec.List("partitioned_by")
	}
	if rec.Has("tablespace") {
		t.Tablespace = rec["tablespace"]
	}
	t.Constraints = rec.Map("constraints")

	// working lists, consumed below and never serialized
	t.refColumns = rec.Records("ref_columns")
	t.uniqueList = rec.Strings("unique")
	t.uniqueStmt = rec.Strings("unique_statement")

	for k, v := range rec {
		if _, recognized := rules[k]; !recognized {
			t.Properties[k] = v
			continue
		}
		switch k {
		case "schema", "dataset", "table_name", "columns", "primary_key",
			"alter", "checks", "index", "partitioned_by", "tablespace",
			"constraints", "table_properties",
			"ref_columns", "unique", "unique_statement", "references",
			"output_mode":
			// decoded into typed fields or consumed as working state
		default:
			t.Extras[k] = v
		}
	}

	t.resolvePrimaryKey()
	t.resolveUnique()
	t.normalizeRefColumns()
	return t
}

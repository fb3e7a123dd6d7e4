package ir

// attachIndex nests a CREATE INDEX record under its owning table. The
// echoed schema/table_name keys are redundant once nested and are
// stripped; the clustered flag survives only for the dialect that gives
// it meaning.
func attachIndex(reg *Registry, stmt Record, d Dialect) error {
	t, err := reg.Get(stmt.String(d.SchemaKey()), stmt.String("table_name"))
	if err != nil {
		return err
	}

	idx := stmt.Clone()
	delete(idx, d.SchemaKey())
	delete(idx, "table_name")
	if d != DialectMSSQL {
		delete(idx, "clustered")
	}
	t.Index = append(t.Index, idx)
	return nil
}

package ir

import (
	"errors"
	"fmt"
)

// ErrUnknownTable is returned when an ALTER or CREATE INDEX statement
// names a table that was never registered. It is fatal for the run:
// continuing would silently corrupt downstream merges.
var ErrUnknownTable = errors.New("unknown table")

type tableID struct {
	schema string
	name   string
}

func newTableID(schema, name string) tableID {
	return tableID{schema: normalizeName(schema), name: normalizeName(name)}
}

// Registry owns every table built during one run, keyed by
// (schema-or-dataset, table_name). It is the only mutable shared state in
// the pipeline and belongs exclusively to one Formatter.
type Registry struct {
	tables map[tableID]*Table
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[tableID]*Table)}
}

// Put registers a table. A colliding key overwrites the previous entry:
// last writer wins, consistent with single-pass streaming semantics.
func (r *Registry) Put(t *Table) {
	r.tables[newTableID(t.Schema, t.Name)] = t
}

// Get looks up the live table for (schema, name) or fails with
// ErrUnknownTable.
func (r *Registry) Get(schema, name string) (*Table, error) {
	t, ok := r.tables[newTableID(schema, name)]
	if !ok {
		return nil, fmt.Errorf("%w: table %q with schema %q does not exist in tables data - CREATE TABLE statement missing or out of order", ErrUnknownTable, name, schema)
	}
	return t, nil
}

// Len reports how many tables are registered.
func (r *Registry) Len() int {
	return len(r.tables)
}

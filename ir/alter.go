package ir

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownAlterOperation is returned for an ALTER record matching none
// of the recognized operation shapes. A silent no-op would hide data
// loss, so this is a hard error.
var ErrUnknownAlterOperation = errors.New("unrecognized alter operation")

// applyAlter dispatches an ALTER TABLE record against its live table.
// Exactly one recognized operation key is expected per record.
func applyAlter(t *Table, stmt Record) error {
	switch {
	case stmt.Has("columns"):
		return t.alterAddColumns(stmt)
	case stmt.Has("columns_to_rename"):
		t.alterRenameColumns(stmt)
	case stmt.Has("columns_to_drop"):
		t.alterDropColumns(stmt)
	case stmt.Has("columns_to_modify"):
		t.alterModifyColumns(stmt)
	case stmt.Has("check"):
		t.alterAddCheck(stmt)
	case stmt.Has("unique"):
		t.alterAddUnique(stmt)
	case stmt.Has("default"):
		t.alterAddDefault(stmt)
	case stmt.Has("primary_key"):
		t.alterAddPrimaryKey(stmt)
	default:
		return fmt.Errorf("%w: alter on table %q matches no known operation shape", ErrUnknownAlterOperation, t.Name)
	}
	return nil
}

// alterAddColumns appends added columns to the ledger and, idempotently,
// to the live column list: a column whose normalized name already lives
// on the table stays recorded in the ledger but is not duplicated live.
// An inline references clause is matched to the added columns
// positionally, one descriptor per column.
func (t *Table) alterAddColumns(stmt Record) error {
	cols := stmt.Records("columns")
	added := cols
	if stmt.Has("references") {
		ref := stmt.Map("references")
		refCols := ref.Strings("columns")
		if len(refCols) != len(cols) {
			return fmt.Errorf("alter add on table %q: %d added columns but %d referenced columns", t.Name, len(cols), len(refCols))
		}
		added = make([]Record, 0, len(cols))
		for i, col := range cols {
			added = append(added, alterColumnReference(i, col, ref))
		}
	}
	t.Alter.Columns = append(t.Alter.Columns, added...)

	for _, col := range t.Alter.Columns {
		if _, live := t.findColumn(col.String("name")); live == nil {
			t.Columns = append(t.Columns, decodeColumn(col))
		}
	}
	return nil
}

// alterColumnReference builds the ledger entry for one added column, its
// positional reference resolved down to a single referenced column.
func alterColumnReference(i int, col Record, ref Record) Record {
	resolved := ref.Clone()
	resolved["column"] = ref.Strings("columns")[i]
	delete(resolved, "columns")
	return Record{
		"name":            col.String("name"),
		"constraint_name": col["constraint_name"],
		"references":      resolved,
	}
}

func (t *Table) alterRenameColumns(stmt Record) {
	pairs := stmt.Records("columns_to_rename")
	for _, pair := range pairs {
		if _, c := t.findColumn(pair.String("from")); c != nil {
			c.Name = pair.String("to")
		}
	}
	t.Alter.RenamedColumns = append(t.Alter.RenamedColumns, pairs...)
}

func (t *Table) alterDropColumns(stmt Record) {
	for _, name := range stmt.Strings("columns_to_drop") {
		if i, c := t.findColumn(name); c != nil {
			// single slot: only the most recent dropped column is kept
			t.Alter.DroppedColumn = c
			t.Columns = slices.Delete(t.Columns, i, i+1)
		}
	}
}

func (t *Table) alterModifyColumns(stmt Record) {
	for _, mod := range stmt.Records("columns_to_modify") {
		if i, c := t.findColumn(mod.String("name")); c != nil {
			// single slot: only the most recent pre-image is kept
			t.Alter.ModifiedColumn = c
			t.Columns[i] = decodeColumn(mod)
		}
	}
}

// alterAddCheck joins the check's token sequence into one statement
// string before recording it.
func (t *Table) alterAddCheck(stmt Record) {
	check := stmt.Map("check").Clone()
	check["statement"] = strings.Join(check.Strings("statement"), " ")
	t.Alter.Checks = append(t.Alter.Checks, check)
}

// alterPayload extracts the clause payload for one ledger family,
// folding a statement-level using clause into it when present.
func (t *Table) alterPayload(stmt Record, key string) Record {
	payload := stmt.Map(key).Clone()
	if stmt.Has("using") {
		payload["using"] = stmt["using"]
	}
	return payload
}

// alterAddUnique records the clause and retroactively marks every named
// live column unique. Later alters can only add true, never remove it.
func (t *Table) alterAddUnique(stmt Record) {
	payload := t.alterPayload(stmt, "unique")
	t.Alter.Uniques = append(t.Alter.Uniques, payload)
	for _, name := range payload.Strings("columns") {
		if _, c := t.findColumn(name); c != nil {
			c.Unique = true
		}
	}
}

// alterAddDefault records the clause and propagates the value onto every
// named live column.
func (t *Table) alterAddDefault(stmt Record) {
	payload := t.alterPayload(stmt, "default")
	t.Alter.Defaults = append(t.Alter.Defaults, payload)
	for _, name := range payload.Strings("columns") {
		if _, c := t.findColumn(name); c != nil {
			c.Attrs["default"] = payload["value"]
		}
	}
}

func (t *Table) alterAddPrimaryKey(stmt Record) {
	t.Alter.PrimaryKeys = append(t.Alter.PrimaryKeys, t.alterPayload(stmt, "primary_key"))
}

package ir

import "slices"

// resolvePrimaryKey derives the table's effective primary key. An
// explicitly declared list wins; otherwise primary-key-flagged columns
// are collected in column order, followed by the column lists of every
// table-level primary-key constraint in declaration order. The transient
// column flag is stripped regardless of which path ran. Membership in the
// final list forces the column NOT NULL, and that happens last because it
// overrides every other nullability source unconditionally.
func (t *Table) resolvePrimaryKey() {
	if len(t.PrimaryKey) == 0 {
		pk := []string{}
		for _, c := range t.Columns {
			if c.primaryKey {
				pk = append(pk, c.Name)
			}
		}
		for _, kc := range t.Constraints.Records("primary_keys") {
			pk = append(pk, kc.Strings("columns")...)
		}
		t.PrimaryKey = dedupe(pk)
	}

	for _, c := range t.Columns {
		c.primaryKey = false
	}
	for _, c := range t.Columns {
		if slices.Contains(t.PrimaryKey, c.Name) {
			c.Nullable = false
		}
	}
}

// resolveUnique OR-merges the unique sources in their historical order:
// the unique_statement list, the table-level unique constraint's columns,
// then the top-level unique list. Order cannot change the resulting
// booleans but is kept stable for provenance parity.
func (t *Table) resolveUnique() {
	t.markUnique(t.uniqueStmt)
	if u := t.Constraints.Map("unique"); u != nil {
		t.markUnique(u.Strings("columns"))
	}
	t.markUnique(t.uniqueList)
	t.uniqueStmt = nil
	t.uniqueList = nil
}

func (t *Table) markUnique(names []string) {
	if len(names) == 0 {
		return
	}
	for _, c := range t.Columns {
		if slices.Contains(names, c.Name) {
			c.Unique = true
		}
	}
}

func dedupe(names []string) []string {
	out := names[:0]
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

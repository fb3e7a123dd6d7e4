package ir

// normalizeRefColumns transplants each working reference descriptor onto
// the column whose name matches it. The descriptor's own name key is
// removed once attached (it becomes implicit via the owning column), and
// descriptors matching no column are dropped so the output never carries
// orphaned references. The working list itself does not survive either
// way.
func (t *Table) normalizeRefColumns() {
	for _, ref := range t.refColumns {
		name := ref.String("name")
		for _, c := range t.Columns {
			if c.Name == name {
				delete(ref, "name")
				c.Attrs["references"] = ref
				break
			}
		}
	}
	t.refColumns = nil
}

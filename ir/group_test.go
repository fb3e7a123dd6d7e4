package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGroupByTypeBuckets(t *testing.T) {
	table := Record{"table_name": "t", "schema": "s"}
	seq := Record{"sequence_name": "seq1"}
	typ := Record{"type_name": "mood"}
	dom := Record{"domain_name": "us_postal"}
	sch := Record{"schema_name": "app"}
	prop := Record{"value": "ansi_nulls"}

	got := groupByType([]Record{table, seq, typ, dom, sch, prop})

	want := Record{
		"tables":         []Record{table},
		"types":          []Record{typ},
		"sequences":      []Record{seq},
		"domains":        []Record{dom},
		"schemas":        []Record{sch},
		"ddl_properties": []Record{prop},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("grouping mismatch (-want +got):\n%s", diff)
	}
}

// An entity carrying several discriminators lands in exactly one bucket,
// chosen by the fixed probe order.
func TestGroupByTypeFirstDiscriminatorWins(t *testing.T) {
	rec := Record{"table_name": "t", "sequence_name": "also"}

	got := groupByType([]Record{rec})
	if n := len(got["tables"].([]Record)); n != 1 {
		t.Errorf("tables bucket has %d entries, want 1", n)
	}
	if n := len(got["sequences"].([]Record)); n != 0 {
		t.Errorf("sequences bucket has %d entries, want 0", n)
	}
}

// Comment elements keep whatever type the parser gave them: plain
// strings and structured maps flatten into one bucket side by side.
func TestGroupByTypeCommentsFlattened(t *testing.T) {
	structured := map[string]any{"on": "t", "text": "first"}

	got := groupByType([]Record{
		{"comments": []any{structured}},
		{"comments": []any{"plain comment", "another"}},
	})

	want := []any{structured, "plain comment", "another"}
	if diff := cmp.Diff(want, got["comments"]); diff != "" {
		t.Errorf("comments mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByTypeStringOnlyComments(t *testing.T) {
	got := groupByType([]Record{{"comments": []any{"first", "second"}}})

	comments, ok := got["comments"].([]any)
	if !ok {
		t.Fatal("comments bucket missing for string-only comment entities")
	}
	if diff := cmp.Diff([]any{"first", "second"}, comments); diff != "" {
		t.Errorf("comments mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByTypeEmptyCommentsOmitted(t *testing.T) {
	got := groupByType([]Record{{"table_name": "t"}})
	if got.Has("comments") {
		t.Error("empty comments bucket must be omitted")
	}
	// the other declared buckets stay, even empty
	for _, bucket := range []string{"tables", "types", "sequences", "domains", "schemas", "ddl_properties"} {
		if !got.Has(bucket) {
			t.Errorf("declared bucket %q missing", bucket)
		}
	}
}

func TestGroupByTypeOnDemandBuckets(t *testing.T) {
	empty := groupByType(nil)
	if empty.Has("tablespaces") || empty.Has("databases") {
		t.Error("tablespaces/databases must not appear unless an entity needs them")
	}

	got := groupByType([]Record{
		{"tablespace_name": "ts1"},
		{"database_name": "db1"},
	})
	if n := len(got["tablespaces"].([]Record)); n != 1 {
		t.Errorf("tablespaces bucket has %d entries, want 1", n)
	}
	if n := len(got["databases"].([]Record)); n != 1 {
		t.Errorf("databases bucket has %d entries, want 1", n)
	}
}

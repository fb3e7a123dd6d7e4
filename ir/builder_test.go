package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildTablePartitionsUnrecognizedKeys(t *testing.T) {
	rec := Record{
		"schema":     "s",
		"table_name": "t",
		"columns":    []any{map[string]any{"name": "id"}},
		"engine":     "InnoDB", // mysql-only key, unrecognized under sql
		"fancy_knob": 42,
	}
	tbl := buildTable(rec, DialectSQL)

	wantProps := Record{"engine": "InnoDB", "fancy_knob": 42}
	if diff := cmp.Diff(wantProps, tbl.Properties); diff != "" {
		t.Errorf("table properties mismatch (-want +got):\n%s", diff)
	}

	out := tbl.AsRecord()
	if diff := cmp.Diff(wantProps, out.Map("table_properties")); diff != "" {
		t.Errorf("serialized table_properties mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTableRecognizesDialectExtras(t *testing.T) {
	rec := Record{
		"schema":     "s",
		"table_name": "t",
		"columns":    []any{},
		"engine":     "InnoDB",
	}
	tbl := buildTable(rec, DialectMySQL)

	if len(tbl.Properties) != 0 {
		t.Errorf("engine leaked into table_properties: %v", tbl.Properties)
	}
	out := tbl.AsRecord()
	if got := out.String("engine"); got != "InnoDB" {
		t.Errorf("engine = %q, want InnoDB", got)
	}
	if out.Has("table_properties") {
		t.Error("empty table_properties must be omitted")
	}
}

// Presence in the raw input decides serialization for
// exclude-if-not-provided fields, independent of the resolved value.
func TestBuildTableProvidedSemantics(t *testing.T) {
	withConstraints := buildTable(Record{
		"schema":      "s",
		"table_name":  "t",
		"columns":     []any{},
		"constraints": map[string]any{},
	}, DialectSQL)
	out := withConstraints.AsRecord()
	if !out.Has("constraints") {
		t.Error("provided-but-empty constraints must appear in output")
	}

	without := buildTable(Record{
		"schema":     "s",
		"table_name": "t",
		"columns":    []any{},
	}, DialectSQL)
	out = without.AsRecord()
	if out.Has("constraints") {
		t.Error("unprovided constraints must not appear in output")
	}
	for _, key := range []string{"unique", "unique_statement", "ref_columns", "references", "output_mode"} {
		if out.Has(key) {
			t.Errorf("working field %q leaked into output", key)
		}
	}
}

func TestBuildTableBigQueryDataset(t *testing.T) {
	tbl := buildTable(Record{
		"schema":     "d1",
		"table_name": "t",
		"columns":    []any{},
	}, DialectBigQuery)

	if tbl.Schema != "d1" {
		t.Fatalf("Schema = %q, want d1", tbl.Schema)
	}
	out := tbl.AsRecord()
	if got := out.String("dataset"); got != "d1" {
		t.Errorf("dataset = %q, want d1", got)
	}
	if out.Has("schema") {
		t.Error("schema key must not appear for bigquery output")
	}
	if out.Map("table_properties").Has("schema") {
		t.Error("schema key must not fall into table_properties")
	}
}

func TestBuildTableReferenceNormalization(t *testing.T) {
	tbl := buildTable(Record{
		"schema":     "s",
		"table_name": "orders",
		"columns": []any{
			map[string]any{"name": "customer_id"},
		},
		"ref_columns": []any{
			map[string]any{"name": "customer_id", "table": "customers", "column": "id"},
			map[string]any{"name": "ghost", "table": "nowhere", "column": "id"},
		},
	}, DialectSQL)

	_, col := tbl.findColumn("customer_id")
	wantRef := Record{"table": "customers", "column": "id"}
	if diff := cmp.Diff(wantRef, col.Attrs.Map("references")); diff != "" {
		t.Errorf("references mismatch (-want +got):\n%s", diff)
	}

	// the orphan descriptor is dropped, not attached anywhere
	out := tbl.AsRecord()
	if out.Has("ref_columns") {
		t.Error("ref_columns working list leaked into output")
	}
}

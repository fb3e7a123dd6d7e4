package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecordPresenceVsZero(t *testing.T) {
	r := Record{"present_nil": nil, "present_empty": ""}

	if !r.Has("present_nil") || !r.Has("present_empty") {
		t.Error("present keys must report Has = true regardless of value")
	}
	if r.Has("absent") {
		t.Error("absent key must report Has = false")
	}
}

func TestRecordAccessors(t *testing.T) {
	r := Record{
		"s":       "hello",
		"b":       true,
		"nested":  map[string]any{"k": "v"},
		"typed":   Record{"k": "v"},
		"list":    []any{"a", 1, "b"},
		"records": []any{map[string]any{"n": 1}, "skipme", Record{"n": 2}},
	}

	if got := r.String("s"); got != "hello" {
		t.Errorf("String = %q", got)
	}
	if got := r.String("b"); got != "" {
		t.Errorf("String on non-string = %q, want empty", got)
	}
	if !r.Bool("b") {
		t.Error("Bool = false, want true")
	}
	if diff := cmp.Diff(Record{"k": "v"}, r.Map("nested")); diff != "" {
		t.Errorf("Map on map[string]any mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(Record{"k": "v"}, r.Map("typed")); diff != "" {
		t.Errorf("Map on Record mismatch:\n%s", diff)
	}
	if r.Map("s") != nil {
		t.Error("Map on non-map must be nil")
	}
	if diff := cmp.Diff([]string{"a", "b"}, r.Strings("list")); diff != "" {
		t.Errorf("Strings mismatch:\n%s", diff)
	}
	if got := len(r.Records("records")); got != 2 {
		t.Errorf("Records kept %d elements, want 2", got)
	}
}

func TestRecordClone(t *testing.T) {
	nested := map[string]any{"k": "v"}
	r := Record{"a": 1, "nested": nested}
	c := r.Clone()

	c["a"] = 2
	if r["a"] != 1 {
		t.Error("clone shares top-level storage with the original")
	}
	// shallow by contract: nested values are shared
	nested["k"] = "w"
	if c["nested"].(map[string]any)["k"] != "w" {
		t.Error("nested value must be shared between clone and original")
	}
}

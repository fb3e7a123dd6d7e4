package ir

// groupKinds maps discriminator keys to their buckets, in the fixed
// probe order. The first key present on an entity decides its bucket.
var groupKinds = []struct{ key, bucket string }{
	{"table_name", "tables"},
	{"sequence_name", "sequences"},
	{"type_name", "types"},
	{"domain_name", "domains"},
	{"schema_name", "schemas"},
	{"tablespace_name", "tablespaces"},
	{"database_name", "databases"},
	{"value", "ddl_properties"},
	{"comments", "comments"},
}

// groupByType partitions the flat entity list by kind, preserving
// first-seen order inside each bucket. The declared buckets are always
// present even when empty; tablespaces/databases appear only on demand.
// Comment entities are flattened into the comments bucket, which is
// omitted entirely when it ends up empty. Comment elements may be plain
// strings, so that bucket alone holds untyped values.
func groupByType(entities []Record) Record {
	out := Record{
		"tables":         []Record{},
		"types":          []Record{},
		"sequences":      []Record{},
		"domains":        []Record{},
		"schemas":        []Record{},
		"ddl_properties": []Record{},
		"comments":       []any{},
	}
	for _, item := range entities {
		for _, kind := range groupKinds {
			if !item.Has(kind.key) {
				continue
			}
			if kind.key == "comments" {
				comments, _ := out["comments"].([]any)
				out["comments"] = append(comments, item.List("comments")...)
			} else {
				bucket, _ := out[kind.bucket].([]Record)
				out[kind.bucket] = append(bucket, item)
			}
			break
		}
	}
	if comments, _ := out["comments"].([]any); len(comments) == 0 {
		delete(out, "comments")
	}
	return out
}

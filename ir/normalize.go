package ir

import "strings"

// normalizeName strips the quoting styles the grammar lets through
// (double quotes, backticks, square brackets) and folds case, so that
// `"Foo"`, `foo` and `FOO` address the same column.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) >= 2 {
		first, last := name[0], name[len(name)-1]
		switch {
		case first == '"' && last == '"',
			first == '`' && last == '`',
			first == '[' && last == ']':
			name = name[1 : len(name)-1]
		}
	}
	return strings.ToLower(name)
}

// Package config resolves the run configuration for the ddlshape CLI
// from defaults, an optional ddlshape.yaml file, DDLSHAPE_* environment
// variables, and command-line flags, in that precedence order.
package config

// Config is the fully resolved run configuration.
type Config struct {
	// OutputMode selects the dialect shaping the final entities.
	OutputMode string `koanf:"output_mode"`
	// GroupByType toggles the group-by-kind post pass.
	GroupByType bool `koanf:"group_by_type"`
	// Pretty enables indented JSON output.
	Pretty bool `koanf:"pretty"`
	// Out is a directory for per-input output files; empty means stdout.
	Out string `koanf:"out"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"output_mode":   "sql",
		"group_by_type": false,
		"pretty":        false,
		"out":           "",
	}
}

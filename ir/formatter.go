package ir

import (
	"log/slog"

	"github.com/ddlshape/ddlshape/internal/logger"
)

// Options configures one reconciliation run. Both knobs are supplied
// once and are immutable for the run's duration.
type Options struct {
	OutputMode  Dialect // dialect tag; empty means the generic default
	GroupByType bool    // enable the result grouper pass
}

// Result carries the outcome of a run. Entities holds every final entity
// in first-seen order; Grouped is non-nil only when grouping was
// requested.
type Result struct {
	Entities []Record
	Grouped  Record
}

// Output returns the value to serialize for this run: the grouped
// wrapper when grouping was requested, otherwise the flat entity list.
func (r *Result) Output() any {
	if r.Grouped != nil {
		return r.Grouped
	}
	return r.Entities
}

// Formatter folds an ordered statement stream into final entities. It
// owns its registry exclusively for the duration of one Format call and
// must not be shared across concurrent runs.
type Formatter struct {
	dialect     Dialect
	groupByType bool
	registry    *Registry
	log         *slog.Logger
}

// NewFormatter validates the options and builds a fresh engine with an
// empty registry.
func NewFormatter(opts Options) (*Formatter, error) {
	d, err := ParseDialect(string(opts.OutputMode))
	if err != nil {
		return nil, err
	}
	return &Formatter{
		dialect:     d,
		groupByType: opts.GroupByType,
		registry:    NewRegistry(),
		log:         logger.Get(),
	}, nil
}

// Format processes the statement stream as one strict left-to-right
// fold. ALTER and CREATE INDEX records resolve against whatever state
// the registry holds at the moment they are encountered, so statement
// order is a correctness requirement, not an optimization choice.
func (f *Formatter) Format(stmts []Record) (*Result, error) {
	// order holds *Table and pass-through Record values interleaved in
	// first-seen order; tables are serialized only after the whole
	// stream has been folded, so late alters land in the output
	order := make([]any, 0, len(stmts))

	for _, stmt := range stmts {
		switch {
		case stmt.Has("index_name"):
			if err := attachIndex(f.registry, stmt, f.dialect); err != nil {
				return nil, err
			}

		case stmt.Has("alter_table_name"):
			target, err := f.registry.Get(stmt.String("schema"), stmt.String("alter_table_name"))
			if err != nil {
				return nil, err
			}
			if err := applyAlter(target, stmt); err != nil {
				return nil, err
			}

		case stmt.String("table_name") != "":
			t := buildTable(stmt, f.dialect)
			f.registry.Put(t)
			order = append(order, t)

		default:
			// pass-through entity; this layer never drops records it
			// does not understand
			if !hasDiscriminator(stmt) {
				f.log.Warn("statement record carries no known discriminator, emitting unchanged",
					slog.Any("record", stmt))
			}
			order = append(order, stmt)
		}
	}

	entities := make([]Record, 0, len(order))
	for _, item := range order {
		switch v := item.(type) {
		case *Table:
			entities = append(entities, v.AsRecord())
		case Record:
			entities = append(entities, v)
		}
	}

	res := &Result{Entities: entities}
	if f.groupByType {
		res.Grouped = groupByType(entities)
	}
	return res, nil
}

// Registry exposes the engine's table registry, mainly for callers that
// want to inspect reconciled tables after a run.
func (f *Formatter) Registry() *Registry {
	return f.registry
}

func hasDiscriminator(stmt Record) bool {
	for _, kind := range groupKinds {
		if stmt.Has(kind.key) {
			return true
		}
	}
	return false
}

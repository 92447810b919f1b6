package xlsx2md

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// Filter selects records with a boolean expression over the record's
// kind, id, name, parent and sheet.
type Filter struct {
	source  string
	program *vm.Program
}

// NewFilter compiles a filter expression. An empty expression returns a
// nil filter, which keeps every record.
func NewFilter(source string) (*Filter, error) {
	if source == "" {
		return nil, nil
	}
	program, err := expr.Compile(source, expr.Env(filterEnv(&models.Record{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", source, err)
	}
	return &Filter{source: source, program: program}, nil
}

// Keep reports whether rec passes the filter.
func (f *Filter) Keep(rec *models.Record) (bool, error) {
	if f == nil {
		return true, nil
	}
	result, err := expr.Run(f.program, filterEnv(rec))
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.source, err)
	}
	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q evaluated to %T, expected bool", f.source, result)
	}
	return keep, nil
}

func filterEnv(rec *models.Record) map[string]any {
	return map[string]any{
		"kind":   string(rec.Kind),
		"id":     rec.ID,
		"name":   rec.Name,
		"parent": rec.Parent,
		"sheet":  rec.Sheet,
	}
}

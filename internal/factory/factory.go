package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stp/internal/domain"
)

// ProcBuilder binds one resolved test input to an executable procedure.
type ProcBuilder func(in domain.ResolvedInput) func() error

// Build synthesizes one uniquely named test unit per resolved input, in
// encounter order, and returns them keyed by class name. Zero inputs is
// success: the result is an empty map.
func Build(inputs []domain.ResolvedInput, build ProcBuilder, label string) (map[string]domain.TestUnit, error) {
	units := make(map[string]domain.TestUnit, len(inputs))
	if err := BuildInto(units, inputs, build, label); err != nil {
		return nil, err
	}
	return units, nil
}

// BuildInto synthesizes units into an existing map. Class names are unique by
// construction (a monotonic sequence number per invocation), so a key already
// present in the destination is rejected: silently overwriting would drop a
// test.
func BuildInto(units map[string]domain.TestUnit, inputs []domain.ResolvedInput, build ProcBuilder, label string) error {
	title := cases.Title(language.Und).String(label)
	for i, in := range inputs {
		seq := i + 1
		className := fmt.Sprintf("Test%s%03d", title, seq)
		if _, exists := units[className]; exists {
			return fmt.Errorf("test unit %s already present", className)
		}
		units[className] = domain.TestUnit{
			ClassName:  className,
			MethodName: methodName(label, seq, in.Path),
			Input:      in,
			Run:        build(in),
		}
	}
	return nil
}

// methodName embeds the label, sequence number and input path so a failing
// unit points straight back at its corpus entry. The path is shown relative
// to the working directory when that keeps it readable.
func methodName(label string, seq int, path string) string {
	shown := path
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, path); err == nil && len(rel) < len(path) {
			shown = rel
		}
	}
	return fmt.Sprintf("test_%s_%03d_%s", label, seq, shown)
}

// Package schema is the construction facade over the schema component the
// corpus exercises: it builds component records from a schema document
// through a named builder pipeline, in a plain or an observed variant.
// Decode/encode/validate semantics belong to the validation library proper
// and are out of scope here.
package schema

// Component is one constructed schema component.
type Component interface {
	Kind() string
	Name() string
}

// Schema is a constructed schema document: its top-level components plus the
// problems met while building them. Construction is lenient; problems are
// collected rather than fatal, so a corpus entry can assert how many a
// document produces.
type Schema struct {
	Path    string
	Version string

	components []Component
	errors     []error
}

// Components returns the constructed components in document order.
func (s *Schema) Components() []Component {
	return s.components
}

// Errors returns the construction problems collected while loading.
func (s *Schema) Errors() []error {
	return s.errors
}

package schema

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"stp/internal/observe"
)

// Loader builds a schema from a document path.
type Loader func(path string) (*Schema, error)

// Load builds the plain schema variant from a schema document.
func Load(path, version string) (*Schema, error) {
	return LoadWith(path, version, DefaultBuilders(version))
}

// NewObservedLoader returns the instrumented variant: every component the
// pipeline builds is appended to rec, except those made by the leaf
// value-type builder. The loader behaves exactly like Load otherwise.
func NewObservedLoader(rec *observe.Recorder, version string) Loader {
	builders := observe.WrapNamed[Builders, BuilderFunc](rec, DefaultBuilders(version), ValueTypeBuilder)
	return func(path string) (*Schema, error) {
		return LoadWith(path, version, builders)
	}
}

// LoadWith builds a schema using an explicit builder set. The document is
// scanned token-wise; each top-level child of the schema root is handed to
// the builder registered for its local name. I/O problems and malformed XML
// are fatal; construction problems are collected on the schema.
func LoadWith(path, version string, builders Builders) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema %s: %w", path, err)
	}
	defer f.Close()

	s := &Schema{Path: path, Version: version}
	dec := xml.NewDecoder(f)
	depth := 0
	rootSeen := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", path, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				rootSeen = true
				if t.Name.Local != "schema" {
					return nil, fmt.Errorf("schema %s: root element is %q, want \"schema\"", path, t.Name.Local)
				}
			} else if depth == 2 {
				s.build(builders, t)
			}
		case xml.EndElement:
			depth--
		}
	}
	if !rootSeen {
		return nil, fmt.Errorf("schema %s: no root element", path)
	}
	return s, nil
}

// structural lists the schema children that are not constructible components.
var structural = map[string]bool{
	"annotation": true,
	"import":     true,
	"include":    true,
	"redefine":   true,
}

func (s *Schema) build(builders Builders, start xml.StartElement) {
	kind := start.Name.Local
	if structural[kind] {
		return
	}
	build, ok := builders[kind]
	if !ok {
		s.errors = append(s.errors, fmt.Errorf("no builder for component kind %q", kind))
		return
	}

	elem := Element{Kind: kind, Attr: make(map[string]string, len(start.Attr))}
	for _, a := range start.Attr {
		elem.Attr[a.Name.Local] = a.Value
		if a.Name.Local == "name" {
			elem.Name = a.Value
		}
	}

	c, err := build(elem)
	if err != nil {
		s.errors = append(s.errors, err)
		return
	}
	s.components = append(s.components, c)
}

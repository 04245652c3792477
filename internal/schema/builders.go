package schema

import "fmt"

// Element is the raw parsed form of a top-level schema child handed to a
// builder.
type Element struct {
	Kind string
	Name string
	Attr map[string]string
}

// BuilderFunc constructs one component from its source element.
type BuilderFunc func(elem Element) (Component, error)

// Builders maps component kinds to their builder.
type Builders map[string]BuilderFunc

// ValueTypeBuilder names the leaf value-type builder. It is the one left
// unwrapped when the pipeline is observed: simple types are built in bulk
// under the other components and would swamp the record.
const ValueTypeBuilder = "simpleType"

// Top-level component kinds constructible per XSD version.
var (
	kinds10 = []string{
		"element", "attribute", "complexType", "simpleType",
		"group", "attributeGroup", "notation",
	}
	kinds11 = []string{"override", "defaultOpenContent"}
)

// component is the record type the stock builders produce.
type component struct {
	kind string
	name string
	attr map[string]string
}

func (c *component) Kind() string { return c.kind }
func (c *component) Name() string { return c.name }

// DefaultBuilders returns the stock builder set for an XSD version. Version
// "1.1" adds the kinds XSD 1.0 does not know.
func DefaultBuilders(version string) Builders {
	kinds := append([]string(nil), kinds10...)
	if version == "1.1" {
		kinds = append(kinds, kinds11...)
	}

	builders := make(Builders, len(kinds))
	for _, kind := range kinds {
		kind := kind
		named := requiresName(kind)
		builders[kind] = func(elem Element) (Component, error) {
			if named && elem.Name == "" {
				return nil, fmt.Errorf("top-level %s without a name", kind)
			}
			return &component{kind: kind, name: elem.Name, attr: elem.Attr}, nil
		}
	}
	return builders
}

// requiresName reports whether a top-level component of this kind must carry
// a name attribute. The XSD 1.1 structural kinds are addressed differently.
func requiresName(kind string) bool {
	return kind != "override" && kind != "defaultOpenContent"
}

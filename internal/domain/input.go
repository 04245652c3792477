package domain

// Variant selects the plain or instrumented form of the schema component.
type Variant string

const (
	VariantPlain    Variant = "plain"
	VariantObserved Variant = "observed"
)

// ResolvedInput is a directive resolved against the filesystem: an absolute
// input path plus everything a test procedure needs to run it.
type ResolvedInput struct {
	Path          string // Absolute path to the test input file
	Variant       Variant
	ExpectErrors  int
	Inspect       bool
	SchemaVersion string
	Manifest      string // Manifest file the directive came from
	Line          int    // 1-based line number within the manifest
}

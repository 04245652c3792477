package domain

// Schema versions accepted by the -v directive flag.
const (
	SchemaVersion10 = "1.0"
	SchemaVersion11 = "1.1"
)

// Directive is one parsed manifest line describing a single test case.
// It is immutable once parsed.
type Directive struct {
	Filename      string // Test input path, relative to the manifest's directory
	ExpectErrors  int    // Total construction errors expected (default 0)
	Inspect       bool   // Use the observed schema variant
	SchemaVersion string // "1.0" or "1.1"
}

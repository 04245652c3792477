package config

const (
	// DefaultCorpusPath is the default corpus root.
	DefaultCorpusPath = "."
	// DefaultManifestPattern matches the manifest files under the corpus root.
	DefaultManifestPattern = "testfiles*"
	// DefaultSuffix is the test-input file suffix the resolver admits.
	DefaultSuffix = "xsd"
	// DefaultLabel names the generated test units.
	DefaultLabel = "validation"
	// DefaultOutputJSONFile is the default output JSON file name.
	DefaultOutputJSONFile = "unit-results.json"
	// DefaultOutputJSONDir is the default output directory.
	DefaultOutputJSONDir = "storage"
)

package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Corpus settings
	CorpusPath      string
	ManifestPattern string
	Suffix          string
	Label           string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	CorpusPath string
	Manifest   string
	Suffix     string
	Label      string
	NameFilter string
	Units      bool
	FailFast   bool
	OpenFaills bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		CorpusPath:      DefaultCorpusPath,
		ManifestPattern: DefaultManifestPattern,
		Suffix:          DefaultSuffix,
		Label:           DefaultLabel,
		OutputJSONFile:  DefaultOutputJSONFile,
		OutputJSONDir:   DefaultOutputJSONDir,
	}
}

// Load creates a config, applies STP_* environment overrides (including a
// .env file in the corpus directory when one exists), then applies flags.
// Flags win over environment, environment wins over defaults.
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	if flags.CorpusPath != "" {
		cfg.CorpusPath = flags.CorpusPath
	}
	cfg.applyEnv()
	if flags.CorpusPath != "" {
		cfg.CorpusPath = flags.CorpusPath
	}
	if flags.Manifest != "" {
		cfg.ManifestPattern = flags.Manifest
	}
	if flags.Suffix != "" {
		cfg.Suffix = flags.Suffix
	}
	if flags.Label != "" {
		cfg.Label = flags.Label
	}
	return cfg
}

// applyEnv loads .env from the corpus directory and applies STP_* variables.
// A missing .env is fine; plain environment variables work on their own.
func (c *Config) applyEnv() {
	envPath := filepath.Join(c.CorpusPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if v := os.Getenv("STP_CORPUS_PATH"); v != "" {
		c.CorpusPath = v
	}
	if v := os.Getenv("STP_MANIFEST"); v != "" {
		c.ManifestPattern = v
	}
	if v := os.Getenv("STP_SUFFIX"); v != "" {
		c.Suffix = v
	}
	if v := os.Getenv("STP_LABEL"); v != "" {
		c.Label = v
	}
	if v := os.Getenv("STP_OUTPUT_DIR"); v != "" {
		c.OutputJSONDir = v
	}
}

// GetManifestPattern returns the manifest glob, rooted at the corpus path
// unless it is already absolute.
func (c *Config) GetManifestPattern() string {
	if filepath.IsAbs(c.ManifestPattern) {
		return c.ManifestPattern
	}
	return filepath.Join(c.CorpusPath, c.ManifestPattern)
}

// GetOutputPath returns the full path to the output JSON file (under the
// corpus so run and faills use the same file). Resolves to an absolute path
// so run and faills always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.CorpusPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

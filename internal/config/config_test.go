package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetManifestPattern(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default pattern under default corpus",
			config: &Config{
				CorpusPath:      ".",
				ManifestPattern: "testfiles*",
			},
			expected: "testfiles*",
		},
		{
			name: "pattern rooted at the corpus path",
			config: &Config{
				CorpusPath:      "/corpus",
				ManifestPattern: "cases/testfiles",
			},
			expected: "/corpus/cases/testfiles",
		},
		{
			name: "absolute pattern wins",
			config: &Config{
				CorpusPath:      "/corpus",
				ManifestPattern: "/elsewhere/testfiles*",
			},
			expected: "/elsewhere/testfiles*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetManifestPattern()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := &Config{
		CorpusPath:     "/corpus",
		OutputJSONDir:  "storage",
		OutputJSONFile: "unit-results.json",
	}

	got := cfg.GetOutputPath()
	want := filepath.Join("/corpus", "storage", "unit-results.json")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected an absolute path, got %s", got)
	}
}

func TestLoad_FlagOverrides(t *testing.T) {
	cfg := Load(Flags{
		CorpusPath: "/somewhere",
		Suffix:     "xml",
		Label:      "decoding",
	})

	if cfg.CorpusPath != "/somewhere" {
		t.Errorf("corpus path flag ignored: %s", cfg.CorpusPath)
	}
	if cfg.Suffix != "xml" {
		t.Errorf("suffix flag ignored: %s", cfg.Suffix)
	}
	if cfg.Label != "decoding" {
		t.Errorf("label flag ignored: %s", cfg.Label)
	}
	if cfg.ManifestPattern != DefaultManifestPattern {
		t.Errorf("untouched setting lost its default: %s", cfg.ManifestPattern)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STP_SUFFIX", "xml")
	t.Setenv("STP_LABEL", "schemas")

	cfg := Load(Flags{})
	if cfg.Suffix != "xml" {
		t.Errorf("STP_SUFFIX ignored: %s", cfg.Suffix)
	}
	if cfg.Label != "schemas" {
		t.Errorf("STP_LABEL ignored: %s", cfg.Label)
	}

	t.Run("flags beat environment", func(t *testing.T) {
		cfg := Load(Flags{Suffix: "xsd"})
		if cfg.Suffix != "xsd" {
			t.Errorf("flag should win over STP_SUFFIX, got %s", cfg.Suffix)
		}
	})
}

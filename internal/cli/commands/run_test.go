package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"stp/internal/config"
	"stp/internal/storage"
)

const cleanXSD = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="note" type="xs:string"/>
  <xs:simpleType name="code">
    <xs:restriction base="xs:string"/>
  </xs:simpleType>
</xs:schema>
`

// brokenXSD has exactly one construction problem: a nameless element.
const brokenXSD = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element/>
</xs:schema>
`

func writeRunCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"testfiles": "clean.xsd\n" +
			"clean.xsd -i\n" +
			"broken.xsd 1\n" +
			"broken.xsd # no expected errors, so this unit fails\n" +
			"missing.xsd\n",
		"clean.xsd":  cleanXSD,
		"broken.xsd": brokenXSD,
	}
	for rel, content := range files {
		if err := os.WriteFile(filepath.Join(dir, rel), []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return dir
}

func TestRunCommand_Execute(t *testing.T) {
	dir := writeRunCorpus(t)

	cfg := config.New()
	cfg.CorpusPath = dir
	cmds := NewCommands(cfg)

	if err := cmds.Run.Execute(&cobra.Command{}, nil); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	output, err := storage.NewJSONStorage(cfg).Load()
	if err != nil {
		t.Fatalf("no results saved: %v", err)
	}

	t.Run("one unit per surviving directive", func(t *testing.T) {
		if output.Meta.TotalUnits != 4 {
			t.Errorf("expected 4 units, got %d", output.Meta.TotalUnits)
		}
		if output.Meta.Directives != 5 {
			t.Errorf("expected 5 directives, got %d", output.Meta.Directives)
		}
		if output.Meta.SkippedDirectives != 1 {
			t.Errorf("expected 1 skipped directive, got %d", output.Meta.SkippedDirectives)
		}
	})

	t.Run("expected-error mismatches fail their unit", func(t *testing.T) {
		if output.Meta.PassedUnits != 3 || output.Meta.FailedUnits != 1 {
			t.Errorf("expected 3 passed / 1 failed, got %d / %d",
				output.Meta.PassedUnits, output.Meta.FailedUnits)
		}
		if len(output.Details) != 1 {
			t.Fatalf("expected 1 failure detail, got %d", len(output.Details))
		}
		f := output.Details[0]
		if f.UnitName != "TestValidation004" {
			t.Errorf("wrong failing unit: %s", f.UnitName)
		}
		if f.Line != 4 {
			t.Errorf("failure should point at manifest line 4, got %d", f.Line)
		}
	})

	t.Run("skips are persisted for auditing", func(t *testing.T) {
		if len(output.Skipped) != 1 {
			t.Fatalf("expected 1 skip entry, got %d", len(output.Skipped))
		}
		if output.Skipped[0].Filename != "missing.xsd" {
			t.Errorf("wrong skip entry: %+v", output.Skipped[0])
		}
	})
}

func TestRunCommand_EmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "testfiles"), []byte("# empty\n"), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	cfg := config.New()
	cfg.CorpusPath = dir
	cmds := NewCommands(cfg)

	// An empty corpus is success, and nothing is written.
	if err := cmds.Run.Execute(&cobra.Command{}, nil); err != nil {
		t.Fatalf("empty corpus must succeed, got %v", err)
	}
	if _, err := storage.NewJSONStorage(cfg).Load(); err == nil {
		t.Error("no results file expected for an empty corpus")
	}
}

package storage

import (
	"errors"
	"testing"
	"time"

	"stp/internal/config"
	"stp/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.CorpusPath = t.TempDir()
	return cfg
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st := NewJSONStorage(testConfig(t))

	results := []domain.RunResult{
		{ClassName: "TestValidation001", Path: "/corpus/a.xsd", Success: true},
		{ClassName: "TestValidation002", Path: "/corpus/b.xsd", Success: false, Err: errors.New("expected 2 construction errors, got 0")},
	}
	failures := []domain.UnitFailure{
		{
			UnitName:     "TestValidation002",
			FilePath:     "/corpus/b.xsd",
			ExpectErrors: 2,
			Manifest:     "/corpus/testfiles",
			Line:         3,
			Message:      "expected 2 construction errors, got 0",
		},
	}
	report := &domain.ScanReport{
		Manifests:  1,
		Directives: 3,
		Resolved:   2,
		Skipped: []domain.SkippedDirective{
			{Manifest: "/corpus/testfiles", Line: 2, Filename: "gone.xsd", Reason: domain.SkipMissing},
		},
	}

	if err := st.Save(results, failures, report, 1500*time.Millisecond, "validation"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	t.Run("meta totals", func(t *testing.T) {
		m := output.Meta
		if m.TotalUnits != 2 || m.PassedUnits != 1 || m.FailedUnits != 1 {
			t.Errorf("wrong unit totals: %+v", m)
		}
		if m.Directives != 3 || m.SkippedDirectives != 1 {
			t.Errorf("wrong directive totals: %+v", m)
		}
		if m.Label != "validation" {
			t.Errorf("label lost: %s", m.Label)
		}
		if m.DurationSeconds != 1.5 {
			t.Errorf("expected 1.5s, got %v", m.DurationSeconds)
		}
	})

	t.Run("failure details survive the roundtrip", func(t *testing.T) {
		if len(output.Details) != 1 {
			t.Fatalf("expected 1 failure, got %d", len(output.Details))
		}
		f := output.Details[0]
		if f.UnitName != "TestValidation002" || f.Line != 3 || f.ExpectErrors != 2 {
			t.Errorf("failure mangled: %+v", f)
		}
	})

	t.Run("skips survive the roundtrip", func(t *testing.T) {
		if len(output.Skipped) != 1 {
			t.Fatalf("expected 1 skip, got %d", len(output.Skipped))
		}
		if output.Skipped[0].Reason != domain.SkipMissing {
			t.Errorf("skip reason mangled: %+v", output.Skipped[0])
		}
	})
}

func TestJSONStorage_SaveOutputUpdatesInPlace(t *testing.T) {
	st := NewJSONStorage(testConfig(t))

	report := &domain.ScanReport{Directives: 1, Resolved: 1}
	failures := []domain.UnitFailure{{UnitName: "TestValidation001"}}
	if err := st.Save(nil, failures, report, time.Second, "validation"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	output.Details[0].Resolved = true
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save output failed: %v", err)
	}

	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reloaded.Details[0].Resolved {
		t.Error("resolved flag did not persist")
	}
}

func TestJSONStorage_LoadWithoutRun(t *testing.T) {
	st := NewJSONStorage(testConfig(t))
	if _, err := st.Load(); err == nil {
		t.Error("expected an error when no results file exists")
	}
}

package factory

import (
	"fmt"
	"strings"
	"testing"

	"stp/internal/domain"
)

func noopBuilder(domain.ResolvedInput) func() error {
	return func() error { return nil }
}

func someInputs(n int) []domain.ResolvedInput {
	inputs := make([]domain.ResolvedInput, n)
	for i := range inputs {
		inputs[i] = domain.ResolvedInput{
			Path:          fmt.Sprintf("/corpus/cases/case%d.xsd", i+1),
			Variant:       domain.VariantPlain,
			SchemaVersion: domain.SchemaVersion10,
		}
	}
	return inputs
}

func TestBuild_Naming(t *testing.T) {
	units, err := Build(someInputs(12), noopBuilder, "validation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != 12 {
		t.Fatalf("expected 12 units, got %d", len(units))
	}

	t.Run("class names follow the labelled zero-padded scheme", func(t *testing.T) {
		for i := 1; i <= 12; i++ {
			name := fmt.Sprintf("TestValidation%03d", i)
			if _, ok := units[name]; !ok {
				t.Errorf("missing unit %s", name)
			}
		}
	})

	t.Run("sequence numbers follow encounter order", func(t *testing.T) {
		for i := 1; i <= 12; i++ {
			name := fmt.Sprintf("TestValidation%03d", i)
			want := fmt.Sprintf("case%d.xsd", i)
			if got := units[name].Input.Path; !strings.HasSuffix(got, want) {
				t.Errorf("%s: expected input %s, got %s", name, want, got)
			}
		}
	})

	t.Run("method names embed label, sequence and path", func(t *testing.T) {
		m := units["TestValidation003"].MethodName
		if !strings.HasPrefix(m, "test_validation_003_") {
			t.Errorf("unexpected method name prefix: %s", m)
		}
		if !strings.Contains(m, "case3.xsd") {
			t.Errorf("method name should name the input file: %s", m)
		}
	})

	t.Run("class names are pairwise distinct", func(t *testing.T) {
		seen := make(map[string]bool)
		for name := range units {
			if seen[name] {
				t.Errorf("duplicate class name %s", name)
			}
			seen[name] = true
		}
	})
}

func TestBuild_BindsProcedures(t *testing.T) {
	var bound []string
	builder := func(in domain.ResolvedInput) func() error {
		path := in.Path
		return func() error {
			bound = append(bound, path)
			return nil
		}
	}

	units, err := Build(someInputs(2), builder, "decoding")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := units["TestDecoding002"].Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bound) != 1 || !strings.HasSuffix(bound[0], "case2.xsd") {
		t.Errorf("procedure bound to the wrong input: %v", bound)
	}
}

func TestBuild_EmptyInputIsSuccess(t *testing.T) {
	units, err := Build(nil, noopBuilder, "validation")
	if err != nil {
		t.Fatalf("expected success for an empty corpus, got %v", err)
	}
	if len(units) != 0 {
		t.Errorf("expected an empty map, got %d units", len(units))
	}
}

func TestBuildInto_RejectsCollisions(t *testing.T) {
	units := map[string]domain.TestUnit{
		"TestValidation001": {ClassName: "TestValidation001"},
	}

	err := BuildInto(units, someInputs(1), noopBuilder, "validation")
	if err == nil {
		t.Fatal("expected a collision error")
	}
	if !strings.Contains(err.Error(), "TestValidation001") {
		t.Errorf("error should name the colliding unit: %v", err)
	}
	// The pre-existing unit must survive untouched.
	if units["TestValidation001"].Input.Path != "" {
		t.Error("collision overwrote the existing unit")
	}
}

func TestBuild_LabelTitleCasing(t *testing.T) {
	units, err := Build(someInputs(1), noopBuilder, "encoding")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := units["TestEncoding001"]; !ok {
		t.Errorf("expected TestEncoding001, got %v", keys(units))
	}
}

func keys(m map[string]domain.TestUnit) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	return out
}

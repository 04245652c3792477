package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"stp/internal/domain"
	"stp/internal/manifest"
)

// VariantPolicy decides which schema component variant serves a directive.
type VariantPolicy func(inspect bool) domain.Variant

// DefaultVariantPolicy maps the -i flag directly onto the observed variant.
func DefaultVariantPolicy(inspect bool) domain.Variant {
	if inspect {
		return domain.VariantObserved
	}
	return domain.VariantPlain
}

// Resolver expands manifest patterns and resolves their directives into
// concrete test inputs. It holds no state beyond its configuration; every
// Resolve call is an independent pass.
type Resolver struct {
	suffix string
	policy VariantPolicy
}

// NewResolver creates a Resolver admitting only files with the given suffix
// (case-insensitive, with or without the leading dot). A nil policy means
// DefaultVariantPolicy.
func NewResolver(suffix string, policy VariantPolicy) *Resolver {
	if policy == nil {
		policy = DefaultVariantPolicy
	}
	return &Resolver{
		suffix: strings.ToLower(strings.TrimPrefix(suffix, ".")),
		policy: policy,
	}
}

// Resolve reads every manifest matched by the patterns and returns the
// surviving test inputs in encounter order, plus a report of what was read
// and skipped. A malformed directive aborts its manifest with an error; a
// missing or wrong-suffix file only skips the directive.
func (r *Resolver) Resolve(patterns ...string) ([]domain.ResolvedInput, *domain.ScanReport, error) {
	report := &domain.ScanReport{}

	manifests, err := expand(patterns)
	if err != nil {
		return nil, report, err
	}
	report.Manifests = len(manifests)

	var inputs []domain.ResolvedInput
	for _, path := range manifests {
		if err := r.resolveManifest(path, &inputs, report); err != nil {
			return nil, report, err
		}
	}
	report.Resolved = len(inputs)
	return inputs, report, nil
}

// expand turns glob patterns into a deterministically ordered, de-duplicated
// manifest list.
func expand(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad manifest pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func (r *Resolver) resolveManifest(path string, inputs *[]domain.ResolvedInput, report *domain.ScanReport) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open manifest %s: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		d, err := manifest.Parse(scanner.Text())
		if errors.Is(err, manifest.ErrNotDirective) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNum, err)
		}
		report.Directives++

		// Relative filenames resolve against the directory of the
		// manifest currently being read, not the working directory.
		resolved := d.Filename
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(dir, resolved)
		}
		if abs, err := filepath.Abs(resolved); err == nil {
			resolved = abs
		}

		if reason, ok := r.admit(resolved); !ok {
			report.Skipped = append(report.Skipped, domain.SkippedDirective{
				Manifest: path,
				Line:     lineNum,
				Filename: d.Filename,
				Path:     resolved,
				Reason:   reason,
			})
			continue
		}

		*inputs = append(*inputs, domain.ResolvedInput{
			Path:          resolved,
			Variant:       r.policy(d.Inspect),
			ExpectErrors:  d.ExpectErrors,
			Inspect:       d.Inspect,
			SchemaVersion: d.SchemaVersion,
			Manifest:      path,
			Line:          lineNum,
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read manifest %s: %w", path, err)
	}
	return nil
}

// admit applies the corpus hygiene checks: the resolved path must be an
// existing regular file carrying the configured suffix. A shared manifest may
// reference files of several kinds; unrelated kinds are skipped, not failed.
func (r *Resolver) admit(path string) (domain.SkipReason, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return domain.SkipMissing, false
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext != r.suffix {
		return domain.SkipSuffix, false
	}
	return "", true
}

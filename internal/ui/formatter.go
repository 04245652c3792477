package ui

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"

	"stp/internal/config"
	"stp/internal/domain"
	"stp/internal/storage"
)

// Formatter formats and displays output
type Formatter struct {
	config  *config.Config
	storage storage.Storage
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, st storage.Storage) *Formatter {
	return &Formatter{
		config:  cfg,
		storage: st,
	}
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats() error {
	output, err := f.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to read results: %w", err)
	}
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Corpus Run Statistics                     ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Label")
	color.White("%-27s │\n", meta.Label)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Units")
	color.White("%-27d │\n", meta.TotalUnits)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Units")
	color.Green("%-27d │\n", meta.PassedUnits)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Units")
	color.Red("%-27d │\n", meta.FailedUnits)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Directives")
	color.White("%-27d │\n", meta.Directives)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped Directives")
	if meta.SkippedDirectives > 0 {
		color.Yellow("%-27d │\n", meta.SkippedDirectives)
	} else {
		color.White("%-27d │\n", meta.SkippedDirectives)
	}
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	if meta.SkippedDirectives > 0 {
		color.Yellow("\n%d directive(s) skipped; run 'stp audit' to review them", meta.SkippedDirectives)
	}
	fmt.Println()
	return nil
}

// PrintInputList prints the resolved test inputs grouped by manifest.
func (f *Formatter) PrintInputList(inputs []domain.ResolvedInput) {
	color.Green("Resolved %d test input(s):\n", len(inputs))

	lastManifest := ""
	for i, in := range inputs {
		if in.Manifest != lastManifest {
			if lastManifest != "" {
				fmt.Println()
			}
			color.Cyan("%s", f.displayPath(in.Manifest))
			lastManifest = in.Manifest
		}

		connector := "├── "
		if i == len(inputs)-1 || (i+1 < len(inputs) && inputs[i+1].Manifest != in.Manifest) {
			connector = "└── "
		}

		line := fmt.Sprintf("%s%s", connector, color.YellowString(f.displayPath(in.Path)))
		if in.ExpectErrors > 0 {
			line += color.RedString(" [errors: %d]", in.ExpectErrors)
		}
		if in.Variant == domain.VariantObserved {
			line += color.MagentaString(" [observed]")
		}
		if in.SchemaVersion != domain.SchemaVersion10 {
			line += color.WhiteString(" [v%s]", in.SchemaVersion)
		}
		fmt.Println(line)
	}
}

// PrintUnitList prints generated units in encounter order.
func (f *Formatter) PrintUnitList(units map[string]domain.TestUnit) {
	color.Green("Generated %d test unit(s):\n", len(units))

	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s  %s\n", color.CyanString(name), color.YellowString(units[name].MethodName))
	}
}

// PrintScanReport prints the audit view of a corpus scan: what was read,
// what resolved, and every skipped directive with its reason.
func (f *Formatter) PrintScanReport(report *domain.ScanReport) {
	color.Cyan("Manifests read:      %d", report.Manifests)
	color.Cyan("Directives parsed:   %d", report.Directives)
	color.Green("Directives resolved: %d", report.Resolved)

	if len(report.Skipped) == 0 {
		color.Green("\nNo skipped directives, the corpus is clean")
		return
	}

	color.Yellow("\nSkipped directives (%d):\n", len(report.Skipped))
	for _, s := range report.Skipped {
		reason := "file does not exist"
		if s.Reason == domain.SkipSuffix {
			reason = "suffix does not match"
		}
		fmt.Printf("%s:%d  %s  %s\n",
			color.CyanString(f.displayPath(s.Manifest)),
			s.Line,
			color.YellowString(s.Filename),
			color.RedString("(%s)", reason),
		)
	}
	color.Yellow("\nA mistyped filename skips silently; check the entries above.")
}

// displayPath shortens a path relative to the corpus root when possible.
func (f *Formatter) displayPath(path string) string {
	corpus, err := filepath.Abs(f.config.CorpusPath)
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(corpus, path); err == nil && len(rel) < len(path) {
		return rel
	}
	return path
}

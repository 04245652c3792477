package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stp/internal/config"
	"stp/internal/corpus"
	"stp/internal/domain"
	"stp/internal/execution"
	"stp/internal/factory"
	"stp/internal/observe"
	"stp/internal/schema"
	"stp/internal/storage"
	"stp/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	executor  *execution.Executor
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	executor *execution.Executor,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		executor:  executor,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	resolver := corpus.NewResolver(rc.config.Suffix, nil)
	inputs, report, err := resolver.Resolve(rc.config.GetManifestPattern())
	if err != nil {
		return err
	}
	inputs = corpus.FilterByName(inputs, rc.config.Flags.NameFilter)

	// One recorder per run; the bound procedures clear it per unit.
	recorder := observe.NewRecorder()
	units, err := factory.Build(inputs, rc.procBuilder(recorder), rc.config.Label)
	if err != nil {
		return err
	}

	if len(units) == 0 {
		color.Yellow("No test units generated")
		if len(report.Skipped) > 0 {
			color.Yellow("%d directive(s) were skipped; run 'stp audit' to review them", len(report.Skipped))
		}
		return nil
	}

	progressBar := ui.NewProgressBar(len(units))
	rc.executor.SetProgress(progressBar)

	results, duration, err := rc.executor.Execute(units, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	var failures []domain.UnitFailure
	for _, result := range results {
		if !result.Success {
			unit := units[result.ClassName]
			failures = append(failures, domain.UnitFailure{
				UnitName:     result.ClassName,
				MethodName:   unit.MethodName,
				FilePath:     result.Path,
				ExpectErrors: unit.Input.ExpectErrors,
				Manifest:     unit.Input.Manifest,
				Line:         unit.Input.Line,
				Message:      result.Err.Error(),
			})
		}
	}

	if err := rc.storage.Save(results, failures, report, duration, rc.config.Label); err != nil {
		return fmt.Errorf("failed to save unit results: %w", err)
	}

	if err := rc.formatter.PrintMetaStats(); err != nil {
		return err
	}

	if rc.config.Flags.OpenFaills && len(failures) > 0 {
		output, err := rc.storage.Load()
		if err != nil {
			return err
		}
		return rc.viewer.View(output)
	}
	return nil
}

// procBuilder binds a resolved input to the bundled schema-construction
// check: build the schema (the observed variant when the directive asks for
// inspection) and compare the number of construction problems against the
// directive's expected count.
func (rc *RunCommand) procBuilder(rec *observe.Recorder) factory.ProcBuilder {
	return func(in domain.ResolvedInput) func() error {
		return func() error {
			var s *schema.Schema
			var err error
			if in.Variant == domain.VariantObserved {
				rec.Clear()
				load := schema.NewObservedLoader(rec, in.SchemaVersion)
				s, err = load(in.Path)
			} else {
				s, err = schema.Load(in.Path, in.SchemaVersion)
			}
			if err != nil {
				return err
			}

			if got := len(s.Errors()); got != in.ExpectErrors {
				return fmt.Errorf("expected %d construction errors, got %d", in.ExpectErrors, got)
			}

			if in.Inspect {
				observable := 0
				for _, c := range s.Components() {
					if c.Kind() != schema.ValueTypeBuilder {
						observable++
					}
				}
				if rec.Len() != observable {
					return fmt.Errorf("recorded %d components, built %d observable ones", rec.Len(), observable)
				}
			}
			return nil
		}
	}
}

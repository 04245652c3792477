package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stp/internal/config"
	"stp/internal/corpus"
	"stp/internal/domain"
	"stp/internal/factory"
	"stp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	resolver := corpus.NewResolver(lc.config.Suffix, nil)
	inputs, _, err := resolver.Resolve(lc.config.GetManifestPattern())
	if err != nil {
		return err
	}
	inputs = corpus.FilterByName(inputs, lc.config.Flags.NameFilter)

	if len(inputs) == 0 {
		color.Yellow("No test inputs resolved")
		return nil
	}

	if lc.config.Flags.Units {
		// Listing needs names only, not runnable procedures.
		unbound := func(domain.ResolvedInput) func() error { return nil }
		units, err := factory.Build(inputs, unbound, lc.config.Label)
		if err != nil {
			return err
		}
		lc.formatter.PrintUnitList(units)
		return nil
	}

	lc.formatter.PrintInputList(inputs)
	return nil
}

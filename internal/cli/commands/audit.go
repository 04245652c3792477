package commands

import (
	"github.com/spf13/cobra"

	"stp/internal/config"
	"stp/internal/corpus"
	"stp/internal/ui"
)

// AuditCommand handles the audit command
type AuditCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewAuditCommand creates a new AuditCommand
func NewAuditCommand(cfg *config.Config, formatter *ui.Formatter) *AuditCommand {
	return &AuditCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (ac *AuditCommand) Execute(cmd *cobra.Command, args []string) error {
	resolver := corpus.NewResolver(ac.config.Suffix, nil)
	_, report, err := resolver.Resolve(ac.config.GetManifestPattern())
	if err != nil {
		return err
	}

	ac.formatter.PrintScanReport(report)
	return nil
}

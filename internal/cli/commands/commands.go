package commands

import (
	"stp/internal/cli"
	"stp/internal/config"
	"stp/internal/execution"
	"stp/internal/storage"
	"stp/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Audit  *AuditCommand
	Faills *FaillsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, jsonStorage)
	runner := execution.NewRunner()
	executor := execution.NewExecutor(runner)
	viewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Run:    NewRunCommand(cfg, executor, jsonStorage, formatter, viewer),
		List:   NewListCommand(cfg, formatter),
		Audit:  NewAuditCommand(cfg, formatter),
		Faills: NewFaillsCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Reload config once flags are parsed; flags win over STP_* environment.
	applyFlags := func(cmd *cobra.Command, args []string) error {
		*cfg = *config.Load(flags.ToConfigFlags())
		return nil
	}

	corpusFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&flags.CorpusPath, "corpus", "c", "", "Corpus root directory (default \".\")")
		cmd.Flags().StringVarP(&flags.Manifest, "manifest", "m", "", "Manifest glob relative to the corpus root (default \"testfiles*\")")
		cmd.Flags().StringVarP(&flags.Suffix, "suffix", "s", "", "Test-input file suffix to admit (default \"xsd\")")
		cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test inputs by file name (supports wildcards, e.g. '*vehicles*')")
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Generate and run test units from the corpus",
		Long:    "Resolve the manifest corpus, synthesize test units and execute them sequentially",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	corpusFlags(runCmd)
	runCmd.Flags().StringVarP(&flags.Label, "label", "l", "", "Label embedded in generated unit names (default \"validation\")")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failing unit")
	runCmd.Flags().BoolVar(&flags.OpenFaills, "open-faills", false, "Open the faills viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List resolved test inputs",
		Long:    "Resolve the manifest corpus and list its test inputs without executing anything",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	corpusFlags(listCmd)
	listCmd.Flags().StringVarP(&flags.Label, "label", "l", "", "Label embedded in generated unit names (default \"validation\")")
	listCmd.Flags().BoolVarP(&flags.Units, "units", "u", false, "List generated units instead of test inputs")
	rootCmd.AddCommand(listCmd)

	// Audit command
	auditCmd := &cobra.Command{
		Use:     "audit",
		Short:   "Audit the corpus for silently skipped directives",
		Long:    "Resolve the manifest corpus and report every directive skipped for a missing file or wrong suffix",
		RunE:    c.Audit.Execute,
		PreRunE: applyFlags,
	}
	corpusFlags(auditCmd)
	rootCmd.AddCommand(auditCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:     "faills",
		Short:   "View unit failures interactively",
		Long:    "Display unit failures from the last run in an interactive viewer",
		RunE:    c.Faills.Execute,
		PreRunE: applyFlags,
	}
	faillsCmd.Flags().StringVarP(&flags.CorpusPath, "corpus", "c", "", "Corpus root directory (default \".\")")
	rootCmd.AddCommand(faillsCmd)
}

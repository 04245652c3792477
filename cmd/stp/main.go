package main

import (
	"fmt"
	"os"

	"stp/internal/cli"
	"stp/internal/cli/commands"
	"stp/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "stp",
		Short:   "Schema test processor",
		Long:    `A corpus-driven test processor for schema documents. Reads line-oriented manifest files, resolves each directive to a concrete test input, synthesizes uniquely named test units and runs them.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"ptr/internal/cli"
	"ptr/internal/cli/commands"
	"ptr/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "ptr",
		Short:   "Pytest target resolver and runner",
		Long:    `A thin orchestration layer around pytest and Allure. Resolve file, class and function names to pytest node ids, delegate execution to pytest, and point the report publisher at a fixed results directory.`,
		Version: version,
	}

	// Create initial config with defaults, then apply .env / environment
	cfg := config.New()
	cfg.ApplyEnv()

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

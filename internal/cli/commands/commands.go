package commands

import (
	"ptr/internal/cli"
	"ptr/internal/config"
	"ptr/internal/discovery"
	"ptr/internal/execution"
	"ptr/internal/resolver"
	"ptr/internal/storage"
	"ptr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	Resolve *ResolveCommand
	List    *ListCommand
	Last    *LastCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	parser := discovery.NewParser()
	res := resolver.New(scanner, parser)
	runner := execution.NewRunner(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, parser)
	browser := ui.NewBrowser(cfg)

	return &Commands{
		Run:     NewRunCommand(cfg, res, runner, jsonStorage, formatter),
		Resolve: NewResolveCommand(cfg, res, formatter),
		List:    NewListCommand(cfg, scanner, filter, formatter, browser),
		Last:    NewLastCommand(cfg, jsonStorage, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run [targets...]",
		Short: "Resolve targets and run them with pytest",
		Long: "Resolve target tokens (file, class or function names) to pytest node ids " +
			"and delegate execution to pytest. With no targets the whole suite runs.",
		RunE: c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	runCmd.Flags().StringVarP(&flags.ResultsDir, "results-dir", "r", "", "Directory pytest writes Allure results into")
	runCmd.Flags().BoolVarP(&flags.Watch, "watch", "w", false, "Re-resolve and re-run the same targets when .py files change")
	runCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Skip writing last-run metadata to storage")
	rootCmd.AddCommand(runCmd)

	// Resolve command
	resolveCmd := &cobra.Command{
		Use:   "resolve <targets...>",
		Short: "Resolve targets to pytest node ids without running them",
		Long:  "Print the pytest node id each target token resolves to, one per line, without invoking pytest",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.Resolve.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	resolveCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	rootCmd.AddCommand(resolveCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered tests",
		Long:  "Scan and list all pytest test files without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. 'test_api*' or '*demo*')")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test cases instead of test files")
	listCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Browse the test inventory in an interactive viewer")
	rootCmd.AddCommand(listCmd)

	// Last command
	lastCmd := &cobra.Command{
		Use:   "last",
		Short: "Show the previous run",
		Long:  "Display the stored metadata of the previous pytest run",
		RunE:  c.Last.Execute,
	}
	rootCmd.AddCommand(lastCmd)
}

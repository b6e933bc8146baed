package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"ptr/internal/config"
	"ptr/internal/discovery"
	"ptr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
	browser   *ui.Browser
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
	browser *ui.Browser,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
		browser:   browser,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	testPath := lc.config.GetTestPath()
	tests, err := lc.scanner.Scan(testPath)
	if err != nil {
		return err
	}

	// Filter tests
	tests = lc.filter.FilterByName(tests, lc.config.Flags.NameFilter)

	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	if lc.config.Flags.Interactive {
		inventory, err := lc.formatter.Inventory(tests, false)
		if err != nil {
			return err
		}
		return lc.browser.Browse(inventory)
	}

	return lc.formatter.PrintTestList(tests, lc.config.Flags.TestCases)
}

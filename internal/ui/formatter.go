package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"ptr/internal/config"
	"ptr/internal/discovery"
	"ptr/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
	}
}

// Inventory parses the given test files into their class/function
// inventories, in order, with a progress bar on stderr.
func (f *Formatter) Inventory(files []string, showProgress bool) ([]*domain.TestFile, error) {
	var progress *ProgressBar
	if showProgress {
		progress = NewProgressBar(len(files))
	}

	inventory := make([]*domain.TestFile, 0, len(files))
	cases := 0
	for i, path := range files {
		tf, err := f.parser.ParseFile(path)
		if err != nil {
			return nil, err
		}
		inventory = append(inventory, tf)
		cases += len(tf.Functions)
		if progress != nil {
			progress.Update(i+1, cases)
		}
	}
	if progress != nil {
		progress.Finish()
	}
	return inventory, nil
}

// PrintTestList prints discovered test files, or the full test-case
// inventory when testCases is set.
func (f *Formatter) PrintTestList(tests []string, testCases bool) error {
	if !testCases {
		for i, test := range tests {
			fmt.Printf("%s %s\n", color.YellowString("%3d.", i+1), f.relPath(test))
		}
		fmt.Println()
		color.Green("✓ %d test file(s)", len(tests))
		return nil
	}

	inventory, err := f.Inventory(tests, true)
	if err != nil {
		return err
	}

	total := 0
	for _, tf := range inventory {
		color.Cyan("%s", f.relPath(tf.Path))
		for _, fn := range tf.Functions {
			if fn.Class != "" {
				fmt.Printf("    %s::%s\n", color.MagentaString(fn.Class), fn.Name)
			} else {
				fmt.Printf("    %s\n", fn.Name)
			}
		}
		total += len(tf.Functions)
	}
	fmt.Println()
	color.Green("✓ %d test case(s) in %d file(s)", total, len(inventory))
	return nil
}

// PrintNodes prints resolved node identifiers one per line, uncolored, so
// the output composes in shell pipelines.
func (f *Formatter) PrintNodes(nodes []domain.NodeID) {
	for _, node := range nodes {
		fmt.Println(node.String())
	}
}

// PrintRunMeta displays the stored metadata of the previous run.
func (f *Formatter) PrintRunMeta(meta *domain.RunMeta) {
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                         Last Test Run                         ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	row := func(label, value string, c *color.Color) {
		fmt.Printf("  %-14s ", label)
		c.Printf("%s\n", value)
	}

	white := color.New(color.FgWhite)
	row("Run ID", meta.RunID, white)
	if len(meta.Targets) > 0 {
		row("Targets", strings.Join(meta.Targets, " "), white)
	} else {
		row("Targets", "(all tests)", white)
	}
	for i, node := range meta.Nodes {
		label := ""
		if i == 0 {
			label = "Nodes"
		}
		row(label, node, white)
	}
	row("Duration", meta.Duration, white)
	row("Results dir", meta.ResultsDir, white)
	row("Timestamp", meta.Timestamp, white)

	fmt.Println()
	if meta.Success {
		color.Green("✓ pytest exited 0")
	} else {
		color.Red("✗ pytest exited %d", meta.ExitCode)
	}
}

// relPath shortens a path relative to the project for display.
func (f *Formatter) relPath(path string) string {
	if rel, err := filepath.Rel(f.config.ProjectPath, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

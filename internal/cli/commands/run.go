package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"ptr/internal/config"
	"ptr/internal/domain"
	"ptr/internal/execution"
	"ptr/internal/resolver"
	"ptr/internal/storage"
	"ptr/internal/ui"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// watchDebounce is the quiet window after the last file event before a re-run.
const watchDebounce = 500 * time.Millisecond

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	resolver  *resolver.Resolver
	runner    *execution.Runner
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	res *resolver.Resolver,
	runner *execution.Runner,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		resolver:  res,
		runner:    runner,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command. Resolution is all-or-nothing: any unresolved
// target aborts before pytest is ever invoked.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if rc.config.Flags.Watch {
		return rc.watch(cmd.Context(), args)
	}
	return rc.runOnce(cmd.Context(), args)
}

func (rc *RunCommand) runOnce(ctx context.Context, targets []string) error {
	nodes, err := rc.resolver.Resolve(rc.config.GetTestPath(), targets)
	if err != nil {
		return err
	}

	result, err := rc.runner.Run(ctx, nodes)
	if err != nil {
		return err
	}

	if !rc.config.Flags.NoSave {
		if err := rc.saveMeta(targets, nodes, result); err != nil {
			return fmt.Errorf("failed to save run metadata: %w", err)
		}
	}

	if result.ExitCode != 0 {
		return fmt.Errorf("pytest exited with code %d", result.ExitCode)
	}
	return nil
}

// watch runs once, then re-resolves and re-runs on every change to .py files
// under the test root until interrupted. Run failures do not stop the loop.
func (rc *RunCommand) watch(ctx context.Context, targets []string) error {
	report := func(err error) {
		if err != nil {
			color.Red("✗ %v", err)
		} else {
			color.Green("✓ run passed")
		}
	}
	report(rc.runOnce(ctx, targets))

	var runMu sync.Mutex
	watcher, err := execution.NewWatcher(rc.config.PathsToIgnore, watchDebounce, func() {
		runMu.Lock()
		defer runMu.Unlock()
		color.Cyan("\nChange detected, re-running...")
		report(rc.runOnce(ctx, targets))
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Watch(rc.config.GetTestPath()); err != nil {
		return err
	}
	color.White("Watching %s for changes (Ctrl-C to stop)", rc.config.GetTestPath())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	return nil
}

func (rc *RunCommand) saveMeta(targets []string, nodes []domain.NodeID, result execution.RunResult) error {
	meta := &domain.RunMeta{
		RunID:           uuid.NewString(),
		Targets:         targets,
		Nodes:           domain.NodeStrings(nodes),
		ExitCode:        result.ExitCode,
		Success:         result.ExitCode == 0,
		Duration:        result.Duration.String(),
		DurationSeconds: result.Duration.Seconds(),
		ResultsDir:      rc.config.GetResultsDir(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	return rc.storage.SaveRun(meta)
}

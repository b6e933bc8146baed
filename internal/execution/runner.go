package execution

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"ptr/internal/config"
	"ptr/internal/domain"
)

// RunResult is the outcome of one delegation to the external runner.
type RunResult struct {
	Args     []string
	ExitCode int
	Duration time.Duration
}

// Runner shells out to pytest. It never interprets test output; stdout and
// stderr stream straight through to the caller's terminal, and reporting is
// left to the publisher that reads the results directory afterwards.
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// BuildArgs assembles the pytest argument list for the given node ids.
// With no nodes the whole suite under the test root runs (no node-id filter).
func (r *Runner) BuildArgs(nodes []domain.NodeID) []string {
	args := make([]string, 0, len(nodes)+2)
	if len(nodes) == 0 {
		args = append(args, r.config.GetTestPath())
	} else {
		args = append(args, domain.NodeStrings(nodes)...)
	}
	args = append(args, fmt.Sprintf("--alluredir=%s", r.config.GetResultsDir()))
	return args
}

// Run executes pytest with the given node ids and reports its exit code.
// A non-zero exit from pytest is a result, not an error; errors are reserved
// for failures to launch the runner at all.
func (r *Runner) Run(ctx context.Context, nodes []domain.NodeID) (RunResult, error) {
	args := r.BuildArgs(nodes)
	cmd := exec.CommandContext(ctx, r.config.PytestBin, args...)

	cmd.Env = os.Environ()
	cmd.Dir = r.config.ProjectPath
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	start := time.Now()
	err := cmd.Run()
	result := RunResult{Args: args, Duration: time.Since(start)}

	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return result, fmt.Errorf("run %s: %w", r.config.PytestBin, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}

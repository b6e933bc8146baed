package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// External collaborators
	PytestBin  string
	ResultsDir string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	TestPath    string
	ResultsDir  string
	NameFilter  string
	TestCases   bool
	Interactive bool
	Watch       bool
	NoSave      bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		PytestBin:      DefaultPytestBin,
		ResultsDir:     DefaultResultsDir,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// ApplyEnv loads the project's .env file (if present) and applies PTR_*
// overrides from the environment. Flags still win over both.
func (c *Config) ApplyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if v := os.Getenv("PTR_PYTEST_BIN"); v != "" {
		c.PytestBin = v
	}
	if v := os.Getenv("PTR_TEST_PATH"); v != "" {
		c.TestPath = v
	}
	if v := os.Getenv("PTR_RESULTS_DIR"); v != "" {
		c.ResultsDir = v
	}
}

// GetTestPath returns the test root, using the flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		// If TestPath is provided, make it relative to ProjectPath if it's not absolute
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}

	if filepath.IsAbs(c.TestPath) {
		return c.TestPath
	}
	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetResultsDir returns the directory pytest writes Allure results into.
// The report publisher reads the same well-known path after the run.
func (c *Config) GetResultsDir() string {
	dir := c.ResultsDir
	if c.Flags.ResultsDir != "" {
		dir = c.Flags.ResultsDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.ProjectPath, dir)
}

// GetOutputPath returns the full path to the last-run metadata file.
// Resolves to an absolute path so run and last always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

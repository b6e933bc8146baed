package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default test root, relative to the project
	DefaultTestPath = "tests"
	// DefaultPytestBin is the external test runner binary
	DefaultPytestBin = "pytest"
	// DefaultResultsDir is the directory the report publisher consumes
	DefaultResultsDir = "allure-results"
	// DefaultOutputJSONFile is the last-run metadata file name
	DefaultOutputJSONFile = "last-run.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for tests
var DefaultPathsToIgnore = []string{
	"__pycache__",
	"venv",
	"node_modules",
	"allure-results",
	"allure-report",
	"storage",
}

package domain

// RunMeta records one delegation to the external test runner.
type RunMeta struct {
	RunID           string   `json:"run_id"`
	Targets         []string `json:"targets"`
	Nodes           []string `json:"nodes"`
	ExitCode        int      `json:"exit_code"`
	Success         bool     `json:"success"`
	Duration        string   `json:"duration"`
	DurationSeconds float64  `json:"duration_seconds"`
	ResultsDir      string   `json:"results_dir"`
	Timestamp       string   `json:"timestamp"`
}

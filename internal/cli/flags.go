package cli

import "ptr/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		TestPath:    f.TestPath,
		ResultsDir:  f.ResultsDir,
		NameFilter:  f.NameFilter,
		TestCases:   f.TestCases,
		Interactive: f.Interactive,
		Watch:       f.Watch,
		NoSave:      f.NoSave,
	}
}

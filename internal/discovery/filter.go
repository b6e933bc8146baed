package discovery

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test files by a glob pattern matched against the base
// name, e.g. "test_api*" or "*demo*". A pattern without wildcards falls back
// to a plain substring match.
func (f *Filter) FilterByName(tests []string, pattern string) []string {
	if pattern == "" {
		return tests
	}

	if !strings.ContainsAny(pattern, "*?[") {
		var filtered []string
		for _, test := range tests {
			if strings.Contains(filepath.Base(test), pattern) {
				filtered = append(filtered, test)
			}
		}
		return filtered
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		// Unparseable pattern matches nothing
		return nil
	}

	var filtered []string
	for _, test := range tests {
		if g.Match(filepath.Base(test)) {
			filtered = append(filtered, test)
		}
	}
	return filtered
}

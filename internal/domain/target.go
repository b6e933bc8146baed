package domain

import "strings"

// NodeID addresses a test subset in the external runner's
// <file>[::<class>][::<function>] form.
type NodeID struct {
	File     string
	Class    string
	Function string
}

// String renders the identifier the way pytest expects it on the command line.
func (n NodeID) String() string {
	parts := []string{n.File}
	if n.Class != "" {
		parts = append(parts, n.Class)
	}
	if n.Function != "" {
		parts = append(parts, n.Function)
	}
	return strings.Join(parts, "::")
}

// NodeStrings renders a slice of node ids for handoff to the runner.
func NodeStrings(nodes []NodeID) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.String()
	}
	return out
}

package domain

// TestFunction is a test function declaration found in a test file.
// Class is the most recently seen class line above the definition. The
// tracking is textual, not scope-aware: a module-level function declared
// after a class still carries that class name. Known limitation, kept for
// compatibility with the node ids the runner historically received.
type TestFunction struct {
	Name  string
	Class string
}

// TestFile is the parsed inventory of a single test source file.
// Functions preserve declaration order.
type TestFile struct {
	Path      string
	Classes   []string
	Functions []TestFunction
}

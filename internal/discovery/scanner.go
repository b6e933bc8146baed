package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner scans for pytest source files in a directory tree.
//
// filepath.WalkDir visits entries in lexical order per directory, so both
// Scan and FindFile are deterministic for a fixed file-system snapshot.
// Duplicate names across files therefore always resolve to the lexically
// first file; documented limitation, not silently "fixed".
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all test files (test_*.py) under the given root, in walk order.
func (s *Scanner) Scan(root string) ([]string, error) {
	var testfiles []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if s.skip(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if IsTestFile(d.Name()) {
			testfiles = append(testfiles, path)
		}

		return nil
	})

	return testfiles, err
}

// FindFile searches the root recursively for a file whose name exactly
// equals name. Any file counts, not just test files, so targets like
// conftest.py stay addressable. The first match in walk order wins.
func (s *Scanner) FindFile(root, name string) (string, bool, error) {
	var found string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return "", false, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return "", false, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if s.skip(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() == name {
			found = path
			return filepath.SkipAll
		}

		return nil
	})
	if err != nil {
		return "", false, err
	}

	return found, found != "", nil
}

func (s *Scanner) skip(name string) bool {
	// Hidden directories (starting with .)
	if strings.HasPrefix(name, ".") && name != "." && name != ".." {
		return true
	}
	return s.skipDirs[name]
}

// IsTestFile reports whether a file name follows the test_*.py convention.
func IsTestFile(name string) bool {
	return strings.HasPrefix(name, "test_") && strings.HasSuffix(name, ".py")
}

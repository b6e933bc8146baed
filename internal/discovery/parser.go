package discovery

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"ptr/internal/domain"
)

// Parser extracts the class and function inventory from a test file.
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile scans a file line by line and collects class and function
// declarations. Class tracking is textual: each function is tagged with
// whatever class line was last seen above it in the file, regardless of
// indentation. See domain.TestFunction for why this is kept as-is.
func (p *Parser) ParseFile(path string) (*domain.TestFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open test file %s: %w", path, err)
	}
	defer f.Close()

	file := &domain.TestFile{Path: path}
	currentClass := ""

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if name, ok := classDecl(line); ok {
			file.Classes = append(file.Classes, name)
			currentClass = name
			continue
		}
		if name, ok := funcDecl(line); ok {
			file.Functions = append(file.Functions, domain.TestFunction{
				Name:  name,
				Class: currentClass,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read test file %s: %w", path, err)
	}

	return file, nil
}

// classDecl extracts the class name from a trimmed `class Name...` line.
// The full identifier is taken, so token matching against it is exact:
// token Foo never matches class Foo2.
func classDecl(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "class ")
	if !ok {
		return "", false
	}
	name := identPrefix(rest)
	if name == "" {
		return "", false
	}
	return name, true
}

// funcDecl extracts the function name from a trimmed `def name(` line.
// The opening parenthesis (optionally preceded by whitespace) is required,
// which keeps call sites and partial names like test_log vs test_login from
// matching.
func funcDecl(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "def ")
	if !ok {
		return "", false
	}
	name := identPrefix(rest)
	if name == "" {
		return "", false
	}
	rest = strings.TrimLeft(rest[len(name):], " \t")
	if !strings.HasPrefix(rest, "(") {
		return "", false
	}
	return name, true
}

// identPrefix returns the leading identifier of s (letters, digits,
// underscores; no leading digit).
func identPrefix(s string) string {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return ""
			}
		default:
			return s[:i]
		}
	}
	return s
}

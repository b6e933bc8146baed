package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "ptr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	path := filepath.Join(tmpDir, "test_demo.py")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestParser_ParseFile(t *testing.T) {
	parser := NewParser()

	content := `import pytest
from helpers import test_login  # call-site style mention, not a definition


def test_standalone():
    assert True


class TestDemo:
    def test_login(self):
        assert True

    def test_logout (self):
        assert True


def test_after_class():
    assert True


class TestDemo2:
    def test_other(self):
        assert True
`
	path := writeTestFile(t, content)

	tf, err := parser.ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("collects classes in order", func(t *testing.T) {
		want := []string{"TestDemo", "TestDemo2"}
		if len(tf.Classes) != len(want) {
			t.Fatalf("expected %d classes, got %d: %v", len(want), len(tf.Classes), tf.Classes)
		}
		for i, w := range want {
			if tf.Classes[i] != w {
				t.Errorf("class %d: expected %s, got %s", i, w, tf.Classes[i])
			}
		}
	})

	t.Run("collects functions with textual enclosing class", func(t *testing.T) {
		want := []struct{ name, class string }{
			{"test_standalone", ""},
			{"test_login", "TestDemo"},
			{"test_logout", "TestDemo"},
			// dedented back to module level, still tagged with TestDemo
			{"test_after_class", "TestDemo"},
			{"test_other", "TestDemo2"},
		}
		if len(tf.Functions) != len(want) {
			t.Fatalf("expected %d functions, got %d: %v", len(want), len(tf.Functions), tf.Functions)
		}
		for i, w := range want {
			if tf.Functions[i].Name != w.name || tf.Functions[i].Class != w.class {
				t.Errorf("function %d: expected %s/%s, got %s/%s",
					i, w.class, w.name, tf.Functions[i].Class, tf.Functions[i].Name)
			}
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.ParseFile("/non/existent/test_file.py")
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})
}

func TestParser_DeclarationMatching(t *testing.T) {
	parser := NewParser()

	content := `class Foo2:
    pass

class Foo(Base):
    def helper(self): pass

def not_a_def_line ():
    test_login(1, 2)

def broken_def
`
	path := writeTestFile(t, content)

	tf, err := parser.ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("class names are full identifiers", func(t *testing.T) {
		found := make(map[string]bool)
		for _, c := range tf.Classes {
			found[c] = true
		}
		if !found["Foo2"] || !found["Foo"] {
			t.Errorf("expected classes Foo2 and Foo, got %v", tf.Classes)
		}
		if len(tf.Classes) != 2 {
			t.Errorf("expected 2 classes, got %v", tf.Classes)
		}
	})

	t.Run("def requires the opening parenthesis", func(t *testing.T) {
		names := make(map[string]bool)
		for _, fn := range tf.Functions {
			names[fn.Name] = true
		}
		// whitespace before the paren is allowed
		if !names["not_a_def_line"] {
			t.Errorf("expected not_a_def_line to parse, got %v", tf.Functions)
		}
		// a def line with no parameter list is not a definition
		if names["broken_def"] {
			t.Errorf("broken_def should not parse, got %v", tf.Functions)
		}
		// call sites are not definitions
		if names["test_login"] {
			t.Errorf("call site test_login should not parse, got %v", tf.Functions)
		}
	})
}

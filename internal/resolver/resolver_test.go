package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ptr/internal/discovery"
)

// fixture lays out a small pytest tree:
//
//	tests/api/test_api_demo.py  class TestAPI2, test_api_call, test_dup
//	tests/conftest.py           plain file, no test_ prefix
//	tests/test_demo.py          class TestDemo, test_login/test_logout,
//	                            plus a dedented module-level function
//	tests/web/test_demo.py      duplicate file name
//	tests/web/test_web_demo.py  top-level test_standalone before class TestWeb
func fixture(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "ptr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	files := map[string]string{
		"tests/api/test_api_demo.py": `import pytest


class TestAPI2:
    def test_api_call(self):
        assert True

    def test_dup(self):
        assert True
`,
		"tests/conftest.py": `import pytest
`,
		"tests/test_demo.py": `import pytest


class TestDemo:
    def test_login(self):
        assert True

    def test_logout(self):
        assert True


def test_after_class():
    assert True
`,
		"tests/web/test_demo.py": `def test_duplicate_file_marker():
    assert True
`,
		"tests/web/test_web_demo.py": `def test_standalone():
    assert True


def test_dup():
    assert True


class TestWeb:
    def test_render(self):
        assert True
`,
	}
	for name, content := range files {
		fullPath := filepath.Join(tmpDir, name)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", name, err)
		}
	}

	return filepath.Join(tmpDir, "tests")
}

func newResolver() *Resolver {
	return New(discovery.NewScanner([]string{"__pycache__"}), discovery.NewParser())
}

func resolveOne(t *testing.T, root, token string) string {
	t.Helper()
	nodes, err := newResolver().Resolve(root, []string{token})
	if err != nil {
		t.Fatalf("unexpected error resolving %q: %v", token, err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node for %q, got %d", token, len(nodes))
	}
	return nodes[0].String()
}

func TestResolver_FileToken(t *testing.T) {
	root := fixture(t)

	t.Run("test file name yields bare path", func(t *testing.T) {
		got := resolveOne(t, root, "test_web_demo.py")
		want := filepath.Join(root, "web", "test_web_demo.py")
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("non-test file is still addressable", func(t *testing.T) {
		got := resolveOne(t, root, "conftest.py")
		want := filepath.Join(root, "conftest.py")
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("duplicate file name picks first in walk order", func(t *testing.T) {
		got := resolveOne(t, root, "test_demo.py")
		// tests/test_demo.py sorts before tests/web/test_demo.py
		want := filepath.Join(root, "test_demo.py")
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}

func TestResolver_ClassToken(t *testing.T) {
	root := fixture(t)

	t.Run("class name yields file::class", func(t *testing.T) {
		got := resolveOne(t, root, "TestDemo")
		want := filepath.Join(root, "test_demo.py") + "::TestDemo"
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("token is not a prefix match", func(t *testing.T) {
		// class TestAPI2 exists; token TestAPI must not resolve to it
		_, err := newResolver().Resolve(root, []string{"TestAPI"})
		var unresolved *UnresolvedTargetError
		if !errors.As(err, &unresolved) {
			t.Fatalf("expected UnresolvedTargetError, got %v", err)
		}
		if unresolved.Token != "TestAPI" {
			t.Errorf("expected token TestAPI in error, got %q", unresolved.Token)
		}
	})
}

func TestResolver_FunctionToken(t *testing.T) {
	root := fixture(t)

	t.Run("function in class yields file::class::function", func(t *testing.T) {
		got := resolveOne(t, root, "test_login")
		want := filepath.Join(root, "test_demo.py") + "::TestDemo::test_login"
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("top-level function has no class component", func(t *testing.T) {
		got := resolveOne(t, root, "test_standalone")
		want := filepath.Join(root, "web", "test_web_demo.py") + "::test_standalone"
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("token is not a prefix match", func(t *testing.T) {
		// def test_login exists; token test_log must not resolve to it
		_, err := newResolver().Resolve(root, []string{"test_log"})
		var unresolved *UnresolvedTargetError
		if !errors.As(err, &unresolved) {
			t.Fatalf("expected UnresolvedTargetError, got %v", err)
		}
	})

	t.Run("duplicate function name picks first file in walk order", func(t *testing.T) {
		// test_dup exists in api/test_api_demo.py and web/test_web_demo.py
		got := resolveOne(t, root, "test_dup")
		want := filepath.Join(root, "api", "test_api_demo.py") + "::TestAPI2::test_dup"
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}

// Class tracking is textual, not scope-aware: a module-level function
// declared after a class is still attributed to that class. This locks the
// historical behavior in; changing it changes the node ids the runner sees.
func TestResolver_DedentedFunctionKeepsLastClass(t *testing.T) {
	root := fixture(t)

	got := resolveOne(t, root, "test_after_class")
	want := filepath.Join(root, "test_demo.py") + "::TestDemo::test_after_class"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestResolver_Priority(t *testing.T) {
	root := fixture(t)

	// TestWeb is a class in web/test_web_demo.py; add a same-named top-level
	// function in the lexically earlier api file. The class step finishes
	// across all files before the function step starts, so the class wins.
	extra := filepath.Join(root, "api", "test_extra.py")
	content := "def TestWeb():\n    pass\n"
	if err := os.WriteFile(extra, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	got := resolveOne(t, root, "TestWeb")
	want := filepath.Join(root, "web", "test_web_demo.py") + "::TestWeb"
	if got != want {
		t.Errorf("expected class match %s, got %s", want, got)
	}
}

func TestResolver_FailFast(t *testing.T) {
	root := fixture(t)

	nodes, err := newResolver().Resolve(root, []string{"test_login", "no_such_target"})
	if nodes != nil {
		t.Errorf("expected no partial results, got %v", nodes)
	}
	var unresolved *UnresolvedTargetError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedTargetError, got %v", err)
	}
	if unresolved.Token != "no_such_target" {
		t.Errorf("expected failing token no_such_target, got %q", unresolved.Token)
	}
}

func TestResolver_MultipleTokensKeepInputOrder(t *testing.T) {
	root := fixture(t)

	nodes, err := newResolver().Resolve(root, []string{"test_standalone", "TestDemo", "conftest.py"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	want := []string{
		filepath.Join(root, "web", "test_web_demo.py") + "::test_standalone",
		filepath.Join(root, "test_demo.py") + "::TestDemo",
		filepath.Join(root, "conftest.py"),
	}
	for i, w := range want {
		if nodes[i].String() != w {
			t.Errorf("node %d: expected %s, got %s", i, w, nodes[i].String())
		}
	}
}

func TestResolver_Idempotent(t *testing.T) {
	root := fixture(t)

	first := resolveOne(t, root, "test_login")
	second := resolveOne(t, root, "test_login")
	if first != second {
		t.Errorf("resolution not idempotent: %s vs %s", first, second)
	}
}

func TestResolver_EmptyTokens(t *testing.T) {
	root := fixture(t)

	nodes, err := newResolver().Resolve(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nodes != nil {
		t.Errorf("expected no nodes for zero tokens, got %v", nodes)
	}
}

func TestResolver_MissingRoot(t *testing.T) {
	_, err := newResolver().Resolve("/non/existent/path", []string{"anything"})
	if err == nil {
		t.Error("expected error for non-existent root")
	}
}

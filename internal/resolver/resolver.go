package resolver

import (
	"fmt"

	"ptr/internal/discovery"
	"ptr/internal/domain"
)

// UnresolvedTargetError reports a target token that matched no file, class
// or function under the test root.
type UnresolvedTargetError struct {
	Token string
}

func (e *UnresolvedTargetError) Error() string {
	return fmt.Sprintf("unresolved target %q: no matching test file, class or function", e.Token)
}

// Resolver maps target tokens to runner node identifiers.
//
// A token's kind is inferred, never declared. Resolution tries, in order:
// an exact file name match anywhere under the root, then a class name in
// any test file, then a function name in any test file. Each step finishes
// across the whole ordered candidate list before the next starts, so a
// class in a later file still beats a function in an earlier one.
type Resolver struct {
	scanner *discovery.Scanner
	parser  *discovery.Parser
}

// New creates a Resolver on top of the given scanner and parser.
func New(scanner *discovery.Scanner, parser *discovery.Parser) *Resolver {
	return &Resolver{scanner: scanner, parser: parser}
}

// Resolve maps every token to exactly one node identifier, in input order.
// The first token that fails all three steps aborts the whole resolution
// with an UnresolvedTargetError; no partial results are returned.
func (r *Resolver) Resolve(root string, tokens []string) ([]domain.NodeID, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	files, err := r.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	// Each file is parsed at most once per Resolve call, shared across
	// tokens and steps.
	cache := make(map[string]*domain.TestFile, len(files))
	inventory := func(path string) (*domain.TestFile, error) {
		if tf, ok := cache[path]; ok {
			return tf, nil
		}
		tf, err := r.parser.ParseFile(path)
		if err != nil {
			return nil, err
		}
		cache[path] = tf
		return tf, nil
	}

	nodes := make([]domain.NodeID, 0, len(tokens))
	for _, token := range tokens {
		node, err := r.resolveToken(root, files, token, inventory)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (r *Resolver) resolveToken(root string, files []string, token string, inventory func(string) (*domain.TestFile, error)) (domain.NodeID, error) {
	// Step 1: exact file name, no class/function suffix.
	if path, ok, err := r.scanner.FindFile(root, token); err != nil {
		return domain.NodeID{}, err
	} else if ok {
		return domain.NodeID{File: path}, nil
	}

	// Step 2: class name, first file in walk order wins.
	for _, path := range files {
		tf, err := inventory(path)
		if err != nil {
			return domain.NodeID{}, err
		}
		for _, class := range tf.Classes {
			if class == token {
				return domain.NodeID{File: path, Class: token}, nil
			}
		}
	}

	// Step 3: function name, carrying the textually enclosing class (empty
	// for functions declared before any class line).
	for _, path := range files {
		tf, err := inventory(path)
		if err != nil {
			return domain.NodeID{}, err
		}
		for _, fn := range tf.Functions {
			if fn.Name == token {
				return domain.NodeID{File: path, Class: fn.Class, Function: token}, nil
			}
		}
	}

	return domain.NodeID{}, &UnresolvedTargetError{Token: token}
}

package tree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateID is returned when two siblings share an id.
	ErrDuplicateID = errors.New("duplicate sibling id")
	// ErrEmptyID is returned for a node without an id.
	ErrEmptyID = errors.New("empty node id")
)

// Node is one element of the displayed hierarchy.
type Node struct {
	ID       string
	Label    string
	Children []Node
}

// Leaf returns a node without children.
func Leaf(id, label string) Node {
	return Node{ID: id, Label: label}
}

// Branch returns a node with the given children.
func Branch(id, label string, children ...Node) Node {
	return Node{ID: id, Label: label, Children: children}
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// DisplayLabel is the label, or the id when no label was given.
func (n Node) DisplayLabel() string {
	if n.Label == "" {
		return n.ID
	}
	return n.Label
}

// validate checks every level of the forest for empty and duplicate ids.
func validate(nodes []Node, parent Path) error {
	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			return fmt.Errorf("%w under %s", ErrEmptyID, parent)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("%w %q under %s", ErrDuplicateID, n.ID, parent)
		}
		seen[n.ID] = struct{}{}
		if err := validate(n.Children, parent.Child(n.ID)); err != nil {
			return err
		}
	}
	return nil
}

// cloneNodes deep-copies a forest so the panel owns its tree outright.
func cloneNodes(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Node{ID: n.ID, Label: n.Label, Children: cloneNodes(n.Children)}
	}
	return out
}

// Path is the sequence of ids from a root to a node.
type Path []string

// Child returns a new path extended by id.
func (p Path) Child(id string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = id
	return out
}

// Parent returns the path without its last element. The parent of a root
// path is empty.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return append(Path(nil), p[:len(p)-1]...)
}

// Equal reports whether both paths name the same node.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// key is the map key used by the open set.
func (p Path) key() string {
	return strings.Join(p, "\x00")
}

func (p Path) String() string {
	if len(p) == 0 {
		return "<root>"
	}
	return strings.Join(p, "/")
}

// lookup finds the node at path.
func lookup(nodes []Node, path Path) (Node, bool) {
	if len(path) == 0 {
		return Node{}, false
	}
	for _, n := range nodes {
		if n.ID != path[0] {
			continue
		}
		if len(path) == 1 {
			return n, true
		}
		return lookup(n.Children, path[1:])
	}
	return Node{}, false
}

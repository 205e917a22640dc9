package tree

// Entry is one line of the flattened visible sequence.
type Entry struct {
	Path  Path
	Node  Node
	Depth int
}

// NavigationState is the mutable view state of the navigator: which nodes
// are expanded, which one is highlighted and where the viewport starts.
type NavigationState struct {
	open     map[string]Path
	selected Path
	offset   int
}

func newNavigationState() NavigationState {
	return NavigationState{open: make(map[string]Path)}
}

// IsOpen reports whether path is expanded.
func (s NavigationState) IsOpen(path Path) bool {
	_, ok := s.open[path.key()]
	return ok
}

// Open returns the expanded paths in no particular order.
func (s NavigationState) Open() []Path {
	out := make([]Path, 0, len(s.open))
	for _, p := range s.open {
		out = append(out, append(Path(nil), p...))
	}
	return out
}

// Selected returns a copy of the selected path; empty when nothing is selected.
func (s NavigationState) Selected() Path {
	return append(Path(nil), s.selected...)
}

// Offset returns the scroll offset into the visible sequence.
func (s NavigationState) Offset() int {
	return s.offset
}

// flatten walks the forest depth-first in declared order. Children are
// visited only when their parent's path is open.
func flatten(nodes []Node, open map[string]Path) []Entry {
	var out []Entry
	var walk func(nodes []Node, parent Path, depth int)
	walk = func(nodes []Node, parent Path, depth int) {
		for _, n := range nodes {
			path := parent.Child(n.ID)
			out = append(out, Entry{Path: path, Node: n, Depth: depth})
			if _, ok := open[path.key()]; ok && !n.IsLeaf() {
				walk(n.Children, path, depth+1)
			}
		}
	}
	walk(nodes, nil, 0)
	return out
}

// indexOf returns the position of path in entries, or -1.
func indexOf(entries []Entry, path Path) int {
	if len(path) == 0 {
		return -1
	}
	for i, e := range entries {
		if e.Path.Equal(path) {
			return i
		}
	}
	return -1
}

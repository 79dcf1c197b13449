package layout

// Visitor is called for every node during Walk. Returning false skips the
// node's children.
type Visitor func(node Layoutable, depth int) bool

// Walk visits root and its descendants depth-first in child order.
func Walk(root Layoutable, visit Visitor) {
	walk(root, 0, visit)
}

func walk(node Layoutable, depth int, visit Visitor) {
	if node == nil {
		return
	}
	if !visit(node, depth) {
		return
	}
	parent, ok := node.(Parent)
	if !ok {
		return
	}
	for _, child := range parent.LayoutChildren() {
		walk(child, depth+1, visit)
	}
}

// Compact returns children without nil entries. The input is not modified.
func Compact(children ...Layoutable) []Layoutable {
	out := make([]Layoutable, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

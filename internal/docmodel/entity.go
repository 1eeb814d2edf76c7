// Package docmodel holds the documentation entity tree built for one
// generated document: Package → Module → Class → Function, each node
// carrying its normalized docstring lines, Markdown anchor, and table of
// contents number.
package docmodel

// Kind discriminates the entity variants sharing the Node shape.
type Kind int

const (
	KindPackage Kind = iota
	KindModule
	KindClass
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindPackage:
		return "package"
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	}
	return "unknown"
}

// Node is a recursive documentation entity. Children keep discovery order:
// classes in source order within a module, functions in source order within
// a class or module.
type Node struct {
	Kind   Kind
	Name   string
	Lines  []string // normalized docstring lines (empty when no docstring)
	Anchor string   // set by Annotate
	Number string   // set by Annotate

	// Signature is the extracted `def` header for function nodes, e.g.
	// "f(self, x: int) -> str". Empty for other kinds.
	Signature string

	Children []*Node
}

// NewNode builds a node of the given kind with its docstring already
// normalized.
func NewNode(kind Kind, name, docstring string) *Node {
	return &Node{
		Kind:  kind,
		Name:  name,
		Lines: Normalize(name, docstring),
	}
}

// Add appends a child in discovery order and returns it.
func (n *Node) Add(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// FirstLine returns the summary line of the docstring, or "" when the
// entity has none.
func (n *Node) FirstLine() string {
	if len(n.Lines) == 0 {
		return ""
	}
	return n.Lines[0]
}

package schema

// Node is one element of a schema tree.
type Node struct {
	// Name identifies the node among its siblings.
	Name string
	// Kind is the semantic tag checked first during adapter lookup. It may
	// be empty.
	Kind Kind
	// Type is the concrete type implementation, used as the fallback key.
	Type Type
	// Children are ordered. Sequences have exactly one child.
	Children []*Node
	// Required is true when no default or missing value is configured.
	Required bool
	// MissingDrop is true when an absent value is dropped instead of
	// defaulted.
	MissingDrop bool
	// Validator is an optional constraint.
	Validator Validator

	Title       string
	Description string
}

// Optional marks the node as not required.
func (n *Node) Optional() *Node {
	n.Required = false
	return n
}

// Drop marks the node as dropped when missing. A dropped node is also not
// required.
func (n *Node) Drop() *Node {
	n.MissingDrop = true
	n.Required = false
	return n
}

// Validate attaches v, replacing any previous validator.
func (n *Node) Validate(v Validator) *Node {
	n.Validator = v
	return n
}

// As sets the semantic kind tag.
func (n *Node) As(k Kind) *Node {
	n.Kind = k
	return n
}

// Describe sets the title and description.
func (n *Node) Describe(title, description string) *Node {
	n.Title = title
	n.Description = description
	return n
}

// Child returns the first child named name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c != nil && c.Name == name {
			return c
		}
	}
	return nil
}

// TypeName returns the name of the node's Type, or "" when unset.
func (n *Node) TypeName() string {
	if n.Type == nil {
		return ""
	}
	return n.Type.TypeName()
}

// Walk visits n and its descendants depth-first in child order. It stops
// descending into a node when fn returns false.
func (n *Node) Walk(fn func(path []string, node *Node) bool) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []string, fn func([]string, *Node) bool) {
	if n == nil {
		return
	}
	if !fn(path, n) {
		return
	}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		c.walk(append(append([]string(nil), path...), c.Name), fn)
	}
}

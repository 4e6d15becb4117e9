// Package scene builds the depth-ordered layer list that the animator and
// the projection widget operate on. A scene is a tree of nodes; the root's
// direct children become layers when they carry a depth annotation, and
// their descendants become child elements that inherit depth from the
// nearest annotated ancestor.
package scene

// Node is one element of a scene tree.
type Node struct {
	// ID identifies the node. Layers require one; it must be unique.
	ID string `yaml:"id,omitempty"`

	// Tags are annotation tokens. A depth annotation is a tag consisting
	// of the configured prefix followed by an optionally signed integer,
	// e.g. "depth-40".
	Tags []string `yaml:"tags,omitempty"`

	// Content is the text rendered for this node.
	Content string `yaml:"content,omitempty"`

	Children []*Node `yaml:"children,omitempty"`
}

// Tag reports whether the node carries the given annotation token.
func (n *Node) Tag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

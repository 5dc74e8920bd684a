package syntax

import "strings"

// Element is either a *Node or a *Leaf, interleaved in source order as
// the children of a Node. It is the Go analogue of rowan's
// NodeOrToken: a child slot that may hold a subtree or a single token.
type Element interface {
	elementKind() Kind
	elementText() string
}

// Leaf is a token attached to the tree: it owns the exact source text
// it consumed.
type Leaf struct {
	Kind Kind
	Text string
}

func (t *Leaf) elementKind() Kind   { return t.Kind }
func (t *Leaf) elementText() string { return t.Text }

// Node is an internal tree node carrying a Kind and its ordered
// children (nodes and tokens interleaved, trivia included anywhere a
// child may appear). Trees are immutable once built.
type Node struct {
	Kind     Kind
	Children []Element
}

func (n *Node) elementKind() Kind   { return n.Kind }
func (n *Node) elementText() string { return n.Text() }

// Text concatenates the text of every descendant leaf in depth-first
// order, reproducing the exact source span this node covers.
func (n *Node) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	for _, c := range n.Children {
		switch v := c.(type) {
		case *Leaf:
			b.WriteString(v.Text)
		case *Node:
			v.writeText(b)
		}
	}
}

// ChildNodes returns the direct node children, in source order,
// skipping tokens.
func (n *Node) ChildNodes() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if nd, ok := c.(*Node); ok {
			out = append(out, nd)
		}
	}
	return out
}

// Descendants performs a depth-first, pre-order walk of every element
// (nodes and tokens) under n, including n's own children but not n
// itself, invoking visit for each.
func (n *Node) Descendants(visit func(Element)) {
	for _, c := range n.Children {
		visit(c)
		if nd, ok := c.(*Node); ok {
			nd.Descendants(visit)
		}
	}
}

// ContainsKind reports whether any descendant token has the given
// kind. Used by the formatter to decide whether an attribute's value
// spans more than one line (which breaks its alignment group).
func (n *Node) ContainsKind(k Kind) bool {
	found := false
	n.Descendants(func(e Element) {
		if found {
			return
		}
		if leaf, ok := e.(*Leaf); ok && leaf.Kind == k {
			found = true
		}
	})
	return found
}

// DirectlyContainsKind reports whether any direct child token (not
// recursing into subnodes) has the given kind.
func (n *Node) DirectlyContainsKind(k Kind) bool {
	for _, c := range n.Children {
		if leaf, ok := c.(*Leaf); ok && leaf.Kind == k {
			return true
		}
	}
	return false
}

// Checkpoint is an opaque mark on a Builder's in-progress node stack,
// captured between two children, to which a later StartNodeAt call can
// retroactively introduce a new parent wrapping everything attached
// since the mark. This is how left-associative constructs (binary
// expressions, postfix chains) are built without ever mutating
// already-emitted nodes: the operand is parsed first, and only once an
// operator is discovered does the parser decide to wrap it.
type Checkpoint struct {
	frame int // index into Builder.stack identifying which open frame
	index int // position within that frame's children at checkpoint time
}

// frame is one currently-open node during construction: its kind and
// the children attached to it so far.
type frame struct {
	kind     Kind
	children []Element
}

// Builder incrementally constructs a Node tree. It exposes the
// primitives the parser drives: starting and finishing nodes,
// attaching leaf tokens, and the checkpoint/start-node-at pair used
// for left-associative wrapping.
type Builder struct {
	stack []frame
	root  *Node
}

// NewBuilder returns an empty Builder ready to build a single root
// tree.
func NewBuilder() *Builder {
	return &Builder{}
}

// StartNode pushes a new open node of the given kind.
func (b *Builder) StartNode(kind Kind) {
	b.stack = append(b.stack, frame{kind: kind})
}

// FinishNode closes the top-most open node, attaching it as a child of
// whichever node is now on top of the stack (or recording it as the
// tree root if the stack becomes empty).
func (b *Builder) FinishNode() {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	node := &Node{Kind: top.kind, Children: top.children}
	if len(b.stack) == 0 {
		b.root = node
		return
	}
	parent := &b.stack[len(b.stack)-1]
	parent.children = append(parent.children, node)
}

// Token attaches a leaf to whichever node is currently open.
func (b *Builder) Token(kind Kind, text string) {
	parent := &b.stack[len(b.stack)-1]
	parent.children = append(parent.children, &Leaf{Kind: kind, Text: text})
}

// Checkpoint captures the current position, between children, of the
// currently open node.
func (b *Builder) Checkpoint() Checkpoint {
	top := len(b.stack) - 1
	return Checkpoint{frame: top, index: len(b.stack[top].children)}
}

// StartNodeAt opens a new node of the given kind whose first child is
// everything attached to the checkpointed frame since the checkpoint
// was taken; those children are moved under the new node, and the new
// node takes their place. Everything attached after the checkpoint but
// before this call becomes the new node's leading children.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	f := &b.stack[cp.frame]
	wrapped := append([]Element(nil), f.children[cp.index:]...)
	f.children = f.children[:cp.index]
	// Push a new frame seeded with the wrapped children, at the same
	// stack depth that a plain StartNode would occupy relative to cp's
	// frame: since cp.frame is always the top frame when this is
	// called (checkpoints are only meaningful for the currently open
	// node), the new frame goes on top of the stack.
	b.stack = append(b.stack, frame{kind: kind, children: wrapped})
}

// Finish returns the completed root node. Valid only after the
// matching sequence of StartNode/FinishNode calls has closed every
// open frame.
func (b *Builder) Finish() *Node {
	return b.root
}

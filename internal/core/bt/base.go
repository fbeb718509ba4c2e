package bt

// Ownership bookkeeping shared by every engine node.

// owned is implemented by engine nodes so composites can reject a node that
// already belongs to another parent. Foreign Node implementations are
// accepted as-is.
type owned interface {
	owner() Node
	setOwner(parent Node)
}

type link struct{ parent Node }

func (l *link) owner() Node          { return l.parent }
func (l *link) setOwner(parent Node) { l.parent = parent }

// treeAnchor stands in as the owner of a Tree's Root.
type treeAnchor struct{}

func (*treeAnchor) Run() bool { return false }

var anchor = &treeAnchor{}

// adopt checks that child may be attached below parent and records the new owner.
func adopt(parent, child Node) error {
	if child == nil || isNilNode(child) {
		return ErrNilChild
	}
	if child == parent {
		return ErrCycle
	}
	o, ok := child.(owned)
	if !ok {
		return nil
	}
	if o.owner() != nil {
		return ErrAlreadyOwned
	}
	// child must not be an ancestor of parent
	for n := parent; n != nil; {
		if n == child {
			return ErrCycle
		}
		up, ok := n.(owned)
		if !ok {
			break
		}
		n = up.owner()
	}
	o.setOwner(parent)
	return nil
}

// isNilNode catches typed nil engine nodes, which would panic on their
// embedded link.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *Action:
		return v == nil
	case *Selector:
		return v == nil
	case *RandomSelector:
		return v == nil
	case *Sequence:
		return v == nil
	case *Root:
		return v == nil
	default:
		return false
	}
}

// composite is the ordered, exclusively-owned child list embedded by
// Selector, Sequence and RandomSelector.
type composite struct {
	link
	self     Node
	children []Node
}

func (c *composite) AddChild(child Node) error {
	if err := adopt(c.self, child); err != nil {
		return err
	}
	c.children = append(c.children, child)
	return nil
}

func (c *composite) AddChildren(children ...Node) error {
	for _, child := range children {
		if err := c.AddChild(child); err != nil {
			return err
		}
	}
	return nil
}

func (c *composite) Children() []Node {
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

func (c *composite) shuffle(r Rand) {
	r.Shuffle(len(c.children), func(i, j int) {
		c.children[i], c.children[j] = c.children[j], c.children[i]
	})
}

package bt

// Root owns at most one child and is itself owned by a Tree.
type Root struct {
	link
	child Node
}

func (r *Root) Child() Node { return r.child }

func (r *Root) Run() bool {
	if r.child == nil {
		return false
	}
	return r.child.Run()
}

// Tree is the handle a host keeps and ticks.
type Tree struct {
	root *Root
	name string
}

func NewTree(name string) *Tree {
	root := &Root{}
	root.setOwner(anchor)
	return &Tree{root: root, name: name}
}

func (t *Tree) Name() string        { return t.name }
func (t *Tree) SetName(name string) { t.name = name }
func (t *Tree) Root() *Root         { return t.root }

// SetRootChild installs the root's child. It may only be called once.
func (t *Tree) SetRootChild(child Node) error {
	if t.root.child != nil {
		return ErrRootAlreadySet
	}
	if err := adopt(t.root, child); err != nil {
		return err
	}
	t.root.child = child
	return nil
}

// Run evaluates the whole tree once, typically once per simulation tick.
func (t *Tree) Run() bool {
	return t.root.Run()
}

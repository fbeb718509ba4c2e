package bt

// Node is a single element of a behavior tree.
type Node interface {
	// Run evaluates the node once and reports success. Nodes never signal
	// failure through panics or errors.
	Run() bool
}

// NodeFunc adapts a plain function to Node.
type NodeFunc func() bool

func (f NodeFunc) Run() bool { return f() }

// Composite is implemented by nodes that own an ordered list of children.
type Composite interface {
	Node

	// AddChild appends child and takes ownership of it.
	AddChild(child Node) error

	// AddChildren appends children in order.
	AddChildren(children ...Node) error

	// Children returns a snapshot of the children in their current order.
	Children() []Node
}

// Oracle supplies the branch signal a Selector dispatches on. It is owned by
// the host application, never by the tree.
type Oracle interface {
	Decide() int
}

// OracleFunc adapts a plain function to Oracle.
type OracleFunc func() int

func (f OracleFunc) Decide() int { return f() }

// Rand is the random source shared by Action sampling and RandomSelector
// shuffling. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

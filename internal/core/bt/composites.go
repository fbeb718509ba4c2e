package bt

// Composite nodes: Selector, RandomSelector, Sequence

var (
	_ Composite = (*Selector)(nil)
	_ Composite = (*RandomSelector)(nil)
	_ Composite = (*Sequence)(nil)
)

// Selector dispatches to exactly one of two or three children, picked by the
// oracle signal. It reports success whenever it has 0, 2 or 3 children,
// whatever the dispatched child returns, and failure for any other count.
type Selector struct {
	composite
	id       int
	name     string
	oracle   Oracle
	observer Observer
}

func NewSelector(id int, name string, oracle Oracle, opts ...Option) *Selector {
	o := newOptions(opts)
	s := &Selector{id: id, name: name, oracle: oracle, observer: o.observer}
	s.self = s
	return s
}

func (s *Selector) ID() int        { return s.id }
func (s *Selector) Name() string   { return s.name }
func (s *Selector) Oracle() Oracle { return s.oracle }

func (s *Selector) Run() bool {
	s.observer.Observe(Notice{Kind: NoticeSelect, ID: s.id, Name: s.name})

	signal := 0
	if s.oracle != nil {
		signal = s.oracle.Decide()
	}

	switch len(s.children) {
	case 0:
		return true
	case 2:
		if signal == 0 {
			s.children[0].Run()
		} else {
			s.children[1].Run()
		}
		return true
	case 3:
		switch signal {
		case 0:
			s.children[0].Run()
		case 1:
			s.children[1].Run()
		default:
			s.children[2].Run()
		}
		return true
	default:
		return false
	}
}

// RandomSelector shuffles its children in place, then runs them until one
// succeeds. The new order persists into later calls.
type RandomSelector struct {
	composite
	id   int
	rand Rand
}

func NewRandomSelector(opts ...Option) *RandomSelector {
	o := newOptions(opts)
	r := &RandomSelector{rand: o.rand}
	r.self = r
	return r
}

// SetID tags the node with the id it was declared with. It has no effect on evaluation.
func (r *RandomSelector) SetID(id int) { r.id = id }
func (r *RandomSelector) ID() int      { return r.id }

func (r *RandomSelector) Run() bool {
	r.shuffle(r.rand)
	for _, child := range r.children {
		if child.Run() {
			return true
		}
	}
	return false
}

// Sequence runs children in insertion order and stops at the first failure.
type Sequence struct {
	composite
	id int
}

func NewSequence(id int) *Sequence {
	s := &Sequence{id: id}
	s.self = s
	return s
}

func (s *Sequence) ID() int { return s.id }

func (s *Sequence) Run() bool {
	for _, child := range s.children {
		if !child.Run() {
			return false
		}
	}
	return true
}

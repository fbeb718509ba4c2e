package bt

// recorder collects the order in which probe nodes run.
type recorder struct {
	calls []string
}

func (r *recorder) node(name string, result bool) *probe {
	return &probe{name: name, result: result, rec: r}
}

type probe struct {
	name   string
	result bool
	rec    *recorder
}

func (p *probe) Run() bool {
	p.rec.calls = append(p.rec.calls, p.name)
	return p.result
}

// notices collects observer output.
type notices struct {
	got []Notice
}

func (n *notices) Observe(x Notice) { n.got = append(n.got, x) }

// constRand always samples the same value and never reorders.
type constRand float64

func (c constRand) Float64() float64          { return float64(c) }
func (constRand) Shuffle(int, func(i, j int)) {}

// reverseRand reverses on every shuffle so order changes are predictable.
type reverseRand struct{}

func (reverseRand) Float64() float64 { return 0 }
func (reverseRand) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

package bt

import "math"

var _ Node = (*Action)(nil)

// Action is a leaf that succeeds with a fixed probability.
type Action struct {
	link
	id          int
	description string
	probability float64
	rand        Rand
	observer    Observer
}

// NewAction creates an Action. probability is clamped to [0,1]; NaN counts as 0.
func NewAction(id int, description string, probability float64, opts ...Option) *Action {
	o := newOptions(opts)
	return &Action{
		id:          id,
		description: description,
		probability: clampProbability(probability),
		rand:        o.rand,
		observer:    o.observer,
	}
}

func (a *Action) ID() int              { return a.id }
func (a *Action) Description() string  { return a.description }
func (a *Action) Probability() float64 { return a.probability }

func (a *Action) Run() bool {
	if a.rand.Float64() < a.probability {
		a.observer.Observe(Notice{Kind: NoticeActionSuccess, ID: a.id, Name: a.description})
		return true
	}
	a.observer.Observe(Notice{Kind: NoticeActionFailure, ID: a.id, Name: a.description})
	return false
}

func clampProbability(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

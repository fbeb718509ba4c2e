package bt

// NoticeKind tells what a node reported.
type NoticeKind uint8

const (
	NoticeSelect NoticeKind = iota
	NoticeActionSuccess
	NoticeActionFailure
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSelect:
		return "select"
	case NoticeActionSuccess:
		return "succeeded"
	case NoticeActionFailure:
		return "failed"
	default:
		return "unknown"
	}
}

// Notice is emitted by Selector before it dispatches and by Action after it samples.
type Notice struct {
	Kind NoticeKind `json:"kind"`
	ID   int        `json:"id"`
	Name string     `json:"name"`
}

// Observer receives notices synchronously from the goroutine running the tree.
type Observer interface {
	Observe(n Notice)
}

type ObserverFunc func(n Notice)

func (f ObserverFunc) Observe(n Notice) { f(n) }

// MultiObserver fans a notice out to every observer in order.
type MultiObserver []Observer

func (m MultiObserver) Observe(n Notice) {
	for _, o := range m {
		if o != nil {
			o.Observe(n)
		}
	}
}

type nopObserver struct{}

func (nopObserver) Observe(Notice) {}

// Option configures the collaborators a node is constructed with.
type Option func(*options)

type options struct {
	observer Observer
	rand     Rand
}

// WithObserver sets the observer notices are reported to.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

// WithRand sets the random source. Without it nodes share DefaultRand.
func WithRand(r Rand) Option {
	return func(opts *options) {
		if r != nil {
			opts.rand = r
		}
	}
}

func newOptions(opts []Option) options {
	o := options{observer: nopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = DefaultRand()
	}
	return o
}

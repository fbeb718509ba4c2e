// Package metrics exports behavior-tree activity as Prometheus counters.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zeusync/btree/internal/core/bt"
)

const namespace = "btree"

// Recorder is a bt.Observer that counts notices and tick results.
type Recorder struct {
	notices *prometheus.CounterVec
	ticks   *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors on reg. A nil reg
// leaves the collectors unregistered.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		notices: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notices_total",
				Help:      "Notices emitted by tree nodes, by kind and node name.",
			},
			[]string{"kind", "name"},
		),
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ticks_total",
				Help:      "Tree evaluations, by tree and result.",
			},
			[]string{"tree", "result"},
		),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{r.notices, r.ticks} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func (r *Recorder) Observe(n bt.Notice) {
	r.notices.WithLabelValues(n.Kind.String(), n.Name).Inc()
}

// ObserveTick matches systems.TickFunc.
func (r *Recorder) ObserveTick(tree string, _ uint64, result bool) {
	r.ticks.WithLabelValues(tree, strconv.FormatBool(result)).Inc()
}

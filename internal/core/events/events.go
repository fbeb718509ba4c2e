// Package events bridges behavior-tree notices and tick results onto the
// in-process bus so transports can stream them.
package events

import (
	"time"

	"github.com/zeusync/btree/internal/core/bt"
	"github.com/zeusync/btree/internal/core/events/bus"
	"github.com/zeusync/btree/internal/core/observability/log"
)

const (
	TypeNotice = "bt.notice"
	TypeTick   = "bt.tick"
)

// Tick is the payload published after every tree evaluation.
type Tick struct {
	Tree   string    `json:"tree"`
	Seq    uint64    `json:"seq"`
	Result bool      `json:"result"`
	At     time.Time `json:"at"`
}

// BusObserver publishes every notice it observes as a TypeNotice event.
type BusObserver struct {
	bus    bus.EventBus
	source string
	logger log.Log
}

func NewBusObserver(b bus.EventBus, source string, logger log.Log) *BusObserver {
	if logger == nil {
		logger = log.Nop()
	}
	return &BusObserver{bus: b, source: source, logger: logger}
}

func (o *BusObserver) Observe(n bt.Notice) {
	o.publish(bus.NewEvent(TypeNotice, o.source, n))
}

// PublishTick reports a finished tick.
func (o *BusObserver) PublishTick(t Tick) {
	if t.At.IsZero() {
		t.At = time.Now()
	}
	o.publish(bus.NewEvent(TypeTick, o.source, t))
}

// Handler errors never reach the tree; Run has no error channel.
func (o *BusObserver) publish(e bus.Event) {
	if err := o.bus.Publish(e); err != nil {
		o.logger.Warn("event delivery failed", log.String("type", e.Type()), log.Error(err))
	}
}

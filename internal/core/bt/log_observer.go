package bt

import "github.com/zeusync/btree/internal/core/observability/log"

// LogObserver writes notices to a structured logger: selector entries at
// debug, action outcomes at info.
type LogObserver struct {
	logger log.Log
}

func NewLogObserver(logger log.Log) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Observe(n Notice) {
	switch n.Kind {
	case NoticeSelect:
		o.logger.Debug("selector", log.Int("id", n.ID), log.String("name", n.Name))
	default:
		o.logger.Info("action "+n.Kind.String(), log.Int("id", n.ID), log.String("name", n.Name))
	}
}

package injector

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zeusync/btree/internal/config"
	"github.com/zeusync/btree/internal/core/bt"
	"github.com/zeusync/btree/internal/core/events"
	"github.com/zeusync/btree/internal/core/events/bus"
	"github.com/zeusync/btree/internal/core/observability/log"
	"github.com/zeusync/btree/internal/core/observability/metrics"
	"github.com/zeusync/btree/internal/core/systems"
	"github.com/zeusync/btree/internal/core/systems/physics"
	"github.com/zeusync/btree/internal/server"
)

// Runtime is everything a host needs to tick one tree and optionally serve it.
type Runtime struct {
	Logger   log.Log
	Tree     *bt.Tree
	Lattice  *physics.Lattice
	Loop     *systems.Loop
	System   *systems.TreeSystem
	Registry *prometheus.Registry
	Server   *server.Server
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideRand,
	ProvideLattice,
	bus.New,
	prometheus.NewRegistry,
	ProvideRecorder,
	ProvideBusObserver,
	ProvideObserver,
	ProvideBuilder,
	ProvideTree,
	ProvideTreeSystem,
	ProvideLoop,
	ProvideServer,
	wire.Struct(new(Runtime), "*"),
)

func ProvideLogger(cfg config.Config) log.Log {
	return log.New(cfg.Level())
}

// ProvideRand seeds the shared source from cfg. Seed 0 uses the process-wide
// time-seeded source.
func ProvideRand(cfg config.Config) *bt.LockedRand {
	if cfg.Seed == 0 {
		return bt.DefaultRand()
	}
	return bt.NewRand(cfg.Seed)
}

func ProvideLattice(cfg config.Config, r *bt.LockedRand) (*physics.Lattice, error) {
	return physics.NewLattice(cfg.Lattice.Cols, cfg.Lattice.Rows, r)
}

func ProvideRecorder(reg *prometheus.Registry) (*metrics.Recorder, error) {
	return metrics.New(reg)
}

func ProvideBusObserver(b bus.EventBus, spec *bt.TreeSpec, logger log.Log) *events.BusObserver {
	return events.NewBusObserver(b, spec.Title, logger)
}

func ProvideObserver(logger log.Log, rec *metrics.Recorder, bo *events.BusObserver) bt.Observer {
	return bt.MultiObserver{bt.NewLogObserver(logger), rec, bo}
}

func ProvideBuilder(lattice *physics.Lattice, obs bt.Observer, r *bt.LockedRand) *bt.Builder {
	return bt.NewBuilder(lattice, bt.WithObserver(obs), bt.WithRand(r))
}

func ProvideTree(b *bt.Builder, spec *bt.TreeSpec) (*bt.Tree, error) {
	return b.BuildTree(spec)
}

func ProvideTreeSystem(tree *bt.Tree, rec *metrics.Recorder, bo *events.BusObserver) *systems.TreeSystem {
	return systems.NewTreeSystem(tree, func(name string, seq uint64, result bool) {
		rec.ObserveTick(name, seq, result)
		bo.PublishTick(events.Tick{Tree: name, Seq: seq, Result: result})
	})
}

// ProvideLoop integrates the lattice before the tree consults it.
func ProvideLoop(cfg config.Config, logger log.Log, lattice *physics.Lattice, ts *systems.TreeSystem) *systems.Loop {
	return systems.NewLoop(cfg.Interval, logger, lattice, ts)
}

func ProvideServer(cfg config.Config, tree *bt.Tree, b bus.EventBus, reg *prometheus.Registry, logger log.Log) (*server.Server, error) {
	sc := server.DefaultServerConfig()
	sc.ListenAddr = cfg.Listen
	return server.New(sc, tree, b, reg, logger)
}

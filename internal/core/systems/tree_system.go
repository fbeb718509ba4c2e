package systems

import (
	"sync/atomic"

	"github.com/zeusync/btree/internal/core/bt"
)

// TickFunc is called after every evaluation with the 1-based tick number.
type TickFunc func(tree string, seq uint64, result bool)

// TreeSystem evaluates a behavior tree once per update.
type TreeSystem struct {
	tree   *bt.Tree
	onTick TickFunc

	runs      atomic.Uint64
	successes atomic.Uint64
	last      atomic.Bool
}

func NewTreeSystem(tree *bt.Tree, onTick TickFunc) *TreeSystem {
	return &TreeSystem{tree: tree, onTick: onTick}
}

func (s *TreeSystem) Name() string   { return s.tree.Name() }
func (s *TreeSystem) Tree() *bt.Tree { return s.tree }

func (s *TreeSystem) Update(float64) error {
	result := s.tree.Run()
	seq := s.runs.Add(1)
	if result {
		s.successes.Add(1)
	}
	s.last.Store(result)
	if s.onTick != nil {
		s.onTick(s.tree.Name(), seq, result)
	}
	return nil
}

func (s *TreeSystem) Runs() uint64      { return s.runs.Load() }
func (s *TreeSystem) Successes() uint64 { return s.successes.Load() }
func (s *TreeSystem) Last() bool        { return s.last.Load() }

package bt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionThresholds(t *testing.T) {
	src := NewRand(7)
	always := NewAction(1, "always", 1.0, WithRand(src))
	never := NewAction(2, "never", 0.0, WithRand(src))

	for i := 0; i < 1000; i++ {
		require.True(t, always.Run())
		require.False(t, never.Run())
	}
}

func TestActionStrictlyLess(t *testing.T) {
	a := NewAction(1, "edge", 0.5, WithRand(constRand(0.5)))
	assert.False(t, a.Run())

	b := NewAction(1, "edge", 0.5, WithRand(constRand(0.4999)))
	assert.True(t, b.Run())
}

func TestActionNotices(t *testing.T) {
	seen := &notices{}
	ok := NewAction(3, "MakeCoffee", 1, WithRand(constRand(0)), WithObserver(seen))
	bad := NewAction(4, "ToastBread", 0, WithRand(constRand(0)), WithObserver(seen))

	ok.Run()
	bad.Run()

	assert.Equal(t, []Notice{
		{Kind: NoticeActionSuccess, ID: 3, Name: "MakeCoffee"},
		{Kind: NoticeActionFailure, ID: 4, Name: "ToastBread"},
	}, seen.got)
}

func TestActionClampsProbability(t *testing.T) {
	assert.Equal(t, 1.0, NewAction(0, "", 3).Probability())
	assert.Equal(t, 0.0, NewAction(0, "", -1).Probability())
	assert.Equal(t, 0.0, NewAction(0, "", math.NaN()).Probability())
	assert.Equal(t, 0.25, NewAction(0, "", 0.25).Probability())
}

func TestActionSampleRate(t *testing.T) {
	a := NewAction(1, "coin", 0.3, WithRand(NewRand(11)))
	hits := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if a.Run() {
			hits++
		}
	}
	assert.InDelta(t, 0.3, float64(hits)/n, 0.02)
}

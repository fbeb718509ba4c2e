package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCancelsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := Run(context.Background(),
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
		func(context.Context) error { return boom },
	)
	assert.ErrorIs(t, err, boom)
}

func TestRunAllSucceed(t *testing.T) {
	var n atomic.Int32
	fn := func(context.Context) error { n.Add(1); return nil }
	require.NoError(t, Run(context.Background(), fn, fn, fn))
	assert.Equal(t, int32(3), n.Load())
}

func TestEachKeepsOrderAndLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	items := []int{1, 2, 3, 4, 5, 6}

	errs := Each(items, 2, func(v int) error {
		cur := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		if v%2 == 0 {
			return errors.New("even")
		}
		return nil
	})

	require.Len(t, errs, len(items))
	for i, err := range errs {
		if items[i]%2 == 0 {
			assert.Error(t, err)
		} else {
			assert.NoError(t, err)
		}
	}
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

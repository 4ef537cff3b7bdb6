package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"almanac/internal/interval"
)

func TestResolver_MatchesSequential(t *testing.T) {
	t.Parallel()

	p := examplePipeline()
	seeds := []interval.Range{
		interval.New(79, 14),
		interval.New(55, 13),
		interval.New(0, 3),
		interval.New(200, 50),
		interval.New(96, 2),
	}

	want, err := MinimumOverRanges(seeds, p)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 2, 4, 16} {
		r := NewResolver(p, Config{Workers: workers}, nil)

		got, err := r.MinimumOverRanges(context.Background(), seeds)
		require.NoError(t, err, "workers %d", workers)
		assert.Equal(t, want, got, "workers %d", workers)
	}
}

func TestResolver_NoRanges(t *testing.T) {
	t.Parallel()

	r := NewResolver(examplePipeline(), DefaultConfig(), nil)

	_, err := r.MinimumOverRanges(context.Background(), []interval.Range{interval.New(4, 0)})
	require.ErrorIs(t, err, ErrNoRanges)
}

func TestResolver_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		r := NewResolver(examplePipeline(), Config{Workers: workers}, nil)

		_, err := r.MinimumOverRanges(ctx, []interval.Range{interval.New(1, 2), interval.New(10, 2)})
		require.ErrorIs(t, err, context.Canceled, "workers %d", workers)
	}
}

func TestResolver_LogsPerRange(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	r := NewResolver(examplePipeline(), Config{Workers: 2}, zap.New(core))

	got, err := r.MinimumOverRanges(context.Background(), []interval.Range{interval.New(79, 14), interval.New(55, 13)})
	require.NoError(t, err)
	assert.Equal(t, uint64(46), got)
	assert.Equal(t, 2, logs.FilterMessage("Resolved seed range").Len())
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	assert.GreaterOrEqual(t, DefaultConfig().Workers, 1)
}

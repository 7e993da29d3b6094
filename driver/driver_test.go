package driver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlink-lang/dlinkc/config"
	"github.com/dlink-lang/dlinkc/source"
)

func newSources(t *testing.T, n int) []*source.Source {
	t.Helper()
	out := make([]*source.Source, n)
	for i := range out {
		src, err := source.New("test.dl")
		require.NoError(t, err)
		out[i] = src
	}
	return out
}

func TestComputePlanLastWorkerTakesRemainder(t *testing.T) {
	sources := newSources(t, 10)
	plan := ComputePlan(sources, 3)
	require.Equal(t, 3, plan.WorkerCount)
	want := []int{3, 3, 4}
	for i, slice := range plan.Slices {
		require.Equal(t, want[i], len(slice), "slice[%d]", i)
	}
}

func TestComputePlanClampsToSourceCount(t *testing.T) {
	sources := newSources(t, 2)
	plan := ComputePlan(sources, 8)
	require.Equal(t, 2, plan.WorkerCount, "should clamp to source count")
}

func TestComputePlanEmptySourceList(t *testing.T) {
	plan := ComputePlan(nil, 4)
	require.Zero(t, plan.WorkerCount)
	require.Nil(t, plan.Slices)
}

func TestRunANDFoldsWorkerResults(t *testing.T) {
	sources := newSources(t, 6)
	opts, _ := config.NewCompilerOptions(config.CompilerOptionsParams{ThreadCount: 3})
	meta := config.NewCompilerMetadata(opts)

	var mu sync.Mutex
	seen := map[*source.Source]bool{}

	ok := Run(sources, meta, func(src *source.Source, m *config.CompilerMetadata) bool {
		mu.Lock()
		seen[src] = true
		mu.Unlock()
		return src != sources[4]
	})

	require.False(t, ok, "expected Run to report failure when one source fails")
	require.Len(t, seen, len(sources))
}

func TestRunSequentialVisitsInOrder(t *testing.T) {
	sources := newSources(t, 4)
	opts, _ := config.NewCompilerOptions(config.CompilerOptionsParams{})
	meta := config.NewCompilerMetadata(opts)

	var order []*source.Source
	ok := RunSequential(sources, meta, func(src *source.Source, m *config.CompilerMetadata) bool {
		order = append(order, src)
		return true
	})

	require.True(t, ok, "expected RunSequential to succeed")
	require.Len(t, order, len(sources))
	for i, src := range sources {
		require.Same(t, src, order[i], "order[%d]", i)
	}
}

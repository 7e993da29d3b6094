// Package driver fans a pipeline stage out across a fixed worker count: one
// goroutine per Source, gated through a semaphore sized to the worker count
// so at most WorkerCount stage calls run concurrently. Each Source is owned
// by exactly one goroutine for the duration of its call. The only state
// shared between workers is the diagnostic sink, which is mutex-protected by
// the reporter package itself.
package driver

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/dlink-lang/dlinkc/config"
	"github.com/dlink-lang/dlinkc/source"
)

// StageFunc runs one pipeline stage (decode/preprocess/lex) over a single
// Source and reports whether it succeeded.
type StageFunc func(src *source.Source, meta *config.CompilerMetadata) bool

// Plan is the worker count derived for a source list, plus the contiguous
// slice partition Plan.Slices it implies (kept for introspection; Run itself
// dispatches one goroutine per source rather than per slice).
type Plan struct {
	WorkerCount int
	Slices      [][]*source.Source
}

// ComputePlan derives the worker count from configured, the default
// fallback, and len(sources). If configured is 0, it takes hardware
// concurrency; if that is also 0, it falls back to 4. The worker count is
// always clamped to [1, len(sources)] (zero sources yields a zero-worker,
// empty plan). It also computes the average/remainder slice partition implied
// by that worker count, with the last slice taking the remainder.
func ComputePlan(sources []*source.Source, configured int) Plan {
	if len(sources) == 0 {
		return Plan{}
	}

	w := configured
	if w == 0 {
		w = runtime.GOMAXPROCS(-1)
	}
	if w == 0 {
		w = 4
	}
	if w > len(sources) {
		w = len(sources)
	}
	if w < 1 {
		w = 1
	}

	average := len(sources) / w
	remainder := len(sources) % w

	slices := make([][]*source.Source, w)
	start := 0
	for i := 0; i < w; i++ {
		count := average
		if i == w-1 {
			count += remainder
		}
		slices[i] = sources[start : start+count]
		start += count
	}

	return Plan{WorkerCount: w, Slices: slices}
}

// Run executes stage over sources in parallel, one goroutine per Source,
// with at most plan.WorkerCount running at once (enforced by a weighted
// semaphore acquired for the duration of each stage call). The result is the
// AND-fold of every source's stage result.
func Run(sources []*source.Source, meta *config.CompilerMetadata, stage StageFunc) bool {
	plan := ComputePlan(sources, meta.Options.ThreadCount())
	if plan.WorkerCount == 0 {
		return true
	}

	sem := semaphore.NewWeighted(int64(plan.WorkerCount))
	results := make([]bool, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		i, src := i, src
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sem.Acquire(context.Background(), 1)
			defer sem.Release(1)
			results[i] = stage(src, meta)
		}()
	}
	wg.Wait()

	ok := true
	for _, r := range results {
		ok = ok && r
	}
	return ok
}

// RunSequential executes stage over every source, in order, on the calling
// goroutine. It is the worker-free equivalent of Run.
func RunSequential(sources []*source.Source, meta *config.CompilerMetadata, stage StageFunc) bool {
	return runSlice(sources, meta, stage)
}

func runSlice(sources []*source.Source, meta *config.CompilerMetadata, stage StageFunc) bool {
	ok := true
	for _, src := range sources {
		ok = stage(src, meta) && ok
	}
	return ok
}

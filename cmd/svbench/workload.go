package main

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/webbmaffian/go-smallvec/alloc"
	"github.com/webbmaffian/go-smallvec/internal/config"
	"github.com/webbmaffian/go-smallvec/random"
	"github.com/webbmaffian/go-smallvec/smallvec"
)

type vector = smallvec.Vector[int64, [16]int64]

// workload applies random operations to one vector per worker. All vectors
// share one allocator.
type workload struct {
	cfg       config.Config
	logger    *zap.Logger
	allocator alloc.Allocator
	mmap      *alloc.Mmap
	budget    *alloc.Budget
	limiter   *rate.Limiter

	ops           atomic.Int64
	spills        atomic.Int64
	returns       atomic.Int64
	allocFailures atomic.Int64
}

func newWorkload(cfg config.Config, logger *zap.Logger) (w *workload, err error) {
	if err = cfg.Validate(); err != nil {
		return
	}

	w = &workload{
		cfg:    cfg,
		logger: logger,
	}

	switch cfg.Allocator {
	case config.AllocatorMmap:
		w.mmap = alloc.NewMmap()
		w.allocator = w.mmap
	default:
		w.allocator = alloc.GoHeap{}
	}

	if cfg.Budget > 0 {
		w.budget = alloc.NewBudget(w.allocator, cfg.Budget)
		w.allocator = w.budget
	}

	if cfg.LogAllocs {
		w.allocator = alloc.NewLogged(w.allocator, logger)
	}

	if cfg.Rate > 0 {
		w.limiter = rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst)
	}

	return
}

func (w *workload) close() error {
	if w.mmap != nil {
		return w.mmap.Close()
	}

	return nil
}

// run drives every worker to completion. An interrupted context ends the
// run early without an error; the report says so.
func (w *workload) run(ctx context.Context) (r Report, err error) {
	r.Config = w.cfg
	r.Started = time.Now()
	r.Workers = make([]WorkerReport, w.cfg.Workers)

	g, gctx := errgroup.WithContext(ctx)

	for id := range w.cfg.Workers {
		g.Go(func() (err error) {
			r.Workers[id], err = w.worker(gctx, id)
			return
		})
	}

	if err = g.Wait(); err != nil {
		return
	}

	elapsed := time.Since(r.Started)

	r.Seconds = elapsed.Seconds()
	r.Ops = w.ops.Load()
	r.Spills = w.spills.Load()
	r.Returns = w.returns.Load()
	r.AllocFailures = w.allocFailures.Load()
	r.Interrupted = ctx.Err() != nil

	if elapsed > 0 {
		r.OpsPerSec = float64(r.Ops) / elapsed.Seconds()
	}

	for _, wr := range r.Workers {
		r.MaxCap = max(r.MaxCap, wr.MaxCap)
	}

	if w.mmap != nil {
		stats := w.mmap.Stats()
		r.Mmap = &stats
	}

	return
}

func (w *workload) worker(ctx context.Context, id int) (r WorkerReport, err error) {
	src := random.New(w.cfg.Seed + uint64(id))
	v := smallvec.New[int64, [16]int64](smallvec.WithAllocator(w.allocator))
	defer v.Free()

	r.ID = id

	for ; r.Ops < w.cfg.Ops; r.Ops++ {
		if w.limiter != nil {
			if w.limiter.Wait(ctx) != nil {
				break
			}
		} else if ctx.Err() != nil {
			break
		}

		wasInline := v.IsInline()

		if err = w.step(v, src); err != nil {
			if !errors.Is(err, smallvec.ErrAllocation) {
				return r, fmt.Errorf("worker %d, op %d: %w", id, r.Ops, err)
			}

			r.AllocFailures++
			w.allocFailures.Add(1)
		}

		switch {
		case wasInline && !v.IsInline():
			r.Spills++
			w.spills.Add(1)
		case !wasInline && v.IsInline():
			r.Returns++
			w.returns.Add(1)
		}

		r.MaxCap = max(r.MaxCap, v.Cap())
		w.ops.Add(1)
	}

	r.FinalLen = v.Len()
	r.FinalCap = v.Cap()

	if r.AllocFailures > 0 {
		w.logger.Debug("worker hit allocation failures", zap.Int("worker", id), zap.Int64("failures", r.AllocFailures))
	}

	return r, nil
}

// step applies one random operation to v. Pushes outweigh pops so vectors
// keep crossing their inline capacity.
func (w *workload) step(v *vector, src *random.Source) error {
	n, maxLen := v.Len(), w.cfg.MaxLen

	switch p := src.Intn(0, 100); {
	case p < 40:
		if n >= maxLen {
			_, err := v.PopBack()
			return err
		}

		return v.PushBack(int64(src.Intn(0, 1<<30)))

	case p < 55:
		if n == 0 {
			return nil
		}

		_, err := v.PopBack()
		return err

	case p < 65:
		if n >= maxLen {
			return nil
		}

		return v.Insert(src.Intn(0, n+1), int64(p))

	case p < 75:
		if n == 0 {
			return nil
		}

		return v.Erase(src.Intn(0, n))

	case p < 82:
		return v.Reserve(src.Intn(0, maxLen+1))

	case p < 90:
		return v.ShrinkToFit()

	case p < 96:
		return v.Resize(src.Intn(0, maxLen+1))

	default:
		v.Clear()
		return nil
	}
}

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gosuri/uilive"
)

const liveInterval = 200 * time.Millisecond

// live renders the shared counters on out until the returned function is
// called.
func (w *workload) live(out io.Writer) (stop func()) {
	writer := uilive.New()
	writer.Out = out

	progress := writer.Newline()
	spills := writer.Newline()
	failures := writer.Newline()
	budget := writer.Newline()

	render := func() {
		total := int64(w.cfg.Workers) * int64(w.cfg.Ops)

		fmt.Fprintf(progress, "Ops: %d / %d\n", w.ops.Load(), total)
		fmt.Fprintf(spills, "Spills: %d, returns: %d\n", w.spills.Load(), w.returns.Load())
		fmt.Fprintf(failures, "Allocation failures: %d\n", w.allocFailures.Load())

		if w.budget != nil {
			fmt.Fprintf(budget, "Budget: %d / %d bytes\n", w.budget.Used(), w.budget.Limit())
		}
	}

	done := make(chan struct{})
	finished := make(chan struct{})

	writer.Start()

	go func() {
		defer close(finished)

		ticker := time.NewTicker(liveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				render()
				return
			case <-ticker.C:
				render()
			}
		}
	}()

	return func() {
		close(done)
		<-finished
		writer.Stop()
	}
}

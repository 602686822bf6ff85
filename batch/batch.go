/*Package batch runs the screening filter over many element systems
concurrently. Each system is screened independently on a bounded worker pool,
a failure in one system never affects the others, and the results come back
in input order regardless of which worker finished first.*/
package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"

	ion "github.com/goionics/ionscreen"
	"github.com/goionics/ionscreen/screen"
)

// System is one unit of screening work: a named set of element symbols. The
// trailing symbols may be pinned to a single oxidation state through
// AnionState, mirroring screen.FixedSlot.
type System struct {
	Name       string
	Symbols    []string
	Anion      string
	AnionState int //meaningful only when Anion is set
}

// Result pairs a system with its screening outcome. Exactly one of
// Candidates and Err is meaningful.
type Result struct {
	System     System
	Candidates []screen.Candidate
	Err        error
}

// Options controls the dispatch.
type Options struct {
	Workers int         //0 means runtime.NumCPU()
	Logger  *log.Logger //nil means failures are only reported in the Results
	//Screen replaces the filter invocation. nil means screen.Filter; tests
	//use this to stub out the screening step.
	Screen func([]screen.Slot, *screen.Options) []screen.Candidate
}

func (o *Options) workers() int {
	if o == nil || o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

func (o *Options) logger() *log.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}

func (o *Options) filter() func([]screen.Slot, *screen.Options) []screen.Candidate {
	if o == nil || o.Screen == nil {
		return screen.Filter
	}
	return o.Screen
}

// Map screens every system and returns one Result per system, in input order.
// A panic while screening a system is captured as that system's error. When
// ctx is cancelled, systems not yet dispatched get ctx.Err() as their error
// and Map returns once the in-flight ones finish.
func Map(ctx context.Context, t *ion.Table, systems []System, sopts *screen.Options, opts *Options) []Result {
	results := make([]Result, len(systems))
	for i, sys := range systems {
		results[i].System = sys
	}
	if len(systems) == 0 {
		return results
	}
	jobs := make(chan int)
	//buffered so a worker never blocks on reporting: the dispatcher only
	//drains done once every job has been handed out
	done := make(chan int, len(systems))
	filter := opts.filter()
	nworkers := opts.workers()
	if nworkers > len(systems) {
		nworkers = len(systems)
	}
	for w := 0; w < nworkers; w++ {
		go func() {
			for i := range jobs {
				results[i].Candidates, results[i].Err = screenOne(t, systems[i], sopts, filter)
				done <- i
			}
		}()
	}
	dispatched := 0
	logger := opts.logger()
dispatch:
	for i := range systems {
		if ctx.Err() != nil {
			for j := i; j < len(systems); j++ {
				results[j].Err = ctx.Err()
			}
			break dispatch
		}
		select {
		case jobs <- i:
			dispatched++
		case <-ctx.Done():
			for j := i; j < len(systems); j++ {
				results[j].Err = ctx.Err()
			}
			break dispatch
		}
	}
	close(jobs)
	for f := 0; f < dispatched; f++ {
		i := <-done
		if results[i].Err != nil && logger != nil {
			logger.Error("screening failed", "system", systems[i].Name, "err", results[i].Err)
		}
	}
	return results
}

// screenOne screens a single system, converting a panic in the slot setup or
// the filter into an error.
func screenOne(t *ion.Table, sys System, sopts *screen.Options, filter func([]screen.Slot, *screen.Options) []screen.Candidate) (cand []screen.Candidate, err error) {
	defer func() {
		if r := recover(); r != nil {
			cand = nil
			err = ion.NewCError(fmt.Sprintf("panic while screening %s: %v", sys.Name, r), "screenOne")
		}
	}()
	slots, err := screen.SlotsFor(t, sys.Symbols...)
	if err != nil {
		return nil, errDecorate(err, "screenOne")
	}
	if sys.Anion != "" {
		anion, err := screen.FixedSlot(t, sys.Anion, sys.AnionState)
		if err != nil {
			return nil, errDecorate(err, "screenOne")
		}
		slots = append(slots, anion)
	}
	return filter(slots, sopts), nil
}

// errDecorate asserts that the error implements ion.Error and decorates it
// with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(ion.Error)
	if !ok {
		return ion.NewCError(err.Error(), caller)
	}
	err2.Decorate(caller)
	return err2
}

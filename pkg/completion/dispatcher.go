package completion

import (
	"sync"
	"sync/atomic"
)

// Listener receives the winning result for a trigger, or nil when no
// provider matched. It is only ever called with the most recent
// trigger's outcome; superseded triggers are dropped.
type Listener func(res *Result)

// Dispatcher routes each trigger to every registered provider and
// merges the answers. Providers run concurrently; presentation priority
// when several match is fixed by registration order (date, note, tag).
//
// Each trigger is tagged with a monotonically increasing epoch. An
// asynchronous result is delivered only while its epoch is still
// current, so a slow provider can never clobber the suggestion list of
// a later keystroke.
type Dispatcher struct {
	providers []Provider
	epoch     atomic.Uint64
	listener  Listener
}

// NewDispatcher creates a dispatcher over providers in priority order.
func NewDispatcher(providers ...Provider) *Dispatcher {
	return &Dispatcher{providers: providers}
}

// Notify sets the listener for asynchronous trigger results.
func (d *Dispatcher) Notify(l Listener) {
	d.listener = l
}

// Trigger starts an asynchronous completion pass for c, superseding any
// pass still in flight.
func (d *Dispatcher) Trigger(c Context) {
	seq := d.epoch.Add(1)
	go func() {
		res := d.Complete(c)
		if d.epoch.Load() != seq {
			// Stale: a newer trigger owns the suggestion list.
			return
		}
		if d.listener != nil {
			d.listener(res)
		}
	}()
}

// Complete runs every provider against c and returns the first
// non-empty result in priority order, or nil when none match.
func (d *Dispatcher) Complete(c Context) *Result {
	results := make([]*Result, len(d.providers))
	var wg sync.WaitGroup
	for i, p := range d.providers {
		wg.Add(1)
		go func(i int, p Provider) {
			defer wg.Done()
			results[i] = p.Complete(c)
		}(i, p)
	}
	wg.Wait()

	for _, res := range results {
		if res != nil && len(res.Options) > 0 {
			return res
		}
	}
	return nil
}

// Package progress provides a tracker that keeps aggregated allocation
// counters (computed, decided, committed, ...) for a batch of tasks. The
// tracker instance lives in the context; every component that receives the
// context can atomically update the counters via the Delta helper.

package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the engine or the
// coordinator. Fields are signed so callers can decrement as well.
type Delta struct {
	Computed   int
	Decided    int
	Committed  int
	Superseded int
	Failed     int
}

// Progress keeps aggregated allocation counters for a run. It is safe for
// concurrent use.
type Progress struct {
	// Identification, informative only.
	ProjectID string
	StartedAt time.Time

	// Counters, modified via Update().
	ComputedAllocations  int
	DecidedAllocations   int
	CommittedAssignments int
	SupersededCommits    int
	FailedCommits        int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta. If an onChange callback is registered it
// is invoked with a copy of the updated tracker outside the critical section
// so slow consumers never block the pipeline.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.Lock()
	p.ComputedAllocations += d.Computed
	p.DecidedAllocations += d.Decided
	p.CommittedAssignments += d.Committed
	p.SupersededCommits += d.Superseded
	p.FailedCommits += d.Failed

	snapshot := *p
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return *p
}

// OnChange registers a callback invoked after every Update. Passing nil
// disables the callback; only one callback can be active.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new tracker, embeds it in a derived context and
// returns both.
func WithNewTracker(ctx context.Context, projectID string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		ProjectID: projectID,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx; the second return value is false
// when the context carries none.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}

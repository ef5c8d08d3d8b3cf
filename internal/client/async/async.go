// Package async runs remote operations through a uniform lifecycle.
//
// Every operation goes pending, then either fulfilled or rejected. State is
// mutated only on fulfilment, by the commit function handed to Do; a
// rejected operation leaves state exactly as it was.
package async

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/snsclone/internal/logging"
)

type Phase int

const (
	Pending Phase = iota
	Fulfilled
	Rejected
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result is the settled outcome of an operation.
type Result[T any] struct {
	Value T
	Err   error
}

func (r Result[T]) Fulfilled() bool { return r.Err == nil }

func (r Result[T]) Rejected() bool { return r.Err != nil }

func (r Result[T]) Unwrap() (T, error) { return r.Value, r.Err }

// Event is emitted on every phase transition. Elapsed is zero for Pending.
type Event struct {
	Op      string
	Phase   Phase
	Err     error
	Elapsed time.Duration
}

// Gateway logs lifecycle events and fans them out to observers.
type Gateway struct {
	logger logging.Logger

	mu        sync.RWMutex
	observers []func(Event)
}

func NewGateway(logger logging.Logger) *Gateway {
	return &Gateway{logger: logger}
}

// Observe registers fn for every subsequent event. Observers run
// synchronously on the calling goroutine.
func (g *Gateway) Observe(fn func(Event)) {
	g.mu.Lock()
	g.observers = append(g.observers, fn)
	g.mu.Unlock()
}

func (g *Gateway) emit(ctx context.Context, ev Event) {
	switch ev.Phase {
	case Pending:
		g.logger.Debug(ctx, "operation pending", "op", ev.Op)
	case Fulfilled:
		g.logger.Debug(ctx, "operation fulfilled", "op", ev.Op, "elapsed", ev.Elapsed)
	case Rejected:
		g.logger.Warn(ctx, "operation rejected", "op", ev.Op, "elapsed", ev.Elapsed, "error", ev.Err)
	}

	g.mu.RLock()
	obs := g.observers
	g.mu.RUnlock()
	for _, fn := range obs {
		fn(ev)
	}
}

// Do runs op under name. On success commit is called with the value before
// the fulfilled event is emitted; commit may be nil. A context that is
// already done rejects the operation without calling op.
func Do[T any](ctx context.Context, g *Gateway, name string, op func(context.Context) (T, error), commit func(T)) Result[T] {
	g.emit(ctx, Event{Op: name, Phase: Pending})
	started := time.Now()

	var (
		v   T
		err = ctx.Err()
	)
	if err == nil {
		v, err = op(ctx)
	}
	if err != nil {
		g.emit(ctx, Event{Op: name, Phase: Rejected, Err: err, Elapsed: time.Since(started)})
		var zero T
		return Result[T]{Value: zero, Err: err}
	}

	if commit != nil {
		commit(v)
	}
	g.emit(ctx, Event{Op: name, Phase: Fulfilled, Elapsed: time.Since(started)})
	return Result[T]{Value: v}
}

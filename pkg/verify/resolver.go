package verify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ethanbaker/lineramind/pkg/entry"
)

// State is the outcome of resolving an entry id
type State int

const (
	// NotRequested means no id was supplied, so no lookup happened
	NotRequested State = iota
	// Pending means a lookup is in flight
	Pending
	// Found means the entry exists and was read
	Found
	// NotFound means the store has no entry for the id
	NotFound
	// TransportError means the store could not be reached
	TransportError
)

func (s State) String() string {
	switch s {
	case NotRequested:
		return "not_requested"
	case Pending:
		return "pending"
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case TransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// TransportErr wraps a store failure that is not a missing entry
type TransportErr struct {
	ID  int64
	Err error
}

func (e *TransportErr) Error() string {
	return fmt.Sprintf("lookup of entry %d failed: %v", e.ID, e.Err)
}

func (e *TransportErr) Unwrap() error {
	return e.Err
}

// Result is the resolved state of one entry id
type Result struct {
	State State
	ID    int64
	Entry *entry.Entry
	Err   error
}

// Verified reports whether the result carries an entry. Only verified results
// may produce derived artifacts.
func (r Result) Verified() bool {
	return r.State == Found && r.Entry != nil
}

// Resolver turns entry ids into verification results using a record store
type Resolver struct {
	reader entry.Reader
}

// NewResolver creates a resolver over the given store
func NewResolver(reader entry.Reader) *Resolver {
	return &Resolver{reader: reader}
}

// Resolve looks up an entry once. A nil id performs no lookup.
func (r *Resolver) Resolve(ctx context.Context, id *int64) Result {
	if id == nil {
		return Result{State: NotRequested}
	}

	e, err := r.reader.GetEntry(ctx, *id)
	switch {
	case errors.Is(err, entry.ErrNotFound):
		return Result{State: NotFound, ID: *id, Err: err}
	case err != nil:
		log.Printf("[VERIFY]: lookup of entry %d failed: %v\n", *id, err)
		return Result{State: TransportError, ID: *id, Err: &TransportErr{ID: *id, Err: err}}
	case e == nil:
		return Result{State: NotFound, ID: *id, Err: entry.ErrNotFound}
	}

	return Result{State: Found, ID: *id, Entry: e.Clone()}
}

// Lookup is an in-flight asynchronous resolution
type Lookup struct {
	seq    uint64 // order of Track calls, zero when untracked
	mu     sync.RWMutex
	done   chan struct{}
	result Result
}

// Begin starts resolving id in the background. The lookup reports Pending
// until the read finishes.
func (r *Resolver) Begin(ctx context.Context, id *int64) *Lookup {
	l := &Lookup{done: make(chan struct{})}
	if id == nil {
		l.result = Result{State: NotRequested}
		close(l.done)
		return l
	}

	l.result = Result{State: Pending, ID: *id}
	go func(id int64) {
		res := r.Resolve(ctx, &id)

		l.mu.Lock()
		l.result = res
		l.mu.Unlock()
		close(l.done)
	}(*id)

	return l
}

// Result returns the current state of the lookup without blocking
func (l *Lookup) Result() Result {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.result
}

// Done is closed once the lookup has finished
func (l *Lookup) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the lookup finishes or ctx ends
func (l *Lookup) Wait(ctx context.Context) (Result, error) {
	select {
	case <-l.done:
		return l.Result(), nil
	case <-ctx.Done():
		return l.Result(), ctx.Err()
	}
}

// Tracker follows the most recently requested id. Results of earlier lookups
// are discarded once a newer one begins.
type Tracker struct {
	resolver *Resolver

	mu      sync.Mutex
	seq     uint64
	current *Lookup
}

// NewTracker creates a tracker over the resolver
func NewTracker(resolver *Resolver) *Tracker {
	return &Tracker{resolver: resolver}
}

// Track begins a lookup for id and makes it the current one. Starting and
// publishing happen under one lock, so the current lookup is always the one
// started last.
func (t *Tracker) Track(ctx context.Context, id *int64) *Lookup {
	t.mu.Lock()
	defer t.mu.Unlock()

	l := t.resolver.Begin(ctx, id)
	t.seq++
	l.seq = t.seq
	t.current = l
	return l
}

// Current returns the state of the latest lookup
func (t *Tracker) Current() Result {
	t.mu.Lock()
	l := t.current
	t.mu.Unlock()

	if l == nil {
		return Result{State: NotRequested}
	}
	return l.Result()
}

// IsCurrent reports whether l is still the latest lookup
func (t *Tracker) IsCurrent(l *Lookup) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current == l
}

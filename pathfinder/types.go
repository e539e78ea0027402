package pathfinder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvmapf/core"
)

// Sentinel errors returned by the pathfinder.
var (
	// ErrNoPath indicates the frontier was exhausted before the goal was reached.
	ErrNoPath = errors.New("pathfinder: no path")

	// ErrExpansionLimit indicates MaxExpansions nodes were expanded without reaching the goal.
	ErrExpansionLimit = errors.New("pathfinder: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")

	// ErrNoAgents indicates FindMultiPath was called with an empty agent list.
	ErrNoAgents = errors.New("pathfinder: no agents supplied")

	// ErrNilPosition indicates FindPath was called with a nil endpoint.
	ErrNilPosition = errors.New("pathfinder: position is nil")
)

// NoPathError reports an exhausted frontier together with the search endpoints.
type NoPathError struct {
	From string
	To   string
}

// Error implements error.
func (e *NoPathError) Error() string {
	return fmt.Sprintf("%v from %s to %s", ErrNoPath, e.From, e.To)
}

// Unwrap lets errors.Is match ErrNoPath.
func (e *NoPathError) Unwrap() error { return ErrNoPath }

// DedupMode selects which notion of state equality keys the explored map
// of the multi-agent search.
type DedupMode int

const (
	// DedupIdentical treats states reached at different timesteps as distinct.
	DedupIdentical DedupMode = iota
	// DedupEquivalent merges states that differ only in timestep.
	DedupEquivalent
)

// MultiPath maps an agent ID to its location after every completed timestep.
type MultiPath map[int][]core.Position

// Event describes one node seen by the search loop.
type Event struct {
	RunID    uuid.UUID // identifies the search call
	Node     string    // canonical key of the node
	Rank     float64   // heuristic estimate used as priority
	Expanded int       // nodes expanded so far in this call
}

// Stats summarises one search call.
type Stats struct {
	RunID      uuid.UUID
	Expanded   int // nodes popped from the frontier
	Discovered int // nodes ever pushed, including the start
}

// Option configures a Pathfinder or a single call via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded and surfaced
// as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks that customise a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of popped nodes.
	// A value of 0 explicitly disables the limit.
	MaxExpansions int

	// Dedup selects the explored-map key of FindMultiPath.
	Dedup DedupMode

	// OnExpand is called for every node popped from the frontier.
	OnExpand func(Event)

	// OnDiscover is called for every node pushed onto the frontier.
	OnDiscover func(Event)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion limit
//   - DedupIdentical
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Dedup:         DedupIdentical,
		OnExpand:      func(Event) {},
		OnDiscover:    func(Event) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions stops the search after n expansions.
//
//	n > 0: limit to n popped nodes
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithDedup selects how FindMultiPath recognises already discovered states.
func WithDedup(mode DedupMode) Option {
	return func(o *Options) {
		switch mode {
		case DedupIdentical, DedupEquivalent:
			o.Dedup = mode
		default:
			o.err = fmt.Errorf("%w: unknown DedupMode %d", ErrOptionViolation, mode)
		}
	}
}

// WithOnExpand registers a callback run for every popped node.
func WithOnExpand(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback run for every newly discovered node.
func WithOnDiscover(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

package sideeffect

import (
	"sync"
)

// ReduceFunc merges the props of all currently mounted instances, in mount
// order, into one aggregated state value. It must be pure: the full registry
// is re-reduced on every lifecycle transition, so any hidden state would leak
// between renders.
type ReduceFunc[P, S any] func(props []P) S

// ChangeFunc receives the aggregated state whenever it changes while an
// interactive display surface is available. It is never invoked on the
// server, and never invoked twice in a row with structurally equal state.
type ChangeFunc[S any] func(state S)

// MapFunc post-processes the aggregated state for single-pass server
// consumption. It is applied by Rewind (and RewindEncoded), never by Peek.
type MapFunc[S any] func(state S) S

// SideEffect owns the shared state behind one wrapper configuration: the
// mount registry, the snapshot store, the notifier baseline, and the
// environment flag. Every call to New creates an independent SideEffect;
// wrappers from different New calls never share aggregated state, even with
// identical reducers.
//
// All methods are safe for concurrent use, though the intended driver is a
// single-threaded render loop. The change handler is always invoked outside
// the internal lock, so a handler that synchronously schedules another render
// pass cannot deadlock.
type SideEffect[P, S any] struct {
	reduce    ReduceFunc[P, S]
	onChange  ChangeFunc[S]
	mapServer MapFunc[S]
	encoder   *Encoder
	sensitive bool

	mu          sync.Mutex
	mounts      mounts[P, S]
	snapshot    S
	hasSnapshot bool
	notified    S
	hasNotified bool
	canUseDOM   bool
}

// Option configures a SideEffect produced by New.
type Option[P, S any] func(*SideEffect[P, S]) error

// MapStateOnServer sets the server state mapper applied by Rewind. The state
// type is inferred; the props type must be named at the call site:
//
//	se, err := sideeffect.New(reduceTitle, applyTitle,
//	    sideeffect.MapStateOnServer[TitleProps](pickCurrent))
//
// Passing a nil mapper fails New with ErrNilServerMapper.
func MapStateOnServer[P, S any](fn MapFunc[S]) Option[P, S] {
	return func(se *SideEffect[P, S]) error {
		if fn == nil {
			return ErrNilServerMapper
		}
		se.mapServer = fn
		return nil
	}
}

// WithEncoder sets the snapshot encoder used by RewindEncoded and
// HydrateEncoded to carry aggregated state from a server render pass to the
// client. Passing a nil encoder fails New with ErrNoEncoder.
func WithEncoder[P, S any](enc *Encoder) Option[P, S] {
	return func(se *SideEffect[P, S]) error {
		if enc == nil {
			return ErrNoEncoder
		}
		se.encoder = enc
		return nil
	}
}

// Sensitive marks encoded snapshots as sensitive, switching the transport
// from signed (visible but tamper-proof) to encrypted (opaque) encoding.
func Sensitive[P, S any]() Option[P, S] {
	return func(se *SideEffect[P, S]) error {
		se.sensitive = true
		return nil
	}
}

// New creates the shared state for one wrapper configuration.
//
// reduce merges mounted instances' props into aggregated state; onChange is
// invoked on the client whenever that state actually changes. Both are
// required and validated before anything is produced. Use the returned
// SideEffect's Wrap method to turn display components into managed wrappers.
func New[P, S any](reduce ReduceFunc[P, S], onChange ChangeFunc[S], opts ...Option[P, S]) (*SideEffect[P, S], error) {
	if reduce == nil {
		return nil, ErrNilReducer
	}
	if onChange == nil {
		return nil, ErrNilChangeHandler
	}

	se := &SideEffect[P, S]{
		reduce:    reduce,
		onChange:  onChange,
		canUseDOM: detectInteractive(),
	}
	for _, opt := range opts {
		if err := opt(se); err != nil {
			return nil, err
		}
	}
	return se, nil
}

// mount appends the instance to the registry and runs aggregation.
func (se *SideEffect[P, S]) mount(inst *Instance[P, S]) {
	se.mu.Lock()
	se.mounts.add(inst)
	notify, state := se.recomputeLocked()
	se.mu.Unlock()

	if notify {
		se.onChange(state)
	}
}

// update overwrites the instance's props in place and runs aggregation.
func (se *SideEffect[P, S]) update(inst *Instance[P, S], props P) {
	se.mu.Lock()
	inst.props = props
	notify, state := se.recomputeLocked()
	se.mu.Unlock()

	if notify {
		se.onChange(state)
	}
}

// unmount removes the instance from the registry and runs aggregation.
func (se *SideEffect[P, S]) unmount(inst *Instance[P, S]) {
	se.mu.Lock()
	se.mounts.remove(inst)
	notify, state := se.recomputeLocked()
	se.mu.Unlock()

	if notify {
		se.onChange(state)
	}
}

// recomputeLocked re-reduces the registry, refreshes the snapshot store, and
// decides whether the client handler must run. The caller holds se.mu and is
// responsible for invoking onChange after releasing it.
//
// The snapshot store and the notified baseline are tracked separately: the
// snapshot always holds the freshest aggregate for pull access, while the
// baseline only advances when a notification is actually delivered.
func (se *SideEffect[P, S]) recomputeLocked() (bool, S) {
	state := se.reduce(se.mounts.props())
	se.snapshot = state
	se.hasSnapshot = true

	if !se.canUseDOM {
		return false, state
	}
	if se.hasNotified && stateEqual(se.notified, state) {
		return false, state
	}
	se.notified = state
	se.hasNotified = true
	return true, state
}

package sideeffect

import (
	"context"
	"reflect"

	"github.com/a-h/templ"
)

// Wrapper is the managed component type produced by wrapping a display
// component. It is mountable (Mount creates a live instance for the render
// engine to drive) and additionally exposes the pull-based snapshot surface:
// Peek, Rewind, and the CanUseDOM flag.
//
// Wrappers produced by the same SideEffect share one registry and snapshot
// store; wrappers from different New calls are fully independent.
type Wrapper[P, S any] struct {
	se        *SideEffect[P, S]
	component Renderer[P]
	name      string
}

// Wrap validates the display component and produces its managed wrapper.
// The component must be a usable Renderer: a nil interface, nil function, or
// nil pointer fails with ErrNilComponent.
func (se *SideEffect[P, S]) Wrap(component Renderer[P]) (*Wrapper[P, S], error) {
	if isNilComponent(component) {
		return nil, ErrNilComponent
	}
	return &Wrapper[P, S]{
		se:        se,
		component: component,
		name:      wrapperName(component),
	}, nil
}

// isNilComponent reports whether the renderer is unusable: either a nil
// interface or an interface holding a nil function or pointer.
func isNilComponent(component any) bool {
	if component == nil {
		return true
	}
	v := reflect.ValueOf(component)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// DisplayName returns the wrapper's debugging name, derived once at wrap
// time: "SideEffect(<component name>)".
func (w *Wrapper[P, S]) DisplayName() string {
	return w.name
}

// CanUseDOM reports whether this wrapper type currently behaves as if an
// interactive display surface is available. The flag is read fresh at every
// notification decision, not cached per instance.
func (w *Wrapper[P, S]) CanUseDOM() bool {
	w.se.mu.Lock()
	defer w.se.mu.Unlock()
	return w.se.canUseDOM
}

// SetCanUseDOM overrides the environment flag for this wrapper type. Use it
// to force server-like behavior in tests or client-like behavior in
// non-browser hosts.
func (w *Wrapper[P, S]) SetCanUseDOM(interactive bool) {
	w.se.mu.Lock()
	defer w.se.mu.Unlock()
	w.se.canUseDOM = interactive
}

// Mount registers a new instance with the given props and runs aggregation.
// The returned instance is handed to the render engine, which drives
// SetProps and Unmount as the component's lifecycle progresses.
func (w *Wrapper[P, S]) Mount(props P) *Instance[P, S] {
	inst := &Instance[P, S]{wrapper: w, props: props, mounted: true}
	w.se.mount(inst)
	return inst
}

// Peek returns the current snapshot store value without consuming it.
// Repeated calls return the same value until the next registry mutation.
// The server state mapper is never applied here; Peek always exposes the raw
// aggregate.
func (w *Wrapper[P, S]) Peek() (S, bool) {
	w.se.mu.Lock()
	defer w.se.mu.Unlock()
	return w.se.snapshot, w.se.hasSnapshot
}

// Rewind consumes the snapshot store: it returns the current value, run
// through the server state mapper if one was configured, and clears the
// store. A second Rewind with no intervening registry mutation returns
// ok=false. This is what lets a one-shot server render pass consume the
// collected state exactly once.
//
// Rewind panics if CanUseDOM is true; rewinding only makes sense in a
// single-pass server render. Interactive consumers should call Peek.
func (w *Wrapper[P, S]) Rewind() (S, bool) {
	se := w.se
	se.mu.Lock()
	defer se.mu.Unlock()

	if se.canUseDOM {
		panic("sideeffect: Rewind is only valid in a server render pass; use Peek in interactive environments")
	}

	var zero S
	if !se.hasSnapshot {
		return zero, false
	}
	state := se.snapshot
	if se.mapServer != nil {
		state = se.mapServer(state)
	}
	se.snapshot = zero
	se.hasSnapshot = false
	return state, true
}

// RewindEncoded rewinds and encodes the aggregated state for transport to
// the client. Returns ErrNoEncoder if the SideEffect was built without
// WithEncoder, and ErrNoSnapshot if the store is empty.
func (w *Wrapper[P, S]) RewindEncoded() (string, error) {
	if w.se.encoder == nil {
		return "", ErrNoEncoder
	}
	state, ok := w.Rewind()
	if !ok {
		return "", ErrNoSnapshot
	}
	encoded, err := w.se.encoder.Encode(state, w.se.sensitive)
	if err != nil {
		return "", wrapEncodingError(err)
	}
	return encoded, nil
}

// HydrateEncoded installs server-rendered aggregated state on the client.
// The decoded value becomes both the current snapshot and the notified
// baseline, so the first client render of an identical aggregate does not
// re-fire the change handler.
func (w *Wrapper[P, S]) HydrateEncoded(encoded string) (S, error) {
	var state S
	if w.se.encoder == nil {
		return state, ErrNoEncoder
	}
	if err := w.se.encoder.Decode(encoded, w.se.sensitive, &state); err != nil {
		return state, wrapEncodingError(err)
	}

	se := w.se
	se.mu.Lock()
	se.snapshot = state
	se.hasSnapshot = true
	se.notified = state
	se.hasNotified = true
	se.mu.Unlock()
	return state, nil
}

// Instance is one mounted occurrence of a wrapped display component. It is
// created by Wrapper.Mount and owned by the registry until Unmount; its
// identity is its position in mount order, which never changes while mounted.
type Instance[P, S any] struct {
	wrapper *Wrapper[P, S]
	props   P // guarded by wrapper.se.mu
	mounted bool
}

// Props returns the instance's current props.
func (i *Instance[P, S]) Props() P {
	i.wrapper.se.mu.Lock()
	defer i.wrapper.se.mu.Unlock()
	return i.props
}

// SetProps overwrites the instance's recorded props in place and runs
// aggregation. The instance's position in the registry is unchanged.
// Calling SetProps after Unmount is a no-op.
func (i *Instance[P, S]) SetProps(props P) {
	if !i.mounted {
		return
	}
	i.wrapper.se.update(i, props)
}

// Unmount removes the instance from the registry and runs aggregation.
// An instance never remounts; a component that reappears mounts as a fresh
// instance. Unmounting twice is a no-op.
func (i *Instance[P, S]) Unmount() {
	if !i.mounted {
		return
	}
	i.mounted = false
	i.wrapper.se.unmount(i)
}

// Render produces the wrapped component's output for this instance's current
// props. The wrapper adds no markup of its own - props pass through to the
// display component unchanged.
func (i *Instance[P, S]) Render(ctx context.Context) templ.Component {
	return i.wrapper.component.Render(ctx, i.Props())
}

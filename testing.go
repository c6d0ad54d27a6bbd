package sideeffect

import (
	"bytes"
	"context"
	"sync"
)

// Recorder collects change-handler invocations for assertions.
//
// Pass its Change method as the ChangeFunc when building a SideEffect:
//
//	rec := sideeffect.NewRecorder[[]TitleProps]()
//	se, err := sideeffect.New(identity, rec.Change)
//
// After driving mount/update/unmount traffic, States returns every state the
// handler received, in order. Because the notifier suppresses structurally
// equal states, the recorder also pins down the "exactly once per distinct
// aggregate" contract.
type Recorder[S any] struct {
	mu     sync.Mutex
	states []S
}

// NewRecorder creates an empty recorder.
func NewRecorder[S any]() *Recorder[S] {
	return &Recorder[S]{}
}

// Change records a handler invocation. Pass this method as the ChangeFunc.
func (r *Recorder[S]) Change(state S) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

// States returns a copy of every recorded state, in notification order.
func (r *Recorder[S]) States() []S {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]S, len(r.states))
	copy(out, r.states)
	return out
}

// Len returns the number of notifications delivered so far.
func (r *Recorder[S]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// Last returns the most recently recorded state, if any.
func (r *Recorder[S]) Last() (S, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		var zero S
		return zero, false
	}
	return r.states[len(r.states)-1], true
}

// Reset discards all recorded states.
func (r *Recorder[S]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = nil
}

// RenderToString renders a display component to HTML for assertions.
//
//	html, err := sideeffect.RenderToString(ctx, title, TitleProps{Text: "Home"})
func RenderToString[P any](ctx context.Context, r Renderer[P], props P) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(ctx, props).Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderInstance renders a mounted instance's current output to HTML.
func RenderInstance[P, S any](ctx context.Context, inst *Instance[P, S]) (string, error) {
	var buf bytes.Buffer
	if err := inst.Render(ctx).Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

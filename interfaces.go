package sideeffect

import (
	"context"

	"github.com/a-h/templ"
)

// Renderer is implemented by display components managed by a side-effect
// wrapper. P is the props type for the component.
//
// Render receives the props currently assigned to the mounted instance and
// should be pure - it reads props and produces output without touching the
// shared aggregated state. Wrapped instances pass their props through to
// Render unchanged.
//
// Example:
//
//	type Title struct{}
//
//	func (Title) Render(ctx context.Context, props TitleProps) templ.Component {
//	    // A pure side-effect component typically renders nothing visible.
//	    return templ.NopComponent
//	}
type Renderer[P any] interface {
	Render(ctx context.Context, props P) templ.Component
}

// RendererFunc adapts a plain function to the Renderer interface.
//
//	title := sideeffect.RendererFunc[TitleProps](func(ctx context.Context, p TitleProps) templ.Component {
//	    return templ.NopComponent
//	})
type RendererFunc[P any] func(ctx context.Context, props P) templ.Component

// Render calls f with the given props.
func (f RendererFunc[P]) Render(ctx context.Context, props P) templ.Component {
	return f(ctx, props)
}

// DisplayNamer is implemented by components that carry an explicit debugging
// name. When present and non-empty, it takes priority over the name derived
// from the component's type or function identity.
type DisplayNamer interface {
	DisplayName() string
}

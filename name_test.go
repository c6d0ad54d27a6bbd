package sideeffect

import (
	"context"
	"testing"

	"github.com/a-h/templ"
)

// namedComponent carries an explicit debugging name.
type namedComponent struct {
	name string
}

func (c namedComponent) Render(ctx context.Context, props map[string]string) templ.Component {
	return templ.NopComponent
}

func (c namedComponent) DisplayName() string {
	return c.name
}

// renderNothing is a package-level function component; its wrapper name
// should be derived from the function name.
func renderNothing(ctx context.Context, props map[string]string) templ.Component {
	return templ.NopComponent
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name      string
		component Renderer[map[string]string]
		want      string
	}{
		{"explicit display name", namedComponent{name: "DocumentTitle"}, "SideEffect(DocumentTitle)"},
		{"empty display name falls back to type", namedComponent{}, "SideEffect(namedComponent)"},
		{"struct component", nopComponent{}, "SideEffect(nopComponent)"},
		{"pointer component", &nopComponent{}, "SideEffect(nopComponent)"},
		{"named function component", RendererFunc[map[string]string](renderNothing), "SideEffect(renderNothing)"},
		{
			"anonymous function component",
			RendererFunc[map[string]string](func(ctx context.Context, props map[string]string) templ.Component {
				return templ.NopComponent
			}),
			"SideEffect(Component)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se, err := New(identity, discard)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			w, err := se.Wrap(tt.component)
			if err != nil {
				t.Fatalf("Wrap() error = %v", err)
			}
			if got := w.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComponentNameMethodValue(t *testing.T) {
	// A method value resolves to the method's bare name.
	c := nopComponent{}
	got := componentName(RendererFunc[map[string]string](c.Render))
	if got != "Render" {
		t.Errorf("componentName(method value) = %q, want %q", got, "Render")
	}
}

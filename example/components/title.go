package components

import (
	"context"

	"github.com/a-h/templ"
	sideeffect "github.com/rolandcrosby/preact-side-effect"
)

// TitleProps carries one component's declared document title.
type TitleProps struct {
	Text string `msgpack:"text"`
}

// Title is a pure side-effect component: mounting it declares a document
// title, and it renders nothing of its own.
type Title struct{}

// Render returns no markup. The aggregated title reaches the document head
// through the wrapper, not through this component's output.
func (Title) Render(ctx context.Context, props TitleProps) templ.Component {
	return templ.NopComponent
}

// DisplayName names the wrapper "SideEffect(DocumentTitle)" in debug output.
func (Title) DisplayName() string {
	return "DocumentTitle"
}

// reduceTitle picks the innermost declared title: the instance mounted last
// wins, the way nested pages override their layout's default.
func reduceTitle(props []TitleProps) string {
	if len(props) == 0 {
		return ""
	}
	return props[len(props)-1].Text
}

// NewDocumentTitle wires the Title component into a managed wrapper.
// onApply runs on the client whenever the winning title changes.
func NewDocumentTitle(onApply func(title string), enc *sideeffect.Encoder) (*sideeffect.Wrapper[TitleProps, string], error) {
	se, err := sideeffect.New(reduceTitle, onApply,
		sideeffect.WithEncoder[TitleProps, string](enc))
	if err != nil {
		return nil, err
	}
	return se.Wrap(Title{})
}

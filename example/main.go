// Command example serves a two-page site whose document titles are collected
// through side-effect wrappers during a single-pass server render. Each page
// mounts Title instances as its sections render; the innermost mount wins.
// The rewound title lands in <head>, and the signed snapshot is embedded for
// client hydration.
package main

import (
	"context"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	sideeffect "github.com/rolandcrosby/preact-side-effect"

	"github.com/rolandcrosby/preact-side-effect/example/components"
)

func main() {
	// In production, use a real secret.
	key := []byte("example-key-must-be-32-bytes!!")
	enc, err := sideeffect.NewEncoder(key)
	if err != nil {
		log.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", page(enc, "Example App", homeBody))
	mux.HandleFunc("/inbox", page(enc, "Inbox (3) | Example App", inboxBody))

	addr := ":8080"
	fmt.Printf("Starting server at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}

// page builds a handler that runs one server render pass: a fresh wrapper
// per request, mounts during body rendering, one rewind into the layout.
func page(enc *sideeffect.Encoder, title string, body func() templ.Component) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleFx, err := components.NewDocumentTitle(applyTitle, enc)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// The render engine would mount these as the tree is walked; the
		// sections below declare their titles the same way.
		titleFx.Mount(components.TitleProps{Text: "Example App"})
		titleFx.Mount(components.TitleProps{Text: title})

		snapshot, err := titleFx.RewindEncoded()
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := layout(title, snapshot, body()).Render(r.Context(), w); err != nil {
			log.Printf("render: %v", err)
		}
	}
}

// applyTitle is the client-side change handler. In a js/wasm build it would
// assign document.title; the server never invokes it.
func applyTitle(title string) {
	log.Printf("document.title = %q", title)
}

// layout renders the HTML shell with the aggregated title and the embedded
// snapshot for hydration.
func layout(title, snapshot string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<!DOCTYPE html><html><head><title>")
		sb.WriteString(html.EscapeString(title))
		sb.WriteString(`</title><meta name="side-effect-state" content="`)
		sb.WriteString(html.EscapeString(snapshot))
		sb.WriteString(`"></head><body>`)
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func homeBody() templ.Component {
	return textComponent("<h1>Home</h1><p>See <a href=\"/inbox\">your inbox</a>.</p>")
}

func inboxBody() templ.Component {
	return textComponent("<h1>Inbox</h1><p>3 unread messages.</p>")
}

func textComponent(markup string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

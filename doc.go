// Package sideeffect turns display components into members of a managed
// group whose props are merged into one aggregated value and handed to an
// external handler whenever that value actually changes.
//
// The canonical use case is document metadata: many independently mounted
// components each declare a title or meta fragment, and something has to
// merge those declarations, pick a winner, and apply the result - on the
// client by mutating the live document, on the server by collecting the
// value during a single string-rendering pass.
//
// # Core Concepts
//
// A SideEffect is created from a reducer and a change handler and owns all
// shared state for one wrapper configuration: the mount registry, the
// snapshot store, the notification baseline, and the environment flag.
//
//	se, err := sideeffect.New(reduceTitle, applyTitle)
//	title, err := se.Wrap(titleComponent)
//
// Wrap validates the display component and produces a Wrapper. Mounting a
// wrapper yields an Instance whose lifecycle the render engine drives:
//
//	inst := title.Mount(TitleProps{Text: "Inbox"})
//	inst.SetProps(TitleProps{Text: "Inbox (3)"})
//	inst.Unmount()
//
// Every transition re-reduces the full registry in mount order and stores
// the result in the snapshot store. If the wrapper's CanUseDOM flag is true
// and the new aggregate differs structurally from the last notified value,
// the change handler fires exactly once. Re-renders that reproduce an equal
// aggregate never re-fire it.
//
// # Server Rendering
//
// Non-interactive consumers pull instead of being pushed to. Peek reads the
// freshest raw aggregate non-destructively; Rewind consumes it:
//
//	state, ok := title.Rewind() // second call without a mutation: ok == false
//
// Rewind applies the optional server state mapper (MapStateOnServer) and
// clears the store, so a one-shot render pass consumes the collected state
// exactly once. Rewind panics when CanUseDOM is true - rewinding implies a
// single-pass server render and is meaningless once a browser is managing
// the component tree.
//
// # Snapshot Transport
//
// With an Encoder configured, the rewound aggregate can be embedded in the
// server-rendered page and installed on the client without re-firing the
// change handler for state the server already applied:
//
//	enc, _ := sideeffect.NewEncoder(secret)
//	se, _ := sideeffect.New(reduceTitle, applyTitle,
//	    sideeffect.WithEncoder[TitleProps, string](enc))
//
//	// server
//	blob, err := title.RewindEncoded()
//
//	// client
//	state, err := title.HydrateEncoded(blob)
//
// Snapshots are msgpack-serialized and HMAC-signed by default; Sensitive()
// switches to AES-256-GCM for state that must be opaque to clients.
//
// # Design Rationale
//
// The registry is explicit state owned by the SideEffect, never a package
// global: two New calls never share aggregated state even with identical
// reducers. The snapshot store and the notified baseline are deliberately
// separate - servers always see the freshest aggregate via Peek while
// clients are insulated from duplicate notifications. The environment flag
// is a capability check read at decision time, overridable per wrapper type
// with SetCanUseDOM, so tests can force server or client behavior without
// faking the runtime.
package sideeffect

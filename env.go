package sideeffect

import "runtime"

// detectInteractive reports whether this process can manipulate a live,
// browser-managed display surface. Wrappers read it once at creation time to
// seed their CanUseDOM flag; tests and server renderers override the flag via
// SetCanUseDOM instead of faking the runtime.
func detectInteractive() bool {
	return runtime.GOOS == "js" && runtime.GOARCH == "wasm"
}

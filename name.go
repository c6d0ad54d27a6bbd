package sideeffect

import (
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

// fallbackName is used when no name can be derived from the component.
const fallbackName = "Component"

// anonFrame matches the segment runtime gives closures ("func1", "func2", ...).
var anonFrame = regexp.MustCompile(`^func\d+$`)

// digits matches the numeric counters nested closures append ("func1.2").
var digits = regexp.MustCompile(`^\d+$`)

// wrapperName derives the debugging name for a wrapper around the given
// component: "SideEffect(" + componentName + ")".
func wrapperName(component any) string {
	return "SideEffect(" + componentName(component) + ")"
}

// componentName resolves a component's name in priority order: an explicit
// DisplayName, the function name for func-backed components, the type name
// for struct components, and finally the "Component" fallback.
func componentName(component any) string {
	if n, ok := component.(DisplayNamer); ok {
		if name := n.DisplayName(); name != "" {
			return name
		}
	}

	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Func {
		return funcName(v.Pointer())
	}

	t := reflect.TypeOf(component)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t != nil {
		if name := trimTypeArgs(t.Name()); name != "" {
			return name
		}
	}
	return fallbackName
}

// funcName resolves the bare name of the function at pc. Closures and other
// anonymous frames resolve to the fallback.
func funcName(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return fallbackName
	}

	// Method values carry a "-fm" suffix.
	name := strings.TrimSuffix(fn.Name(), "-fm")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	segments := strings.Split(name, ".")
	// Nested closures append numeric counters ("TestX.func1.2").
	for len(segments) > 0 && digits.MatchString(segments[len(segments)-1]) {
		segments = segments[:len(segments)-1]
	}
	if len(segments) == 0 {
		return fallbackName
	}

	last := trimTypeArgs(segments[len(segments)-1])
	if last == "" || anonFrame.MatchString(last) {
		return fallbackName
	}
	return last
}

// trimTypeArgs strips the instantiation markers reflect and runtime append to
// generic names ("Title[main.Props]" -> "Title").
func trimTypeArgs(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

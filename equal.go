package sideeffect

import "reflect"

// stateEqual reports whether two aggregated state values are structurally
// equal. The notifier uses it to suppress duplicate change notifications when
// a re-render reproduces the previous aggregate.
//
// Note that a nil slice and an empty slice are distinct under deep equality;
// reducers should produce one or the other consistently.
func stateEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

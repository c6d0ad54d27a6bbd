package sideeffect

// mounts is the ordered collection of currently mounted wrapped instances.
// Insertion order is mount order, and the order never changes for the life of
// an entry: prop updates happen in place on the instance, and removal closes
// the gap without reordering.
//
// mounts has no lock of its own. It is owned by a SideEffect and only mutated
// under its mutex, from the three lifecycle transitions (mount, prop update,
// unmount).
type mounts[P, S any] struct {
	entries []*Instance[P, S]
}

// add appends an instance, preserving call order among instances mounted in
// the same render pass.
func (m *mounts[P, S]) add(inst *Instance[P, S]) {
	m.entries = append(m.entries, inst)
}

// remove deletes the instance by identity. Removing an instance that is not
// present is a no-op.
func (m *mounts[P, S]) remove(inst *Instance[P, S]) {
	for i, e := range m.entries {
		if e == inst {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

// props returns the mounted instances' props in mount order. The slice is
// freshly allocated; reducers may retain it.
func (m *mounts[P, S]) props() []P {
	out := make([]P, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.props
	}
	return out
}

// size returns the number of mounted instances.
func (m *mounts[P, S]) size() int {
	return len(m.entries)
}

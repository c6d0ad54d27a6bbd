package sideeffect

import (
	"reflect"
	"testing"
)

func TestMountsOrdering(t *testing.T) {
	var m mounts[string, []string]

	a := &Instance[string, []string]{props: "a"}
	b := &Instance[string, []string]{props: "b"}
	c := &Instance[string, []string]{props: "c"}

	m.add(a)
	m.add(b)
	m.add(c)

	if got, want := m.props(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("props() = %v, want %v", got, want)
	}

	// In-place update keeps registry position.
	b.props = "b2"
	if got, want := m.props(), []string{"a", "b2", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("props() after update = %v, want %v", got, want)
	}

	// Removal closes the gap without reordering.
	m.remove(b)
	if got, want := m.props(), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("props() after remove = %v, want %v", got, want)
	}

	// Remounting appends at the end as a fresh entry.
	d := &Instance[string, []string]{props: "b"}
	m.add(d)
	if got, want := m.props(), []string{"a", "c", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("props() after remount = %v, want %v", got, want)
	}
}

func TestMountsRemoveMissing(t *testing.T) {
	var m mounts[string, []string]
	a := &Instance[string, []string]{props: "a"}
	m.add(a)

	m.remove(&Instance[string, []string]{props: "a"})
	if m.size() != 1 {
		t.Fatalf("size() = %d, want 1: removal matches by identity, not props", m.size())
	}

	m.remove(a)
	if m.size() != 0 {
		t.Fatalf("size() = %d, want 0", m.size())
	}

	m.remove(a)
	if m.size() != 0 {
		t.Fatalf("size() after duplicate remove = %d, want 0", m.size())
	}
}

func TestMountsPropsIsFreshSlice(t *testing.T) {
	var m mounts[string, []string]
	m.add(&Instance[string, []string]{props: "a"})

	first := m.props()
	first[0] = "mutated"

	if got := m.props(); got[0] != "a" {
		t.Fatalf("props() = %v; reducers must not be able to corrupt the registry", got)
	}
}

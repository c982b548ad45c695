// Package queue defines the uniform contract shared by every priority-queue
// variant in this module: binaryheap, binomial, fibheap, strictfib, brodal,
// listqueue, and thirdparty all implement Interface over the same Entry
// handle and error taxonomy.
package queue

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Priority is any type with a strict weak order under <. Smaller means
// higher priority. NaN-like values are out of scope: callers must supply
// values that order strictly.
type Priority interface {
	constraints.Ordered
}

var (
	// ErrEmpty is returned by FindMin/DeleteMin when the queue has no elements.
	ErrEmpty = errors.New("queue: empty")
	// ErrKeyNotDecreased is returned by DecreaseKey when the new key is not
	// lower than or equal to the entry's current key.
	ErrKeyNotDecreased = errors.New("queue: new key is not lower than current key")
	// ErrWrongHeap is returned when an Entry is passed to a heap other than
	// the one that produced it.
	ErrWrongHeap = errors.New("queue: entry does not belong to this heap")
	// ErrWrongKind is returned by Meld when the argument is a different
	// concrete variant than the receiver.
	ErrWrongKind = errors.New("queue: meld argument is a different queue variant")
	// ErrNotSupported is returned by variants that do not offer an operation
	// (e.g. Meld on the binary heap is O(n) but listqueue refuses it outright
	// in the original baseline and thirdparty wrapper).
	ErrNotSupported = errors.New("queue: operation not supported by this variant")
)

// Entry is the opaque handle returned by Insert. It remains valid from
// insertion until the element it refers to is returned by DeleteMin; its
// state after that point is undefined. Entries are owned by exactly one
// heap — passing one to another heap's DecreaseKey fails with ErrWrongHeap.
type Entry[P Priority, V any] interface {
	// Priority returns the entry's current priority.
	Priority() P
	// Value returns the element stored at insertion time.
	Value() V
}

// Interface is the contract every heap variant in this module satisfies.
// Operations are synchronous and single-threaded; only DeleteMin does
// non-constant work in the general case.
type Interface[P Priority, V any] interface {
	// Insert adds v with priority p and returns a handle usable with
	// DecreaseKey. Size increases by one.
	Insert(v V, p P) Entry[P, V]

	// FindMin returns the element with minimum priority without mutating
	// the heap. It fails with ErrEmpty if the heap has no elements.
	FindMin() (V, error)

	// DeleteMin removes and returns the element with minimum priority.
	// It fails with ErrEmpty if the heap has no elements.
	DeleteMin() (V, error)

	// DecreaseKey lowers e's priority to p. p must be lower than or equal
	// to e's current priority, else it fails with ErrKeyNotDecreased and
	// leaves the heap unmodified. If e does not belong to this heap it
	// fails with ErrWrongHeap.
	DecreaseKey(e Entry[P, V], p P) error

	// Meld consumes both this heap and other, returning a heap that owns
	// the union of their elements; both become empty. If other is not the
	// same concrete variant as the receiver, it fails with ErrWrongKind.
	// Variants that don't support melding fail with ErrNotSupported.
	Meld(other Interface[P, V]) (Interface[P, V], error)

	// Size returns the number of elements currently held.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// Clear removes every element, leaving the heap with Size() == 0.
	Clear()
}

// Package listqueue implements the unordered-list correctness baseline from
// spec.md §4.7 (factory tag "pairing_like_list"), grounded on
// original_source/PrioQueues/JustListPrioQueue.h: Insert is O(1), FindMin
// and DeleteMin do a linear scan, and Meld is refused outright exactly as
// the original's deleteMin/meld pair does.
package listqueue

import (
	"github.com/vhornak/prioq/queue"
)

type entry[P queue.Priority, V any] struct {
	value V
	prio  P
	index int
	owner *Heap[P, V]
}

func (e *entry[P, V]) Priority() P { return e.prio }
func (e *entry[P, V]) Value() V    { return e.value }

// Heap is an unordered slice of entries scanned linearly on every query.
type Heap[P queue.Priority, V any] struct {
	data []*entry[P, V]
}

// New returns an empty list-backed queue.
func New[P queue.Priority, V any]() *Heap[P, V] {
	return &Heap[P, V]{data: make([]*entry[P, V], 0, 4)}
}

// Insert appends a new entry in O(1).
func (h *Heap[P, V]) Insert(v V, p P) queue.Entry[P, V] {
	e := &entry[P, V]{value: v, prio: p, index: len(h.data), owner: h}
	h.data = append(h.data, e)
	return e
}

func (h *Heap[P, V]) findMinIndex() int {
	min := 0
	for i, e := range h.data {
		if e.prio < h.data[min].prio {
			min = i
		}
	}
	return min
}

// FindMin scans the whole list for the minimum in O(n).
func (h *Heap[P, V]) FindMin() (V, error) {
	if h.IsEmpty() {
		var zero V
		return zero, queue.ErrEmpty
	}
	return h.data[h.findMinIndex()].value, nil
}

// DeleteMin scans for the minimum, swaps it with the last entry, and pops.
// O(n).
func (h *Heap[P, V]) DeleteMin() (V, error) {
	if h.IsEmpty() {
		var zero V
		return zero, queue.ErrEmpty
	}
	idx := h.findMinIndex()
	ret := h.data[idx].value

	last := len(h.data) - 1
	h.data[idx] = h.data[last]
	h.data[idx].index = idx
	h.data = h.data[:last]

	return ret, nil
}

// DecreaseKey sets the new priority in place; no reordering is needed since
// the list isn't heap-ordered.
func (h *Heap[P, V]) DecreaseKey(e queue.Entry[P, V], p P) error {
	item, ok := e.(*entry[P, V])
	if !ok || item.owner != h {
		return queue.ErrWrongHeap
	}
	if p > item.prio {
		return queue.ErrKeyNotDecreased
	}
	item.prio = p
	return nil
}

// Meld is not supported, matching the original's meld() throwing
// "Not supported yet.".
func (h *Heap[P, V]) Meld(other queue.Interface[P, V]) (queue.Interface[P, V], error) {
	return nil, queue.ErrNotSupported
}

// Size returns the number of elements held.
func (h *Heap[P, V]) Size() int { return len(h.data) }

// IsEmpty reports whether Size() == 0.
func (h *Heap[P, V]) IsEmpty() bool { return len(h.data) == 0 }

// Clear removes every element.
func (h *Heap[P, V]) Clear() {
	h.data = h.data[:0]
}

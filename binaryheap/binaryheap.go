// Package binaryheap implements the array-backed implicit binary heap from
// spec.md §4.2, grounded on original_source/PrioQueues/BinaryHeap.h. Insert,
// DeleteMin, and DecreaseKey are O(lg n) and FindMin is O(1); Meld is the
// "insert each element of the other heap" variant the original documents as
// a TODO.
package binaryheap

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

func (e *entry[P, V]) less(other *entry[P, V]) bool {
	return e.prio < other.prio
}

// Heap is an array-backed binary min-heap.
type Heap[P queue.Priority, V any] struct {
	data []*entry[P, V]
}

// New returns an empty binary heap.
func New[P queue.Priority, V any]() *Heap[P, V] {
	return &Heap[P, V]{data: make([]*entry[P, V], 0, 4)}
}

// Insert appends a new leaf and sifts it up.
func (h *Heap[P, V]) Insert(v V, p P) queue.Entry[P, V] {
	e := &entry[P, V]{value: v, prio: p, index: len(h.data), owner: h}
	h.data = append(h.data, e)
	h.siftUp(e.index)
	return e
}

// FindMin returns the root element without mutating the heap.
func (h *Heap[P, V]) FindMin() (V, error) {
	if h.IsEmpty() {
		var zero V
		return zero, queue.ErrEmpty
	}
	return h.data[0].value, nil
}

// DeleteMin swaps the root with the last leaf, pops it, and sifts down.
func (h *Heap[P, V]) DeleteMin() (V, error) {
	if h.IsEmpty() {
		var zero V
		return zero, queue.ErrEmpty
	}

	min := h.data[0]
	last := h.data[len(h.data)-1]
	h.data = h.data[:len(h.data)-1]

	if len(h.data) > 0 {
		h.data[0] = last
		last.index = 0
		h.siftDown(0)
	}

	return min.value, nil
}

// DecreaseKey looks up the node by its cached array index and sifts up.
func (h *Heap[P, V]) DecreaseKey(e queue.Entry[P, V], p P) error {
	item, ok := e.(*entry[P, V])
	if !ok || item.owner != h {
		return queue.ErrWrongHeap
	}
	if p > item.prio {
		return queue.ErrKeyNotDecreased
	}
	item.prio = p
	h.siftUp(item.index)
	return nil
}

// Meld returns a new heap that takes over h's array and sifts in every
// element of other one at a time, O(m lg n) for m elements in other; h and
// other are both left empty, and existing handles move to the new heap.
func (h *Heap[P, V]) Meld(other queue.Interface[P, V]) (queue.Interface[P, V], error) {
	otherHeap, ok := other.(*Heap[P, V])
	if !ok {
		return nil, queue.ErrWrongKind
	}
	m := &Heap[P, V]{data: h.data}
	h.data = make([]*entry[P, V], 0, 4)
	for _, e := range m.data {
		e.owner = m
	}
	for _, e := range otherHeap.data {
		e.owner = m
		e.index = len(m.data)
		m.data = append(m.data, e)
		m.siftUp(e.index)
	}
	otherHeap.data = make([]*entry[P, V], 0, 4)
	return m, nil
}

// Size returns the number of elements held.
func (h *Heap[P, V]) Size() int { return len(h.data) }

// IsEmpty reports whether Size() == 0.
func (h *Heap[P, V]) IsEmpty() bool { return len(h.data) == 0 }

// Clear removes every element.
func (h *Heap[P, V]) Clear() {
	h.data = h.data[:0]
}

func (h *Heap[P, V]) siftUp(index int) {
	child := h.data[index]
	for index > 0 {
		parentIndex := (index - 1) >> 1
		parent := h.data[parentIndex]
		if !child.less(parent) {
			break
		}
		h.data[index] = parent
		parent.index = index
		index = parentIndex
	}
	h.data[index] = child
	child.index = index
}

func (h *Heap[P, V]) siftDown(index int) {
	item := h.data[index]
	leafBorder := len(h.data) >> 1

	for index < leafBorder {
		childIndex := (index << 1) + 1
		if childIndex < len(h.data)-1 && h.data[childIndex+1].less(h.data[childIndex]) {
			childIndex++
		}
		if item.less(h.data[childIndex]) {
			break
		}
		h.data[index] = h.data[childIndex]
		h.data[index].index = index
		index = childIndex
	}

	h.data[index] = item
	item.index = index
}

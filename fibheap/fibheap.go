// Package fibheap implements the lazy Fibonacci heap from spec.md §4.4,
// grounded on the ksw2000/go-fibheap teacher: a circular-doubly-linked root
// list, mark-and-cascading-cut on DecreaseKey, and lazy consolidation
// deferred to DeleteMin. Insert, FindMin, DecreaseKey, and Meld are Θ(1)
// amortized; DeleteMin is O(lg n) amortized.
package fibheap

import (
	"math"

	"github.com/vhornak/prioq/queue"
)

// ownerBox is a shared, indirected ownership record: every node points at
// the box its owning Heap held at insertion time rather than at the Heap
// directly, so Meld can reassign ownership of an entire root list in O(1)
// by redirecting one box's heap field instead of walking every node.
type ownerBox[P queue.Priority, V any] struct {
	heap *Heap[P, V]
}

// node is both the internal tree node and the Entry handle Insert returns;
// the teacher's Element played the same dual role.
type node[P queue.Priority, V any] struct {
	p, r, l  *node[P, V]
	children *node[P, V]
	// degree packs the child count into the upper bits and the cut-mark
	// into the LSB, same bit trick as the teacher's Element.degree.
	degree uint32
	prio   P
	value  V
	owner  *ownerBox[P, V]
}

func (n *node[P, V]) Priority() P { return n.prio }
func (n *node[P, V]) Value() V    { return n.value }

func (n *node[P, V]) getDegree() int   { return int(n.degree >> 1) }
func (n *node[P, V]) increaseDegree()  { n.degree += 2 }
func (n *node[P, V]) decreaseDegree()  { n.degree -= 2 }
func (n *node[P, V]) getMark() bool    { return n.degree&1 == 1 }
func (n *node[P, V]) clearMark()       { n.degree = n.degree &^ 1 }
func (n *node[P, V]) setMark()         { n.degree = n.degree | 1 }

// append splices m into n's circular sibling list, just to the left of n,
// and returns n (or m if n is nil).
func (n *node[P, V]) append(m *node[P, V]) *node[P, V] {
	if m == nil {
		return n
	}
	if n == nil {
		m.l, m.r = m, m
		return m
	}
	r := n.r
	n.r = m
	m.l = n
	m.r = r
	r.l = m
	return n
}

// Heap is a lazy Fibonacci heap: a root list of heap-ordered trees plus a
// cached pointer to the minimum root.
type Heap[P queue.Priority, V any] struct {
	elements int
	min      *node[P, V]
	box      *ownerBox[P, V]
}

// New returns an empty Fibonacci heap.
func New[P queue.Priority, V any]() *Heap[P, V] {
	h := &Heap[P, V]{}
	h.box = &ownerBox[P, V]{heap: h}
	return h
}

// Size returns the number of elements held.
func (h *Heap[P, V]) Size() int { return h.elements }

// IsEmpty reports whether Size() == 0.
func (h *Heap[P, V]) IsEmpty() bool { return h.elements == 0 }

// Insert splices a new singleton root into the root list in Θ(1).
func (h *Heap[P, V]) Insert(v V, p P) queue.Entry[P, V] {
	n := &node[P, V]{prio: p, value: v, owner: h.box}
	h.elements++
	h.min = h.min.append(n)
	if n.prio < h.min.prio {
		h.min = n
	}
	return n
}

// FindMin returns the cached minimum root's value in Θ(1).
func (h *Heap[P, V]) FindMin() (V, error) {
	if h.IsEmpty() {
		var zero V
		return zero, queue.ErrEmpty
	}
	return h.min.value, nil
}

// DeleteMin splices the minimum root's children into the root list, removes
// the root, and consolidates trees of equal degree. O(lg n) amortized.
func (h *Heap[P, V]) DeleteMin() (V, error) {
	if h.IsEmpty() {
		var zero V
		return zero, queue.ErrEmpty
	}

	if h.min.children != nil {
		h.min.children.p = nil
		for c := h.min.children.r; c != h.min.children; c = c.r {
			c.p = nil
		}
		l := h.min.children.l
		r := h.min.r
		h.min.r = h.min.children
		h.min.children.l = h.min
		l.r = r
		r.l = l
	}

	z := h.min
	if h.min.r == h.min.l && h.min.r == h.min {
		h.min = nil
	} else {
		h.min.l.r = h.min.r
		h.min.r.l = h.min.l
		h.min = h.min.r
		h.consolidate()
	}
	h.elements--

	return z.value, nil
}

// d returns floor(log_φ(a)), the largest degree a tree in a heap of a
// nodes can reach, so the degree-indexed consolidation buffer always has a
// slot for the largest tree that can occur.
func d(a int) int {
	return int(math.Log(float64(a)) / math.Log(math.Phi))
}

func (h *Heap[P, V]) consolidate() {
	a := make([]*node[P, V], d(h.elements)+1)
	end := h.min.l
	for w := h.min; ; {
		next := w.r
		x := w
		deg := x.getDegree()
		for a[deg] != nil {
			y := a[deg]
			if y.prio < x.prio {
				x, y = y, x
			}
			h.link(y, x)
			a[deg] = nil
			deg++
		}
		a[deg] = x
		if w == end {
			break
		}
		w = next
	}
	h.min = nil
	for _, n := range a {
		if n == nil {
			continue
		}
		n.l.r = n.r
		n.r.l = n.l
		n.l = n
		n.r = n

		if h.min == nil {
			h.min = n
			continue
		}
		h.min = h.min.append(n)
		if n.prio < h.min.prio {
			h.min = n
		}
	}
}

// link removes y from the root list and makes it a child of x.
func (h *Heap[P, V]) link(y, x *node[P, V]) {
	y.l.r = y.r
	y.r.l = y.l

	x.children = x.children.append(y)

	x.increaseDegree()
	y.p = x
	y.clearMark()
}

// DecreaseKey lowers e's priority and, if that breaks heap order against its
// parent, cuts e to the root list and cascades the cut upward. Θ(1)
// amortized.
func (h *Heap[P, V]) DecreaseKey(e queue.Entry[P, V], p P) error {
	x, ok := e.(*node[P, V])
	if !ok || x.owner.heap != h {
		return queue.ErrWrongHeap
	}
	if p > x.prio {
		return queue.ErrKeyNotDecreased
	}
	x.prio = p
	par := x.p
	if par != nil && x.prio < par.prio {
		h.cut(x, par)
		h.cascadingCut(par)
	}
	if x.prio < h.min.prio {
		h.min = x
	}
	return nil
}

// cut detaches x from its parent p and adds it to the root list.
func (h *Heap[P, V]) cut(x, p *node[P, V]) {
	p.decreaseDegree()

	if x == x.r {
		p.children = nil
	} else {
		x.l.r = x.r
		x.r.l = x.l

		if p.children == x {
			p.children = x.r
		}
	}

	x.l = x
	x.r = x
	x.p = nil
	x.clearMark()
	h.min = h.min.append(x)
}

// cascadingCut propagates a cut upward: the first cut of a child just marks
// the parent, the second cuts the parent too and recurses.
func (h *Heap[P, V]) cascadingCut(y *node[P, V]) {
	z := y.p
	if z != nil {
		if !y.getMark() {
			y.setMark()
		} else {
			h.cut(y, z)
			h.cascadingCut(z)
		}
	}
}

// Meld splices h's and other's root lists together in Θ(1); both become
// empty and the union is returned as a new heap, as the original's Union
// does. Ownership of every existing node transfers in O(1): h's and g's
// boxes are redirected at the new heap instead of being walked node by
// node.
func (h *Heap[P, V]) Meld(other queue.Interface[P, V]) (queue.Interface[P, V], error) {
	g, ok := other.(*Heap[P, V])
	if !ok {
		return nil, queue.ErrWrongKind
	}

	m := &Heap[P, V]{elements: g.elements + h.elements}
	m.box = &ownerBox[P, V]{heap: m}
	h.box.heap = m
	g.box.heap = m

	if h.min != nil && g.min != nil {
		l := g.min.l
		r := h.min.r
		h.min.r = g.min
		g.min.l = h.min
		l.r = r
		r.l = l

		if h.min.prio < g.min.prio {
			m.min = h.min
		} else {
			m.min = g.min
		}
	} else if h.min != nil {
		m.min = h.min
	} else {
		m.min = g.min
	}

	h.min = nil
	h.elements = 0
	h.box = &ownerBox[P, V]{heap: h}
	g.min = nil
	g.elements = 0
	g.box = &ownerBox[P, V]{heap: g}

	return m, nil
}

// Clear removes every element.
func (h *Heap[P, V]) Clear() {
	h.min = nil
	h.elements = 0
}

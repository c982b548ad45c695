// Package strictfib implements the strict Fibonacci heap from spec.md §4.5,
// grounded on original_source/PrioQueues/StrictFibonacciHeap.h: a single
// tree with a shared active record, a FIFO queue of non-root nodes serviced
// two heads per delete-min, and rank/loss bookkeeping behind insert,
// find-min, decrease-key, meld, and delete-min. Each operation runs its
// reductions to completion rather than a constant number per call, so the
// bounds are not worst-case ones.
//
// The original's fix-lists and rank-list thread single/paired fix-records
// through a shared doubly linked integer line so the reduction checks are
// O(1) pointer peeks. This package keeps the same vocabulary (active
// records, rank, loss, active-root and loss reductions) but indexes
// candidates for those reductions with rank-keyed maps rather than
// reproducing that exact linked discipline; see DESIGN.md.
package strictfib

import (
	"github.com/vhornak/prioq/queue"
)

// activeRecord is shared by every active node of a heap. Meld flips a
// losing heap's record to passive in a single write, instantly demoting
// every node that still points at it.
type activeRecord struct {
	active bool
}

// ownerBox lets Meld reassign ownership of an entire tree/queue in O(1) by
// redirecting one box's heap field, the same indirection used for
// activeRecord.
type ownerBox[P queue.Priority, V any] struct {
	heap *Heap[P, V]
}

type entry[P queue.Priority, V any] struct {
	value V
	prio  P
	node  *node[P, V]
}

func (e *entry[P, V]) Priority() P { return e.prio }
func (e *entry[P, V]) Value() V    { return e.value }

type node[P queue.Priority, V any] struct {
	entry *entry[P, V]
	owner *ownerBox[P, V]

	parent       *node[P, V]
	left, right  *node[P, V] // circular among siblings (children of same parent)
	child        *node[P, V] // one arbitrary (most-recently-linked) child

	qprev, qnext *node[P, V]

	active         *activeRecord
	rank           int
	loss           int
	activeChildren int
}

func (n *node[P, V]) less(other *node[P, V]) bool { return n.entry.prio < other.entry.prio }

func (n *node[P, V]) isActive() bool { return n.active != nil && n.active.active }
func (n *node[P, V]) isRoot() bool   { return n.parent == nil }

func (n *node[P, V]) isActiveRoot() bool {
	return n.isActive() && n.parent != nil && !n.parent.isActive()
}

func (n *node[P, V]) isPassiveLinkable() bool {
	return !n.isActive() && n.activeChildren == 0
}

func (n *node[P, V]) isViolating() bool {
	return n.parent != nil && n.less(n.parent)
}

func (n *node[P, V]) makeActive(record *activeRecord) {
	n.active = record
	n.rank = 0
	n.loss = 0
}

func (n *node[P, V]) makePassive() {
	n.active = nil
	n.loss = 0
}

func (n *node[P, V]) swapEntries(other *node[P, V]) {
	n.entry, other.entry = other.entry, n.entry
	n.entry.node = n
	other.entry.node = other
}

// link attaches child as a sibling in n's circular child list and bumps n's
// active-child count if child is currently active.
func (n *node[P, V]) link(child *node[P, V]) {
	child.parent = n
	if n.child == nil {
		child.left, child.right = child, child
	} else {
		last := n.child
		first := last.right
		last.right = child
		child.left = last
		child.right = first
		first.left = child
	}
	n.child = child
	if child.isActive() {
		n.activeChildren++
	}
}

// unlink detaches child from n's circular child list.
func (n *node[P, V]) unlink(child *node[P, V]) {
	wasActive := child.isActive()
	if child.right == child {
		n.child = nil
	} else {
		child.left.right = child.right
		child.right.left = child.left
		if n.child == child {
			n.child = child.left
		}
	}
	child.parent = nil
	child.left, child.right = nil, nil
	if wasActive {
		n.activeChildren--
	}
}

// findPassiveChild returns an arbitrary passive child of n, or nil.
func (n *node[P, V]) findPassiveChild() *node[P, V] {
	if n.child == nil {
		return nil
	}
	start := n.child
	c := start
	for {
		if !c.isActive() {
			return c
		}
		c = c.right
		if c == start {
			break
		}
	}
	return nil
}

// Heap is a strict Fibonacci heap: a single tree rooted at root, a FIFO
// queue of its non-root nodes, and the rank/loss bookkeeping that drives
// the O(1) reductions.
type Heap[P queue.Priority, V any] struct {
	size int
	root *node[P, V]
	box  *ownerBox[P, V]

	activeRecord *activeRecord
	queueHead    *node[P, V]

	activeRootsByRank map[int]*node[P, V]
	lossByRank        map[int][]*node[P, V]
}

// New returns an empty strict Fibonacci heap.
func New[P queue.Priority, V any]() *Heap[P, V] {
	h := &Heap[P, V]{
		activeRecord:      &activeRecord{active: true},
		activeRootsByRank: map[int]*node[P, V]{},
		lossByRank:        map[int][]*node[P, V]{},
	}
	h.box = &ownerBox[P, V]{heap: h}
	return h
}

// Size returns the number of elements held.
func (h *Heap[P, V]) Size() int { return h.size }

// IsEmpty reports whether Size() == 0.
func (h *Heap[P, V]) IsEmpty() bool { return h.size == 0 }

func (h *Heap[P, V]) prependQueue(n *node[P, V]) {
	if h.queueHead == nil {
		n.qprev, n.qnext = n, n
	} else {
		head := h.queueHead
		last := head.qprev
		last.qnext = n
		n.qprev = last
		n.qnext = head
		head.qprev = n
	}
	h.queueHead = n
}

func (h *Heap[P, V]) removeFromQueue(n *node[P, V]) {
	if n.qnext == n {
		h.queueHead = nil
	} else {
		n.qprev.qnext = n.qnext
		n.qnext.qprev = n.qprev
		if h.queueHead == n {
			h.queueHead = n.qnext
		}
	}
	n.qprev, n.qnext = nil, nil
}

// onActiveRootAdded registers n as an active-root of its rank, merging with
// any existing active-root of the same rank (active-root reduction) until
// every rank holds at most one.
func (h *Heap[P, V]) onActiveRootAdded(n *node[P, V]) {
	existing, ok := h.activeRootsByRank[n.rank]
	if !ok || existing == n {
		h.activeRootsByRank[n.rank] = n
		return
	}
	h.activeRootReduce(n, existing)
}

// activeRootReduce merges two active-roots of the same rank: the smaller
// absorbs the larger as a new active child and its rank increases by one,
// possibly displacing a passive child of the winner back to the root, then
// retries registration at the new rank.
func (h *Heap[P, V]) activeRootReduce(a, b *node[P, V]) {
	x, y := a, b
	if !x.less(y) {
		x, y = y, x
	}
	delete(h.activeRootsByRank, x.rank)

	y.parent.unlink(y)
	x.link(y)
	x.rank++

	if z := x.findPassiveChild(); z != nil {
		x.unlink(z)
		h.root.link(z)
	}

	h.onActiveRootAdded(x)
}

// doRootDegreeReduce inspects the three most-recently-linked children of
// root; if all three are distinct and passive-linkable it folds them into
// one active child of rank one and returns true.
func (h *Heap[P, V]) doRootDegreeReduce() bool {
	if h.root == nil || h.root.child == nil {
		return false
	}
	x := h.root.child
	if x.left == x {
		return false
	}
	y := x.left
	if y == x || y.left == x {
		return false
	}
	z := y.left
	if z == x || z == y {
		return false
	}
	if !x.isPassiveLinkable() || !y.isPassiveLinkable() || !z.isPassiveLinkable() {
		return false
	}

	sort3(&x, &y, &z)

	h.root.unlink(x)
	h.root.unlink(y)
	h.root.unlink(z)

	x.makeActive(h.activeRecord)
	y.makeActive(h.activeRecord)
	x.link(y)
	x.rank++
	y.link(z)

	h.root.link(x)
	h.onActiveRootAdded(x)
	return true
}

// sort3 orders x, y, z by priority ascending.
func sort3[P queue.Priority, V any](x, y, z **node[P, V]) {
	if !(*x).less(*y) {
		*x, *y = *y, *x
	}
	if !(*y).less(*z) {
		*y, *z = *z, *y
	}
	if !(*x).less(*y) {
		*x, *y = *y, *x
	}
}

func (h *Heap[P, V]) reduceToCompletion() {
	for h.doRootDegreeReduce() {
	}
}

func (h *Heap[P, V]) registerLoss(n *node[P, V]) {
	h.lossByRank[n.rank] = append(h.lossByRank[n.rank], n)
}

func (h *Heap[P, V]) unregisterLoss(n *node[P, V]) {
	bucket := h.lossByRank[n.rank]
	for i, m := range bucket {
		if m == n {
			bucket[i] = bucket[len(bucket)-1]
			h.lossByRank[n.rank] = bucket[:len(bucket)-1]
			return
		}
	}
}

// increaseLoss bumps p's loss counter and, if it reaches two, immediately
// reduces p: it is cut to the root and promoted to an active-root, its loss
// cleared. This is the original's "trigger one loss-reduction".
func (h *Heap[P, V]) increaseLoss(p *node[P, V]) {
	if p.loss >= 1 {
		h.unregisterLoss(p)
	}
	p.loss++
	if p.loss >= 2 {
		h.oneNodeLossReduce(p)
		return
	}
	h.registerLoss(p)
}

func (h *Heap[P, V]) oneNodeLossReduce(x *node[P, V]) {
	parent := x.parent
	parent.unlink(x)
	x.loss = 0
	h.root.link(x)
	h.onActiveRootAdded(x)
	// x only ever carries loss while it is an interior active non-active-root
	// node, which forces its parent to be active too.
	if parent.isActive() {
		h.decreaseRank(parent)
	}
}

// twoNodeLossReduce merges two loss-1 nodes of the same rank: the smaller
// absorbs the larger as a new child, clearing both losses; the loser's old
// parent's rank decreases and, if it is an interior active node, its loss
// increases in turn.
func (h *Heap[P, V]) twoNodeLossReduce(a, b *node[P, V]) {
	x, y := a, b
	if !x.less(y) {
		x, y = y, x
	}
	h.unregisterLoss(x)
	h.unregisterLoss(y)
	x.loss = 0
	y.loss = 0
	x.rank++

	yParent := y.parent
	yParent.unlink(y)
	x.link(y)
	h.decreaseRank(yParent)

	if yParent.isActive() && !yParent.isActiveRoot() {
		h.increaseLoss(yParent)
	}
}

// doLossReduce looks for a node with loss >= 2 (handled immediately by
// increaseLoss in the decrease-key path, but delete-min's queue servicing
// calls this directly) or, failing that, two loss-1 nodes sharing a rank.
// Entries whose node has since changed rank or is no longer an interior
// active node are skipped.
func (h *Heap[P, V]) doLossReduce() bool {
	live := func(n *node[P, V], r int) bool {
		return n.rank == r && n.isActive() && n.parent != nil && !n.isActiveRoot()
	}
	for r, bucket := range h.lossByRank {
		for _, n := range bucket {
			if n.loss >= 2 && live(n, r) {
				h.oneNodeLossReduce(n)
				return true
			}
		}
	}
	for r, bucket := range h.lossByRank {
		var ones []*node[P, V]
		for _, n := range bucket {
			if n.loss == 1 && live(n, r) && (len(ones) == 0 || ones[0] != n) {
				ones = append(ones, n)
			}
		}
		if len(ones) >= 2 {
			h.twoNodeLossReduce(ones[0], ones[1])
			return true
		}
	}
	return false
}

func (h *Heap[P, V]) decreaseRank(n *node[P, V]) {
	if n.isActiveRoot() {
		delete(h.activeRootsByRank, n.rank)
		n.rank--
		h.onActiveRootAdded(n)
		return
	}
	n.rank--
}

// Insert creates a singleton node, attaches it per spec.md §4.5.2, and
// drives root-degree reduction to completion. O(1).
func (h *Heap[P, V]) Insert(v V, p P) queue.Entry[P, V] {
	n := &node[P, V]{owner: h.box}
	n.entry = &entry[P, V]{value: v, prio: p, node: n}

	if h.IsEmpty() {
		h.root = n
	} else if n.less(h.root) {
		old := h.root
		n.link(old)
		h.root = n
		h.prependQueue(old)
	} else {
		h.root.link(n)
		h.prependQueue(n)
	}

	h.reduceToCompletion()
	h.size++
	return n.entry
}

// FindMin returns the root's value in O(1).
func (h *Heap[P, V]) FindMin() (V, error) {
	if h.IsEmpty() {
		var zero V
		return zero, queue.ErrEmpty
	}
	return h.root.entry.value, nil
}

// findNewRoot scans root's children for the minimum.
func (h *Heap[P, V]) findNewRoot() *node[P, V] {
	x := h.root.child
	min := x
	c := x
	for {
		if c.less(min) {
			min = c
		}
		c = c.right
		if c == x {
			break
		}
	}
	return min
}

// DeleteMin promotes the smallest child of root to the new root, services
// two queue heads, and reduces to completion. O(lg n) amortized.
func (h *Heap[P, V]) DeleteMin() (V, error) {
	if h.IsEmpty() {
		var zero V
		return zero, queue.ErrEmpty
	}

	old := h.root
	ret := old.entry.value

	if h.size == 1 {
		h.root = nil
		h.size--
		return ret, nil
	}

	x := h.findNewRoot()
	h.root.unlink(x)
	h.removeFromQueue(x)

	if x.isActive() {
		x.makePassive()
		delete(h.activeRootsByRank, x.rank)
		// x's active children are now root-less active nodes whose
		// parent (x) just went passive; they become active-roots.
		// Collect them first: active-root reduction relinks x's children.
		var promoted []*node[P, V]
		if x.child != nil {
			start := x.child
			c := start
			for {
				if c.isActive() {
					promoted = append(promoted, c)
				}
				c = c.right
				if c == start {
					break
				}
			}
		}
		for _, c := range promoted {
			if c.parent == x && c.isActive() {
				h.onActiveRootAdded(c)
			}
		}
	}

	// move old root's remaining children under x
	for old.child != nil {
		c := old.child
		old.unlink(c)
		x.link(c)
	}
	h.root = x

	for i := 0; i < 2 && h.queueHead != nil; i++ {
		head := h.queueHead
		if z := head.findPassiveChild(); z != nil {
			head.unlink(z)
			h.root.link(z)
			h.removeFromQueue(head)
			h.prependQueue(head)
		}
		h.queueHead = h.queueHead.qnext
		h.doLossReduce()
	}

	h.reduceToCompletion()
	h.size--
	return ret, nil
}

// DecreaseKey implements spec.md §4.5.3: lower the priority, possibly swap
// with the root, cut a violating node to the root, and propagate loss to
// its old parent. O(1).
func (h *Heap[P, V]) DecreaseKey(e queue.Entry[P, V], p P) error {
	item, ok := e.(*entry[P, V])
	if !ok {
		return queue.ErrWrongHeap
	}
	n := item.node
	if n.owner.heap != h {
		return queue.ErrWrongHeap
	}
	if p > item.prio {
		return queue.ErrKeyNotDecreased
	}
	item.prio = p

	if n.isRoot() {
		return nil
	}
	if n.less(h.root) {
		// n's new value becomes the minimum; swap it to the root. n now
		// holds the old root entry, which was <= everything and so is
		// violating against its parent unless that parent is the root —
		// fall through to cut it.
		n.swapEntries(h.root)
	}
	if !n.isViolating() {
		return nil
	}

	parent := n.parent
	wasInteriorActive := n.isActive() && !n.isActiveRoot()
	if wasInteriorActive {
		if n.loss > 0 {
			h.unregisterLoss(n)
			n.loss = 0
		}
		parent.unlink(n)
		h.root.link(n)
		h.onActiveRootAdded(n)
		h.decreaseRank(parent)
	} else {
		parent.unlink(n)
		h.root.link(n)
	}

	if parent.isActive() && !parent.isActiveRoot() {
		h.increaseLoss(parent)
	}

	h.reduceToCompletion()
	return nil
}

// Meld flips the larger-rooted heap's active record to passive and grafts
// its root as a passive child of the winner, concatenating the two queues.
// O(1): no node is individually walked, only the two shared records and
// queue splice pointers. The union is returned as a new heap; h and other
// are both left empty.
func (h *Heap[P, V]) Meld(other queue.Interface[P, V]) (queue.Interface[P, V], error) {
	g, ok := other.(*Heap[P, V])
	if !ok {
		return nil, queue.ErrWrongKind
	}
	hc, gc := *h, *g
	hc.box.heap, gc.box.heap = &hc, &gc
	h.box, g.box = &ownerBox[P, V]{heap: h}, &ownerBox[P, V]{heap: g}
	h.Clear()
	g.Clear()
	h, g = &hc, &gc

	if h.IsEmpty() {
		h, g = g, h
	}
	if g.IsEmpty() {
		if h.IsEmpty() {
			return h, nil
		}
		g.box.heap = h
		g.box = &ownerBox[P, V]{heap: g}
		return h, nil
	}

	winner, loser := h, g
	if !h.root.less(g.root) {
		winner, loser = g, h
	}

	loser.activeRecord.active = false
	loserRoot := loser.root

	winner.root.link(loserRoot)
	winner.prependQueue(loserRoot)

	if loser.queueHead != nil {
		// splice loser's remaining queue just after its old root in
		// winner's queue.
		a := loserRoot
		b := a.qnext
		c := loser.queueHead
		d := c.qprev

		a.qnext = c
		c.qprev = a
		d.qnext = b
		b.qprev = d
	}

	winner.size += loser.size

	loser.box.heap = winner
	loser.box = &ownerBox[P, V]{heap: loser}

	loser.root = nil
	loser.queueHead = nil
	loser.size = 0
	loser.activeRecord = &activeRecord{active: true}
	loser.activeRootsByRank = map[int]*node[P, V]{}
	loser.lossByRank = map[int][]*node[P, V]{}

	winner.reduceToCompletion()

	return winner, nil
}

// Clear removes every element and resets every auxiliary structure.
func (h *Heap[P, V]) Clear() {
	h.root = nil
	h.queueHead = nil
	h.size = 0
	h.activeRecord = &activeRecord{active: true}
	h.activeRootsByRank = map[int]*node[P, V]{}
	h.lossByRank = map[int][]*node[P, V]{}
}

// Package factory dispatches a symbolic variant name to a concrete
// queue.Interface constructor, grounded on
// original_source/PrioQueues/PrioQueueFactory.h's template specialization
// table. Go has no template specialization, so the C++ tag classes
// (binary_heap, brodal_queue, ...) become string constants switched over by
// an ordinary generic function.
package factory

import (
	"fmt"

	"github.com/vhornak/prioq/binaryheap"
	"github.com/vhornak/prioq/binomial"
	"github.com/vhornak/prioq/brodal"
	"github.com/vhornak/prioq/fibheap"
	"github.com/vhornak/prioq/listqueue"
	"github.com/vhornak/prioq/queue"
	"github.com/vhornak/prioq/strictfib"
	"github.com/vhornak/prioq/thirdparty"
)

// Variant names one of the priority-queue implementations this module
// provides, matching the original's Factory<T> tag classes.
type Variant string

const (
	BinaryHeap          Variant = "binary_heap"
	BinomialHeap        Variant = "binomial_heap"
	FibonacciHeap       Variant = "fibonacci_heap"
	BrodalQueue         Variant = "brodal_queue"
	StrictFibonacciHeap Variant = "strict_fibonacci_heap"
	JustList            Variant = "pairing_like_list"
	// BoostFibonacciHeap names the thirdparty-wrapped variant. It is not
	// constructible through New: its wrapped kkn.fi/heap.IndexFibonacciMinPQ
	// fixes the priority type at float32, which New's P type parameter
	// cannot express. Use NewThirdParty directly instead.
	BoostFibonacciHeap Variant = "boost_fibonacci_heap"
)

// All lists every variant name, in the original header's declaration order,
// for use by a CLI's "list" subcommand. New constructs all of them except
// BoostFibonacciHeap, which it rejects.
var All = []Variant{
	BinaryHeap,
	BinomialHeap,
	FibonacciHeap,
	BrodalQueue,
	StrictFibonacciHeap,
	JustList,
	BoostFibonacciHeap,
}

// New constructs an empty queue.Interface[P, V] of the named variant.
func New[P queue.Priority, V any](variant Variant) (queue.Interface[P, V], error) {
	switch variant {
	case BinaryHeap:
		return binaryheap.New[P, V](), nil
	case BinomialHeap:
		return binomial.New[P, V](), nil
	case FibonacciHeap:
		return fibheap.New[P, V](), nil
	case BrodalQueue:
		return brodal.New[P, V](), nil
	case StrictFibonacciHeap:
		return strictfib.New[P, V](), nil
	case JustList:
		return listqueue.New[P, V](), nil
	case BoostFibonacciHeap:
		return nil, fmt.Errorf("factory: %q requires NewThirdParty (fixed float32 priority)", variant)
	default:
		return nil, fmt.Errorf("factory: unknown queue variant %q", variant)
	}
}

// NewThirdParty constructs the thirdparty-wrapped variant, whose priority
// type is fixed at float32 by the wrapped kkn.fi/heap.IndexFibonacciMinPQ.
func NewThirdParty[V any]() queue.Interface[float32, V] {
	return thirdparty.New[V]()
}

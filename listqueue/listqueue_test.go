package listqueue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vhornak/prioq/listqueue"
	"github.com/vhornak/prioq/queue"
	"github.com/vhornak/prioq/queue/conformance"
)

func newHeap() queue.Interface[int, int] {
	return listqueue.New[int, int]()
}

func TestConformance(t *testing.T) {
	conformance.Run(t, newHeap)
}

func TestMeldNotSupported(t *testing.T) {
	a := listqueue.New[int, int]()
	b := listqueue.New[int, int]()
	_, err := a.Meld(b)
	require.ErrorIs(t, err, queue.ErrNotSupported)
}

func TestDecreaseKeyWrongHeap(t *testing.T) {
	a := listqueue.New[int, int]()
	b := listqueue.New[int, int]()
	e := a.Insert(1, 1)
	require.ErrorIs(t, b.DecreaseKey(e, 0), queue.ErrWrongHeap)
}

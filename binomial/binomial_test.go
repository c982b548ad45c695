package binomial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vhornak/prioq/binomial"
	"github.com/vhornak/prioq/queue"
	"github.com/vhornak/prioq/queue/conformance"
)

func newHeap() queue.Interface[int, int] {
	return binomial.New[int, int]()
}

func TestConformance(t *testing.T) {
	conformance.Run(t, newHeap)
	conformance.RunMeld(t, newHeap)
}

func TestDecreaseKeyWrongHeap(t *testing.T) {
	a := binomial.New[int, int]()
	b := binomial.New[int, int]()
	e := a.Insert(1, 1)
	require.ErrorIs(t, b.DecreaseKey(e, 0), queue.ErrWrongHeap)
}

func TestDecreaseKeyAfterMeldUsesNewOwner(t *testing.T) {
	a := binomial.New[int, int]()
	b := binomial.New[int, int]()
	for _, p := range []int{10, 20, 30, 40, 50} {
		b.Insert(p, p)
	}
	e := b.Insert(5, 5)

	c, err := a.Meld(b)
	require.NoError(t, err)
	require.True(t, b.IsEmpty())

	require.NoError(t, c.DecreaseKey(e, 1))
	v, err := c.FindMin()
	require.NoError(t, err)
	require.Equal(t, 5, v)

	require.ErrorIs(t, b.DecreaseKey(e, 0), queue.ErrWrongHeap)
}

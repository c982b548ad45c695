package brodal_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vhornak/prioq/brodal"
	"github.com/vhornak/prioq/queue"
	"github.com/vhornak/prioq/queue/conformance"
)

func newHeap() queue.Interface[int, int] {
	return brodal.New[int, int]()
}

func TestConformance(t *testing.T) {
	conformance.Run(t, newHeap)
	conformance.RunMeld(t, newHeap)
}

func TestDecreaseKeyWrongHeap(t *testing.T) {
	a := brodal.New[int, int]()
	b := brodal.New[int, int]()
	e := a.Insert(1, 1)
	require.ErrorIs(t, b.DecreaseKey(e, 0), queue.ErrWrongHeap)
}

func TestDecreaseKeyAfterMeldUsesNewOwner(t *testing.T) {
	a := brodal.New[int, int]()
	b := brodal.New[int, int]()
	a.Insert(10, 10)
	e := b.Insert(20, 20)

	merged, err := a.Meld(b)
	require.NoError(t, err)

	require.NoError(t, merged.DecreaseKey(e, 1))
	v, err := merged.FindMin()
	require.NoError(t, err)
	require.Equal(t, 20, v)

	require.ErrorIs(t, b.DecreaseKey(e, 0), queue.ErrWrongHeap)
}

// TestManyInsertsAndDrain exercises the upper guide's same-rank folding by
// pushing a rank-0 bucket well past its limit before draining.
func TestManyInsertsAndDrain(t *testing.T) {
	h := brodal.New[int, int]()
	rng := rand.New(rand.NewPCG(3, 5))
	const n = 2000
	for i := 0; i < n; i++ {
		p := rng.IntN(1_000_000)
		h.Insert(p, p)
	}
	var prev = -1
	count := 0
	for !h.IsEmpty() {
		v, err := h.FindMin()
		require.NoError(t, err)
		dv, err := h.DeleteMin()
		require.NoError(t, err)
		require.Equal(t, v, dv)
		require.GreaterOrEqual(t, dv, prev)
		prev = dv
		count++
	}
	require.Equal(t, n, count)
}

func TestRandomizedAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 17))
	h := brodal.New[int, int]()
	var entries []queue.Entry[int, int]
	var priorities []int

	for op := 0; op < 5000; op++ {
		switch {
		case len(entries) == 0 || rng.IntN(3) != 0:
			p := rng.IntN(1_000_000)
			e := h.Insert(op, p)
			entries = append(entries, e)
			priorities = append(priorities, p)
		case rng.IntN(2) == 0:
			idx := rng.IntN(len(entries))
			delta := rng.IntN(priorities[idx] + 1)
			newP := priorities[idx] - delta
			require.NoError(t, h.DecreaseKey(entries[idx], newP))
			priorities[idx] = newP
		default:
			minIdx := 0
			for i, p := range priorities {
				if p < priorities[minIdx] {
					minIdx = i
				}
			}
			v, err := h.DeleteMin()
			require.NoError(t, err)
			at := slices.IndexFunc(entries, func(e queue.Entry[int, int]) bool { return e.Value() == v })
			require.NotEqual(t, -1, at)
			require.Equal(t, priorities[minIdx], priorities[at])
			entries = append(entries[:at], entries[at+1:]...)
			priorities = append(priorities[:at], priorities[at+1:]...)
		}
		require.Equal(t, len(entries), h.Size())
	}
}

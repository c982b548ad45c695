// Package conformance runs the universal invariants spec.md §8 demands of
// every priority-queue variant against a constructor supplied by the
// variant's own test file, so each variant gets the same property coverage
// without duplicating it seven times.
package conformance

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vhornak/prioq/queue"
)

// Factory builds a fresh, empty heap for each sub-test.
type Factory func() queue.Interface[int, int]

// Run exercises the invariants from spec.md §8 other than meld (invariant
// 6) plus the literal scenarios S1, S2, S3, S5. RunMeld below covers
// invariant 6 and S4; the S6 strict-Fibonacci adversarial sequence is not
// part of this package.
func Run(t *testing.T, newHeap Factory) {
	t.Run("empty_iff_size_zero", func(t *testing.T) {
		h := newHeap()
		require.True(t, h.IsEmpty())
		require.Equal(t, 0, h.Size())
		h.Insert(1, 1)
		require.False(t, h.IsEmpty())
		require.Equal(t, 1, h.Size())
	})

	t.Run("find_min_delete_min_on_empty_fail", func(t *testing.T) {
		h := newHeap()
		_, err := h.FindMin()
		require.ErrorIs(t, err, queue.ErrEmpty)
		_, err = h.DeleteMin()
		require.ErrorIs(t, err, queue.ErrEmpty)
	})

	t.Run("single_round_trip", func(t *testing.T) {
		h := newHeap()
		h.Insert(7, 7)
		v, err := h.FindMin()
		require.NoError(t, err)
		require.Equal(t, 7, v)
		v, err = h.DeleteMin()
		require.NoError(t, err)
		require.Equal(t, 7, v)
		_, err = h.FindMin()
		require.ErrorIs(t, err, queue.ErrEmpty)
	})

	t.Run("insert_only_drains_non_decreasing", func(t *testing.T) {
		h := newHeap()
		rng := rand.New(rand.NewPCG(1, 2))
		const n = 200
		for i := 0; i < n; i++ {
			p := rng.IntN(10_000)
			h.Insert(p, p)
		}
		assertNonDecreasingDrain(t, h, n)
	})

	t.Run("round_trip_multiset", func(t *testing.T) {
		h := newHeap()
		want := map[int]int{}
		rng := rand.New(rand.NewPCG(3, 4))
		const n = 100
		for i := 0; i < n; i++ {
			p := rng.IntN(1_000)
			h.Insert(p, p)
			want[p]++
		}
		got := map[int]int{}
		for !h.IsEmpty() {
			v, err := h.DeleteMin()
			require.NoError(t, err)
			got[v]++
		}
		require.Equal(t, want, got)
	})

	t.Run("decrease_key_then_drain_non_decreasing", func(t *testing.T) {
		h := newHeap()
		rng := rand.New(rand.NewPCG(5, 6))
		const n = 100
		entries := make([]queue.Entry[int, int], n)
		for i := 0; i < n; i++ {
			p := 10_000 + rng.IntN(10_000)
			entries[i] = h.Insert(i, p)
		}
		for i := 0; i < n/2; i++ {
			e := entries[rng.IntN(n)]
			newPrio := e.Priority() - rng.IntN(5_000)
			if newPrio > e.Priority() {
				continue
			}
			require.NoError(t, h.DecreaseKey(e, newPrio))
		}
		// Values are insertion indices; check the drained priorities.
		prev, count := -1<<62, 0
		for !h.IsEmpty() {
			v, err := h.DeleteMin()
			require.NoError(t, err)
			require.GreaterOrEqual(t, entries[v].Priority(), prev)
			prev = entries[v].Priority()
			count++
		}
		require.Equal(t, n, count)
	})

	t.Run("clear_idempotent", func(t *testing.T) {
		h := newHeap()
		h.Insert(1, 1)
		h.Insert(2, 2)
		h.Clear()
		require.Equal(t, 0, h.Size())
		h.Clear()
		require.Equal(t, 0, h.Size())
	})

	t.Run("decrease_key_larger_fails", func(t *testing.T) {
		h := newHeap()
		e := h.Insert(10, 10)
		err := h.DecreaseKey(e, 20)
		require.ErrorIs(t, err, queue.ErrKeyNotDecreased)
		v, err := h.FindMin()
		require.NoError(t, err)
		require.Equal(t, 10, v)
	})

	t.Run("decrease_key_equal_is_noop_on_order", func(t *testing.T) {
		h := newHeap()
		e := h.Insert(10, 10)
		require.NoError(t, h.DecreaseKey(e, 10))
		v, err := h.DeleteMin()
		require.NoError(t, err)
		require.Equal(t, 10, v)
	})

	t.Run("scenario_S1_drain_order", func(t *testing.T) {
		h := newHeap()
		for _, p := range []int{5, 3, 8, 1, 6, 2, 4} {
			h.Insert(p, p)
		}
		var got []int
		for !h.IsEmpty() {
			v, _ := h.DeleteMin()
			got = append(got, v)
		}
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 8}, got)
	})

	t.Run("scenario_S2_decrease_then_drain", func(t *testing.T) {
		h := newHeap()
		var hs []queue.Entry[int, int]
		for _, p := range []int{10, 20, 30, 40, 50} {
			hs = append(hs, h.Insert(p, p))
		}
		require.NoError(t, h.DecreaseKey(hs[4], 5))
		require.NoError(t, h.DecreaseKey(hs[2], 15))
		prio := map[int]int{}
		for _, e := range hs {
			prio[e.Value()] = e.Priority()
		}
		var got []int
		for !h.IsEmpty() {
			v, _ := h.DeleteMin()
			got = append(got, prio[v])
		}
		require.Equal(t, []int{5, 10, 15, 20, 40}, got)
	})

	t.Run("scenario_S3_empty_then_one", func(t *testing.T) {
		h := newHeap()
		_, err := h.FindMin()
		require.ErrorIs(t, err, queue.ErrEmpty)
		h.Insert(7, 7)
		v, err := h.FindMin()
		require.NoError(t, err)
		require.Equal(t, 7, v)
		v, err = h.DeleteMin()
		require.NoError(t, err)
		require.Equal(t, 7, v)
		_, err = h.FindMin()
		require.ErrorIs(t, err, queue.ErrEmpty)
	})

	t.Run("scenario_S5_decrease_to_equal", func(t *testing.T) {
		h := newHeap()
		e := h.Insert(10, 10)
		require.NoError(t, h.DecreaseKey(e, 10))
		v, err := h.DeleteMin()
		require.NoError(t, err)
		require.Equal(t, 10, v)
	})
}

// RunMeld exercises invariant 6 and scenario S4 against variants that
// support Meld (binary/binomial/fibheap/strictfib/brodal; listqueue and
// thirdparty refuse with ErrNotSupported and skip this suite).
func RunMeld(t *testing.T, newHeap Factory) {
	t.Run("meld_merges_and_empties_arguments", func(t *testing.T) {
		a := newHeap()
		b := newHeap()
		rng := rand.New(rand.NewPCG(7, 8))
		wantA := 0
		for i := 0; i < 50; i++ {
			p := rng.IntN(1_000)
			a.Insert(p, p)
			wantA++
		}
		wantB := 0
		for i := 0; i < 50; i++ {
			p := rng.IntN(1_000)
			b.Insert(p, p)
			wantB++
		}
		c, err := a.Meld(b)
		require.NoError(t, err)
		require.True(t, a.IsEmpty())
		require.True(t, b.IsEmpty())
		require.Equal(t, wantA+wantB, c.Size())
		assertNonDecreasingDrain(t, c, wantA+wantB)
	})

	t.Run("scenario_S4", func(t *testing.T) {
		a := newHeap()
		b := newHeap()
		for _, p := range []int{2, 9, 4} {
			a.Insert(p, p)
		}
		for _, p := range []int{1, 7, 3} {
			b.Insert(p, p)
		}
		c, err := a.Meld(b)
		require.NoError(t, err)
		require.True(t, a.IsEmpty())
		require.True(t, b.IsEmpty())
		var got []int
		for !c.IsEmpty() {
			v, _ := c.DeleteMin()
			got = append(got, v)
		}
		require.Equal(t, []int{1, 2, 3, 4, 7, 9}, got)
	})

	t.Run("meld_wrong_kind_fails", func(t *testing.T) {
		a := newHeap()
		_, err := a.Meld(stubInterface{})
		require.ErrorIs(t, err, queue.ErrWrongKind)
	})
}

func assertNonDecreasingDrain(t *testing.T, h queue.Interface[int, int], wantCount int) {
	t.Helper()
	prev := -1 << 62
	count := 0
	for !h.IsEmpty() {
		v, err := h.DeleteMin()
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, prev)
		prev = v
		count++
	}
	require.Equal(t, wantCount, count)
}

// stubInterface is a minimal, deliberately foreign queue.Interface
// implementation used only to prove Meld rejects unrelated concrete types.
type stubInterface struct{}

func (stubInterface) Insert(v int, p int) queue.Entry[int, int]                { return nil }
func (stubInterface) FindMin() (int, error)                                    { return 0, queue.ErrEmpty }
func (stubInterface) DeleteMin() (int, error)                                  { return 0, queue.ErrEmpty }
func (stubInterface) DecreaseKey(e queue.Entry[int, int], p int) error         { return queue.ErrWrongHeap }
func (stubInterface) Meld(o queue.Interface[int, int]) (queue.Interface[int, int], error) {
	return nil, queue.ErrWrongKind
}
func (stubInterface) Size() int     { return 0 }
func (stubInterface) IsEmpty() bool { return true }
func (stubInterface) Clear()        {}

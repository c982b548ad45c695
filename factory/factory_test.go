package factory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vhornak/prioq/factory"
	"github.com/vhornak/prioq/queue"
)

func TestNewEachVariantRoundTrips(t *testing.T) {
	for _, variant := range factory.All {
		if variant == factory.BoostFibonacciHeap {
			continue
		}
		t.Run(string(variant), func(t *testing.T) {
			h, err := factory.New[int, int](variant)
			require.NoError(t, err)
			h.Insert(3, 3)
			h.Insert(1, 1)
			h.Insert(2, 2)
			v, err := h.DeleteMin()
			require.NoError(t, err)
			require.Equal(t, 1, v)
		})
	}
}

func TestNewUnknownVariant(t *testing.T) {
	_, err := factory.New[int, int]("no-such-variant")
	require.Error(t, err)
}

func TestNewBoostFibonacciHeapRejected(t *testing.T) {
	_, err := factory.New[int, int](factory.BoostFibonacciHeap)
	require.Error(t, err)
}

func TestNewThirdParty(t *testing.T) {
	h := factory.NewThirdParty[int]()
	h.Insert(5, 5)
	h.Insert(1, 1)
	v, err := h.DeleteMin()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	var _ queue.Interface[float32, int] = h
}

package stopwatch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vhornak/prioq/internal/stopwatch"
)

func TestElapsedMillisIncreases(t *testing.T) {
	sw := stopwatch.New()
	time.Sleep(5 * time.Millisecond)
	require.GreaterOrEqual(t, sw.ElapsedMillis(), int64(5))
}

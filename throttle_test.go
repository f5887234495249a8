package randomrpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRequiredWaitZeroState(t *testing.T) {
	ts := &throttleState{}
	require.Zero(t, ts.requiredWait(time.Now()))
}

func TestRequiredWaitCountsDown(t *testing.T) {
	ts := &throttleState{}
	base := time.Now()
	ts.observe(base, 2000)

	// requiredWait = max(0, D - d) for advisory delay D and elapsed d.
	require.Equal(t, 1500*time.Millisecond, ts.requiredWait(base.Add(500*time.Millisecond)))
	require.Equal(t, 2000*time.Millisecond, ts.requiredWait(base))
	require.Zero(t, ts.requiredWait(base.Add(2*time.Second)))
	require.Zero(t, ts.requiredWait(base.Add(time.Minute)))
}

func TestObserveReplacesBothFields(t *testing.T) {
	ts := &throttleState{}
	first := time.Now()
	ts.observe(first, 700)

	delayMs, lastMs := ts.snapshot()
	require.EqualValues(t, 700, delayMs)
	require.Equal(t, first.UnixMilli(), lastMs)

	second := first.Add(3 * time.Second)
	ts.observe(second, 0)
	delayMs, lastMs = ts.snapshot()
	require.Zero(t, delayMs)
	require.Equal(t, second.UnixMilli(), lastMs)
}

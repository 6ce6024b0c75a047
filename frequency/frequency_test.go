package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTotal(t *testing.T) {
	tests := []struct {
		deltas []int64
		want   int64
	}{
		{[]int64{1, -2, 3, 1}, 3},
		{[]int64{1, 1, 1}, 3},
		{[]int64{1, 1, -2}, 0},
		{[]int64{-1, -2, -3}, -6},
		{nil, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Total(tt.deltas), "deltas %v", tt.deltas)
	}
}

func TestTotalIsOrderIndependent(t *testing.T) {
	deltas := []int64{7, -3, 12, -40, 5}
	reversed := []int64{5, -40, 12, -3, 7}
	assert.Equal(t, Total(deltas), Total(reversed))
}

func TestFirstRepeat(t *testing.T) {
	tests := []struct {
		name   string
		deltas []int64
		want   int64
	}{
		{"wraps once", []int64{1, -2, 3, 1}, 2},
		{"back to zero", []int64{1, -1}, 0},
		{"several passes", []int64{3, 3, 4, -2, -4}, 10},
		{"negative start", []int64{-6, 3, 8, 5, -6}, 5},
		{"large drift", []int64{7, 7, -2, -7, -4}, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan, err := FirstRepeat(tt.deltas)
			require.NoError(t, err)
			assert.Equal(t, Found, scan.State)
			assert.Equal(t, tt.want, scan.Value)
		})
	}
}

func TestFirstRepeatStats(t *testing.T) {
	// 0 -> 1 -> -1 -> 2 -> 3, wrap: 4 -> 2
	scan, err := FirstRepeat([]int64{1, -2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, Scan{State: Found, Value: 2, Steps: 6, Passes: 2, Seen: 6}, scan)
}

func TestFirstRepeatZeroDelta(t *testing.T) {
	scan, err := FirstRepeat([]int64{0})
	require.NoError(t, err)
	assert.Equal(t, Scan{State: Found, Value: 0, Steps: 1, Passes: 1, Seen: 1}, scan)
}

func TestFirstRepeatEmpty(t *testing.T) {
	_, err := FirstRepeat(nil)
	assert.ErrorIs(t, err, ErrNoDeltas)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "scanning", Scanning.String())
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "unknown", State(9).String())
}

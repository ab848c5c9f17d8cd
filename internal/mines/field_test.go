package mines

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestDigitSum(t *testing.T) {
	tests := []struct {
		v, sum int
	}{
		{0, 0},
		{7, 7},
		{10, 1},
		{345, 12},
		{-345, 12},
		{699, 24},
		{-1000000, 1},
		{math.MaxInt64, 88},
		{math.MinInt64, 89},
	}
	for _, test := range tests {
		assert.Equal(t, test.sum, DigitSum(test.v), "DigitSum(%d)", test.v)
	}
}

func TestDigitSumSymmetric(t *testing.T) {
	for v := range 20000 {
		assert.Equal(t, DigitSum(v), DigitSum(-v))
	}
}

func TestMineAt(t *testing.T) {
	f := NewField(DefaultThreshold)

	assert.False(t, f.MineAt(0, 0))
	assert.False(t, f.MineAt(23, 34))
	assert.True(t, f.MineAt(345, 789))
	assert.True(t, f.MineAt(-345, -789))
	assert.False(t, f.MineAt(599, 0))
	assert.True(t, f.MineAt(599, 1))
	assert.True(t, f.MineAt(699, 0))

	assert.Equal(t, f.MineAt(12, -998), f.MineAt(-12, 998))
	assert.Equal(t, f.MineAt(48, 975), f.MineAt(975, 48))
}

func TestMineAtThreshold(t *testing.T) {
	f := NewField(3)

	assert.False(t, f.MineAt(3, 0))
	assert.False(t, f.MineAt(-1, 2))
	assert.True(t, f.MineAt(2, 2))
	assert.True(t, f.MineAt(4, 0))
	assert.False(t, f.MineAt(10, 11))
	assert.True(t, f.MineAt(-10, 12))
	assert.Equal(t, !f.MineAt(5, 5), f.SafeAt(5, 5))
}

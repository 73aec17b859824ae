package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noc-sim/noc-sim/sim"
)

func TestUunifastDiscardSumsToTotal(t *testing.T) {
	rng := NewRNG(123)
	utils := uunifastDiscard(rng, 4, 1.0)
	require.Len(t, utils, 4)

	var sum float64
	for _, u := range utils {
		assert.GreaterOrEqual(t, u, 0.0)
		assert.LessOrEqual(t, u, 1.0)
		sum += u
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestHyperperiodIsLCM(t *testing.T) {
	messages := messagesWithPeriods(4, 6, 10)
	assert.EqualValues(t, 60, Hyperperiod(messages), "lcm of 4,6,10")
}

func TestHyperperiodSinglePeriod(t *testing.T) {
	messages := messagesWithPeriods(50)
	assert.EqualValues(t, 50, Hyperperiod(messages))
}

func TestRandomPairDiffersOnBothAxes(t *testing.T) {
	rng := NewRNG(9)
	for i := 0; i < 50; i++ {
		src, dest := randomPair(rng, 3)
		require.NotEqual(t, src.I, dest.I, "src and dest share a row")
		require.NotEqual(t, src.J, dest.J, "src and dest share a column")
	}
}

func messagesWithPeriods(periods ...int64) []*sim.Message {
	messages := make([]*sim.Message, len(periods))
	for i, p := range periods {
		messages[i] = &sim.Message{Period: p}
	}
	return messages
}

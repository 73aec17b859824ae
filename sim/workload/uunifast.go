package workload

import (
	"fmt"
	"math"
	"strconv"

	"github.com/noc-sim/noc-sim/sim"
)

// periodArray and offsetArray are the fixed candidate pools the generator
// draws period and offset from, matching the original generator's fixed
// catalog of realistic periodic rates.
var periodArray = []int64{50, 100, 150, 200, 300, 600}
var offsetArray = []int64{0, 10, 15, 30, 60, 80}

// uunifastDiscard generates n task utilizations summing to totalUtil via
// Bini's UUniFast algorithm, discarding and retrying any draw that produces
// an individual utilization above 1.
func uunifastDiscard(rng *RNG, n int, totalUtil float64) []float64 {
	for {
		utils := make([]float64, n)
		sumU := totalUtil
		ok := true
		for i := 0; i < n-1; i++ {
			nextSumU := sumU * math.Pow(rng.Float64(), 1/float64(n-i))
			u := sumU - nextSumU
			if u > 1 {
				ok = false
				break
			}
			utils[i] = u
			sumU = nextSumU
		}
		if !ok {
			continue
		}
		if sumU > 1 {
			continue
		}
		utils[n-1] = sumU
		return utils
	}
}

// GenerateUUniFast synthesizes nbTask periodic messages whose sizes are
// derived from UUniFast-Discard utilizations, with periods and offsets drawn
// from the fixed candidate pools and deadlines bounded by load. Source and
// destination coordinates are rejection-sampled so src != dest on each axis.
func GenerateUUniFast(rng *RNG, nbTask int, load float64, dimension int) []*sim.Message {
	utils := uunifastDiscard(rng, nbTask, 1)

	messages := make([]*sim.Message, 0, nbTask)
	for i, u := range utils {
		period := periodArray[rng.Intn(len(periodArray))]
		offset := offsetArray[rng.Intn(len(offsetArray))]
		size := int64(math.Ceil(float64(period) * u))

		lowerBound := int64(load * float64(period))
		span := period - lowerBound + 1
		deadline := lowerBound + int64(rng.Intn(int(span)+1))

		src, dest := randomPair(rng, dimension)

		messages = append(messages, &sim.Message{
			ID:       strconv.Itoa(i),
			Period:   period,
			Offset:   offset,
			Deadline: deadline,
			Size:     size,
			Src:      src,
			Dest:     dest,
		})
	}
	return messages
}

// randomPair draws a source coordinate uniformly, then a destination that
// differs from it on both axes (rejection sampling), matching the original
// generator's coordinate draw.
func randomPair(rng *RNG, dimension int) (sim.Coordinate, sim.Coordinate) {
	if dimension < 2 {
		panic(fmt.Sprintf("UUniFast generation requires dimension >= 2, got %d", dimension))
	}
	src := sim.Coordinate{I: rng.Intn(dimension), J: rng.Intn(dimension)}

	dest := src
	for dest.I == src.I {
		dest.I = rng.Intn(dimension)
	}
	for dest.J == src.J {
		dest.J = rng.Intn(dimension)
	}
	return src, dest
}

// gcd and lcm underlie Hyperperiod's lcm-of-periods computation.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return (a / gcd(a, b)) * b
}

// Hyperperiod returns the lcm of every message's period, the natural
// simulation horizon for periodic traffic.
func Hyperperiod(messages []*sim.Message) int64 {
	h := int64(1)
	for _, m := range messages {
		h = lcm(h, m.Period)
	}
	return h
}

package mount

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash digests the deploy and exec contents as one stream, so the split point
// between the two files does not affect the result.
func Hash(deploy, exec []byte) uint64 {
	d := xxhash.New()
	_, _ = d.Write(deploy)
	_, _ = d.Write(exec)
	return d.Sum64()
}

// satInt32 truncates toward zero and clamps to the int32 range. NaN maps to 0.
func satInt32(f float32) int32 {
	switch {
	case math.IsNaN(float64(f)):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}

// negate folds v into the non-positive range: positives flip sign, anything
// else moves one further from zero without wrapping past math.MinInt32.
func negate(v int32) int32 {
	if v > 0 {
		return -v
	}
	if v == math.MinInt32 {
		return v
	}
	return v - 1
}

package pointers

import "golang.org/x/exp/constraints"

// TrappedRainwaterVolume returns the capacity of rain water trapped between
// bars of the given heights.
func TrappedRainwaterVolume[T constraints.Integer | constraints.Float](height []T) T {
	var lMaxHeight, rMaxHeight, sum T

	lIdx, rIdx := 0, len(height)-1

	findMaxOrSumUp := func(i int, max *T) {
		if height[i] >= *max {
			*max = height[i]
		} else {
			// The lower side is bounded by its own peak
			// because the other side is higher than it.
			sum += *max - height[i]
		}
	}

	// Traverse from the lower side to the higher one.
	for lIdx < rIdx {
		if height[lIdx] < height[rIdx] {
			findMaxOrSumUp(lIdx, &lMaxHeight)
			lIdx++
		} else {
			findMaxOrSumUp(rIdx, &rMaxHeight)
			rIdx--
		}
	}

	return sum
}

func CheckedTrappedRainwaterVolume[T constraints.Integer | constraints.Float](height []T) (sum T, err error) {
	for _, h := range height {
		if h < 0 {
			err = ErrInvalidInput

			return
		}
	}

	sum = TrappedRainwaterVolume(height)

	return
}

package pointers

import (
	"math/bits"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// TripletsSummingToZero returns every distinct triplet of values in nums that
// sums to zero. nums is not modified; a copy is sorted instead.
//
// Triplets are ordered by ascending anchor and hold their values in ascending
// order.
func TripletsSummingToZero[T constraints.Signed](nums []T) [][]T {
	return TripletsSummingToZeroInPlace(slices.Clone(nums))
}

// TripletsSummingToZeroInPlace works like TripletsSummingToZero but takes
// ownership of nums: it is sorted ascending in place.
func TripletsSummingToZeroInPlace[T constraints.Signed](nums []T) [][]T {
	triplets := make([][]T, 0)

	slices.Sort(nums)

	for i := 0; i < len(nums)-2; i++ {
		if i > 0 && nums[i] == nums[i-1] {
			continue
		}

		left, right := i+1, len(nums)-1

		for left < right {
			sign := sumSign(int64(nums[i]), int64(nums[left]), int64(nums[right]))

			switch {
			case sign == 0:
				triplets = append(triplets, []T{nums[i], nums[left], nums[right]})

				left++
				for left < right && nums[left] == nums[left-1] {
					left++
				}

				right--
				for left < right && nums[right] == nums[right+1] {
					right--
				}
			case sign < 0:
				left++
			default:
				right--
			}
		}
	}

	return triplets
}

// sumSign returns the sign of a+b+c. The sum is kept in 128 bits, so it never
// wraps.
func sumSign(a, b, c int64) int {
	var hi, lo, carry uint64

	for _, x := range [3]int64{a, b, c} {
		lo, carry = bits.Add64(lo, uint64(x), 0)
		hi, _ = bits.Add64(hi, uint64(x>>63), carry)
	}

	switch {
	case int64(hi) < 0:
		return -1
	case hi == 0 && lo == 0:
		return 0
	}

	return 1
}

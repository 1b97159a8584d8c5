// Package pointers provides two-pointer and sliding-window algorithms over
// in-memory integer sequences.
package pointers

import "golang.org/x/exp/constraints"

// LongestSubarrayWithBoundedZeros returns the length of the longest contiguous
// range of nums holding at most k zeros.
func LongestSubarrayWithBoundedZeros[T constraints.Integer](nums []T, k int) int {
	left, zeros, best := 0, 0, 0

	for right := 0; right < len(nums); right++ {
		if nums[right] == 0 {
			zeros++
		}

		// Shrink until the window holds k zeros again.
		for zeros > k {
			if nums[left] == 0 {
				zeros--
			}

			left++
		}

		if right-left+1 > best {
			best = right - left + 1
		}
	}

	return best
}

func CheckedLongestSubarrayWithBoundedZeros[T constraints.Integer](nums []T, k int) (int, error) {
	if k < 0 {
		return 0, ErrInvalidInput
	}

	for _, num := range nums {
		if num != 0 && num != 1 {
			return 0, ErrInvalidInput
		}
	}

	return LongestSubarrayWithBoundedZeros(nums, k), nil
}

package pointers

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripletsSummingToZero(t *testing.T) {
	cases := []struct {
		nums     []int
		expected [][]int
	}{
		{[]int{-2, 0, 1, 1, 2}, [][]int{{-2, 0, 2}, {-2, 1, 1}}},
		{[]int{0, 0, 0, 0}, [][]int{{0, 0, 0}}},
		{[]int{1, 2, -2, -1}, [][]int{}},
		{[]int{-1, 0, 1, 2, -1, -4}, [][]int{{-1, -1, 2}, {-1, 0, 1}}},
		{[]int{-2, -2, 1, 1, 1, 4, 4}, [][]int{{-2, -2, 4}, {-2, 1, 1}}},
		{[]int{}, [][]int{}},
		{[]int{0, 0}, [][]int{}},
		{nil, [][]int{}},
	}

	for i, c := range cases {
		got := TripletsSummingToZero(c.nums)
		assert.NotNil(t, got, "case %d", i)
		assert.EqualValues(t, c.expected, got, "case %d", i)
	}
}

func TestTripletsSummingToZeroKeepsInput(t *testing.T) {
	nums := []int{3, -1, -2, 0, 1, -1}
	origin := append([]int{}, nums...)

	_ = TripletsSummingToZero(nums)
	assert.EqualValues(t, origin, nums)

	triplets := TripletsSummingToZeroInPlace(nums)
	assert.EqualValues(t, []int{-2, -1, -1, 0, 1, 3}, nums)
	assert.EqualValues(t, [][]int{{-2, -1, 3}, {-1, 0, 1}}, triplets)
}

func TestTripletsSummingToZeroProperties(t *testing.T) {
	// nolint: gosec
	r := rand.New(rand.NewSource(11))

	for round := 0; round < 200; round++ {
		nums := make([]int8, r.Intn(14))
		for idx := range nums {
			nums[idx] = int8(r.Intn(11) - 5)
		}

		triplets := TripletsSummingToZero(nums)
		seen := make(map[[3]int8]bool)

		for _, triplet := range triplets {
			assert.Len(t, triplet, 3)
			assert.EqualValues(t, 0, int(triplet[0])+int(triplet[1])+int(triplet[2]))
			assert.True(t, triplet[0] <= triplet[1] && triplet[1] <= triplet[2])

			key := [3]int8{triplet[0], triplet[1], triplet[2]}
			assert.False(t, seen[key], "duplicate %v", key)
			seen[key] = true
		}

		assert.EqualValues(t, bruteTriplets(nums), seen)
	}
}

func bruteTriplets(nums []int8) map[[3]int8]bool {
	m := make(map[[3]int8]bool)

	for i := 0; i < len(nums); i++ {
		for j := i + 1; j < len(nums); j++ {
			for k := j + 1; k < len(nums); k++ {
				if int(nums[i])+int(nums[j])+int(nums[k]) != 0 {
					continue
				}

				key := [3]int8{nums[i], nums[j], nums[k]}
				for a := 0; a < 2; a++ {
					for b := 0; b < 2-a; b++ {
						if key[b] > key[b+1] {
							key[b], key[b+1] = key[b+1], key[b]
						}
					}
				}

				m[key] = true
			}
		}
	}

	return m
}

func TestTripletsSummingToZeroAtLimits(t *testing.T) {
	assert.Empty(t, TripletsSummingToZero([]int64{math.MaxInt64, math.MaxInt64, 2}))
	assert.Empty(t, TripletsSummingToZero([]int64{math.MinInt64, math.MinInt64, 0}))
	assert.EqualValues(t, [][]int64{{math.MinInt64, 1, math.MaxInt64}},
		TripletsSummingToZero([]int64{math.MaxInt64, 1, math.MinInt64}))
}

func TestSumSign(t *testing.T) {
	assert.EqualValues(t, 0, sumSign(-1, 1, 0))
	assert.EqualValues(t, -1, sumSign(-3, 1, 1))
	assert.EqualValues(t, 1, sumSign(math.MaxInt64, math.MaxInt64, 2))
	assert.EqualValues(t, -1, sumSign(math.MinInt64, math.MinInt64, 0))
	assert.EqualValues(t, 0, sumSign(math.MinInt64, 1, math.MaxInt64))
}

package harness

import (
	"fmt"

	"github.com/sgostarter/libdsa/pointers"
	"github.com/spf13/cast"
	"golang.org/x/exp/slices"
)

func builtinProblems() []Problem {
	return []Problem{
		&longestOnesProblem{},
		&threeSumProblem{},
		&trapProblem{},
	}
}

func intsArg(args map[string]interface{}, key string) ([]int, error) {
	v, ok := args[key]
	if !ok {
		return nil, ErrBadArgs
	}

	if v == nil {
		return []int{}, nil
	}

	vs, err := cast.ToIntSliceE(v)
	if err != nil {
		return nil, ErrBadArgs
	}

	return vs, nil
}

func intArg(args map[string]interface{}, key string) (int, error) {
	v, ok := args[key]
	if !ok {
		return 0, ErrBadArgs
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, ErrBadArgs
	}

	return n, nil
}

func matchInt(got, expect interface{}) (bool, error) {
	n, err := cast.ToIntE(expect)
	if err != nil {
		return false, ErrBadExpect
	}

	return cast.ToInt(got) == n, nil
}

//
//
//

type longestOnesProblem struct{}

func (p *longestOnesProblem) Name() string {
	return ProblemLongestOnes
}

func (p *longestOnesProblem) Key(args map[string]interface{}) (string, error) {
	nums, err := intsArg(args, "nums")
	if err != nil {
		return "", err
	}

	k, err := intArg(args, "k")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%v/%d", nums, k), nil
}

func (p *longestOnesProblem) Solve(args map[string]interface{}) (interface{}, error) {
	nums, err := intsArg(args, "nums")
	if err != nil {
		return nil, err
	}

	k, err := intArg(args, "k")
	if err != nil {
		return nil, err
	}

	n, err := pointers.CheckedLongestSubarrayWithBoundedZeros(nums, k)
	if err != nil {
		return nil, err
	}

	return n, nil
}

func (p *longestOnesProblem) Match(got, expect interface{}) (bool, error) {
	return matchInt(got, expect)
}

func (p *longestOnesProblem) Clone(got interface{}) interface{} {
	return got
}

//
//
//

type threeSumProblem struct{}

func (p *threeSumProblem) Name() string {
	return ProblemThreeSum
}

func (p *threeSumProblem) Key(args map[string]interface{}) (string, error) {
	nums, err := intsArg(args, "nums")
	if err != nil {
		return "", err
	}

	return fmt.Sprint(nums), nil
}

func (p *threeSumProblem) Solve(args map[string]interface{}) (interface{}, error) {
	nums, err := intsArg(args, "nums")
	if err != nil {
		return nil, err
	}

	return pointers.TripletsSummingToZero(nums), nil
}

// Match compares triplets as a set: neither the outer order nor the order
// inside a triplet matters.
func (p *threeSumProblem) Match(got, expect interface{}) (bool, error) {
	gotTriplets, ok := got.([][]int)
	if !ok {
		return false, nil
	}

	expectTriplets, err := tripletsExpect(expect)
	if err != nil {
		return false, err
	}

	if len(gotTriplets) != len(expectTriplets) {
		return false, nil
	}

	gotTriplets = canonicalTriplets(gotTriplets)
	expectTriplets = canonicalTriplets(expectTriplets)

	for idx := range gotTriplets {
		if !slices.Equal(gotTriplets[idx], expectTriplets[idx]) {
			return false, nil
		}
	}

	return true, nil
}

func (p *threeSumProblem) Clone(got interface{}) interface{} {
	triplets, ok := got.([][]int)
	if !ok {
		return got
	}

	ts := make([][]int, 0, len(triplets))
	for _, triplet := range triplets {
		ts = append(ts, slices.Clone(triplet))
	}

	return ts
}

func tripletsExpect(expect interface{}) ([][]int, error) {
	if triplets, ok := expect.([][]int); ok {
		for _, triplet := range triplets {
			if len(triplet) != 3 {
				return nil, ErrBadExpect
			}
		}

		return triplets, nil
	}

	vs, err := cast.ToSliceE(expect)
	if err != nil {
		return nil, ErrBadExpect
	}

	triplets := make([][]int, 0, len(vs))

	for _, v := range vs {
		triplet, errT := cast.ToIntSliceE(v)
		if errT != nil || len(triplet) != 3 {
			return nil, ErrBadExpect
		}

		triplets = append(triplets, triplet)
	}

	return triplets, nil
}

func canonicalTriplets(triplets [][]int) [][]int {
	ts := make([][]int, 0, len(triplets))

	for _, triplet := range triplets {
		t := slices.Clone(triplet)
		slices.Sort(t)
		ts = append(ts, t)
	}

	slices.SortFunc(ts, func(a, b []int) int {
		for idx := range a {
			if a[idx] != b[idx] {
				if a[idx] < b[idx] {
					return -1
				}

				return 1
			}
		}

		return 0
	})

	return ts
}

//
//
//

type trapProblem struct{}

func (p *trapProblem) Name() string {
	return ProblemTrap
}

func (p *trapProblem) Key(args map[string]interface{}) (string, error) {
	height, err := intsArg(args, "height")
	if err != nil {
		return "", err
	}

	return fmt.Sprint(height), nil
}

func (p *trapProblem) Solve(args map[string]interface{}) (interface{}, error) {
	height, err := intsArg(args, "height")
	if err != nil {
		return nil, err
	}

	sum, err := pointers.CheckedTrappedRainwaterVolume(height)
	if err != nil {
		return nil, err
	}

	return sum, nil
}

func (p *trapProblem) Match(got, expect interface{}) (bool, error) {
	return matchInt(got, expect)
}

func (p *trapProblem) Clone(got interface{}) interface{} {
	return got
}

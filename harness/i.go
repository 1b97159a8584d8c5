package harness

const (
	ProblemLongestOnes = "longest_ones"
	ProblemThreeSum    = "three_sum"
	ProblemTrap        = "trap"
)

type Case struct {
	Name    string                 `yaml:"name" json:"name"`
	Problem string                 `yaml:"problem" json:"problem"`
	Args    map[string]interface{} `yaml:"args" json:"args"`
	// Expect is optional; a case without it only records what was computed.
	Expect interface{} `yaml:"expect,omitempty" json:"expect,omitempty"`
}

type Result struct {
	Case   *Case
	Got    interface{}
	Passed bool
	Cached bool
	Err    error
}

type Report struct {
	RunID   string
	Results []*Result
	Passed  int
	Failed  int
}

func (r *Report) Failures() (results []*Result) {
	for _, result := range r.Results {
		if !result.Passed {
			results = append(results, result)
		}
	}

	return
}

// Problem adapts one algorithm to loosely typed case arguments.
//
// Key is built from the coerced arguments, so two cases share a key only when
// Solve would see the same input. Clone returns a copy of a solved value that
// shares no memory with it.
type Problem interface {
	Name() string
	Key(args map[string]interface{}) (string, error)
	Solve(args map[string]interface{}) (interface{}, error)
	Match(got, expect interface{}) (bool, error)
	Clone(got interface{}) interface{}
}

type Runner interface {
	Register(p Problem) error
	Problems() []string

	Run(c *Case) *Result
	RunSuite(cases []*Case) *Report
}

package harness

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/godruoyi/go-snowflake"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"golang.org/x/exp/slices"
)

func NewRunner(logger l.Wrapper, options ...Option) Runner {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	opts := optionNew(options...)

	impl := &runnerImpl{
		logger:   logger.WithFields(l.StringField(l.ClsKey, "runnerImpl")),
		problems: make(map[string]Problem),
	}

	if !opts.cacheDisabled {
		if opts.cacheExpiration <= 0 {
			impl.memo = cache.New(cache.NoExpiration, 0)
		} else {
			impl.memo = cache.New(opts.cacheExpiration, opts.cacheExpiration*2)
		}
	}

	for _, p := range append(builtinProblems(), opts.problems...) {
		if p == nil {
			continue
		}

		if err := impl.Register(p); err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.StringField("problem", p.Name())).Error("register problem failed")
		}
	}

	return impl
}

type runnerImpl struct {
	logger l.Wrapper

	lock     sync.RWMutex
	problems map[string]Problem

	memo *cache.Cache
}

func (impl *runnerImpl) Register(p Problem) error {
	if p == nil || p.Name() == "" {
		return ErrBadArgs
	}

	impl.lock.Lock()
	defer impl.lock.Unlock()

	if _, ok := impl.problems[p.Name()]; ok {
		return ErrExists
	}

	impl.problems[p.Name()] = p

	return nil
}

func (impl *runnerImpl) Problems() []string {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	names := make([]string, 0, len(impl.problems))
	for name := range impl.problems {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func (impl *runnerImpl) Run(c *Case) *Result {
	r := &Result{
		Case: c,
	}

	if c == nil {
		r.Err = ErrBadArgs

		return r
	}

	logger := impl.logger.WithFields(l.StringField("case", c.Name), l.StringField("problem", c.Problem))

	impl.lock.RLock()
	p, ok := impl.problems[c.Problem]
	impl.lock.RUnlock()

	if !ok {
		r.Err = ErrUnknownProblem

		logger.Error("unknown problem")

		return r
	}

	key, err := p.Key(c.Args)
	if err != nil {
		r.Err = err

		logger.WithFields(l.ErrorField(err)).Error("bad args")

		return r
	}

	key = p.Name() + ":" + key

	if impl.memo != nil {
		if got, ok := impl.memo.Get(key); ok {
			r.Got = p.Clone(got)
			r.Cached = true
		}
	}

	if !r.Cached {
		r.Got, r.Err = p.Solve(c.Args)
		if r.Err != nil {
			logger.WithFields(l.ErrorField(r.Err)).Error("solve failed")

			return r
		}

		if impl.memo != nil {
			impl.memo.Set(key, p.Clone(r.Got), cache.DefaultExpiration)
		}
	}

	if c.Expect == nil {
		r.Passed = true

		return r
	}

	r.Passed, r.Err = p.Match(r.Got, c.Expect)
	if r.Err != nil {
		r.Passed = false

		logger.WithFields(l.ErrorField(r.Err)).Error("match failed")

		return r
	}

	if !r.Passed {
		logger.WithFields(l.StringField("got", fmt.Sprint(r.Got)), l.StringField("expect", fmt.Sprint(c.Expect))).
			Error("unexpected result")
	}

	return r
}

func (impl *runnerImpl) RunSuite(cases []*Case) *Report {
	report := &Report{
		RunID:   strconv.FormatUint(snowflake.ID(), 36),
		Results: make([]*Result, 0, len(cases)),
	}

	for _, c := range cases {
		r := impl.Run(c)
		if r.Passed {
			report.Passed++
		} else {
			report.Failed++
		}

		report.Results = append(report.Results, r)
	}

	impl.logger.WithFields(l.StringField("runID", report.RunID), l.IntField("passed", report.Passed),
		l.IntField("failed", report.Failed)).Info("suite finished")

	return report
}

package harness

import "time"

type Options struct {
	cacheDisabled   bool
	cacheExpiration time.Duration
	problems        []Problem
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		cacheExpiration: time.Minute * 5,
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

func WithoutCache() Option {
	return func(o *Options) {
		o.cacheDisabled = true
	}
}

// WithCacheExpiration sets how long solved cases stay memoised; d <= 0 keeps them forever.
func WithCacheExpiration(d time.Duration) Option {
	return func(o *Options) {
		o.cacheExpiration = d
	}
}

func WithProblems(problems ...Problem) Option {
	return func(o *Options) {
		o.problems = append(o.problems, problems...)
	}
}

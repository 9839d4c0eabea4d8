package hours

// Options holds configuration for a single Test or NextStart call.
type Options struct {
	// UTC reads weekday, hour and minute in UTC instead of time.Local.
	UTC bool
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return &Options{}
}

// Option modifies Options.
type Option interface {
	Apply(*Options)
}

type optionFunc func(*Options)

func (f optionFunc) Apply(o *Options) { f(o) }

// UTC selects the UTC representation of the queried instant.
func UTC(enabled bool) Option {
	return optionFunc(func(o *Options) {
		o.UTC = enabled
	})
}

func resolve(opts []Option) *Options {
	o := NewOptions()
	for _, opt := range opts {
		opt.Apply(o)
	}
	return o
}

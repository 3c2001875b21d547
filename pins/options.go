// SPDX-License-Identifier: MIT

package pins

// Option customizes Generate.
// Option constructors validate their arguments and panic on meaningless
// input; Generate itself never panics.
type Option func(*config)

type config struct {
	safetyGap int
}

const (
	// DefaultSafetyGap is the distance in pixels kept between the pin circle
	// and the nearest canvas edge.
	DefaultSafetyGap = 10

	// MinPins is the smallest pin count that forms a ring.
	MinPins = 3
)

func newConfig(opts ...Option) config {
	cfg := config{safetyGap: DefaultSafetyGap}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSafetyGap sets the gap in pixels subtracted from the half-size radius.
// Panics if gap < 0.
func WithSafetyGap(gap int) Option {
	if gap < 0 {
		panic("pins: WithSafetyGap(gap<0)")
	}
	return func(c *config) {
		c.safetyGap = gap
	}
}

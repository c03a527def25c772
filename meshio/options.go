package meshio

import "github.com/charmbracelet/log"

// Option configures a read or write operation.
type Option func(*config)

type config struct {
	logger *log.Logger
}

// WithLogger routes the operation's debug logging through logger instead of
// the process-wide default.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func newConfig(opts []Option) config {
	c := config{logger: log.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

package retry

import (
	"time"

	"github.com/avast/retry-go/v4"
)

// RetryConfig describes the bounded retry policy for auxiliary HTTP calls.
// The completion request deliberately carries no retry policy: a failed
// generation is retried by the user resubmitting, not by the backend.
type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"2"`
	Delay    time.Duration `env:"DELAY" envDefault:"200ms"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"1s"`
}

func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(rc.Attempts),
		retry.Delay(rc.Delay),
		retry.MaxDelay(rc.MaxDelay),
		retry.LastErrorOnly(true),
	}
}

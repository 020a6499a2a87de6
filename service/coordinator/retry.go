package coordinator

import (
	"math"
	"strings"
	"time"
)

// Retry backoff types.
const (
	RetryNone        = "none"
	RetryFixed       = "fixed"
	RetryExponential = "exponential"
)

// Retry bounds how commit attempts are repeated after transient store
// failures.
type Retry struct {
	Type       string        `json:"type,omitempty" yaml:"type,omitempty"`
	MaxRetries int           `json:"maxRetries,omitempty" yaml:"maxRetries,omitempty"`
	Delay      time.Duration `json:"delay,omitempty" yaml:"delay,omitempty"`
	Multiplier float64       `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	MaxDelay   time.Duration `json:"maxDelay,omitempty" yaml:"maxDelay,omitempty"`
}

// DefaultRetry returns the standard fixed backoff bounds.
func DefaultRetry() *Retry {
	return &Retry{
		Type:       RetryFixed,
		MaxRetries: 3,
		Delay:      100 * time.Millisecond,
	}
}

// Next returns (retry?, delay) for the supplied attempt count. Attempts are
// counted from 1 for the initial try, so attempts==1 asks whether a first
// retry may run.
func (r *Retry) Next(attempts int) (bool, time.Duration) {
	if r == nil {
		r = DefaultRetry()
	}
	if strings.ToLower(r.Type) == RetryNone {
		return false, 0
	}
	maxRetries := r.MaxRetries
	if maxRetries == 0 {
		maxRetries = DefaultRetry().MaxRetries
	}
	if attempts > maxRetries {
		return false, 0
	}
	baseDelay := r.Delay
	if baseDelay == 0 {
		baseDelay = DefaultRetry().Delay
	}
	if strings.ToLower(r.Type) != RetryExponential {
		return true, baseDelay
	}
	mult := r.Multiplier
	if mult <= 1 {
		mult = 2
	}
	delay := time.Duration(float64(baseDelay) * math.Pow(mult, float64(attempts-1)))
	if r.MaxDelay > 0 && delay > r.MaxDelay {
		delay = r.MaxDelay
	}
	return true, delay
}

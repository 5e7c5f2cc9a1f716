// Package ratelimit guards the publish pipeline with a fixed ceiling of
// tweets per rolling window. Callers must Check before publishing and
// Consume only after a publish attempt succeeds, so failed attempts never
// burn quota.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

const (
	// DefaultLimit is the X free-tier write budget the relay stays under.
	DefaultLimit = 17
	// DefaultWindow is the period the budget applies to.
	DefaultWindow = 24 * time.Hour
)

// Status is the result of a quota check.
type Status struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter is the publish-quota counter. The in-memory implementation is the
// default; the redis one is for deployments with more than one process.
type Limiter interface {
	Check(ctx context.Context) (Status, error)
	Consume(ctx context.Context) error
}

// LimitExceededError is returned by callers that turn a denied Status into
// an error for the handler layer.
type LimitExceededError struct {
	Status Status
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("tweet limit reached, resets at %s", e.Status.ResetAt.Format(time.RFC3339))
}

package executor

import (
	"context"
	"time"
)

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteWithDeadline(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error)
}

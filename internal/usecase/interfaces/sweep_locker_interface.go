package interfaces

import (
	"context"
	"time"
)

// ISweepLocker guards the reminder sweep against concurrent runs.
type ISweepLocker interface {
	TryAcquire(ctx context.Context, name string, ttl time.Duration) (release func(context.Context) error, acquired bool, err error)
}

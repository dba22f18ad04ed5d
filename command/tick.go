package command

import (
	"context"
	"time"
)

// Tick resolves to mapFn(now) after d has elapsed. It is a convenience
// wrapper over Future: spawn, sleep, produce one message.
func Tick(d time.Duration, mapFn func(time.Time) Msg) Command {
	return Future(func(ctx context.Context) Msg {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case now := <-t.C:
			return mapFn(now)
		case <-ctx.Done():
			return nil
		}
	})
}

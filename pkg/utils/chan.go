package utils

import (
	"context"
	"errors"
	"time"
)

var ErrChannelClosed = errors.New("channel was closed")

// SendWithTimeout sends data unless channel stays full for longer than timeout.
func SendWithTimeout[T any](channel chan<- T, data T, timeout time.Duration) error {
	ctx, cleanup := context.WithTimeout(context.Background(), timeout)
	defer cleanup()
	return SendWithContext(ctx, channel, data)
}

func SendWithContext[T any](ctx context.Context, channel chan<- T, data T) error {
	select {
	case channel <- data:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func RecvWithContext[T any](ctx context.Context, channel <-chan T) (data T, err error) {
	var ok bool
	select {
	case data, ok = <-channel:
		if !ok {
			err = ErrChannelClosed
		}
	case <-ctx.Done():
		err = ctx.Err()
	}
	return
}

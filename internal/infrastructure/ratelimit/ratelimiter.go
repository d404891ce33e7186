// Package ratelimit counts requests per key over sliding windows.
package ratelimit

import (
	"context"
	"time"
)

// Limits caps requests per key. A zero limit disables that window.
type Limits struct {
	PerMinute int
	PerHour   int
}

func (l Limits) windows() []window {
	return []window{
		{time.Minute, l.PerMinute},
		{time.Hour, l.PerHour},
	}
}

type window struct {
	duration time.Duration
	limit    int
}

type Limiter interface {
	// Allow records a request for key and reports whether it fits every window.
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
	Reset(ctx context.Context, key string) error
}

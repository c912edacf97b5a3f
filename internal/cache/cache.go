// Package cache provides the byte cache used for aggregation results.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent.
var ErrMiss = errors.New("cache: miss")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Noop never stores anything. It is used when no cache is configured.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, error)              { return nil, ErrMiss }
func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Noop) Delete(context.Context, string) error                     { return nil }

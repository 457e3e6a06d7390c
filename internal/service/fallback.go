package service

import (
	"context"
	"errors"
)

// step is one candidate source in a fallback chain. ok reports whether it
// produced a usable value; an error aborts the chain.
type step[T any] func(ctx context.Context) (value T, ok bool, err error)

var errChainExhausted = errors.New("service: no fallback step produced a value")

// firstOf runs steps in order and returns the first usable value
func firstOf[T any](ctx context.Context, steps ...step[T]) (T, error) {
	var zero T
	for _, s := range steps {
		v, ok, err := s(ctx)
		if err != nil {
			return zero, err
		}
		if ok {
			return v, nil
		}
	}
	return zero, errChainExhausted
}

// always wraps a value that is always usable, the tail of every chain
func always[T any](v func() T) step[T] {
	return func(context.Context) (T, bool, error) {
		return v(), true, nil
	}
}

// nonEmpty turns a slice lookup into a step that only succeeds on data
func nonEmpty[T any](lookup func(ctx context.Context) ([]T, error)) step[[]T] {
	return func(ctx context.Context) ([]T, bool, error) {
		items, err := lookup(ctx)
		if err != nil {
			return nil, false, err
		}
		return items, len(items) > 0, nil
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstOfTakesFirstUsable(t *testing.T) {
	calls := 0
	skip := func(ctx context.Context) (int, bool, error) { calls++; return 0, false, nil }
	hit := func(ctx context.Context) (int, bool, error) { calls++; return 7, true, nil }
	never := func(ctx context.Context) (int, bool, error) { t.Fatal("step after a hit must not run"); return 0, false, nil }

	v, err := firstOf[int](context.Background(), skip, hit, never)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 2, calls)
}

func TestFirstOfStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	_, err := firstOf(context.Background(),
		nonEmpty(func(context.Context) ([]string, error) { return nil, boom }),
		always(func() []string { return []string{"fallback"} }),
	)
	assert.ErrorIs(t, err, boom)
}

func TestFirstOfExhausted(t *testing.T) {
	_, err := firstOf(context.Background(), nonEmpty(func(context.Context) ([]int, error) { return nil, nil }))
	assert.ErrorIs(t, err, errChainExhausted)
}

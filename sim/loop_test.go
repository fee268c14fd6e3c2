package sim

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoop_FastForward(t *testing.T) {
	n := 0
	l := NewLoop(60, false, func() { n++ }, zerolog.Nop())

	ran, err := l.Run(context.Background(), 250)
	assert.NoError(t, err)
	assert.Equal(t, 250, ran)
	assert.Equal(t, 250, n)
}

func TestLoop_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	l := NewLoop(60, false, func() {
		n++
		if n == 10 {
			cancel()
		}
	}, zerolog.Nop())

	ran, err := l.Run(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 10, ran)
}

func TestLoop_Realtime(t *testing.T) {
	n := 0
	l := NewLoop(1000, true, func() { n++ }, zerolog.Nop())

	start := time.Now()
	ran, err := l.Run(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, ran)
	assert.GreaterOrEqual(t, time.Since(start), 4*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = NewLoop(1, true, func() {}, zerolog.Nop()).Run(ctx, 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

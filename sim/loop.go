package sim

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Loop drives a tick function at a fixed rate, or as fast as possible when
// not in realtime mode.
type Loop struct {
	tick     func()
	tickRate int
	realtime bool
	log      zerolog.Logger
}

func NewLoop(tickRate int, realtime bool, tick func(), log zerolog.Logger) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		tick:     tick,
		tickRate: tickRate,
		realtime: realtime,
		log:      log,
	}
}

// Run calls tick until ticks have run (ticks <= 0 means no limit) or ctx is
// done. It returns the number of ticks run and ctx's error if it stopped
// early.
func (l *Loop) Run(ctx context.Context, ticks int) (int, error) {
	l.log.Info().Int("tickRate", l.tickRate).Bool("realtime", l.realtime).Int("ticks", ticks).Msg("loop started")

	n := 0
	done := func() bool { return ticks > 0 && n >= ticks }

	if !l.realtime {
		for !done() {
			if err := ctx.Err(); err != nil {
				l.log.Info().Int("ran", n).Msg("loop cancelled")
				return n, err
			}
			l.tick()
			n++
		}
		l.log.Info().Int("ran", n).Msg("loop finished")
		return n, nil
	}

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	for !done() {
		select {
		case <-ctx.Done():
			l.log.Info().Int("ran", n).Msg("loop cancelled")
			return n, ctx.Err()
		case <-ticker.C:
			l.tick()
			n++
		}
	}
	l.log.Info().Int("ran", n).Msg("loop finished")
	return n, nil
}

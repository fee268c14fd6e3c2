package factory

import (
	"testing"

	"github.com/automoto/framestrike/assets/animations"
	cfg "github.com/automoto/framestrike/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateClips(t *testing.T) {
	clips, err := GenerateClips("player", 60)
	require.NoError(t, err)
	require.Len(t, clips, 3)

	idle := clips[cfg.ClipIdle]
	assert.Equal(t, 7, idle.Len())
	assert.Equal(t, "player/idle/0", idle.Frame(0).Key)
	assert.InDelta(t, 5.0/60, idle.Frame(0).Duration, 1e-9)
	assert.False(t, idle.Frame(0).Hit)

	_, err = GenerateClips("ghost", 60)
	assert.Error(t, err)
}

func TestNewScheduler_QueueOrderFromConfig(t *testing.T) {
	t.Cleanup(cfg.Reset)
	clips, err := GenerateClips("slime", 60)
	require.NoError(t, err)

	cfg.Animation.QueueOrder = cfg.QueuePriority
	s := NewScheduler("slime")
	for _, id := range []cfg.ClipID{cfg.ClipDeath, cfg.ClipIdle, cfg.ClipMove} {
		def, _ := cfg.Clip("slime", id)
		_, err := s.Submit(newRequest(string(id), def.Priority, clips[id]))
		require.NoError(t, err)
	}
	// death plays; move outranks idle in the queue
	assert.Equal(t, []string{"move", "idle"}, s.PendingNames())
}

func newRequest(name string, priority int, tl *animations.Timeline) *animations.Request {
	return &animations.Request{Name: name, Priority: priority, Timeline: tl}
}

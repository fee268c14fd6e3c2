package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/framestrike/assets/animations"
	"github.com/automoto/framestrike/components"
	cfg "github.com/automoto/framestrike/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoClip = errors.New("systems: entity has no such clip")

// TickSeconds is the simulated time of one update.
func TickSeconds() float64 {
	if cfg.Sim.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(cfg.Sim.TPS)
}

// UpdateAnimators advances every scheduler by one tick. An animator left with
// nothing to play falls back to its idle clip.
func UpdateAnimators(ecs *ecs.ECS) {
	dt := TickSeconds()
	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animator.Get(e)
		anim.Scheduler.Tick(dt)
		if !anim.Scheduler.Playing() && !e.HasComponent(components.Death) {
			_, _ = PlayIdle(ecs, e)
		}
	})
}

func PlayIdle(ecs *ecs.ECS, e *donburi.Entry) (animations.SubmitResult, error) {
	return playClip(ecs, e, cfg.ClipIdle, nil)
}

func PlayMove(ecs *ecs.ECS, e *donburi.Entry) (animations.SubmitResult, error) {
	return playClip(ecs, e, cfg.ClipMove, nil)
}

// PlayDeath interrupts whatever is playing with the death clip. onComplete
// runs when the clip has played out.
func PlayDeath(ecs *ecs.ECS, e *donburi.Entry, onComplete func()) (animations.SubmitResult, error) {
	// Nothing queued before death may start once the clip ends.
	components.Animator.Get(e).Scheduler.ClearPending()
	return playClip(ecs, e, cfg.ClipDeath, onComplete)
}

func playClip(ecs *ecs.ECS, e *donburi.Entry, id cfg.ClipID, onComplete func()) (animations.SubmitResult, error) {
	anim := components.Animator.Get(e)
	def, ok := cfg.Clip(anim.Character, id)
	tl := anim.Clips[id]
	if !ok || tl == nil {
		return animations.Rejected, fmt.Errorf("%w: %s/%s", ErrNoClip, anim.Character, id)
	}

	return submit(ecs, e, &animations.Request{
		Name:       string(id),
		Priority:   def.Priority,
		Loop:       def.Loop,
		Timeline:   tl,
		OnComplete: onComplete,
	})
}

// submit hands r to the entity's scheduler. If r is about to replace an
// attack in progress, the attack's hit volume is closed first since a
// preempted request never sees its completion callback.
func submit(ecs *ecs.ECS, e *donburi.Entry, r *animations.Request) (animations.SubmitResult, error) {
	anim := components.Animator.Get(e)
	if r.Validate() == nil && preempts(anim.Scheduler, r) && e.HasComponent(components.Weapon) {
		weapon := components.Weapon.Get(e)
		if weapon.Attacking {
			endAttack(e)
			if arena, ok := arenaData(ecs); ok {
				arena.Stats.Interrupted++
			}
		}
	}
	return anim.Scheduler.Submit(r)
}

func preempts(s *animations.Scheduler, r *animations.Request) bool {
	cur, ok := s.Current()
	if !ok {
		return false
	}
	if r.Priority < cur.Priority {
		return false
	}
	return r.Name == "" || r.Name != cur.Name
}

func arenaData(ecs *ecs.ECS) (*components.ArenaData, bool) {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Arena.Get(entry), true
}

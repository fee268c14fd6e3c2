package factory

import (
	"fmt"

	"github.com/automoto/framestrike/archetypes"
	"github.com/automoto/framestrike/components"
	cfg "github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDummy spawns the i-th target dummy of config.Arena.Dummies.
func CreateDummy(ecs *ecs.ECS, space *resolv.Space, i int) (*donburi.Entry, error) {
	dc := cfg.Arena.Dummies
	clips, err := GenerateClips("dummy", cfg.Animation.FPS)
	if err != nil {
		return nil, err
	}

	var dummy *donburi.Entry
	patrol := dc.PatrolDistance != 0 && dc.PatrolSeconds > 0
	if patrol {
		dummy = archetypes.Dummy.Spawn(ecs, components.Tween, components.Patrol)
	} else {
		dummy = archetypes.Dummy.Spawn(ecs)
	}

	b := dc.First.Translate(float64(i)*dc.Spacing, 0)
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, "character", tags.ResolvDummy)
	obj.Data = components.NewHurtbox(dummy)
	space.Add(obj)
	components.Object.SetValue(dummy, components.ObjectData{Object: obj})

	components.Health.SetValue(dummy, components.HealthData{
		Current:    dc.Health,
		Max:        dc.Health,
		Resistance: dc.Resistance,
	})
	components.Animator.SetValue(dummy, components.AnimatorData{
		Character: "dummy",
		Scheduler: NewScheduler(fmt.Sprintf("dummy-%d", i)),
		Clips:     clips,
	})

	if patrol {
		p := components.PatrolData{OriginX: b.X, Distance: dc.PatrolDistance, Seconds: dc.PatrolSeconds}
		components.Patrol.SetValue(dummy, p)
		components.Tween.Set(dummy, NewPatrolSequence(p))
	}

	return dummy, nil
}

// NewPatrolSequence sways a body Distance pixels forward and back again.
func NewPatrolSequence(p components.PatrolData) *gween.Sequence {
	from, to := float32(p.OriginX), float32(p.OriginX+p.Distance)
	seconds := float32(p.Seconds)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(from, to, seconds, ease.InOutQuad),
		gween.New(to, from, seconds, ease.InOutQuad),
	)
	return tw
}

package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/framestrike/components"
	cfg "github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/shared/gamemath"
	"github.com/automoto/framestrike/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBodies draws every body as a filled box with its health bar and the key
// of the frame it is showing.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.BackgroundColor)

	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Object.Get(e).Rect()
		hp := components.Health.Get(e)

		c := cfg.BodyColor
		if e.HasComponent(tags.Dummy) {
			c = cfg.TargetColor
		}
		switch {
		case e.HasComponent(components.Death):
			c = cfg.DeadColor
		case hp.FlashTicks > 0:
			c = cfg.FlashColor
		}
		fillRect(screen, body, c)

		if hp.Max > 0 {
			bar := gamemath.Rect{X: body.X, Y: body.Y - 6, W: body.W, H: 3}
			fillRect(screen, bar, cfg.HealthBarBgColor)
			bar.W = body.W * float64(hp.Current) / float64(hp.Max)
			fillRect(screen, bar, cfg.HealthBarFgColor)
		}

		if key := components.Animator.Get(e).Key(); key != "" {
			ebitenutil.DebugPrintAt(screen, key, int(body.X)-8, int(body.Y+body.H)+2)
		}
	})
}

// DrawHitVolumes outlines every hit volume: red while enabled, grey otherwise.
func DrawHitVolumes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitVolumes {
		return
	}
	components.HitVolume.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		hv := components.HitVolume.Get(e)
		c := cfg.IdleVolumeColor
		if hv.Resolver.Enabled() {
			c = cfg.HitVolumeColor
		}
		strokeRect(screen, VolumeRect(e), c)
	})
}

// DrawStats prints the arena totals in the top-left corner.
func DrawStats(ecs *ecs.ECS, screen *ebiten.Image) {
	arena, ok := arenaData(ecs)
	if !ok {
		return
	}
	s := arena.Stats
	msg := fmt.Sprintf("tick %d  swings %d  hits %d  damage %d  kills %d  interrupted %d\n",
		arena.Tick, s.Swings, s.Hits, s.DamageDealt, s.Kills, s.Interrupted)

	components.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		w := components.Weapon.Get(e)
		name := ""
		if w.Weapon != nil {
			name = w.Weapon.Name
		}
		cur, _ := components.Animator.Get(e).Scheduler.Current()
		msg += fmt.Sprintf("%s: %s [%s #%d] queued %d\n",
			f.Name, name, cur.Name, cur.Frame, components.Animator.Get(e).Scheduler.Pending())
	})
	msg += "space: attack  m: move  w: next weapon  d: hit volumes  r: restart"
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

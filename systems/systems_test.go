package systems_test

import (
	"testing"

	"github.com/automoto/framestrike/assets/animations"
	"github.com/automoto/framestrike/assets/weapons"
	"github.com/automoto/framestrike/components"
	cfg "github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/shared/gamemath"
	"github.com/automoto/framestrike/systems"
	"github.com/automoto/framestrike/systems/factory"
	"github.com/rs/zerolog"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// 64 ticks per second keeps every frame boundary exact in float64.
func setup(t *testing.T) {
	t.Helper()
	t.Cleanup(cfg.Reset)
	cfg.Animation.FPS = 64
	cfg.Sim.TPS = 64
	cfg.Combat.DamageVariancePercent = 0
	cfg.Combat.DestroyDelay = 3
	cfg.Arena.Dummies = cfg.DummyConfig{
		Count:   1,
		Health:  60,
		First:   gamemath.Rect{X: 120, Y: 100, W: 16, H: 40},
		Spacing: 48,
	}
}

type world struct {
	ecs   *ecs.ECS
	space *resolv.Space
	arena *components.ArenaData
}

func newWorld(t *testing.T) *world {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	space := components.Space.Get(factory.CreateSpace(e, 320, 240, 16, 16))
	lib, err := weapons.NewLibrary("", cfg.Animation.FPS, zerolog.Nop())
	require.NoError(t, err)
	arena := components.Arena.Get(factory.CreateArena(e, lib, 1))
	return &world{ecs: e, space: space, arena: arena}
}

// tick runs the combat systems in arena order.
func (w *world) tick(n int) {
	for i := 0; i < n; i++ {
		systems.UpdateAnimators(w.ecs)
		systems.UpdateTweens(w.ecs)
		systems.UpdateObjects(w.ecs)
		systems.UpdateHitVolumes(w.ecs)
		systems.UpdateCombat(w.ecs)
		systems.UpdateDeaths(w.ecs)
	}
}

func testWeapon(t *testing.T, attacks ...string) *weapons.Weapon {
	t.Helper()
	spec := weapons.Spec{
		Name:   "test",
		Hitbox: gamemath.Rect{X: 0, Y: 0, W: 20, H: 10},
	}
	for _, name := range attacks {
		spec.Attacks = append(spec.Attacks, weapons.AttackSpec{
			Name: name,
			Frames: []weapons.FrameSpec{
				{Key: name + "/0", Timing: 2},
				{Key: name + "/1", Timing: 2, Hit: true, Damage: ptr(10.0)},
				{Key: name + "/2", Timing: 2},
			},
		})
	}
	w, err := weapons.Compile(spec, cfg.Animation.FPS)
	require.NoError(t, err)
	return w
}

func ptr[T any](v T) *T { return &v }

func (w *world) fighter(t *testing.T, name string, weapon *weapons.Weapon) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateFighter(w.ecs, w.space, cfg.FighterConfig{
		Name:    name,
		Health:  100,
		Body:    gamemath.Rect{X: 100, Y: 100, W: 16, H: 40},
		FacingX: cfg.DirectionRight,
		Tag:     "Player",
		Targets: []string{"Dummy"},
	}, weapon)
	require.NoError(t, err)
	return e
}

func (w *world) dummy(t *testing.T) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateDummy(w.ecs, w.space, 0)
	require.NoError(t, err)
	return e
}

func current(e *donburi.Entry) string {
	p, _ := components.Animator.Get(e).Scheduler.Current()
	return p.Name
}

func TestAttack_OneHitPerWindow(t *testing.T) {
	setup(t)
	w := newWorld(t)
	player := w.fighter(t, "player", testWeapon(t, "slash"))
	dummy := w.dummy(t)

	res, err := systems.Attack(w.ecs, player)
	require.NoError(t, err)
	assert.Equal(t, animations.Started, res)
	assert.True(t, components.Weapon.Get(player).Attacking)
	assert.Equal(t, "slash", components.Weapon.Get(player).Attack)
	hv := components.HitVolume.Get(player)
	assert.False(t, hv.Resolver.Enabled(), "frame 0 is not a hit frame")

	w.tick(2)
	assert.True(t, hv.Resolver.Enabled())
	assert.Equal(t, 50, components.Health.Get(dummy).Current)
	assert.Equal(t, 1, hv.Landed)

	w.tick(1)
	assert.Equal(t, 50, components.Health.Get(dummy).Current, "same window never hits twice")

	w.tick(1)
	assert.False(t, hv.Resolver.Enabled())

	w.tick(2)
	weapon := components.Weapon.Get(player)
	assert.False(t, weapon.Attacking)
	assert.Equal(t, "", weapon.Attack)
	assert.Equal(t, 1, w.arena.Stats.Hits)
	assert.Equal(t, 1, w.arena.Stats.Swings)
	assert.Equal(t, 10, w.arena.Stats.DamageDealt)

	w.tick(1)
	assert.Equal(t, string(cfg.ClipIdle), current(player), "idle resumes after the attack")
}

func TestAttack_ComboPreemptsAndClosesVolume(t *testing.T) {
	setup(t)
	w := newWorld(t)
	player := w.fighter(t, "player", testWeapon(t, "a", "b"))
	w.dummy(t)

	_, err := systems.Attack(w.ecs, player)
	require.NoError(t, err)
	w.tick(2)
	hv := components.HitVolume.Get(player)
	require.True(t, hv.Resolver.Enabled())

	res, err := systems.Attack(w.ecs, player)
	require.NoError(t, err)
	assert.Equal(t, animations.Started, res)
	assert.Equal(t, "b", current(player))
	assert.False(t, hv.Resolver.Enabled(), "preempted attack leaves no open window")
	assert.Equal(t, 2, components.Weapon.Get(player).ComboStep)
	assert.Equal(t, 1, w.arena.Stats.Interrupted)
	assert.True(t, components.Weapon.Get(player).Attacking)
	assert.Equal(t, "b", components.Weapon.Get(player).Attack)
}

func TestAttack_SameAttackIsIgnored(t *testing.T) {
	setup(t)
	w := newWorld(t)
	player := w.fighter(t, "player", testWeapon(t, "a"))

	_, err := systems.Attack(w.ecs, player)
	require.NoError(t, err)
	w.tick(2)

	res, err := systems.Attack(w.ecs, player)
	require.NoError(t, err)
	assert.Equal(t, animations.Ignored, res)
	assert.Equal(t, 1, components.Weapon.Get(player).ComboStep)
	assert.Equal(t, 1, w.arena.Stats.Swings)
	p, _ := components.Animator.Get(player).Scheduler.Current()
	assert.Equal(t, 1, p.Frame, "ignored request does not restart playback")
}

func TestAttack_Errors(t *testing.T) {
	setup(t)
	w := newWorld(t)
	dummy := w.dummy(t)

	_, err := systems.Attack(w.ecs, dummy)
	assert.ErrorIs(t, err, systems.ErrUnarmed)

	player := w.fighter(t, "player", testWeapon(t, "a"))
	components.Health.Get(player).Pending = append(components.Health.Get(player).Pending, components.DamageEvent{Amount: 500})
	systems.UpdateCombat(w.ecs)
	_, err = systems.Attack(w.ecs, player)
	assert.ErrorIs(t, err, systems.ErrDead)
}

func TestPlayDeath_InterruptsAttack(t *testing.T) {
	setup(t)
	w := newWorld(t)
	player := w.fighter(t, "player", testWeapon(t, "a"))
	w.dummy(t)

	_, err := systems.Attack(w.ecs, player)
	require.NoError(t, err)
	w.tick(2)
	require.True(t, components.HitVolume.Get(player).Resolver.Enabled())

	res, err := systems.PlayDeath(w.ecs, player, nil)
	require.NoError(t, err)
	assert.Equal(t, animations.Started, res)
	assert.False(t, components.HitVolume.Get(player).Resolver.Enabled())
	assert.False(t, components.Weapon.Get(player).Attacking)

	res, err = systems.PlayMove(w.ecs, player)
	require.NoError(t, err)
	assert.Equal(t, animations.Queued, res, "move waits behind death")
}

func TestPlayDeath_DropsQueuedClips(t *testing.T) {
	setup(t)
	w := newWorld(t)
	player := w.fighter(t, "player", testWeapon(t, "a"))
	sched := components.Animator.Get(player).Scheduler

	_, err := systems.Attack(w.ecs, player)
	require.NoError(t, err)
	res, err := systems.PlayMove(w.ecs, player)
	require.NoError(t, err)
	require.Equal(t, animations.Queued, res)
	require.Equal(t, 1, sched.Pending())

	_, err = systems.PlayDeath(w.ecs, player, nil)
	require.NoError(t, err)
	assert.Zero(t, sched.Pending())
	assert.Equal(t, string(cfg.ClipDeath), current(player))
}

func TestPlayClip_MissingClip(t *testing.T) {
	setup(t)
	w := newWorld(t)
	dummy := w.dummy(t)

	_, err := systems.PlayDeath(w.ecs, dummy, nil)
	assert.ErrorIs(t, err, systems.ErrNoClip)
	_, err = systems.PlayIdle(w.ecs, dummy)
	assert.NoError(t, err)
}

func TestUpdateCombat_ResistanceClampAndDummyDeath(t *testing.T) {
	setup(t)
	cfg.Arena.Dummies.Health = 8
	cfg.Arena.Dummies.Resistance = 5
	w := newWorld(t)
	dummy := w.dummy(t)
	hurt := components.Object.Get(dummy).Data.(*components.Hurtbox)
	objects := len(w.space.Objects())

	hurt.TakeDamage(10)
	systems.UpdateCombat(w.ecs)
	hp := components.Health.Get(dummy)
	assert.Equal(t, 3, hp.Current)
	assert.Equal(t, cfg.Combat.HitFlashFrames, hp.FlashTicks)

	hurt.TakeDamage(2)
	systems.UpdateCombat(w.ecs)
	assert.Equal(t, 3, components.Health.Get(dummy).Current, "resistance never heals")

	hurt.TakeDamage(20)
	systems.UpdateCombat(w.ecs)
	hp = components.Health.Get(dummy)
	assert.Equal(t, 0, hp.Current)
	require.True(t, dummy.HasComponent(components.Death))
	assert.False(t, components.Death.Get(dummy).Clip)
	assert.False(t, hurt.Valid())
	assert.Equal(t, 1, w.arena.Stats.Kills)
	assert.Equal(t, 3, hp.HitsTaken)

	hurt.TakeDamage(20)
	assert.Empty(t, components.Health.Get(dummy).Pending, "dead bodies take no more hits")

	systems.UpdateDeaths(w.ecs)
	systems.UpdateDeaths(w.ecs)
	assert.True(t, dummy.Valid())
	systems.UpdateDeaths(w.ecs)
	assert.False(t, dummy.Valid())
	assert.Len(t, w.space.Objects(), objects-1)
}

func TestDeathClip_RemovesFighterWhenItEnds(t *testing.T) {
	setup(t)
	w := newWorld(t)
	slime := w.fighter(t, "slime", testWeapon(t, "a"))
	objects := len(w.space.Objects())
	sched := components.Animator.Get(slime).Scheduler
	idle := components.Animator.Get(slime).Clips[cfg.ClipIdle]

	components.Health.Get(slime).Pending = []components.DamageEvent{{Amount: 200}}
	systems.UpdateCombat(w.ecs)
	require.True(t, components.Death.Get(slime).Clip)
	assert.Equal(t, string(cfg.ClipDeath), current(slime))

	// slime/pop is 6 frames of 4 animation frames each
	w.tick(23)
	assert.True(t, slime.Valid())
	w.tick(1)
	assert.False(t, slime.Valid())
	assert.Len(t, w.space.Objects(), objects-2, "body and hit volume probe leave the space")

	_, err := sched.Submit(&animations.Request{Name: "late", Timeline: idle})
	assert.ErrorIs(t, err, animations.ErrClosed)
}

func TestUpdateAutoAttack(t *testing.T) {
	setup(t)
	w := newWorld(t)
	player := w.fighter(t, "player", testWeapon(t, "a"))
	components.Fighter.Get(player).AttackEvery = 3
	components.Fighter.Get(player).Cooldown = 3

	for i := 0; i < 2; i++ {
		systems.UpdateAutoAttack(w.ecs)
	}
	assert.Zero(t, w.arena.Stats.Swings)
	systems.UpdateAutoAttack(w.ecs)
	assert.Equal(t, 1, w.arena.Stats.Swings)
	assert.Equal(t, 3, components.Fighter.Get(player).Cooldown)
}

func TestUpdateTweens_DummyPatrols(t *testing.T) {
	setup(t)
	cfg.Arena.Dummies.PatrolDistance = 32
	cfg.Arena.Dummies.PatrolSeconds = 0.5
	w := newWorld(t)
	dummy := w.dummy(t)
	require.True(t, dummy.HasComponent(components.Tween))

	obj := components.Object.Get(dummy)
	w.tick(32)
	assert.InDelta(t, 152, obj.X, 1)

	for i := 0; i < 200; i++ {
		w.tick(1)
		assert.GreaterOrEqual(t, obj.X, 119.0)
		assert.LessOrEqual(t, obj.X, 153.0)
	}
}

func TestEquipByName(t *testing.T) {
	setup(t)
	w := newWorld(t)
	player := w.fighter(t, "player", testWeapon(t, "a"))

	require.NoError(t, systems.EquipByName(w.ecs, player, "spear"))
	weapon := components.Weapon.Get(player)
	assert.Equal(t, "spear", weapon.Weapon.Name)
	assert.Zero(t, weapon.ComboStep)
	hv := components.HitVolume.Get(player)
	assert.Equal(t, weapon.Weapon.Hitbox, hv.Default)
	assert.Equal(t, weapon.Weapon.Hitbox, hv.Local)

	assert.ErrorIs(t, systems.EquipByName(w.ecs, player, "axe"), weapons.ErrUnknownWeapon)
}

func TestVolumeRect_MirrorsWithFacing(t *testing.T) {
	setup(t)
	w := newWorld(t)
	player := w.fighter(t, "player", testWeapon(t, "a"))

	assert.Equal(t, gamemath.Rect{X: 116, Y: 115, W: 20, H: 10}, systems.VolumeRect(player))
	components.Fighter.Get(player).FacingX = cfg.DirectionLeft
	assert.Equal(t, gamemath.Rect{X: 80, Y: 115, W: 20, H: 10}, systems.VolumeRect(player))
}

func TestDecodeSettings(t *testing.T) {
	s, err := systems.DecodeSettings([]byte(`{"weapon":"spear","drawHitVolumes":true}`))
	require.NoError(t, err)
	assert.Equal(t, &systems.SavedSettings{Weapon: "spear", DrawHitVolumes: true}, s)

	_, err = systems.DecodeSettings([]byte("{"))
	assert.Error(t, err)

	loaded, err := systems.LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, loaded, "no store opened")
}

func TestApplySettings(t *testing.T) {
	setup(t)

	assert.Empty(t, systems.ApplySettings(nil))

	weapon := systems.ApplySettings(&systems.SavedSettings{Weapon: "spear", DrawHitVolumes: false, QueueOrder: "Priority"})
	assert.Equal(t, "spear", weapon)
	assert.False(t, cfg.Debug.DrawHitVolumes)
	assert.Equal(t, cfg.QueuePriority, cfg.Animation.QueueOrder)

	systems.ApplySettings(&systems.SavedSettings{DrawHitVolumes: true, QueueOrder: "lifo"})
	assert.True(t, cfg.Debug.DrawHitVolumes)
	assert.Equal(t, cfg.QueuePriority, cfg.Animation.QueueOrder, "unknown order is ignored")
}

package weapons

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/framestrike/assets/animations"
	"github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/shared/gamemath"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_EmbeddedWeapons(t *testing.T) {
	lib, err := NewLibrary("", 60, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"fists", "spear", "sword"}, lib.Names())

	sword, err := lib.Get("sword")
	require.NoError(t, err)
	assert.Equal(t, []string{"slash", "thrust"}, sword.Attacks())
	assert.Equal(t, gamemath.Rect{X: 0, Y: -4, W: 24, H: 16}, sword.Hitbox)

	slash, ok := sword.Attack("slash")
	require.True(t, ok)
	assert.Equal(t, config.PriorityAttack, slash.Priority)
	require.Equal(t, 4, slash.Timeline.Len())
	assert.InDelta(t, 4.0/60, slash.Timeline.Frame(0).Duration, 1e-9)
	assert.InDelta(t, 16.0/60, slash.Timeline.Total(), 1e-9)

	assert.False(t, slash.Timeline.Frame(0).Hit)
	assert.Zero(t, slash.Timeline.Frame(0).Damage)
	assert.Equal(t, 12.0, slash.Timeline.Frame(1).Damage, "hit frame falls back to base damage")
	assert.Nil(t, slash.Timeline.Frame(1).Box)
	assert.Equal(t, 6.0, slash.Timeline.Frame(2).Damage)
	require.NotNil(t, slash.Timeline.Frame(2).Box)
	assert.Equal(t, 28.0, slash.Timeline.Frame(2).Box.W)

	_, err = lib.Get("axe")
	assert.ErrorIs(t, err, ErrUnknownWeapon)
}

func TestCompile_AttackSpeedScalesDurations(t *testing.T) {
	lib, err := NewLibrary("", 60, zerolog.Nop())
	require.NoError(t, err)

	fists, err := lib.Get("fists")
	require.NoError(t, err)
	jab, _ := fists.Attack("jab")
	assert.InDelta(t, 3.0/60/1.25, jab.Timeline.Frame(0).Duration, 1e-9)

	feint, _ := fists.Attack("feint")
	assert.True(t, feint.Timeline.Frame(1).Hit)
	assert.Zero(t, feint.Timeline.Frame(1).Damage, "explicit zero damage is kept")
}

func TestCompile_Errors(t *testing.T) {
	frames := []FrameSpec{{Key: "a", Timing: 2}}
	prio := 5

	tests := []struct {
		name string
		spec Spec
		want error
	}{
		{"no name", Spec{Attacks: []AttackSpec{{Name: "a", Frames: frames}}}, ErrNoName},
		{"no attacks", Spec{Name: "w"}, ErrNoAttacks},
		{"negative speed", Spec{Name: "w", AttackSpeed: -1, Attacks: []AttackSpec{{Name: "a", Frames: frames}}}, ErrAttackSpeed},
		{"duplicate", Spec{Name: "w", Attacks: []AttackSpec{{Name: "a", Frames: frames}, {Name: "a", Frames: frames}}}, ErrDuplicate},
		{"no frames", Spec{Name: "w", Attacks: []AttackSpec{{Name: "a"}}}, animations.ErrEmptyTimeline},
		{"negative timing", Spec{Name: "w", Attacks: []AttackSpec{{Name: "a", Frames: []FrameSpec{{Timing: -1}}}}}, ErrNegativeTiming},
		{"zero loop", Spec{Name: "w", Attacks: []AttackSpec{{Name: "a", Loop: true, Priority: &prio, Frames: []FrameSpec{{Timing: 0}}}}}, animations.ErrZeroLengthLoop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.spec, 60)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCompile_PriorityOverrideAndAttackAt(t *testing.T) {
	prio := 7
	w, err := Compile(Spec{Name: "w", Attacks: []AttackSpec{
		{Name: "a", Frames: []FrameSpec{{Timing: 1}}},
		{Name: "b", Priority: &prio, Frames: []FrameSpec{{Timing: 1}}},
	}}, 60)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w.AttackSpeed, "omitted speed defaults to 1")

	assert.Equal(t, "a", w.AttackAt(0).Name)
	assert.Equal(t, "b", w.AttackAt(1).Name)
	assert.Equal(t, "a", w.AttackAt(2).Name)
	assert.Equal(t, 7, w.AttackAt(3).Priority)

	req := w.AttackAt(1).Request()
	assert.Equal(t, "b", req.Name)
	assert.NoError(t, req.Validate())

	var nilWeapon *Weapon
	assert.Nil(t, nilWeapon.AttackAt(0))
	assert.Empty(t, nilWeapon.Attacks())
}

func TestLibrary_DiskOverrideAndReload(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	write("sword.yaml", `
name: sword
base_damage: 99
attacks:
  - name: chop
    frames:
      - {key: a, timing: 6, hit: true}
`)
	write("club.yml", `
name: club
base_damage: 20
attacks:
  - name: bonk
    frames:
      - {key: a, timing: 10, hit: true}
`)

	lib, err := NewLibrary(dir, 60, zerolog.Nop())
	require.NoError(t, err)
	assert.Contains(t, lib.Names(), "club")

	sword, err := lib.Get("sword")
	require.NoError(t, err)
	assert.Equal(t, []string{"chop"}, sword.Attacks())

	path := write("sword.yaml", "name: sword\nattacks: [")
	_, err = lib.Reload(path)
	require.Error(t, err)
	kept, _ := lib.Get("sword")
	assert.Same(t, sword, kept, "failed reload keeps the previous weapon")

	write("sword.yaml", `
name: sword
base_damage: 1
attacks:
  - name: poke
    frames:
      - {key: a, timing: 2, hit: true}
`)
	reloaded, err := lib.Reload(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"poke"}, reloaded.Attacks())
	got, _ := lib.Get("sword")
	assert.Same(t, reloaded, got)
}

func TestLibrary_BrokenDiskFileFailsLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: bad\n"), 0o644))

	_, err := NewLibrary(dir, 60, zerolog.Nop())
	assert.ErrorIs(t, err, ErrNoAttacks)
	assert.ErrorContains(t, err, "load bad")
}

func TestWatcher_ReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spear.yaml"), []byte("name: spear"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Drain()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)

	for _, name := range got {
		assert.Equal(t, "spear.yaml", filepath.Base(name))
	}
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "second close is a no-op")
}

package weapons

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Library holds the compiled weapons. It is not safe for concurrent use;
// reloads are applied from the tick thread.
type Library struct {
	dir     string
	fps     float64
	weapons map[string]*Weapon
	log     zerolog.Logger
}

// NewLibrary compiles every embedded weapon plus any found in dir. A broken
// definition fails the whole load.
func NewLibrary(dir string, fps float64, log zerolog.Logger) (*Library, error) {
	l := &Library{
		dir:     dir,
		fps:     fps,
		weapons: make(map[string]*Weapon),
		log:     log,
	}
	for _, name := range Names(dir) {
		w, err := l.load(name)
		if err != nil {
			return nil, err
		}
		l.weapons[name] = w
	}
	return l, nil
}

func (l *Library) load(name string) (*Weapon, error) {
	data, err := Read(l.dir, name)
	if err != nil {
		return nil, fmt.Errorf("weapons: load %s: %w", name, err)
	}
	spec, err := DecodeSpec(data)
	if err != nil {
		return nil, fmt.Errorf("weapons: load %s: %w", name, err)
	}
	w, err := Compile(spec, l.fps)
	if err != nil {
		return nil, fmt.Errorf("weapons: load %s: %w", name, err)
	}
	return w, nil
}

// Get returns the named weapon.
func (l *Library) Get(name string) (*Weapon, error) {
	if w, ok := l.weapons[name]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWeapon, name)
}

// Names lists loaded weapons in sorted order.
func (l *Library) Names() []string {
	return sortedNames(l.weapons)
}

// Reload recompiles the weapon defined by path (a file name or weapon name).
// On error the previous version is kept.
func (l *Library) Reload(path string) (*Weapon, error) {
	name := nameOf(path)
	w, err := l.load(name)
	if err != nil {
		l.log.Warn().Err(err).Str("weapon", name).Msg("reload failed, keeping previous definition")
		return nil, err
	}
	l.weapons[name] = w
	l.log.Info().Str("weapon", name).Strs("attacks", w.Attacks()).Msg("weapon reloaded")
	return w, nil
}

// Dir is the disk override directory, or "" when only embedded data is used.
func (l *Library) Dir() string {
	return l.dir
}

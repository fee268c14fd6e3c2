package weapons

import (
	"fmt"

	"github.com/automoto/framestrike/shared/gamemath"
	"gopkg.in/yaml.v3"
)

// Spec is the on-disk form of a weapon definition.
type Spec struct {
	Name        string        `yaml:"name"`
	BaseDamage  float64       `yaml:"base_damage"`
	AttackSpeed float64       `yaml:"attack_speed"`
	Hitbox      gamemath.Rect `yaml:"hitbox"`
	Attacks     []AttackSpec  `yaml:"attacks"`
}

type AttackSpec struct {
	Name string `yaml:"name"`
	// Priority defaults to config.PriorityAttack when omitted.
	Priority *int        `yaml:"priority"`
	Loop     bool        `yaml:"loop"`
	Frames   []FrameSpec `yaml:"frames"`
}

// FrameSpec is one attack frame. Timing is in animation frames; Damage
// defaults to the weapon's base damage on hit frames.
type FrameSpec struct {
	Key    string         `yaml:"key"`
	Timing float64        `yaml:"timing"`
	Hit    bool           `yaml:"hit"`
	Damage *float64       `yaml:"damage"`
	Box    *gamemath.Rect `yaml:"box"`
}

// DecodeSpec parses a weapon definition.
func DecodeSpec(data []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("decode weapon spec: %w", err)
	}
	return spec, nil
}

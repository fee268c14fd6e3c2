package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ErrUnknownQueueOrder is returned for an animation.queueOrder that is neither
// "fifo" nor "priority".
var ErrUnknownQueueOrder = errors.New("unknown queue order")

// sections maps top-level config keys onto the package-level sections.
// Defaults already sit in the targets, so keys absent from the file keep them.
func sections() map[string]any {
	return map[string]any{
		"window":    C,
		"animation": &Animation,
		"combat":    &Combat,
		"arena":     &Arena,
		"sim":       &Sim,
		"debug":     &Debug,
	}
}

// Load overlays the file at path onto the defaults. An empty path or a
// missing file keeps the defaults. The format follows the file extension
// (yaml, json, toml).
func Load(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("FRAMESTRIKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	// A fighter list in the file replaces the defaults instead of being
	// decoded element by element into them.
	if v.IsSet("arena.fighters") {
		Arena.Fighters = nil
	}

	for key, target := range sections() {
		if !v.IsSet(key) {
			continue
		}
		if err := v.UnmarshalKey(key, target); err != nil {
			return fmt.Errorf("decode %s section: %w", key, err)
		}
	}

	if _, err := ParseQueueOrder(Animation.QueueOrder); err != nil {
		return err
	}
	return nil
}

// QueueOrder values understood by animation.queueOrder.
const (
	QueueFIFO     = "fifo"
	QueuePriority = "priority"
)

// ParseQueueOrder normalises a queue order name. Empty means fifo.
func ParseQueueOrder(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", QueueFIFO:
		return QueueFIFO, nil
	case QueuePriority:
		return QueuePriority, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownQueueOrder, s)
	}
}

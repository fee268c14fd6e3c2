package systems

import (
	"encoding/json"

	cfg "github.com/automoto/framestrike/config"
	"github.com/automoto/framestrike/logging"
	"github.com/quasilyte/gdata"
)

// SavedSettings is the sandbox state stored between sessions.
type SavedSettings struct {
	Weapon         string `json:"weapon"`
	DrawHitVolumes bool   `json:"drawHitVolumes"`
	QueueOrder     string `json:"queueOrder"`
}

const settingsKey = "sandbox"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data store.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log := logging.Component("persistence")
		log.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the saved settings, or nil when there are none or
// persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log := logging.Component("persistence")
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}
	return DecodeSettings(data)
}

// SaveSettings stores s. It is a no-op when persistence is unavailable.
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log := logging.Component("persistence")
		log.Warn().Err(err).Msg("could not save settings")
		return err
	}
	return nil
}

func DecodeSettings(data []byte) (*SavedSettings, error) {
	var s SavedSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ApplySettings restores the saved debug overlay and queue order and returns
// the saved weapon name. An unknown queue order keeps the configured one.
func ApplySettings(s *SavedSettings) string {
	if s == nil {
		return ""
	}
	cfg.Debug.DrawHitVolumes = s.DrawHitVolumes
	if s.QueueOrder != "" {
		order, err := cfg.ParseQueueOrder(s.QueueOrder)
		if err != nil {
			log := logging.Component("persistence")
			log.Warn().Err(err).Msg("ignoring saved queue order")
		} else {
			cfg.Animation.QueueOrder = order
		}
	}
	return s.Weapon
}

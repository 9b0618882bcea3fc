package mrbinaer

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are player preferences that survive restarts. Game progress is
// never stored here.
type Settings struct {
	SoundEnabled bool `yaml:"soundEnabled"`
}

// DefaultSettings returns the settings used when nothing has been saved.
func DefaultSettings() Settings {
	return Settings{SoundEnabled: true}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsStore loads and saves Settings through gdata. A store without a
// gdata manager keeps settings in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings Settings
	log      *Logger
}

// OpenSettings opens the gdata storage for appName and loads any saved
// settings. Storage that cannot be opened is not fatal: the store falls back
// to memory-only and the error is logged.
func OpenSettings(appName string, log *Logger) *SettingsStore {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("settings: storage unavailable, using defaults: %v", err)
		m = nil
	}
	return NewSettingsStore(m, log)
}

// NewSettingsStore wraps an already opened manager, which may be nil.
func NewSettingsStore(m *gdata.Manager, log *Logger) *SettingsStore {
	s := &SettingsStore{manager: m, settings: DefaultSettings(), log: log}
	if err := s.Load(); err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}
	return s
}

// Settings returns the current settings.
func (s *SettingsStore) Settings() Settings {
	return s.settings
}

// Load replaces the in-memory settings with the saved ones. Missing data
// leaves the defaults in place.
func (s *SettingsStore) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		s.settings = DefaultSettings()
		return nil
	}
	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		s.settings = DefaultSettings()
		return fmt.Errorf("load settings: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		s.settings = DefaultSettings()
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	s.settings = loaded
	return nil
}

// Save writes the current settings. Memory-only stores succeed silently.
func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ToggleSound flips the sound setting, saves it and returns the new value.
// A failed save is logged and the in-memory value is kept.
func (s *SettingsStore) ToggleSound() bool {
	s.settings.SoundEnabled = !s.settings.SoundEnabled
	if err := s.Save(); err != nil {
		s.log.Printf("settings: %v", err)
	}
	return s.settings.SoundEnabled
}

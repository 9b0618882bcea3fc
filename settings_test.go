package mrbinaer

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func TestMemorySettingsStore(t *testing.T) {
	s := NewSettingsStore(nil, nil)
	if !s.Settings().SoundEnabled {
		t.Fatal("sound should default to on")
	}
	if on := s.ToggleSound(); on {
		t.Error("ToggleSound returned true, want false")
	}
	if s.Settings().SoundEnabled {
		t.Error("sound still enabled after toggle")
	}
	if err := s.Save(); err != nil {
		t.Errorf("memory Save: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Errorf("memory Load: %v", err)
	}
	if !s.Settings().SoundEnabled {
		t.Error("Load without storage should restore defaults")
	}
}

func TestSoundKeyTogglesSettings(t *testing.T) {
	store := NewSettingsStore(nil, nil)
	s := NewSession(NewSecret(5), SessionOptions{Settings: store})
	s.Step([]Event{keyEvent(KeyS)})
	if store.Settings().SoundEnabled {
		t.Error("S did not disable sound")
	}
	s.Step([]Event{keyEvent(KeyS)})
	if !store.Settings().SoundEnabled {
		t.Error("second S did not enable sound")
	}
}

func TestSettingsPersistThroughGdata(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	m, err := gdata.Open(gdata.Config{AppName: "mrbinaer_test_settings"})
	if err != nil {
		t.Fatalf("open gdata: %v", err)
	}
	t.Cleanup(func() {
		_ = m.DeleteObjectProp(settingsObject, settingsProperty)
	})

	first := NewSettingsStore(m, nil)
	if !first.Settings().SoundEnabled {
		t.Fatal("fresh storage should load the defaults")
	}
	if on := first.ToggleSound(); on {
		t.Fatal("ToggleSound returned true, want false")
	}
	if !m.ObjectPropExists(settingsObject, settingsProperty) {
		t.Fatal("toggle did not save the settings")
	}

	reloaded := NewSettingsStore(m, nil)
	if reloaded.Settings().SoundEnabled {
		t.Error("reloaded SoundEnabled = true, want false")
	}

	reloaded.ToggleSound()
	if err := first.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !first.Settings().SoundEnabled {
		t.Error("Load did not pick up the saved value")
	}
}

func TestSettingsLoadRejectsCorruptData(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	m, err := gdata.Open(gdata.Config{AppName: "mrbinaer_test_corrupt"})
	if err != nil {
		t.Fatalf("open gdata: %v", err)
	}
	t.Cleanup(func() {
		_ = m.DeleteObjectProp(settingsObject, settingsProperty)
	})
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("soundEnabled: [")); err != nil {
		t.Fatal(err)
	}

	s := NewSettingsStore(m, nil)
	if !s.Settings().SoundEnabled {
		t.Error("corrupt data should fall back to the defaults")
	}
	if err := s.Load(); err == nil {
		t.Error("Load of corrupt data returned nil error")
	}
}

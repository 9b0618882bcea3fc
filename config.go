package mrbinaer

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultConfigYAML []byte

// Config holds every tunable of the game. The zero value is not usable; start
// from DefaultConfig or LoadConfig.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Figure    FigureConfig    `yaml:"figure"`
	Hat       HatConfig       `yaml:"hat"`
	Melt      MeltConfig      `yaml:"melt"`
	Grow      GrowConfig      `yaml:"grow"`
	Deform    DeformConfig    `yaml:"deform"`
}

// WindowConfig sizes and titles the window. The size is also the logical
// screen every frontend maps onto.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AnimationConfig sets the frame count every transitional state lasts.
type AnimationConfig struct {
	Duration int `yaml:"duration"`
}

// FigureConfig places the figure on screen. X and Y are the screen position
// of the model's top-left corner; Unit is pixels per model unit.
type FigureConfig struct {
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	Unit          float64 `yaml:"unit"`
	SwayAmplitude float64 `yaml:"sway_amplitude"`
	SwaySpeed     float64 `yaml:"sway_speed"`
	JumpHeight    float64 `yaml:"jump_height"`
	WaveShear     float64 `yaml:"wave_shear"`
}

// HatConfig sizes the hat and tunes the solver that keeps it on the head.
type HatConfig struct {
	LeftX    float64 `yaml:"left_x"`
	RightX   float64 `yaml:"right_x"`
	Epsilon  float64 `yaml:"epsilon"`
	FallStep float64 `yaml:"fall_step"`
	Brim     float64 `yaml:"brim"`
	Crown    float64 `yaml:"crown"`
	HandX    float64 `yaml:"hand_x"`
	HandY    float64 `yaml:"hand_y"`
}

// MeltConfig controls the idle random melt. It is off unless RandomChance > 0.
type MeltConfig struct {
	RandomChance float64 `yaml:"random_chance"`
}

// GrowConfig sets how far one wheel step scales the figure and the largest
// scale allowed.
type GrowConfig struct {
	Factor float64 `yaml:"factor"`
	Max    float64 `yaml:"max"`
}

// DeformConfig sizes the dent a pointer press makes, in model units.
type DeformConfig struct {
	Radius   float64 `yaml:"radius"`
	Strength float64 `yaml:"strength"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("mrbinaer: embedded config: %v", err))
	}
	return cfg
}

// ParseConfig overlays YAML data on the defaults. Keys missing from data keep
// their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("mrbinaer: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML file and overlays it on the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("mrbinaer: load config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks every field for a usable value. All failures wrap
// ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Animation.Duration > 0, "animation duration %d", c.Animation.Duration)
	check(c.Figure.Unit > 0, "figure unit %v", c.Figure.Unit)
	check(c.Hat.LeftX < c.Hat.RightX, "hat anchors %v >= %v", c.Hat.LeftX, c.Hat.RightX)
	check(c.Hat.Epsilon >= 0, "hat epsilon %v", c.Hat.Epsilon)
	check(c.Hat.FallStep > 0, "hat fall step %v", c.Hat.FallStep)
	check(c.Melt.RandomChance >= 0 && c.Melt.RandomChance <= 1, "melt chance %v", c.Melt.RandomChance)
	check(c.Grow.Factor > 1, "grow factor %v", c.Grow.Factor)
	check(c.Grow.Max >= 1, "grow max %v", c.Grow.Max)
	check(c.Deform.Radius >= 0, "deform radius %v", c.Deform.Radius)
	return errors.Join(errs...)
}

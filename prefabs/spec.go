package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	PlayerSpecFile = "samurai.yaml"
	ThemeSpecFile  = "theme.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec describes the samurai: movement speed, playback throttle and
// where its idle and walk frames live.
type PlayerSpec struct {
	Name            string        `yaml:"name"`
	MoveSpeed       float64       `yaml:"move_speed"`
	UpdatesPerFrame int           `yaml:"updates_per_frame"`
	Scale           float64       `yaml:"scale"`
	Animation       AnimationSpec `yaml:"animation"`
}

type AnimationSpec struct {
	Dir  string           `yaml:"dir"`
	Idle AnimationDefSpec `yaml:"idle"`
	Walk AnimationDefSpec `yaml:"walk"`
}

type AnimationDefSpec struct {
	Name       string `yaml:"name"`
	FrameCount int    `yaml:"frame_count"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerSpecFile, err)
	}
	return &spec, nil
}

// Validate rejects specs that would leave the player without frames.
func (s PlayerSpec) Validate() error {
	if s.MoveSpeed <= 0 {
		return fmt.Errorf("move_speed must be positive, got %v", s.MoveSpeed)
	}
	if s.UpdatesPerFrame <= 0 {
		return fmt.Errorf("updates_per_frame must be positive, got %d", s.UpdatesPerFrame)
	}
	for _, def := range []AnimationDefSpec{s.Animation.Idle, s.Animation.Walk} {
		if def.Name == "" {
			return fmt.Errorf("animation name is required")
		}
		if def.FrameCount <= 0 {
			return fmt.Errorf("animation %q: frame_count must be positive, got %d", def.Name, def.FrameCount)
		}
	}
	return nil
}

// ThemeSpec holds the colors and button geometry shared by the menu screens.
type ThemeSpec struct {
	MenuBackground YAMLColor  `yaml:"menu_background"`
	GameBackground YAMLColor  `yaml:"game_background"`
	Button         ButtonSpec `yaml:"button"`
}

type ButtonSpec struct {
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Spacing int       `yaml:"spacing"`
	Idle    YAMLColor `yaml:"idle"`
	Hover   YAMLColor `yaml:"hover"`
	Pressed YAMLColor `yaml:"pressed"`
	Text    YAMLColor `yaml:"text"`
}

func LoadThemeSpec() (*ThemeSpec, error) {
	spec, err := LoadSpec[ThemeSpec](ThemeSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when the field was left out.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}

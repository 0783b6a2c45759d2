package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const yamlNullTag = "!!null"

// HexColor is a 0xRRGGBB color written as "#RRGGBB" in scene files.
type HexColor uint32

// UnmarshalYAML accepts "#RRGGBB" strings.
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// String renders the color back to its "#RRGGBB" form.
func (c HexColor) String() string {
	return fmt.Sprintf("#%06X", uint32(c))
}

// ParseHexColor converts "#RRGGBB" (leading '#' optional) into a HexColor.
func ParseHexColor(s string) (HexColor, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), HexColorPrefix)
	if len(s) != HexColorDigits {
		return 0, fmt.Errorf("%s: %q", ErrSceneColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrSceneColor, err)
	}
	return HexColor(v), nil
}

// Scene is the optional on-disk description of a day cycle and its host layout.
// Keys missing from the file keep their defaults. Value ranges are not checked:
// misordered windows produce degenerate visuals, never errors.
type Scene struct {
	DayLengthSeconds float64  `yaml:"day_length_seconds"`
	SunriseStart     float64  `yaml:"sunrise_start"`
	SunriseEnd       float64  `yaml:"sunrise_end"`
	SunsetStart      float64  `yaml:"sunset_start"`
	SunsetEnd        float64  `yaml:"sunset_end"`
	MinDarkAlpha     float64  `yaml:"min_dark_alpha"`
	MaxLightAlpha    float64  `yaml:"max_light_alpha"`
	SunColor         HexColor `yaml:"sun_color"`
	MoonColor        HexColor `yaml:"moon_color"`
	BackLayerDepth   float64  `yaml:"back_layer_depth"`
	OverlayDepth     float64  `yaml:"overlay_depth"`
	SchedulePort     int      `yaml:"schedule_port"`
}

// DefaultScene returns a Scene populated with the documented defaults.
func DefaultScene() Scene {
	return Scene{
		DayLengthSeconds: DefaultDayLengthSeconds,
		SunriseStart:     DefaultSunriseStart,
		SunriseEnd:       DefaultSunriseEnd,
		SunsetStart:      DefaultSunsetStart,
		SunsetEnd:        DefaultSunsetEnd,
		MinDarkAlpha:     DefaultMinDarkAlpha,
		MaxLightAlpha:    DefaultMaxLightAlpha,
		SunColor:         DefaultSunColor,
		MoonColor:        DefaultMoonColor,
		BackLayerDepth:   DefaultBackLayerDepth,
		OverlayDepth:     DefaultOverlayDepth,
		SchedulePort:     DefaultPort,
	}
}

// LoadScene reads a YAML scene file and applies environment variable overrides.
// An empty path yields the defaults (plus overrides).
func LoadScene(path string) (*Scene, error) {
	scene := DefaultScene()

	if path != "" {
		// #nosec G304 -- scene path is provided by the user via CLI flag
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrSceneRead, err)
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrSceneParse, err)
		}
		if err := checkSceneColors(&doc); err != nil {
			return nil, err
		}
		// Unmarshalling onto the defaults leaves absent keys untouched.
		if err := yaml.Unmarshal(data, &scene); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrSceneParse, err)
		}
	}

	if err := applySceneEnv(&scene); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSceneEnv, err)
	}
	return &scene, nil
}

// checkSceneColors rejects color keys whose value decoded to null. An unquoted
// #RRGGBB is a YAML comment, and yaml.v3 skips UnmarshalYAML for null nodes,
// so without this check the default would be kept silently.
func checkSceneColors(doc *yaml.Node) error {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]
		if key != SceneKeySunColor && key != SceneKeyMoonColor {
			continue
		}
		if val.Kind == yaml.ScalarNode && (val.Tag == yamlNullTag || strings.TrimSpace(val.Value) == "") {
			return fmt.Errorf("%s: %s: %s", ErrSceneColor, key, ErrSceneColorEmpty)
		}
	}
	return nil
}

// applySceneEnv overrides scene values from the environment.
func applySceneEnv(scene *Scene) error {
	var errs []error

	if val := os.Getenv(EnvDayLength); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be a number, got %q", EnvDayLength, val))
		} else {
			scene.DayLengthSeconds = f
		}
	}

	if val := os.Getenv(EnvSchedulePort); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be an integer, got %q", EnvSchedulePort, val))
		} else {
			scene.SchedulePort = i
		}
	}

	return errors.Join(errs...)
}

package photowall

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("photowall: invalid config")

// FocusPolicy selects where a focused tile comes to rest.
type FocusPolicy uint8

const (
	// FocusFixedPoint moves the focused tile to Config.FocalPoint and
	// recenters the container on the origin.
	FocusFixedPoint FocusPolicy = iota
	// FocusInPlace leaves the focused tile at its base position and moves
	// the container so that position lands on the wall center.
	FocusInPlace
)

var focusPolicyNames = [...]string{
	FocusFixedPoint: "fixed",
	FocusInPlace:    "in-place",
}

// String returns the policy's config name.
func (p FocusPolicy) String() string {
	if int(p) < len(focusPolicyNames) {
		return focusPolicyNames[p]
	}
	return fmt.Sprintf("FocusPolicy(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p FocusPolicy) MarshalText() ([]byte, error) {
	if int(p) >= len(focusPolicyNames) {
		return nil, fmt.Errorf("%w: unknown focus policy %d", ErrInvalidConfig, uint8(p))
	}
	return []byte(focusPolicyNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *FocusPolicy) UnmarshalText(text []byte) error {
	for i, name := range focusPolicyNames {
		if string(text) == name {
			*p = FocusPolicy(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown focus policy %q", ErrInvalidConfig, text)
}

// EaseName names an easing curve. The names follow the common
// "family.direction" convention, where power1..power4 are quad, cubic,
// quart and quint.
type EaseName string

const (
	EaseLinear    EaseName = "linear"
	EasePower3Out EaseName = "power3.out"
)

var easeFuncs = map[EaseName]ease.TweenFunc{
	"linear":       ease.Linear,
	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inOut": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inOut": ease.InOutCubic,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inOut": ease.InOutQuart,
	"power4.in":    ease.InQuint,
	"power4.out":   ease.OutQuint,
	"power4.inOut": ease.InOutQuint,
	"sine.in":      ease.InSine,
	"sine.out":     ease.OutSine,
	"sine.inOut":   ease.InOutSine,
	"expo.in":      ease.InExpo,
	"expo.out":     ease.OutExpo,
	"expo.inOut":   ease.InOutExpo,
	"back.out":     ease.OutBack,
	"elastic.out":  ease.OutElastic,
	"bounce.out":   ease.OutBounce,
}

// Func returns the gween easing function for the name.
func (e EaseName) Func() (ease.TweenFunc, bool) {
	fn, ok := easeFuncs[e]
	return fn, ok
}

// Motion is the fixed duration and easing used for one kind of animation.
type Motion struct {
	// Duration in seconds.
	Duration float32  `json:"duration"`
	Ease     EaseName `json:"ease"`
}

func (m Motion) validate(field string) error {
	if !(m.Duration >= 0) || math.IsInf(float64(m.Duration), 0) {
		return fmt.Errorf("%w: %s duration %v", ErrInvalidConfig, field, m.Duration)
	}
	if _, ok := m.Ease.Func(); !ok {
		return fmt.Errorf("%w: %s ease %q", ErrInvalidConfig, field, m.Ease)
	}
	return nil
}

// Config holds the tunable constants of the wall.
type Config struct {
	// GridSize is the lattice edge length; the wall has GridSize² tiles.
	GridSize int `json:"gridSize"`
	// Spacing is the distance between neighboring tile centers in world units.
	Spacing float64 `json:"spacing"`
	// TileSize is the edge length of a tile plane in world units.
	TileSize float64 `json:"tileSize"`

	// PanGain converts the normalized pointer offset into a container offset.
	PanGain float64 `json:"panGain"`
	// FocusScale is the scale of the focused tile.
	FocusScale float64 `json:"focusScale"`
	// HideFactor pushes unfocused tiles outward by multiplying their base
	// position.
	HideFactor float64 `json:"hideFactor"`
	// FocalPoint is where FocusFixedPoint moves the focused tile, in
	// container space.
	FocalPoint Vec3        `json:"focalPoint"`
	FocusPolicy FocusPolicy `json:"focusPolicy"`

	// TransformMotion animates tiles and the container after a click.
	TransformMotion Motion `json:"transformMotion"`
	// PanMotion animates the container while it tracks the pointer.
	PanMotion Motion `json:"panMotion"`

	// CameraZ is the camera distance from the wall plane.
	CameraZ float64 `json:"cameraZ"`
	// FOV is the vertical field of view in degrees.
	FOV float64 `json:"fov"`

	Background Color `json:"background"`
}

// DefaultConfig returns the configuration of the reference wall: a 15x15
// lattice seen from five units away.
func DefaultConfig() Config {
	return Config{
		GridSize:        15,
		Spacing:         1.5,
		TileSize:        1,
		PanGain:         3,
		FocusScale:      1.5,
		HideFactor:      5,
		FocalPoint:      Vec3{0, 0, 2},
		FocusPolicy:     FocusFixedPoint,
		TransformMotion: Motion{Duration: 0.8, Ease: EasePower3Out},
		PanMotion:       Motion{Duration: 0.5, Ease: EasePower3Out},
		CameraZ:         5,
		FOV:             50,
		Background:      Color{0, 0, 0, 1},
	}
}

// LoadConfig overlays the JSON document data onto DefaultConfig and validates
// the result. Fields absent from data keep their defaults; unknown fields
// are an error.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("%w: gridSize %d", ErrInvalidConfig, c.GridSize)
	}
	positive := []struct {
		name string
		v    float64
	}{
		{"spacing", c.Spacing},
		{"tileSize", c.TileSize},
		{"focusScale", c.FocusScale},
		{"cameraZ", c.CameraZ},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	if math.IsNaN(c.PanGain) || math.IsInf(c.PanGain, 0) {
		return fmt.Errorf("%w: panGain %v", ErrInvalidConfig, c.PanGain)
	}
	if math.IsNaN(c.HideFactor) || math.IsInf(c.HideFactor, 0) {
		return fmt.Errorf("%w: hideFactor %v", ErrInvalidConfig, c.HideFactor)
	}
	if !(c.FOV > 0 && c.FOV < 180) {
		return fmt.Errorf("%w: fov %v", ErrInvalidConfig, c.FOV)
	}
	if int(c.FocusPolicy) >= len(focusPolicyNames) {
		return fmt.Errorf("%w: focusPolicy %d", ErrInvalidConfig, c.FocusPolicy)
	}
	for _, v := range [...]float64{c.FocalPoint.X, c.FocalPoint.Y, c.FocalPoint.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: focalPoint %v", ErrInvalidConfig, c.FocalPoint)
		}
	}
	if c.FocalPoint.Z >= c.CameraZ {
		return fmt.Errorf("%w: focalPoint z %v is behind the camera", ErrInvalidConfig, c.FocalPoint.Z)
	}
	if err := c.TransformMotion.validate("transformMotion"); err != nil {
		return err
	}
	return c.PanMotion.validate("panMotion")
}

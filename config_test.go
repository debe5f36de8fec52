package photowall

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{
		"gridSize": 8,
		"focusPolicy": "in-place",
		"panMotion": {"duration": 0.25, "ease": "sine.out"}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GridSize != 8 {
		t.Errorf("GridSize = %d, want 8", cfg.GridSize)
	}
	if cfg.FocusPolicy != FocusInPlace {
		t.Errorf("FocusPolicy = %v, want in-place", cfg.FocusPolicy)
	}
	if cfg.PanMotion != (Motion{Duration: 0.25, Ease: "sine.out"}) {
		t.Errorf("PanMotion = %+v", cfg.PanMotion)
	}
	def := DefaultConfig()
	if cfg.Spacing != def.Spacing || cfg.TransformMotion != def.TransformMotion {
		t.Error("unset fields should keep their defaults")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"syntax", `{"gridSize":`},
		{"grid size", `{"gridSize": 0}`},
		{"spacing", `{"spacing": -1}`},
		{"policy", `{"focusPolicy": "orbit"}`},
		{"ease", `{"transformMotion": {"duration": 1, "ease": "wobble"}}`},
		{"duration", `{"panMotion": {"duration": -1, "ease": "linear"}}`},
		{"fov", `{"fov": 180}`},
		{"focal point", `{"focalPoint": {"x": 0, "y": 0, "z": 9}}`},
		{"misspelled key", `{"panGian": 2}`},
		{"unknown nested key", `{"panMotion": {"duration": 0.5, "easing": "linear"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig([]byte(tt.json)); err == nil {
				t.Error("expected error")
			}
		})
	}
	if _, err := LoadConfig([]byte(`{"gridSize": -2}`)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestFocusPolicyText(t *testing.T) {
	for _, p := range []FocusPolicy{FocusFixedPoint, FocusInPlace} {
		b, err := json.Marshal(p)
		if err != nil {
			t.Fatal(err)
		}
		var got FocusPolicy
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatal(err)
		}
		if got != p {
			t.Errorf("round trip %v -> %s -> %v", p, b, got)
		}
	}
	if s := FocusPolicy(7).String(); s != "FocusPolicy(7)" {
		t.Errorf("String = %q", s)
	}
}

func TestEaseNames(t *testing.T) {
	for _, name := range []EaseName{EaseLinear, EasePower3Out, "power1.inOut", "bounce.out"} {
		if _, ok := name.Func(); !ok {
			t.Errorf("%q should resolve", name)
		}
	}
	if _, ok := EaseName("power9.out").Func(); ok {
		t.Error("unknown ease should not resolve")
	}
}

func TestValidateFocalPointFinite(t *testing.T) {
	for _, fp := range []Vec3{{math.NaN(), 0, 2}, {0, math.Inf(1), 2}, {0, 0, math.Inf(-1)}} {
		cfg := DefaultConfig()
		cfg.FocalPoint = fp
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("FocalPoint %v: err = %v, want ErrInvalidConfig", fp, err)
		}
	}
}

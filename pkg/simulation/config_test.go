package simulation

import (
	"image/color"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "env.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"name": "test",
		"planets": [
			{ "mass": 100, "radius": 20, "pos": [400, 300], "vel": [-0.2, 0], "color": "#cc3333" }
		],
		"ships": [
			{ "pos": [600, 450], "vel": [0.2, -0.5], "color": "#33cc33" }
		],
		"random_ships": 5,
		"seed": 3
	}`)

	env, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if env.Name != "test" {
		t.Errorf("Expected name to be test, got %q", env.Name)
	}
	if env.Horizon != defaultHorizon {
		t.Errorf("Expected default horizon %d, got %d", defaultHorizon, env.Horizon)
	}
	if env.Bounds != defaultBounds {
		t.Errorf("Expected default bounds %v, got %v", defaultBounds, env.Bounds)
	}
	if len(env.World.Planets) != 1 {
		t.Fatalf("Expected 1 planet, got %d", len(env.World.Planets))
	}
	if got := env.World.Planets[0].ColorC; got != (color.RGBA{204, 51, 51, 255}) {
		t.Errorf("Expected parsed planet color, got %v", got)
	}
	if len(env.World.Ships) != 6 {
		t.Errorf("Expected 1 configured + 5 random ships, got %d", len(env.World.Ships))
	}
	for i, s := range env.World.Ships {
		if s.Mass != ShipMass || s.Radius != ShipRadius {
			t.Errorf("Ship %d: expected fixed mass/radius, got %v/%v", i, s.Mass, s.Radius)
		}
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"Missing file", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "nope.json")
		}},
		{"Invalid JSON", func(t *testing.T) string {
			return writeConfig(t, `{not json`)
		}},
		{"Invalid planet", func(t *testing.T) string {
			return writeConfig(t, `{"name":"x","planets":[{"mass":-1,"radius":20,"pos":[0,0],"vel":[0,0]}]}`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.path(t)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	fallback := color.RGBA{1, 2, 3, 255}
	tests := []struct {
		name string
		hex  string
		want color.RGBA
	}{
		{"Red", "#ff0000", color.RGBA{255, 0, 0, 255}},
		{"Mixed", "#33cc99", color.RGBA{51, 204, 153, 255}},
		{"Empty", "", fallback},
		{"No hash", "ff0000", fallback},
		{"Too short", "#fff", fallback},
		{"Garbage", "#zzzzzz", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseColor(tt.hex, fallback); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSetOrbitalVelocities(t *testing.T) {
	planets := []PlanetConfig{{Mass: 100, Radius: 10, Pos: [2]float64{0, 0}}}
	ships := []ShipConfig{
		{Pos: [2]float64{25, 0}},                          // dostaje prędkość kołową
		{Pos: [2]float64{50, 0}, Vel: [2]float64{1, 1}},   // już ma prędkość
		{Pos: [2]float64{0, 0}},                           // r=0, pomijany
	}

	SetOrbitalVelocities(ships, planets)

	// v = sqrt(100/25) = 2, prostopadle do osi X
	if math.Abs(ships[0].Vel[0]) > 1e-12 || math.Abs(ships[0].Vel[1]-2) > 1e-12 {
		t.Errorf("Expected orbital velocity (0, 2), got %v", ships[0].Vel)
	}
	if ships[1].Vel != ([2]float64{1, 1}) {
		t.Errorf("Expected preset velocity untouched, got %v", ships[1].Vel)
	}
	if ships[2].Vel != ([2]float64{0, 0}) {
		t.Errorf("Expected degenerate ship skipped, got %v", ships[2].Vel)
	}
}

func TestScatterShipsDeterministic(t *testing.T) {
	build := func() *World {
		w, err := NewWorld(nil)
		if err != nil {
			t.Fatalf("NewWorld failed: %v", err)
		}
		ScatterShips(w, rand.New(rand.NewSource(42)), 8, 800, 600)
		return w
	}

	a := build()
	b := build()
	if len(a.Ships) != 8 {
		t.Fatalf("Expected 8 ships, got %d", len(a.Ships))
	}
	if !worldsEqual(a, b) {
		t.Error("Expected identical seeds to scatter identical ships")
	}
	for i, s := range a.Ships {
		if s.Pos.X < 0 || s.Pos.X > 800 || s.Pos.Y < 0 || s.Pos.Y > 600 {
			t.Errorf("Ship %d scattered out of bounds: %v", i, s.Pos)
		}
		if math.Abs(s.Vel.X) > 0.5 || math.Abs(s.Vel.Y) > 0.5 {
			t.Errorf("Ship %d velocity out of range: %v", i, s.Vel)
		}
	}
}

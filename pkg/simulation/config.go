package simulation

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"

	"image/color"

	"github.com/knowak/pirx/pkg/physics"
)

// --- Struktura konfiguracji środowiska ---
type EnvironmentConfig struct {
	Name        string         `json:"name"`
	Horizon     int            `json:"horizon"`
	Bounds      [2]float64     `json:"bounds,omitempty"`
	Planets     []PlanetConfig `json:"planets"`
	Ships       []ShipConfig   `json:"ships"`
	RandomShips int            `json:"random_ships,omitempty"`
	Seed        int64          `json:"seed,omitempty"`
	AutoOrbit   bool           `json:"auto_orbit,omitempty"`
}

type PlanetConfig struct {
	Mass   float64    `json:"mass"`
	Radius float64    `json:"radius"`
	Pos    [2]float64 `json:"pos"`
	Vel    [2]float64 `json:"vel"`
	Color  string     `json:"color"`
}

type ShipConfig struct {
	Pos   [2]float64 `json:"pos"`
	Vel   [2]float64 `json:"vel"`
	Color string     `json:"color"`
}

// Environment to gotowy do uruchomienia scenariusz: świat początkowy
// plus długość horyzontu prognozy.
type Environment struct {
	Name    string
	Horizon int
	Bounds  [2]float64
	World   *World
}

const defaultHorizon = 500

var (
	defaultBounds      = [2]float64{800, 600}
	defaultPlanetColor = color.RGBA{204, 51, 51, 255}
	defaultShipColor   = color.RGBA{51, 204, 51, 255}
)

// --- Wczytanie pliku konfiguracyjnego ---
func LoadConfig(path string) (*Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("błąd odczytu pliku: %v", err)
	}

	var env EnvironmentConfig
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("błąd parsowania JSON: %v", err)
	}

	return BuildEnvironment(env)
}

// BuildEnvironment buduje świat z konfiguracji: waliduje planety,
// dodaje statki z listy, a na końcu ewentualny losowy rozsiew.
func BuildEnvironment(env EnvironmentConfig) (*Environment, error) {
	planets := make([]physics.Body, len(env.Planets))
	for i, p := range env.Planets {
		planets[i] = physics.Body{
			Mass:   p.Mass,
			Pos:    physics.Vec2{X: p.Pos[0], Y: p.Pos[1]},
			Vel:    physics.Vec2{X: p.Vel[0], Y: p.Vel[1]},
			Radius: p.Radius,
			ColorC: parseColor(p.Color, defaultPlanetColor),
		}
	}

	world, err := NewWorld(planets)
	if err != nil {
		return nil, err
	}

	if env.AutoOrbit {
		SetOrbitalVelocities(env.Ships, env.Planets)
	}
	for _, s := range env.Ships {
		world.AddShip(
			physics.Vec2{X: s.Pos[0], Y: s.Pos[1]},
			physics.Vec2{X: s.Vel[0], Y: s.Vel[1]},
			parseColor(s.Color, defaultShipColor),
		)
	}

	bounds := env.Bounds
	if bounds == ([2]float64{}) {
		bounds = defaultBounds
	}
	if env.RandomShips > 0 {
		rng := rand.New(rand.NewSource(env.Seed))
		ScatterShips(world, rng, env.RandomShips, bounds[0], bounds[1])
	}

	horizon := env.Horizon
	if horizon == 0 {
		horizon = defaultHorizon
	}

	return &Environment{
		Name:    env.Name,
		Horizon: horizon,
		Bounds:  bounds,
		World:   world,
	}, nil
}

// SetOrbitalVelocities nadaje statkom o zerowej prędkości prędkość
// kołową wokół pierwszej planety (wygoda konfiguracyjna, jak auto_orbit
// dla ciał).
func SetOrbitalVelocities(ships []ShipConfig, planets []PlanetConfig) {
	if len(planets) == 0 {
		return
	}
	central := planets[0]
	for i := range ships {
		if ships[i].Vel[0] != 0 || ships[i].Vel[1] != 0 {
			continue
		}
		dx := ships[i].Pos[0] - central.Pos[0]
		dy := ships[i].Pos[1] - central.Pos[1]
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		v := math.Sqrt(central.Mass / r)
		// prędkość prostopadle do wektora pozycji
		ships[i].Vel[0] = -dy / r * v
		ships[i].Vel[1] = dx / r * v
	}
}

// ScatterShips rozsiewa statki losowo po scenie (inicjalizacja
// startowa, nie część fizyki — świat nie zależy od tej funkcji).
func ScatterShips(w *World, rng *rand.Rand, count int, width, height float64) {
	for i := 0; i < count; i++ {
		pos := physics.Vec2{X: width * rng.Float64(), Y: height * rng.Float64()}
		vel := physics.Vec2{X: rng.Float64() - 0.5, Y: rng.Float64() - 0.5}
		col := color.RGBA{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
			A: 255,
		}
		w.AddShip(pos, vel, col)
	}
}

// --- Parser koloru HEX ---
func parseColor(hex string, fallback color.RGBA) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return fallback
}

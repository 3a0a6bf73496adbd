package simulation

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/knowak/pirx/pkg/physics"
)

// Statki mają stałą masę i promień. Aktualizacja prędkości i tak
// dzieli przez masę, więc wzór pozostaje ogólny.
const (
	ShipMass   = 1.0
	ShipRadius = 2.0
)

// ErrDegenerateDistance: dwa ciała w tym samym punkcie, 1/d² nie
// istnieje. Step przerywa tick zanim zdąży zapisać nieskończoną siłę,
// inaczej zatrułaby cały sklonowany w przód bufor prognoz.
var ErrDegenerateDistance = errors.New("zerowa odległość między ciałami")

// --- Statek ---
// ID jest stabilne przez cały czas życia statku; kolejka zniszczeń
// odwołuje się do statków wyłącznie po ID.
type Ship struct {
	physics.Body
	ID int
}

// --- Świat ---
// Kolejność planet i statków w slice'ach wyznacza kolejność iteracji,
// a więc i deterministyczną kolejność zgłoszeń zniszczenia.
type World struct {
	Planets []physics.Body
	Ships   []Ship

	pending []int // ID statków do usunięcia po fazie statków
	nextID  int
}

// NewWorld waliduje konfigurację planet przy konstrukcji,
// nie przy pierwszym ticku.
func NewWorld(planets []physics.Body) (*World, error) {
	for i, p := range planets {
		if p.Mass <= 0 {
			return nil, fmt.Errorf("planeta %d: masa musi być dodatnia, jest %v", i, p.Mass)
		}
		if p.Radius <= 0 {
			return nil, fmt.Errorf("planeta %d: promień musi być dodatni, jest %v", i, p.Radius)
		}
	}
	return &World{
		Planets: append([]physics.Body(nil), planets...),
	}, nil
}

// AddShip dodaje statek o stałej masie i promieniu, zwraca jego ID.
func (w *World) AddShip(pos, vel physics.Vec2, col color.RGBA) int {
	id := w.nextID
	w.nextID++
	w.Ships = append(w.Ships, Ship{
		Body: physics.Body{
			Mass:   ShipMass,
			Pos:    pos,
			Vel:    vel,
			Radius: ShipRadius,
			ColorC: col,
		},
		ID: id,
	})
	return id
}

// HasShip sprawdza, czy statek o danym ID wciąż żyje.
func (w *World) HasShip(id int) bool {
	for i := range w.Ships {
		if w.Ships[i].ID == id {
			return true
		}
	}
	return false
}

// Step wykonuje dokładnie jeden tick symulacji:
//  1. statki: pozycja według bieżącej prędkości, potem akumulacja sił
//     od planet i aktualizacja prędkości,
//  2. opróżnienie kolejki zniszczeń,
//  3. planety: akumulacja sił między parami, aktualizacja prędkości,
//  4. przesunięcie planet.
//
// Ten dwufazowy podział (najpierw wszystkie statki, potem wszystkie
// planety) jest stałym harmonogramem — zmiana kolejności zmieniłaby
// wyniki tick po ticku.
func (w *World) Step() error {
	if err := w.stepShips(); err != nil {
		return err
	}
	w.processPending()
	if err := w.stepPlanets(); err != nil {
		return err
	}
	return nil
}

func (w *World) stepShips() error {
	for i := range w.Ships {
		ship := &w.Ships[i]

		// pozycja według prędkości sprzed ticku; siła z tego ticku
		// działa dopiero na prędkość następnego
		ship.Pos = ship.Pos.Add(ship.Vel)

		var force physics.Vec2
		for j := range w.Planets {
			planet := &w.Planets[j]
			sep := physics.Measure(*planet, ship.Body)
			if sep.Dist == 0 {
				return fmt.Errorf("statek %d i planeta %d: %w", ship.ID, j, ErrDegenerateDistance)
			}
			// test kolizji przed doliczeniem siły tej pary
			if sep.Dist < planet.Radius {
				w.destroyLater(ship.ID)
			}
			force = force.Add(physics.GravityForce(*planet, ship.Body, sep))
		}
		ship.Vel = ship.Vel.Add(force.Mul(1.0 / ship.Mass))
	}
	return nil
}

// destroyLater kolejkuje zniszczenie statku. Podwójne zgłoszenie tego
// samego statku jest nieszkodliwe — usunięcie nieobecnego to no-op.
func (w *World) destroyLater(id int) {
	w.pending = append(w.pending, id)
}

// processPending opróżnia kolejkę w kolejności zgłoszeń. Kolejka jest
// czyszczona bezwarunkowo na końcu każdego ticku.
func (w *World) processPending() {
	for _, id := range w.pending {
		w.removeShip(id)
	}
	w.pending = w.pending[:0]
}

func (w *World) removeShip(id int) {
	for i := range w.Ships {
		if w.Ships[i].ID == id {
			w.Ships = append(w.Ships[:i], w.Ships[i+1:]...)
			return
		}
	}
}

func (w *World) stepPlanets() error {
	for i := range w.Planets {
		var force physics.Vec2
		for j := range w.Planets {
			if i == j {
				continue
			}
			sep := physics.Measure(w.Planets[j], w.Planets[i])
			if sep.Dist == 0 {
				return fmt.Errorf("planety %d i %d: %w", i, j, ErrDegenerateDistance)
			}
			f := physics.GravityForce(w.Planets[i], w.Planets[j], sep)
			force = force.Add(f.Mul(1.0 / physics.PlanetDamping))
		}
		w.Planets[i].Vel = w.Planets[i].Vel.Add(force.Mul(1.0 / w.Planets[i].Mass))
	}

	// pozycje dopiero po aktualizacji prędkości wszystkich planet
	for i := range w.Planets {
		w.Planets[i].Pos = w.Planets[i].Pos.Add(w.Planets[i].Vel)
	}
	return nil
}

// Clone tworzy w pełni niezależną kopię świata. Timeline trzyma wiele
// żywych snapshotów naraz, więc mutacja jednego nie może przeciekać
// do drugiego.
func (w *World) Clone() *World {
	return &World{
		Planets: append([]physics.Body(nil), w.Planets...),
		Ships:   append([]Ship(nil), w.Ships...),
		pending: append([]int(nil), w.pending...),
		nextID:  w.nextID,
	}
}

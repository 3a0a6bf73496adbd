package simulation

import "fmt"

// --- Oś czasu ---
// Timeline trzyma okno horizon+1 snapshotów świata: slot 0 to "teraz",
// slot i to deterministyczny wynik i-krotnego ticku od "teraz".
// Zamiast przeliczać cały horyzont co klatkę, okno przesuwa się
// o jeden slot: z przodu schodzi bieżący świat, z tyłu dochodzi
// jeden nowy tick. Koszt: jeden Step na klatkę plus horizon+1 żywych
// kopii świata.
type Timeline struct {
	snapshots []*World
	horizon   int
}

// NewTimeline zasiewa slot 0 światem początkowym i wypełnia horyzont
// klonowaniem i tickowaniem ogona. Błąd ticku (zdegenerowany świat)
// przerywa konstrukcję.
func NewTimeline(initial *World, horizon int) (*Timeline, error) {
	if horizon < 0 {
		return nil, fmt.Errorf("ujemny horyzont: %d", horizon)
	}
	t := &Timeline{
		snapshots: make([]*World, 0, horizon+1),
		horizon:   horizon,
	}
	t.snapshots = append(t.snapshots, initial)
	for i := 1; i <= horizon; i++ {
		next := t.snapshots[i-1].Clone()
		if err := next.Step(); err != nil {
			return nil, err
		}
		t.snapshots = append(t.snapshots, next)
	}
	return t, nil
}

// Advance zdejmuje slot 0 jako bieżący świat klatki i zwraca pozostałe
// snapshoty jako prognozy (najbliższa przyszłość najpierw), po czym
// dokłada nowy snapshot przez sklonowanie i ticknięcie ogona.
// Indeks prognozy podzielony przez Horizon() daje "głębokość"
// w przyszłość w [0,1) — z tego warstwa prezentacji liczy zanikanie.
// Przy błędzie ticku bufor pozostaje nietknięty, a błąd idzie do
// wołającego.
func (t *Timeline) Advance() (*World, []*World, error) {
	current := t.snapshots[0]
	predictions := append([]*World(nil), t.snapshots[1:]...)

	tail := current
	if t.horizon > 0 {
		tail = predictions[t.horizon-1]
	}
	next := tail.Clone()
	if err := next.Step(); err != nil {
		return nil, nil, err
	}

	copy(t.snapshots, t.snapshots[1:])
	t.snapshots[t.horizon] = next
	return current, predictions, nil
}

// Len zwraca liczbę trzymanych snapshotów (horizon+1).
func (t *Timeline) Len() int {
	return len(t.snapshots)
}

func (t *Timeline) Horizon() int {
	return t.horizon
}

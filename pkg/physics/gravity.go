package physics

import "math"

// PlanetDamping osłabia przyciąganie planeta-planeta dziesięciokrotnie
// względem przyciągania planeta-statek (na jednostkę ticku).
const PlanetDamping = 10.0

// Separation to różnice współrzędnych między dwoma ciałami
// plus odległość euklidesowa.
type Separation struct {
	DX, DY float64
	Dist   float64
}

// Measure liczy separację a-b (znaki składowych: od b w stronę a).
func Measure(a, b Body) Separation {
	dx := a.Pos.X - b.Pos.X
	dy := a.Pos.Y - b.Pos.Y
	return Separation{
		DX:   dx,
		DY:   dy,
		Dist: math.Sqrt(dx*dx + dy*dy),
	}
}

// GravityForce liczy siłę grawitacji między ciałami a i b.
// Uwaga: to nie jest prawdziwa siła centralna — każda oś dostaje
// pełną wartość siły ze znakiem skopiowanym z różnicy współrzędnych.
// To uproszczenie jest zamierzone i musi pozostać dokładnie takie,
// bo zmiana prawa siły zmieniłaby wszystkie trajektorie.
func GravityForce(a, b Body, s Separation) Vec2 {
	m := 1.0 / (s.Dist * s.Dist) * a.Mass * b.Mass
	return Vec2{
		X: sign(s.DX) * m,
		Y: sign(s.DY) * m,
	}
}

// sign(0) = 0: ciała wyrównane na osi nie dostają siły na tej osi.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

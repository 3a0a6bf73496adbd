package main

import (
	"math"
	"testing"
)

func TestStatisticsMovingAvg(t *testing.T) {
	s := NewStatistics(4)
	for _, v := range []float64{1, 2, 3, 4} {
		s.Push(v)
	}
	if got := s.MovingAvg(); got != 2.5 {
		t.Errorf("Expected MovingAvg to be 2.5, got %v", got)
	}

	// okno się przesuwa: 1 wypada, wchodzi 9 -> (2+3+4+9)/4
	s.Push(9)
	if got := s.MovingAvg(); got != 4.5 {
		t.Errorf("Expected MovingAvg to be 4.5, got %v", got)
	}
}

func TestStatisticsExtremes(t *testing.T) {
	s := NewStatistics(8)
	for _, v := range []float64{5, 1, 7, 3} {
		s.Push(v)
	}
	if s.Min() != 1 {
		t.Errorf("Expected Min to be 1, got %v", s.Min())
	}
	if s.Max() != 7 {
		t.Errorf("Expected Max to be 7, got %v", s.Max())
	}

	s.ResetExtremes()
	if s.Max() != 0 {
		t.Errorf("Expected Max reset to 0, got %v", s.Max())
	}
	if s.Min() != math.MaxFloat64 {
		t.Errorf("Expected Min reset, got %v", s.Min())
	}

	s.Push(2)
	if s.Min() != 2 || s.Max() != 2 {
		t.Errorf("Expected extremes to track after reset, got %v/%v", s.Min(), s.Max())
	}
}

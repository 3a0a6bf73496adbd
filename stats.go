package main

import "math"

// Statistics liczy średnią kroczącą oraz min/max czasu klatki
// w stałym oknie próbek.
type Statistics struct {
	samples []float64
	idx     int
	sum     float64
	min     float64
	max     float64
}

func NewStatistics(window int) *Statistics {
	s := &Statistics{samples: make([]float64, window)}
	s.ResetExtremes()
	return s
}

func (s *Statistics) Push(sample float64) {
	s.sum -= s.samples[s.idx]
	s.sum += sample
	s.samples[s.idx] = sample
	s.idx = (s.idx + 1) % len(s.samples)
	if sample > s.max {
		s.max = sample
	}
	if sample < s.min {
		s.min = sample
	}
}

func (s *Statistics) MovingAvg() float64 {
	return s.sum / float64(len(s.samples))
}

func (s *Statistics) Min() float64 {
	return s.min
}

func (s *Statistics) Max() float64 {
	return s.max
}

// ResetExtremes zeruje min/max, średnia krocząca zostaje.
func (s *Statistics) ResetExtremes() {
	s.max = 0
	s.min = math.MaxFloat64
}

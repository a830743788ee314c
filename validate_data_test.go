package main

import "testing"

// TestSampleRange verifies the reported input range holds for unsorted
// sample files, not just sorted ones.
func TestSampleRange(t *testing.T) {
	cases := []struct {
		name    string
		samples []Sample
		lo, hi  float64
	}{
		{"sorted", []Sample{{X: -1}, {X: 0}, {X: 1}}, -1, 1},
		{"unsorted", []Sample{{X: 0.5}, {X: -3}, {X: 2}, {X: -0.1}}, -3, 2},
		{"reversed", []Sample{{X: 4}, {X: 1}, {X: -2}}, -2, 4},
		{"single", []Sample{{X: 7}}, 7, 7},
		{"duplicates", []Sample{{X: 1}, {X: 1}, {X: 1}}, 1, 1},
	}

	for _, c := range cases {
		lo, hi := sampleRange(c.samples)
		if lo != c.lo || hi != c.hi {
			t.Errorf("%s: got [%g, %g], want [%g, %g]", c.name, lo, hi, c.lo, c.hi)
		}
	}
}

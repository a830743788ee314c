package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Sample is one (input, expected output) pair of the target function.
// The sample set is fixed for the duration of a run and never mutated.
type Sample struct {
	X float64
	Y float64
}

// QuadraticSamples is the built-in target: f(x) = x^2 + x + 1 sampled
// over [-1, 1] in steps of 0.1 (21 points).
func QuadraticSamples() []Sample {
	samples := make([]Sample, 0, 21)
	for i := 0; i <= 20; i++ {
		x := -1.0 + float64(i)*0.1
		samples = append(samples, Sample{X: x, Y: x*x + x + 1})
	}
	return samples
}

// LoadSamplesCSV reads sample pairs from a two-column CSV (x, y). A header
// row is skipped when its first field does not parse as a number.
func LoadSamplesCSV(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.ReuseRecord = true

	var samples []Sample
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%s: need two columns, got %d", path, len(rec))
		}

		x, errX := strconv.ParseFloat(rec[0], 64)
		y, errY := strconv.ParseFloat(rec[1], 64)
		if errX != nil || errY != nil {
			if first {
				// header row
				first = false
				continue
			}
			return nil, fmt.Errorf("%s: bad sample row %v", path, rec)
		}
		first = false

		samples = append(samples, Sample{X: x, Y: y})
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: no samples", path)
	}
	return samples, nil
}

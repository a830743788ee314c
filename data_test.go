package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// TestQuadraticSamples pins the built-in target set: 21 points over [-1, 1]
// in steps of 0.1, y = x^2 + x + 1.
func TestQuadraticSamples(t *testing.T) {
	samples := QuadraticSamples()
	if len(samples) != 21 {
		t.Fatalf("got %d samples, want 21", len(samples))
	}

	if math.Abs(samples[0].X-(-1.0)) > 1e-9 {
		t.Errorf("first x = %g, want -1", samples[0].X)
	}
	if math.Abs(samples[20].X-1.0) > 1e-9 {
		t.Errorf("last x = %g, want 1", samples[20].X)
	}

	for i, s := range samples {
		want := s.X*s.X + s.X + 1
		if math.Abs(s.Y-want) > 1e-9 {
			t.Errorf("sample %d: y = %g, want %g", i, s.Y, want)
		}
	}
}

// TestLoadSamplesCSV verifies CSV loading with and without a header row.
func TestLoadSamplesCSV(t *testing.T) {
	dir := t.TempDir()

	withHeader := filepath.Join(dir, "with_header.csv")
	os.WriteFile(withHeader, []byte("x,y\n0,1\n1,3\n-1,1\n"), 0o644)

	samples, err := LoadSamplesCSV(withHeader)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(samples))
	}
	if samples[1].X != 1 || samples[1].Y != 3 {
		t.Errorf("sample 1 = %+v", samples[1])
	}

	noHeader := filepath.Join(dir, "no_header.csv")
	os.WriteFile(noHeader, []byte("0.5,1.75\n2,7\n"), 0o644)

	samples, err = LoadSamplesCSV(noHeader)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
}

// TestLoadSamplesCSVErrors verifies malformed files are rejected.
func TestLoadSamplesCSVErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSamplesCSV(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("missing file accepted")
	}

	empty := filepath.Join(dir, "empty.csv")
	os.WriteFile(empty, []byte(""), 0o644)
	if _, err := LoadSamplesCSV(empty); err == nil {
		t.Error("empty file accepted")
	}

	headerOnly := filepath.Join(dir, "header_only.csv")
	os.WriteFile(headerOnly, []byte("x,y\n"), 0o644)
	if _, err := LoadSamplesCSV(headerOnly); err == nil {
		t.Error("header-only file accepted")
	}

	badRow := filepath.Join(dir, "bad_row.csv")
	os.WriteFile(badRow, []byte("0,1\nnope,2\n"), 0o644)
	if _, err := LoadSamplesCSV(badRow); err == nil {
		t.Error("non-numeric data row accepted")
	}

	oneCol := filepath.Join(dir, "one_col.csv")
	os.WriteFile(oneCol, []byte("1\n2\n"), 0o644)
	if _, err := LoadSamplesCSV(oneCol); err == nil {
		t.Error("single-column file accepted")
	}
}

// SPDX-License-Identifier: MIT
// Package: result

package result

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// Paths lists the files written by Save.
type Paths struct {
	Results      string
	PartialOrder string
}

// ResultsFile returns the results file name for a data name.
func ResultsFile(name string) string { return name + "_results.json" }

// PartialOrderFile returns the .npy file name for a data name.
func PartialOrderFile(name string) string { return name + "_partial_order.npy" }

// Save writes rec under dir, creating dir when needed.
func Save(dir, name string, rec *Record) (Paths, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("result.Save: %w", err)
	}
	p := Paths{
		Results:      filepath.Join(dir, ResultsFile(name)),
		PartialOrder: filepath.Join(dir, PartialOrderFile(name)),
	}
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return Paths{}, fmt.Errorf("result.Save: %w", err)
	}
	if err = os.WriteFile(p.Results, append(b, '\n'), 0o644); err != nil {
		return Paths{}, fmt.Errorf("result.Save: %w", err)
	}
	if err = SaveMatrix(p.PartialOrder, rec.H); err != nil {
		return Paths{}, fmt.Errorf("result.Save: %w", err)
	}

	return p, nil
}

// Load reads a record written by Save.
//
// Errors:
//   - ErrDecode (wrapped) for invalid JSON.
func Load(path string) (*Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("result.Load: %w", err)
	}
	var rec Record
	if err = json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("result.Load(%s): %v: %w", path, err, ErrDecode)
	}

	return &rec, nil
}

// SaveMatrix writes a square 0/1 relation as an n×n float64 .npy array.
//
// Errors:
//   - ErrEmptyRelation for an empty h, ErrDecode for ragged rows.
func SaveMatrix(path string, h [][]int) (err error) {
	if len(h) == 0 {
		return ErrEmptyRelation
	}
	n := len(h)
	data := make([]float64, 0, n*n)
	for i, row := range h {
		if len(row) != n {
			return fmt.Errorf("SaveMatrix: row %d has %d cols, want %d: %w", i, len(row), n, ErrDecode)
		}
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveMatrix: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("SaveMatrix: %w", cerr)
		}
	}()
	if err = npyio.Write(f, mat.NewDense(n, n, data)); err != nil {
		return fmt.Errorf("SaveMatrix: %w", err)
	}

	return nil
}

// LoadMatrix reads an array written by SaveMatrix.
func LoadMatrix(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadMatrix: %w", err)
	}
	defer f.Close()

	var m mat.Dense
	if err = npyio.Read(f, &m); err != nil {
		return nil, fmt.Errorf("LoadMatrix(%s): %w", path, err)
	}

	return &m, nil
}

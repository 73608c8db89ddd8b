// SPDX-License-Identifier: MIT
// Package: result

package result

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Float is a float64 whose JSON form survives NaN and ±Inf.
type Float float64

var (
	jsonNull   = []byte("null")
	jsonPosInf = []byte(`"+Inf"`)
	jsonNegInf = []byte(`"-Inf"`)
)

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return jsonNull, nil
	case math.IsInf(v, 1):
		return jsonPosInf, nil
	case math.IsInf(v, -1):
		return jsonNegInf, nil
	}

	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(b []byte) error {
	switch {
	case bytes.Equal(b, jsonNull):
		*f = Float(math.NaN())
	case bytes.Equal(b, jsonPosInf):
		*f = Float(math.Inf(1))
	case bytes.Equal(b, jsonNegInf):
		*f = Float(math.Inf(-1))
	default:
		v, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("Float: %q: %w", b, err)
		}
		*f = Float(v)
	}

	return nil
}

func floats(v []float64) []Float {
	out := make([]Float, len(v))
	for i, x := range v {
		out[i] = Float(x)
	}

	return out
}

func unfloats(v []Float) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}

	return out
}

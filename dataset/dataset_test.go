package dataset_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porder/dataset"
	"github.com/katalvlaran/porder/observation"
	"github.com/katalvlaran/porder/order"
)

const sample = `{
  "total_orders": [[0, 1, 2, 3], [1, 0, 3, 2]],
  "subsets": [[[0, 2], 1], [3, [1]]],
  "parameters": {"rho_true": 0.8, "prob_noise_true": 0.1, "beta_true": [1, -1],
                 "X": [[1, 0], [0, 1], [1, 1], [0, 0]], "n": 4},
  "items": {"names": ["a", "b", "c", "d"]},
  "true_partial_order": [[0,1,1,1],[0,0,0,1],[0,0,0,1],[0,0,0,0]]
}`

func decode(t *testing.T, s string) (*dataset.Dataset, error) {
	t.Helper()

	return dataset.Decode(strings.NewReader(s))
}

func TestDecode_Full(t *testing.T) {
	t.Parallel()
	ds, err := decode(t, sample)
	require.NoError(t, err)

	assert.Equal(t, 4, ds.NumItems())
	assert.Equal(t, []string{"a", "b", "c", "d"}, ds.Names())
	require.NotNil(t, ds.Parameters.RhoTrue)
	assert.InDelta(t, 0.8, *ds.Parameters.RhoTrue, 1e-12)

	obs, err := ds.Observations()
	require.NoError(t, err)
	require.Len(t, obs, 4)
	for k, o := range obs {
		assert.Equal(t, k, o.ID())
	}
	assert.Equal(t, observation.KindTotal, obs[1].Kind())
	assert.Equal(t, observation.KindPartial, obs[2].Kind())
	assert.Equal(t, [][]int{{0, 2}, {1}}, obs[2].Groups())
	assert.Equal(t, [][]int{{3}, {1}}, obs[3].Groups())

	truth, ok, err := ds.TrueOrder()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, truth.EdgeCount())

	alpha, err := ds.Alpha()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, -1, 0, 0}, alpha, 1e-12)
}

func TestDecode_Defaults(t *testing.T) {
	t.Parallel()
	ds, err := decode(t, `{"total_orders": [[2, 0, 1]]}`)
	require.NoError(t, err)

	assert.Equal(t, 3, ds.NumItems())
	assert.Equal(t, []string{"Item 0", "Item 1", "Item 2"}, ds.Names())
	_, ok, err := ds.TrueOrder()
	require.NoError(t, err)
	assert.False(t, ok)

	alpha, err := ds.Alpha()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, alpha)

	obs, err := ds.Observations()
	require.NoError(t, err)
	assert.Len(t, obs, 1)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"syntax":         `{"total_orders": [[0, 1]`,
		"empty":          `{}`,
		"out of range":   `{"total_orders": [[0, 5]], "parameters": {"n": 3}}`,
		"negative":       `{"total_orders": [[0, -1]]}`,
		"duplicate":      `{"total_orders": [[0, 1, 0]]}`,
		"empty group":    `{"subsets": [[[0], []]]}`,
		"empty subset":   `{"total_orders": [[0, 1]], "subsets": [[]]}`,
		"group type":     `{"subsets": [[["x"]]]}`,
		"names length":   `{"total_orders": [[0, 1]], "items": {"names": ["a"]}}`,
		"truth shape":    `{"total_orders": [[0, 1]], "true_partial_order": [[0, 1]]}`,
		"truth symmetry": `{"total_orders": [[0, 1]], "true_partial_order": [[0, 1], [1, 0]]}`,
		"truth values":   `{"total_orders": [[0, 1]], "true_partial_order": [[0, 2], [0, 0]]}`,
		"ragged X":       `{"total_orders": [[0, 1]], "parameters": {"beta_true": [1], "X": [[1], []]}}`,
		"X rows":         `{"total_orders": [[0, 1]], "parameters": {"beta_true": [1], "X": [[1]]}}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := decode(t, doc)
			require.ErrorIs(t, err, dataset.ErrMalformed)
		})
	}
}

func TestDecode_ObservationItemLimit(t *testing.T) {
	t.Parallel()
	ranking := func(m int) string {
		b, err := json.Marshal(map[string]any{"total_orders": [][]int{seq(m)}})
		require.NoError(t, err)

		return string(b)
	}

	_, err := decode(t, ranking(order.MaxMaskItems))
	require.NoError(t, err)

	_, err = decode(t, ranking(order.MaxMaskItems+1))
	require.ErrorIs(t, err, dataset.ErrMalformed)
	assert.Contains(t, err.Error(), "limit 64")
}

func seq(m int) []int {
	out := make([]int, m)
	for i := range out {
		out[i] = i
	}

	return out
}

func TestLoad_File(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "d.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	ds, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, ds.NumItems())

	_, err = dataset.Load(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

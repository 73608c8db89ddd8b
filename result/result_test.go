package result_test

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/porder/matrix"
	"github.com/katalvlaran/porder/order"
	"github.com/katalvlaran/porder/result"
	"github.com/katalvlaran/porder/trace"
)

func sampleTrace(t *testing.T) *trace.Trace {
	t.Helper()
	tr := trace.New(2)
	hs := [][][]float64{
		{{0, 1, 1}, {0, 0, 1}, {0, 0, 0}},
		{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}},
	}
	lls := []float64{math.Inf(-1), -1.25}
	for k, rows := range hs {
		h, err := matrix.FromRows(rows)
		require.NoError(t, err)
		require.NoError(t, tr.Append(trace.Sample{
			Z:         mat.NewDense(3, 1, []float64{0.1 * float64(k), -0.5, 1e-300}),
			H:         h,
			Rho:       0.3 + float64(k)/7,
			ProbNoise: 0.1,
			Theta:     math.NaN(),
			LogLik:    lls[k],
		}))
	}

	return tr
}

func TestFloat_JSON(t *testing.T) {
	t.Parallel()
	in := []result.Float{1.5, result.Float(math.NaN()), result.Float(math.Inf(1)), result.Float(math.Inf(-1)), 0}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, null, "+Inf", "-Inf", 0]`, string(b))

	var out []result.Float
	require.NoError(t, json.Unmarshal(b, &out))
	require.Len(t, out, 5)
	assert.Equal(t, 1.5, float64(out[0]))
	assert.True(t, math.IsNaN(float64(out[1])))
	assert.True(t, math.IsInf(float64(out[2]), 1))
	assert.True(t, math.IsInf(float64(out[3]), -1))

	var bad result.Float
	require.Error(t, json.Unmarshal([]byte(`"x"`), &bad))
}

func TestTraceRecord_RoundTrip(t *testing.T) {
	t.Parallel()
	tr := sampleTrace(t)
	b, err := json.Marshal(result.FromTrace(tr))
	require.NoError(t, err)

	var rec result.TraceRecord
	require.NoError(t, json.Unmarshal(b, &rec))
	back, err := rec.ToTrace()
	require.NoError(t, err)

	require.Equal(t, tr.Len(), back.Len())
	assert.Equal(t, tr.Thinning, back.Thinning)
	assert.Equal(t, tr.Rho, back.Rho)
	assert.Equal(t, tr.ProbNoise, back.ProbNoise)
	assert.Equal(t, tr.LogLik, back.LogLik)
	for i := range tr.Len() {
		assert.True(t, math.IsNaN(back.Theta[i]))
		assert.True(t, mat.Equal(tr.Z[i], back.Z[i]))
		assert.Equal(t, tr.H[i].RawRows(), back.H[i].RawRows())
	}
}

func TestTraceRecord_Inconsistent(t *testing.T) {
	t.Parallel()
	rec := result.FromTrace(sampleTrace(t))
	rec.Rho = rec.Rho[:1]
	_, err := rec.ToTrace()
	require.ErrorIs(t, err, result.ErrDecode)

	rec = result.FromTrace(sampleTrace(t))
	rec.Z[1] = [][]result.Float{{1}, {2}}
	_, err = rec.ToTrace()
	require.ErrorIs(t, err, result.ErrDecode)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()
	tr := sampleTrace(t)
	h, err := order.FromEdges(3, []order.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	require.NoError(t, err)
	names := []string{"a", "b", "c"}

	rec := &result.Record{
		RunID:       result.NewRunID(),
		NoiseOption: "queue_jump",
		Seed:        7,
		BurnIn:      1,
		Trace:       result.FromTrace(tr),
		H:           h.Ints(),
		Z:           result.FromDense(tr.Z[1]),
		Rho:         0.4,
		ProbNoise:   0.1,
		MallowTheta: result.Float(math.NaN()),
		Beta:        []result.Float{},
		Acceptance:  map[string]result.Acceptance{"rho": {Proposed: 4, Accepted: 1, Rate: 0.25}},
		Warnings:    []string{},
		Items:       names,
		Missing:     result.Relationships([]order.Edge{{From: 0, To: 2}}, names),
	}
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := result.Save(dir, "demo", rec)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "demo_results.json"), paths.Results)
	assert.FileExists(t, paths.PartialOrder)

	got, err := result.Load(paths.Results)
	require.NoError(t, err)
	assert.Equal(t, rec.RunID, got.RunID)
	assert.Len(t, got.RunID, 36)
	assert.Equal(t, rec.H, got.H)
	assert.Equal(t, rec.Trace.Rho, got.Trace.Rho)
	assert.Equal(t, rec.Trace.LogLik[1], got.Trace.LogLik[1])
	assert.True(t, math.IsInf(float64(got.Trace.LogLik[0]), -1))
	assert.True(t, math.IsNaN(float64(got.MallowTheta)))
	assert.Equal(t, "a < c", got.Missing[0].String())

	rel, err := got.Relation()
	require.NoError(t, err)
	assert.True(t, rel.Equal(h))

	m, err := result.LoadMatrix(paths.PartialOrder)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(3, 3, []float64{0, 1, 0, 0, 0, 1, 0, 0, 0}), m))
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, err := result.Load(filepath.Join(dir, "absent.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"h": "x"}`), 0o600))
	_, err = result.Load(path)
	require.ErrorIs(t, err, result.ErrDecode)

	require.ErrorIs(t, result.SaveMatrix(filepath.Join(dir, "e.npy"), nil), result.ErrEmptyRelation)
}

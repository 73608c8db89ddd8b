package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porder/result"
)

const testConfig = `
mcmc:
  num_iterations: 200
  K: 1
  seed: 3
  update_probabilities: {rho: 0.2, noise: 0.4, U: 0.4}
rho: {dr: 0.1}
noise: {noise_option: queue_jump, sigma_mallow: 0.1}
prior: {rho_prior: 0.1667, noise_beta_prior: 9, mallow_ua: 10}
visualization: {burn_in: 50}
`

const testData = `{
  "total_orders": [[0, 1, 2], [0, 1, 2], [0, 2, 1]],
  "items": {"names": ["a", "b", "c"]},
  "true_partial_order": [[0, 1, 1], [0, 0, 1], [0, 0, 0]]
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeInputs(t *testing.T) (dir, cfgPath, dataPath string) {
	t.Helper()
	dir = t.TempDir()
	cfgPath = filepath.Join(dir, "config.yaml")
	dataPath = filepath.Join(dir, "chain.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(testConfig), 0o600))
	require.NoError(t, os.WriteFile(dataPath, []byte(testData), 0o600))

	return dir, cfgPath, dataPath
}

func TestRootCmd_Definition(t *testing.T) {
	t.Parallel()
	root := newRootCmd()
	assert.Equal(t, "porder", root.Use)
	require.NotNil(t, root.PersistentFlags().Lookup("verbose"))
	require.NotNil(t, root.PersistentFlags().Lookup("debug"))

	names := make([]string, 0, 3)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"run", "summarize", "dimension"})
}

func TestRunCmd_SavesResults(t *testing.T) {
	t.Parallel()
	dir, cfgPath, dataPath := writeInputs(t)
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, "run", "--config", cfgPath, "--data", dataPath, "--output-dir", outDir, "--iterations", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "120 samples, 3 items")
	assert.Contains(t, out, "Inferred partial order")
	assert.Contains(t, out, "relationships")

	resultsPath := filepath.Join(outDir, "chain_results.json")
	assert.FileExists(t, filepath.Join(outDir, "chain_partial_order.npy"))
	rec, err := result.Load(resultsPath)
	require.NoError(t, err)
	assert.Len(t, rec.Trace.Rho, 120)
	assert.Equal(t, 50, rec.BurnIn)

	out, err = execute(t, "summarize", "--results", resultsPath, "--burn-in", "10", "--data", dataPath, "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "burn-in 10 of 120 samples")
	assert.Contains(t, out, "log_likelihood")
	rec, err = result.Load(resultsPath)
	require.NoError(t, err)
	assert.Equal(t, 10, rec.BurnIn)

	out, err = execute(t, "dimension", "--results", resultsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "items: 3")
}

func TestRunCmd_Errors(t *testing.T) {
	t.Parallel()
	_, cfgPath, dataPath := writeInputs(t)

	_, err := execute(t, "run", "--data", dataPath)
	require.Error(t, err, "config is required")

	_, err = execute(t, "run", "--config", cfgPath)
	require.Error(t, err, "no dataset")

	_, err = execute(t, "run", "--config", cfgPath, "--data", dataPath, "--iterations", "0")
	require.Error(t, err)
}

func TestDimensionCmd_Crown(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "dimension", "--crown", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "items: 6, relations: 6, dimension: 3")
	assert.Contains(t, out, "L3: ")

	_, err = execute(t, "dimension")
	require.Error(t, err)
	_, err = execute(t, "dimension", "--crown", "5")
	require.Error(t, err, "crown(5) has 10 items, above the default limit")
}

func TestDataName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "sample", dataName("out/sample_results.json"))
	assert.Equal(t, "x", dataName("x"))
}

func TestDimensionCmd_ResultsWithoutItems(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for name, body := range map[string]string{
		"bare":  `{"h": [[0, 1], [0, 0]]}`,
		"short": `{"h": [[0, 1], [0, 0]], "items": ["only"]}`,
	} {
		path := filepath.Join(dir, name+"_results.json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		out, err := execute(t, "dimension", "--results", path)
		require.NoError(t, err, name)
		assert.Contains(t, out, "dimension: 1", name)
		assert.Contains(t, out, "L1: Item 0 < Item 1", name)
	}
}

func TestItemLabels(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "b"}, itemLabels([]string{"a", "b"}, 2))
	assert.Equal(t, []string{"Item 0", "Item 1"}, itemLabels(nil, 2))
	assert.Equal(t, []string{"Item 0", "Item 1"}, itemLabels([]string{"a"}, 2))
}

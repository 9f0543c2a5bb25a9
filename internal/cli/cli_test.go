package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kfca/internal/cli"
	"github.com/katalvlaran/kfca/lattice"
)

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	root := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCross(t *testing.T) {
	out, _, err := run(t, "cross")
	require.NoError(t, err)
	assert.Contains(t, out, "Lattice 5 concepts, 5 edges (canonical)")
	assert.Contains(t, out, "(1, 2, 3, 4, 5) [b]")
}

func TestVehiclesPivots(t *testing.T) {
	for _, tc := range []struct {
		pivot string
		want  string
	}{
		{"0.5", "Lattice 15 concepts, 25 edges (canonical)"},
		{"0.75", "Lattice 22 concepts, 37 edges (canonical)"},
		{"1", "Lattice 14 concepts, 23 edges (canonical)"},
	} {
		out, _, err := run(t, "vehicles", "--pivot", tc.pivot)
		require.NoError(t, err, tc.pivot)
		assert.Contains(t, out, tc.want)
	}

	out, _, err := run(t, "vehicles", "--pivot", "0.75", "--method", "objects", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Lattice 11 concepts,")
}

func TestEnvironmentAndConfigFile(t *testing.T) {
	t.Setenv("KFCA_PIVOT", "0.5")
	out, _, err := run(t, "vehicles")
	require.NoError(t, err)
	assert.Contains(t, out, "Lattice 15 concepts")

	// explicit flags win over the environment
	out, _, err = run(t, "vehicles", "--pivot", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Lattice 14 concepts")

	path := filepath.Join(t.TempDir(), "kfca.yaml")
	require.NoError(t, os.WriteFile(path, []byte("method: objects\n"), 0o644))
	out, _, err = run(t, "vehicles", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Lattice 8 concepts")

	_, _, err = run(t, "cross", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInvalidSettings(t *testing.T) {
	for _, args := range [][]string{
		{"cross", "--method", "bogus"},
		{"cross", "--workers", "-2"},
		{"cross", "--max-concepts", "-1"},
		{"cross", "--rankdir", "XY"},
		{"vehicles", "--semiring", "boolean"},
		{"random", "--density", "2"},
		{"scale", "ordinal", "x"},
	} {
		_, _, err := run(t, args...)
		assert.ErrorIs(t, err, cli.ErrInvalidSetting, "%v", args)
	}
}

func TestMaxConcepts(t *testing.T) {
	_, _, err := run(t, "vehicles", "--pivot", "0.75", "--max-concepts", "10")
	assert.ErrorIs(t, err, lattice.ErrTooManyConcepts)
}

func TestScales(t *testing.T) {
	out, _, err := run(t, "scale", "ordinal", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Lattice 4 concepts, 3 edges")

	out, _, err = run(t, "scale", "nominal", "red", "green", "blue")
	require.NoError(t, err)
	assert.Contains(t, out, "Lattice 5 concepts, 6 edges")
}

func TestRandomIsDeterministic(t *testing.T) {
	args := []string{"random", "--seed", "5", "--semiring", "fuzzy", "--pivot", "0.5"}
	first, _, err := run(t, args...)
	require.NoError(t, err)
	second, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Lattice ")

	out, _, err := run(t, "random", "--objects", "3", "--attributes", "2", "--density", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Lattice 1 concepts, 0 edges")
}

func TestDOTAndMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cross.dot")
	_, errOut, err := run(t, "cross", "--dot", path, "--rankdir", "LR", "--metrics")
	require.NoError(t, err)

	dot, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(dot), "digraph ConceptLattice {\n    rankdir=LR;\n")
	assert.Contains(t, string(dot), "    1 -> 0;\n")

	assert.Contains(t, errOut, `kfca_lattice_builds_total{method="canonical",outcome="ok"} 1`)
	assert.Contains(t, errOut, "kfca_lattice_concepts 5")
}

func TestVerboseLogs(t *testing.T) {
	_, errOut, err := run(t, "cross", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "lattice built")
}

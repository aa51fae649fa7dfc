// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topolift/data"
	"github.com/katalvlaran/topolift/feature"
	"github.com/katalvlaran/topolift/lifting"
	"github.com/katalvlaran/topolift/liftings"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestCLI_Lists(t *testing.T) {
	out, err := run(t, "", "strategies")
	require.NoError(t, err)
	assert.Equal(t, append([]string{noneName}, feature.Names()...), strings.Fields(out))

	out, err = run(t, "", "liftings")
	require.NoError(t, err)
	assert.Equal(t, liftings.Names(), strings.Fields(out))
}

func TestCLI_SynthThenLift(t *testing.T) {
	synth, err := run(t, "", "synth", "--kind", "cycle", "--n", "4", "--edge-attrs", "--symmetric")
	require.NoError(t, err)

	rec, err := data.Decode(strings.NewReader(synth))
	require.NoError(t, err)
	x, err := rec.X()
	require.NoError(t, err)
	assert.Equal(t, 4, x.Rows())

	out, err := run(t, synth, "lift", "--lifting", liftings.CycleName, "--preserve-edge-attr", "--input", "-")
	require.NoError(t, err)
	lifted, err := data.Decode(strings.NewReader(out))
	require.NoError(t, err)
	for _, key := range []string{"x", "edge_index", "edge_attr", "incidence_1", "incidence_2", "x_1", "x_2", "shape"} {
		assert.True(t, lifted.Has(key), key)
	}
}

func TestCLI_LiftManyInputsWithConfig(t *testing.T) {
	a := writeFile(t, "a.yaml", "x: [[1], [2], [3]]\nedge_index: [[0, 1, 2], [1, 2, 0]]\n")
	b := writeFile(t, "b.yaml", "x: [[1], [1]]\nedge_index: [[0], [1]]\n")
	cfg := writeFile(t, "cfg.yaml", "feature_lifting: null\n")

	out, err := run(t, "", "lift", "-l", liftings.KHopName, "-c", cfg, "-i", a, "-i", b, "-w", "2")
	require.NoError(t, err)
	docs := strings.Split(out, "---\n")
	require.Len(t, docs, 2)
	first, err := data.Decode(strings.NewReader(docs[0]))
	require.NoError(t, err)
	assert.True(t, first.Has("incidence_hyperedges"))
	assert.False(t, first.Has("x_hyperedges"), "null feature_lifting keeps the identity strategy")
}

func TestCLI_Errors(t *testing.T) {
	rec := writeFile(t, "r.yaml", "x: [[1]]\nedge_index: []\n")
	badCfg := writeFile(t, "bad.yaml", "unknown: 1\n")

	_, err := run(t, "", "lift", "--lifting", "nope", "--input", rec)
	require.ErrorIs(t, err, liftings.ErrUnknownLifting)

	_, err = run(t, "", "lift", "--lifting", liftings.CliqueName, "--config", badCfg, "--input", rec)
	require.ErrorIs(t, err, lifting.ErrUnknownOption)

	_, err = run(t, "", "lift", "--lifting", liftings.CliqueName, "--feature-lifting", "Bogus", "--input", rec)
	require.ErrorIs(t, err, feature.ErrUnknownStrategy)

	_, err = run(t, "", "synth", "--kind", "moebius")
	require.Error(t, err)
}

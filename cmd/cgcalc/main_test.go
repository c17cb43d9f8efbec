// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"math/cmplx"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pointgroup/group"
	"github.com/katalvlaran/pointgroup/pointgroups"
)

// run executes cgcalc with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestCG_Text(t *testing.T) {
	out, _, err := run(t, "cg", "B1", "E", "E", "--group", "D4")
	require.NoError(t, err)
	assert.Contains(t, out, "D4: B1 ⊗ E → E (solver jacobi, tolerance 1e-08)")
	assert.Contains(t, out, "multiplicity 1, expected 2 vectors, found 2")
	assert.Contains(t, out, "v1 = [1, 0]")
	assert.Contains(t, out, "v2 = [0, 1]")
	assert.NotContains(t, out, "warning")
}

func TestCG_Empty(t *testing.T) {
	out, _, err := run(t, "cg", "B1", "E", "A1")
	require.NoError(t, err)
	assert.Contains(t, out, "target does not occur")
}

func TestCG_YAML(t *testing.T) {
	out, _, err := run(t, "cg", "B1", "E", "E", "--output", "yaml", "--canonical", "--solver", "gonum")
	require.NoError(t, err)
	var doc struct {
		Solver    string            `yaml:"solver"`
		Ambiguous bool              `yaml:"ambiguous"`
		Vectors   [][]group.Complex `yaml:"vectors"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "gonum", doc.Solver)
	assert.False(t, doc.Ambiguous)
	want := [][]complex128{{1, 0}, {0, 1}}
	require.Len(t, doc.Vectors, len(want))
	for i := range want {
		require.Len(t, doc.Vectors[i], 2)
		for j := range want[i] {
			assert.InDelta(t, 0, cmplx.Abs(want[i][j]-complex128(doc.Vectors[i][j])), 1e-9)
		}
	}
}

func TestCG_UnknownIrrep(t *testing.T) {
	_, _, err := run(t, "cg", "B1", "E", "T9")
	require.ErrorIs(t, err, group.ErrUnknownIrrep)
}

func TestDecompose(t *testing.T) {
	out, _, err := run(t, "decompose", "T1", "T1", "--group", "O")
	require.NoError(t, err)
	assert.Contains(t, out, "= A1 ⊕ E ⊕ T1 ⊕ T2")
	assert.Contains(t, out, "completeness: 9/9 ok")
}

func TestChars(t *testing.T) {
	out, _, err := run(t, "chars", "--group", "D3")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^E\s+2\s+-1\s+0\s*$`, out)
	assert.Regexp(t, `(?m)^A2\s+1\s+1\s+-1\s*$`, out)
}

func TestIrreps_YAML(t *testing.T) {
	out, _, err := run(t, "irreps", "--group", "O", "--output", "yaml")
	require.NoError(t, err)
	var doc irrepsDocument
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 24, doc.Order)
	require.Len(t, doc.Irreps, 5)
	assert.Equal(t, irrepDocument{Label: "T2", Dim: 3}, doc.Irreps[4])
}

func TestVerify(t *testing.T) {
	out, _, err := run(t, "verify", "--group", "D4")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^homomorphism \(via E\)\s+ok$`, out)
	assert.Regexp(t, `(?m)^C\+4\s+4$`, out)
}

func TestVerify_NotFaithful(t *testing.T) {
	_, _, err := run(t, "verify", "--group", "O", "--faithful", "E")
	require.ErrorIs(t, err, errVerify)
}

// TestVerify_ReusedTree runs verify twice on one command tree; the detected
// faithful irrep must follow the group, not the previous run.
func TestVerify_ReusedTree(t *testing.T) {
	cmd := newRootCmd()
	for _, tc := range []struct{ group, faithful string }{
		{"D4", "E"},
		{"O", "T1"},
		{"D3", "E"},
	} {
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"verify", "--group", tc.group})
		require.NoError(t, cmd.Execute(), tc.group)
		assert.Regexp(t, `(?m)^homomorphism \(via `+tc.faithful+`\)\s+ok$`, out.String(), tc.group)
	}
}

func TestGroups(t *testing.T) {
	out, _, err := run(t, "groups")
	require.NoError(t, err)
	for _, name := range pointgroups.Names() {
		assert.Contains(t, out, name)
	}
}

func TestGroupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d4.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, group.Encode(f, pointgroups.D4()))
	require.NoError(t, f.Close())

	out, _, err := run(t, "cg", "B1", "E", "E", "--group-file", path, "--group", "O")
	require.NoError(t, err)
	assert.Contains(t, out, "D4: B1 ⊗ E → E")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("CGCALC_GROUP", "D3")
	t.Setenv("CGCALC_OUTPUT", "yaml")
	out, _, err := run(t, "irreps")
	require.NoError(t, err)
	assert.Contains(t, out, "group: D3")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("group: O\nsolver: gonum\ncanonical: true\n"), 0o600))
	out, _, err := run(t, "cg", "E", "T1", "T2", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "O: E ⊗ T1 → T2 (solver gonum")
	assert.Contains(t, out, "found 3")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "cg", "E", "E", "A1", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "clebsch-gordan done")
}

func TestBadFlags(t *testing.T) {
	_, _, err := run(t, "irreps", "--output", "json")
	require.ErrorContains(t, err, errBadOutput.Error())

	_, _, err = run(t, "irreps", "--group", "Ih")
	require.ErrorIs(t, err, pointgroups.ErrUnknownGroup)

	_, _, err = run(t, "irreps", "--log-level", "loud")
	require.Error(t, err)

	_, _, err = run(t, "cg", "E", "E", "A1", "--tolerance=-1")
	require.Error(t, err)
}

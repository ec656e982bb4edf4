package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcflow/builder"
	"github.com/katalvlaran/mcflow/flow"
)

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir()) // no user config file

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func fixture(name string) string { return filepath.Join("testdata", name) }

func TestSolveText(t *testing.T) {
	out, _, err := run(t, "solve", fixture("diamond.txt"), "--saturated")
	require.NoError(t, err)
	require.Equal(t, "flow: 5\ncost: 13\nsaturated:\n  0 -> 1\n  0 -> 2\n  1 -> 3\n  2 -> 3\n", out)
}

func TestSolveYAMLUsesFileLimit(t *testing.T) {
	out, _, err := run(t, "solve", fixture("diamond.yaml"), "-o", "yaml", "--saturated")
	require.NoError(t, err)

	var rep Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.Equal(t, int64(3), rep.Flow)
	require.Equal(t, int64(7), rep.Cost)
	require.Equal(t, []flow.NodePair{{From: 0, To: 1}, {From: 1, To: 3}}, rep.Saturated)
}

func TestSolveFlagOverrides(t *testing.T) {
	out, _, err := run(t, "solve", fixture("diamond.yaml"), "--limit", "1")
	require.NoError(t, err)
	require.Equal(t, "flow: 1\ncost: 2\n", out)

	out, _, err = run(t, "solve", fixture("open.txt"), "--source", "0", "--sink", "1")
	require.NoError(t, err)
	require.Equal(t, "flow: 5\ncost: 10\n", out)
}

func TestSolveZeroLimit(t *testing.T) {
	out, _, err := run(t, "solve", fixture("diamond.txt"), "--limit", "0")
	require.NoError(t, err)
	require.Equal(t, "flow: 0\ncost: 0\n", out)

	out, _, err = run(t, "solve", fixture("zero.txt"), "--saturated")
	require.NoError(t, err)
	require.Equal(t, "flow: 0\ncost: 0\n", out)

	// A flag still overrides the file's limit of 0.
	out, _, err = run(t, "solve", fixture("zero.txt"), "--limit", "2")
	require.NoError(t, err)
	require.Equal(t, "flow: 2\ncost: 4\n", out)
}

func TestSolveEnvOverride(t *testing.T) {
	t.Setenv("MCFLOW_LIMIT", "4")
	out, _, err := run(t, "solve", fixture("diamond.txt"))
	require.NoError(t, err)
	require.Equal(t, "flow: 4\ncost: 10\n", out)
}

func TestSolveVerboseLogs(t *testing.T) {
	_, logs, err := run(t, "solve", fixture("diamond.txt"), "-v")
	require.NoError(t, err)
	require.Contains(t, logs, "network loaded")
	require.Contains(t, logs, "flow: augmented")
}

func TestSolveErrors(t *testing.T) {
	_, _, err := run(t, "solve", fixture("open.txt"))
	require.ErrorIs(t, err, errNoEndpoint)

	_, _, err = run(t, "solve", fixture("cycle.txt"))
	require.ErrorIs(t, err, flow.ErrNegativeCycle)

	_, _, err = run(t, "solve", fixture("diamond.txt"), "-o", "xml")
	require.ErrorContains(t, err, "unknown output format")

	_, _, err = run(t, "solve", fixture("absent.txt"))
	require.Error(t, err)

	_, _, err = run(t, "solve")
	require.Error(t, err)

	_, _, err = run(t, "--config", fixture("absent.yaml"), "solve", fixture("diamond.txt"))
	require.ErrorContains(t, err, "reading config")
}

func TestWriteReportTextWithoutSaturated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, Report{Flow: 0, Cost: 0}, "text"))
	require.Equal(t, "flow: 0\ncost: 0\n", buf.String())
}

func TestGenThenSolve(t *testing.T) {
	args := []string{"gen", "--nodes", "12", "--density", "0.4", "--seed", "7"}
	first, _, err := run(t, args...)
	require.NoError(t, err)
	second, _, err := run(t, args...)
	require.NoError(t, err)
	require.Equal(t, first, second, "same seed, same network")
	require.Contains(t, first, "nodes 12\nsource 0\nsink 11\n")

	path := filepath.Join(t.TempDir(), "net.txt")
	require.NoError(t, os.WriteFile(path, []byte(first), 0o644))
	out, _, err := run(t, "solve", path)
	require.NoError(t, err)
	require.Contains(t, out, "flow: ")
}

func TestGenYAML(t *testing.T) {
	out, _, err := run(t, "gen", "--nodes", "3", "--density", "1", "--format", "yaml")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))
	_, _, err = run(t, "solve", path, "-o", "yaml")
	require.NoError(t, err)
}

func TestGenEnvOverride(t *testing.T) {
	t.Setenv("MCFLOW_MAX_COST", "0")
	out, _, err := run(t, "gen", "--nodes", "4", "--density", "1")
	require.NoError(t, err)
	require.Contains(t, out, "edge 0 1 ")
	for _, line := range bytes.Split([]byte(out), []byte("\n")) {
		if bytes.HasPrefix(line, []byte("edge ")) {
			require.True(t, bytes.HasSuffix(line, []byte(" 0")), string(line))
		}
	}
}

func TestGenErrors(t *testing.T) {
	_, _, err := run(t, "gen", "--nodes", "1")
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, _, err = run(t, "gen", "--density", "2")
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, _, err = run(t, "gen", "--format", "xml")
	require.ErrorContains(t, err, "unknown file format")

	_, _, err = run(t, "gen", "--max-capacity", "0")
	require.ErrorContains(t, err, "max-capacity")
}

func TestGenVerboseLogs(t *testing.T) {
	_, logs, err := run(t, "gen", "--nodes", "3", "-v")
	require.NoError(t, err)
	require.Contains(t, logs, "network generated")

	t.Setenv("MCFLOW_VERBOSE", "true")
	_, logs, err = run(t, "gen", "--nodes", "3")
	require.NoError(t, err)
	require.Contains(t, logs, "network generated")
}

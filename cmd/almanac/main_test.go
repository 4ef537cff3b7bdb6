package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"almanac/internal/almanac"
	"almanac/internal/pipeline"
)

const example = "testdata/example.txt"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd(&app{logger: zap.NewNop()})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRoot_PrintsBothParts(t *testing.T) {
	for _, workers := range []string{"1", "4"} {
		out, err := execute(t, "--input", example, "--workers", workers)
		require.NoError(t, err)
		assert.Equal(t, "Part 1: 35\nPart 2: 46\n", out)
	}
}

func TestRoot_MissingFile(t *testing.T) {
	_, err := execute(t, "--input", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read almanac file")
}

func TestRoot_ParseError(t *testing.T) {
	path := writeInput(t, "bad.txt", "seeds: 1 2\n\na-to-b map:\n1 2\n")

	_, err := execute(t, "--input", path)
	require.ErrorIs(t, err, almanac.ErrMappingArity)
}

func TestRoot_NoSeedRanges(t *testing.T) {
	path := writeInput(t, "single.txt", "seeds: 7\n\na-to-b map:\n1 7 1\n")

	out, err := execute(t, "--input", path)
	require.ErrorIs(t, err, pipeline.ErrNoRanges)
	assert.Equal(t, "Part 1: 1\n", out)
}

func TestRoot_InvalidWorkers(t *testing.T) {
	_, err := execute(t, "--input", example, "--workers", "-1")
	require.Error(t, err)
}

func TestTrace(t *testing.T) {
	out, err := execute(t, "--input", example, "trace", "79", "14")
	require.NoError(t, err)
	assert.Equal(t,
		"seed 79, soil 81, fertilizer 81, water 81, light 74, temperature 78, humidity 78, location 82\n"+
			"seed 14, soil 14, fertilizer 53, water 49, light 42, temperature 42, humidity 43, location 43\n",
		out)

	_, err = execute(t, "--input", example, "trace", "abc")
	require.Error(t, err)
}

func TestExport(t *testing.T) {
	out, err := execute(t, "--input", example, "export")
	require.NoError(t, err)

	a, err := almanac.ParseYAML([]byte(out))
	require.NoError(t, err)

	part2, err := a.ClosestRangeLocation()
	require.NoError(t, err)
	assert.Equal(t, uint64(46), part2)

	text, err := execute(t, "--input", example, "export", "--format", "text")
	require.NoError(t, err)

	want, err := os.ReadFile(example)
	require.NoError(t, err)
	assert.Equal(t, string(want), text)

	_, err = execute(t, "--input", example, "export", "--format", "xml")
	require.Error(t, err)
}

func TestExport_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "almanac.yaml")

	out, err := execute(t, "--input", example, "export", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	roundTrip, err := execute(t, "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 35\nPart 2: 46\n", roundTrip)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "--input", example, "check")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	path := writeInput(t, "overlap.txt", "seeds: 1 2\n\nseed-to-soil map:\n0 0 10\n50 5 10\n")

	out, err = execute(t, "--input", path, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "warning: [seed-to-soil map] 50 5 10: [overlapping_mappings]")

	_, err = execute(t, "--input", path, "check", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode")
}

func TestDump(t *testing.T) {
	out, err := execute(t, "--input", example, "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeds")
	assert.Contains(t, out, "seed-to-soil map")
}

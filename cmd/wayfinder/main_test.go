package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMap(t *testing.T, rows ...string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(name, []byte(strings.Join(rows, "\r\n")+"\r\n"), 0o644))

	return name
}

func TestRun_Found(t *testing.T) {
	name := writeMap(t, "@.X", "...", "...")
	dir := filepath.Dir(name)
	geo := filepath.Join(dir, "route.geojson")
	img := filepath.Join(dir, "route.png")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-map", name, "-geojson", geo, "-png", img, "-scale", "2", "-caption", "-dump"}, &stdout, &stderr)
	require.Equal(t, exitFound, code, stderr.String())

	marked, err := os.ReadFile(filepath.Join(dir, "map.path.txt"))
	require.NoError(t, err)
	assert.Equal(t, "##X\r\n...\r\n...\r\n", string(marked))

	orig, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "@.X\r\n...\r\n...\r\n", string(orig))

	out := stdout.String()
	assert.Contains(t, out, " Grid: \nSO  0   DE  \n")
	assert.Contains(t, out, "Scores for cells: ")
	assert.Contains(t, out, "Path: \n[0, 2] -> [0, 1] -> [0, 0]\n##X\n...\n...\n")
	assert.Contains(t, stderr.String(), "route marked")

	data, err := os.ReadFile(geo)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
	info, err := os.Stat(img)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRun_InPlace(t *testing.T) {
	name := writeMap(t, "@.X", "...", "...")

	var stdout, stderr bytes.Buffer
	require.Equal(t, exitFound, run([]string{"-map", name, "-inplace"}, &stdout, &stderr), stderr.String())

	got, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "##X\r\n...\r\n...\r\n", string(got))
}

// TestRun_LFMap: a map with "\n" line ends parses and solves, but marking
// it at CRLF offsets would overwrite newlines, so the run fails and the copy
// keeps the original bytes.
func TestRun_LFMap(t *testing.T) {
	name := filepath.Join(t.TempDir(), "map.txt")
	input := "@..\n^^.\n..X\n"
	require.NoError(t, os.WriteFile(name, []byte(input), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-map", name, "-heuristic", "chebyshev"}, &stdout, &stderr)
	require.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "CRLF")

	copied, err := os.ReadFile(filepath.Join(filepath.Dir(name), "map.path.txt"))
	require.NoError(t, err)
	assert.Equal(t, input, string(copied))
	orig, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, input, string(orig))
}

// TestRun_Help documents the heuristic trade-off in the flag usage.
func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, exitFound, run([]string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "non-minimal")
	assert.Contains(t, stderr.String(), "chebyshev (always minimal)")
}

func TestRun_NoPath(t *testing.T) {
	name := writeMap(t, "@~.", "~~.", "..X")

	var stdout, stderr bytes.Buffer
	require.Equal(t, exitNoPath, run([]string{"-map", name}, &stdout, &stderr))
	assert.Equal(t, "No possible path\n", stdout.String())
	assert.Contains(t, stderr.String(), "between_endpoints=1")

	_, err := os.Stat(filepath.Join(filepath.Dir(name), "map.path.txt"))
	assert.True(t, os.IsNotExist(err), "no copy without a route")
}

func TestRun_Truncated(t *testing.T) {
	name := writeMap(t, "@...", "....", "....", "...X")

	var stdout, stderr bytes.Buffer
	require.Equal(t, exitNoPath, run([]string{"-map", name, "-max-expansions", "1"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "expansion cap")
}

func TestRun_Errors(t *testing.T) {
	good := writeMap(t, "@X", "..")
	cases := map[string][]string{
		"MissingFile":      {"-map", filepath.Join(t.TempDir(), "absent.txt")},
		"Malformed":        {"-map", writeMap(t, "@?", ".X")},
		"MissingEndpoints": {"-map", writeMap(t, "..", "..")},
		"BadHeuristic":     {"-map", good, "-heuristic", "euclid"},
		"BadCap":           {"-map", good, "-max-expansions", "-3"},
		"Conflict":         {"-map", good, "-inplace", "-out", "x.txt"},
		"UnknownFlag":      {"-nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, exitError, run(args, &stdout, &stderr))
		})
	}
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "dir/map.path.txt", outputPath(config{mapFile: "dir/map.txt"}))
	assert.Equal(t, "map.path", outputPath(config{mapFile: "map"}))
	assert.Equal(t, "o.txt", outputPath(config{mapFile: "map.txt", out: "o.txt"}))
	assert.Equal(t, "map.txt", outputPath(config{mapFile: "map.txt", inPlace: true}))
}

func TestHeuristicOf(t *testing.T) {
	_, err := heuristicOf("Chebyshev")
	assert.NoError(t, err)
	_, err = heuristicOf("euclid")
	assert.ErrorIs(t, err, errUnknownHeuristic)
}

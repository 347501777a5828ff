package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestTypes(t *testing.T) {
	out, err := runCmd(t, "types")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"AmbientLightNode", "CubeNode", "CylinderNode", "DirectionalLightNode",
		"MeshNode", "PlaneNode", "SphereNode", "SpotLightNode",
	}, strings.Fields(out))
}

func TestNewInspectConvertDump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	_, err := runCmd(t, "new", path)
	require.NoError(t, err)

	out, err := runCmd(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Scene Node Count: 3")
	assert.Contains(t, out, "[AmbientLightNode] Ambient Light Node")
	assert.Contains(t, out, "[PlaneNode] Floor")
	assert.Contains(t, out, "Num Tris: 128")

	converted := filepath.Join(dir, "copy.json")
	_, err = runCmd(t, "convert", path, converted)
	require.NoError(t, err)
	a, err := os.ReadFile(path)
	require.NoError(t, err)
	b, err := os.ReadFile(converted)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))

	out, err = runCmd(t, "dump", path)
	require.NoError(t, err)
	assert.Contains(t, out, "CubeNode (depth 0)")
	assert.Contains(t, out, "quadSize: (int) 1")
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"bogus"},
		{"inspect"},
		{"convert", "only-one"},
	} {
		_, err := runCmd(t, args...)
		assert.ErrorIs(t, err, errUsage, "%v", args)
	}

	_, err := runCmd(t, "inspect", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

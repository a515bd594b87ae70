// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stats

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/offconv/internal/mesh"
)

const squareCOFF = `COFF
4 1 0
0 0 0 255 0 0
2 0 0 255 0 0
2 3 0 255 0 0
0 3 -1 255 0 0
4 0 1 2 3
`

func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"square.off":   squareCOFF,
		"triangle.off": "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n",
		"triangle.obj": "",
		"readme.txt":   "not a mesh",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestInspect(t *testing.T) {
	dir := setupDir(t)

	got, err := Inspect(mesh.Library{}, dir)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, Summary{
		File:      "square.off",
		Vertices:  4,
		Triangles: 2,
		HasColors: true,
		Min:       [3]float64{0, 0, -1},
		Max:       [3]float64{2, 3, 0},
		Output:    "square.obj",
	}, got[0])

	assert.Equal(t, "triangle.off", got[1].File)
	assert.Equal(t, 1, got[1].Triangles)
	assert.True(t, got[1].Converted)
}

func TestInspect_ReadFailure(t *testing.T) {
	dir := setupDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.off"), []byte("OFF\n3 1 0\n"), 0o644))

	got, err := Inspect(mesh.Library{}, dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrTruncated)
	assert.Empty(t, got, "broken.off sorts first")
}

func TestWriters(t *testing.T) {
	summaries, err := Inspect(mesh.Library{}, setupDir(t))
	require.NoError(t, err)

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteYAML(&buf, summaries))

		var decoded []Summary
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, summaries, decoded)
		assert.Contains(t, buf.String(), "min: [0, 0, -1]")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, summaries))

		var decoded []Summary
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, summaries, decoded)
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, summaries))
		out := buf.String()
		assert.Contains(t, out, "square.obj (pending)")
		assert.Contains(t, out, "triangle.obj (exists)")
		assert.Contains(t, out, "2 mesh(es)")
	})

	t.Run("empty table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, nil))
		assert.Equal(t, "No meshes found.\n", buf.String())
	})
}

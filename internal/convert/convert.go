// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the idempotent OFF-to-OBJ batch conversion.
// An input is converted only when its output file does not exist yet; the
// existence of the output is the sole record of earlier runs.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdiddy/offconv/internal/mesh"
	"github.com/pdiddy/offconv/pkg/types"
)

// MeshIO reads, transforms and writes meshes on behalf of the converter.
// mesh.Library is the production implementation.
type MeshIO interface {
	// ReadMesh loads the file at path as a triangle mesh.
	ReadMesh(path string) (*mesh.TriangleMesh, error)

	// ComputeVertexNormals sets per-vertex normals on m and returns it.
	ComputeVertexNormals(m *mesh.TriangleMesh) *mesh.TriangleMesh

	// WriteMesh serializes m to path.
	WriteMesh(path string, m *mesh.TriangleMesh, opts mesh.WriteOptions) error
}

// writeOptions are passed explicitly on every write.
var writeOptions = mesh.WriteOptions{Binary: true, IncludeNormals: true}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
}

// Total returns the number of inputs visited.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped
}

// OutputPath derives the output name by replacing the final three
// characters of input with the target extension: "mesh01.off" becomes
// "mesh01.obj". Inputs come from a *.off match and are never shorter than
// four characters.
func OutputPath(input string) string {
	return input[:len(input)-len(types.SourceExt)] + types.TargetExt
}

// Discover returns the *.off files in dir in lexical order. A directory
// without matches yields an empty list and no error.
func Discover(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*."+types.SourceExt))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// ConvertFile converts a single input unless its output already exists.
// An existing output is never inspected or replaced. Read and write
// failures are returned wrapped with the input name.
func ConvertFile(mio MeshIO, input string, w io.Writer) (types.ConversionStatus, error) {
	output := OutputPath(input)

	if _, err := os.Stat(output); err == nil {
		fmt.Fprintln(w, "Skipping", output)
		return types.ConversionSkipped, nil
	}

	fmt.Fprintln(w, input)

	m, err := mio.ReadMesh(input)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", input, err)
	}

	m = mio.ComputeVertexNormals(m)

	if err := mio.WriteMesh(output, m, writeOptions); err != nil {
		return "", fmt.Errorf("converting %s: %w", input, err)
	}

	return types.ConversionDone, nil
}

// ConvertBatch converts inputs one at a time, printing a line per file to w.
// The first failure stops the batch: the error is returned with the counts
// reached so far, and outputs written before it stay on disk.
func ConvertBatch(mio MeshIO, inputs []string, w io.Writer) (BatchResult, error) {
	var result BatchResult
	for _, input := range inputs {
		status, err := ConvertFile(mio, input, w)
		if err != nil {
			return result, err
		}
		switch status {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionSkipped:
			result.Skipped++
		}
	}
	return result, nil
}

// Run performs a full pass over dir: every *.off file without a matching
// .obj is converted.
func Run(mio MeshIO, dir string, w io.Writer) (BatchResult, error) {
	inputs, err := Discover(dir)
	if err != nil {
		return BatchResult{}, err
	}
	return ConvertBatch(mio, inputs, w)
}

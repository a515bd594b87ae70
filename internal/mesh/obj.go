// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteOptions controls mesh serialization.
type WriteOptions struct {
	// Binary requests a binary encoding where the format has one. OBJ is a
	// text format, so the OBJ writer records the request and writes text.
	Binary bool

	// IncludeNormals writes per-vertex normals when the mesh has them.
	IncludeNormals bool
}

// WriteFile serializes m to path in the format selected by the path
// extension. The data goes to a temporary file in the same directory which
// is renamed into place once complete, so a failed write leaves nothing at
// path.
func WriteFile(path string, m *TriangleMesh, opts WriteOptions) error {
	var encode func(io.Writer, *TriangleMesh, WriteOptions) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		encode = WriteOBJ
	default:
		return fmt.Errorf("writing %s: extension %q: %w", path, ext, ErrUnsupportedFormat)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := encode(tmp, m, opts); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("moving %s into place: %w", path, err)
	}
	return nil
}

// WriteOBJ encodes m as Wavefront OBJ. Vertex colors, when present, are
// appended to the v lines. Face indices are 1-based; when normals are
// written each face corner references the normal of the same index.
func WriteOBJ(w io.Writer, m *TriangleMesh, opts WriteOptions) error {
	bw := bufio.NewWriter(w)

	writeNormals := opts.IncludeNormals && m.HasVertexNormals()
	encoding := "ascii"
	if opts.Binary {
		encoding = "ascii (binary requested, not available for obj)"
	}
	fmt.Fprintln(bw, "# offconv")
	fmt.Fprintf(bw, "# encoding: %s\n", encoding)
	fmt.Fprintf(bw, "# number of vertices: %d\n", len(m.Vertices))
	fmt.Fprintf(bw, "# number of triangles: %d\n", len(m.Triangles))

	colors := m.HasVertexColors()
	for i, v := range m.Vertices {
		if colors {
			c := m.VertexColors[i]
			fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", v[0], v[1], v[2], c[0], c[1], c[2])
		} else {
			fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2])
		}
	}

	if writeNormals {
		for _, n := range m.VertexNormals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
		}
	}

	for _, t := range m.Triangles {
		a, b, c := t[0]+1, t[1]+1, t[2]+1
		if writeNormals {
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		} else {
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
		}
	}

	return bw.Flush()
}

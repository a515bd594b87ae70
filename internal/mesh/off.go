// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ungerik/go3d/float64/vec3"
)

// maxPrealloc bounds the slice capacity reserved from header counts.
const maxPrealloc = 1 << 16

// offHeader describes the optional per-vertex attributes announced by the
// header keyword (OFF, COFF, NOFF, CNOFF, NCOFF).
type offHeader struct {
	colors  bool
	normals bool
}

// ReadFile opens path and decodes it as an OFF mesh.
func ReadFile(path string) (*TriangleMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh %s: %w", path, err)
	}
	defer f.Close()

	m, err := ReadOFF(f)
	if err != nil {
		return nil, fmt.Errorf("reading mesh %s: %w", path, err)
	}
	return m, nil
}

// ReadOFF decodes an ASCII OFF mesh. Polygonal faces are fan-triangulated.
// Vertex colors are scaled from 0-255 to [0, 1] when any component in the
// file exceeds 1; face colors are ignored.
func ReadOFF(r io.Reader) (*TriangleMesh, error) {
	lr := newLineReader(r)

	fields, err := lr.next()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	hdr, err := parseKeyword(fields[0])
	if err != nil {
		return nil, err
	}
	if len(fields) > 1 && strings.EqualFold(fields[1], "BINARY") {
		return nil, fmt.Errorf("binary OFF: %w", ErrUnsupportedFormat)
	}

	// Counts may follow the keyword on the same line.
	counts := fields[1:]
	if len(counts) == 0 {
		if counts, err = lr.next(); err != nil {
			return nil, fmt.Errorf("reading element counts: %w", err)
		}
	}
	if len(counts) < 2 {
		return nil, fmt.Errorf("line %d: expected vertex and face counts: %w", lr.line, ErrMalformed)
	}
	numVertices, err := parseCount(counts[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: vertex count: %w", lr.line, err)
	}
	numFaces, err := parseCount(counts[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: face count: %w", lr.line, err)
	}

	// Header counts are untrusted; a file that overstates them ends in
	// ErrTruncated once append has consumed what is actually there.
	vcap, fcap := min(numVertices, maxPrealloc), min(numFaces, maxPrealloc)
	m := &TriangleMesh{
		Vertices:  make([]vec3.T, 0, vcap),
		Triangles: make([][3]int, 0, fcap),
	}
	if hdr.normals {
		m.VertexNormals = make([]vec3.T, 0, vcap)
	}
	if hdr.colors {
		m.VertexColors = make([]vec3.T, 0, vcap)
	}

	for i := 0; i < numVertices; i++ {
		fields, err := lr.next()
		if err != nil {
			return nil, fmt.Errorf("vertex %d of %d: %w", i, numVertices, err)
		}
		if err := m.appendVertex(hdr, fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lr.line, err)
		}
	}

	if hdr.colors {
		scaleColors(m.VertexColors)
	}

	for i := 0; i < numFaces; i++ {
		fields, err := lr.next()
		if err != nil {
			return nil, fmt.Errorf("face %d of %d: %w", i, numFaces, err)
		}
		if err := m.appendFace(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lr.line, err)
		}
	}

	return m, nil
}

// parseKeyword validates the header keyword and extracts its attribute
// prefixes. ST (texture coordinates), 4 (homogeneous) and n (N-dimensional)
// variants are not supported.
func parseKeyword(kw string) (offHeader, error) {
	var hdr offHeader
	if !strings.HasSuffix(kw, "OFF") {
		return hdr, fmt.Errorf("header keyword %q is not OFF: %w", kw, ErrMalformed)
	}
	for _, c := range strings.TrimSuffix(kw, "OFF") {
		switch c {
		case 'C':
			hdr.colors = true
		case 'N':
			hdr.normals = true
		default:
			return hdr, fmt.Errorf("header keyword %q: %w", kw, ErrUnsupportedFormat)
		}
	}
	return hdr, nil
}

func (m *TriangleMesh) appendVertex(hdr offHeader, fields []string) error {
	want := 3
	if hdr.normals {
		want += 3
	}
	if hdr.colors {
		want += 3
	}
	if len(fields) < want {
		return fmt.Errorf("vertex has %d values, want %d: %w", len(fields), want, ErrMalformed)
	}

	values, err := parseFloats(fields[:want])
	if err != nil {
		return err
	}
	m.Vertices = append(m.Vertices, vec3.T{values[0], values[1], values[2]})
	rest := values[3:]
	if hdr.normals {
		m.VertexNormals = append(m.VertexNormals, vec3.T{rest[0], rest[1], rest[2]})
		rest = rest[3:]
	}
	if hdr.colors {
		m.VertexColors = append(m.VertexColors, vec3.T{rest[0], rest[1], rest[2]})
	}
	return nil
}

func (m *TriangleMesh) appendFace(fields []string) error {
	n, err := parseCount(fields[0])
	if err != nil {
		return fmt.Errorf("face vertex count: %w", err)
	}
	if n < 3 {
		return fmt.Errorf("face has %d vertices, want at least 3: %w", n, ErrMalformed)
	}
	if len(fields) < n+1 {
		return fmt.Errorf("face declares %d vertices but lists %d: %w", n, len(fields)-1, ErrMalformed)
	}

	indices := make([]int, n)
	for i, tok := range fields[1 : n+1] {
		idx, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("face index %q: %w", tok, ErrMalformed)
		}
		if idx < 0 || idx >= len(m.Vertices) {
			return fmt.Errorf("face index %d out of range [0, %d): %w", idx, len(m.Vertices), ErrMalformed)
		}
		indices[i] = idx
	}

	for i := 1; i < n-1; i++ {
		m.Triangles = append(m.Triangles, [3]int{indices[0], indices[i], indices[i+1]})
	}
	return nil
}

// scaleColors divides every color by 255 if any component is above 1. The
// range is a property of the file, so a dark vertex such as (1, 1, 1) in a
// 0-255 file is scaled along with the rest.
func scaleColors(colors []vec3.T) {
	for _, c := range colors {
		if c[0] > 1 || c[1] > 1 || c[2] > 1 {
			for i := range colors {
				colors[i] = vec3.T{colors[i][0] / 255, colors[i][1] / 255, colors[i][2] / 255}
			}
			return
		}
	}
}

func parseCount(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q: %w", tok, ErrMalformed)
	}
	return n, nil
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", tok, ErrMalformed)
		}
		values[i] = v
	}
	return values, nil
}

// lineReader yields the whitespace-separated fields of each content line,
// skipping blank lines and # comments.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &lineReader{sc: sc}
}

func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		text := lr.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if fields := strings.Fields(text); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil, ErrTruncated
}

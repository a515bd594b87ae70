// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mesh reads, transforms and writes triangle meshes for the batch
// converter. It covers the OFF reader, per-vertex normal computation and the
// OBJ writer; the converter only talks to it through the Library type.
package mesh

import (
	"errors"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

var (
	// ErrUnsupportedFormat is returned for file variants the reader or
	// writer does not handle (binary OFF, 4D OFF, unknown extensions).
	ErrUnsupportedFormat = errors.New("unsupported mesh format")

	// ErrTruncated is returned when a file ends before the element counts
	// declared in its header are satisfied.
	ErrTruncated = errors.New("truncated mesh file")

	// ErrMalformed is returned for content that cannot be parsed.
	ErrMalformed = errors.New("malformed mesh file")
)

// TriangleMesh holds vertex positions and triangle faces plus optional
// per-vertex attributes. VertexNormals and VertexColors are either empty or
// the same length as Vertices.
type TriangleMesh struct {
	Vertices      []vec3.T
	VertexNormals []vec3.T
	VertexColors  []vec3.T
	Triangles     [][3]int
}

// HasVertexNormals reports whether every vertex carries a normal.
func (m *TriangleMesh) HasVertexNormals() bool {
	return len(m.Vertices) > 0 && len(m.VertexNormals) == len(m.Vertices)
}

// HasVertexColors reports whether every vertex carries a color.
func (m *TriangleMesh) HasVertexColors() bool {
	return len(m.Vertices) > 0 && len(m.VertexColors) == len(m.Vertices)
}

// Bounds returns the axis-aligned bounding box of the vertices. An empty
// mesh returns two zero vectors.
func (m *TriangleMesh) Bounds() (lo, hi vec3.T) {
	if len(m.Vertices) == 0 {
		return vec3.T{}, vec3.T{}
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], v[i])
			hi[i] = math.Max(hi[i], v[i])
		}
	}
	return lo, hi
}

// ComputeVertexNormals sets one normal per vertex from the geometry of its
// adjacent triangles. Triangle normals are summed unnormalized, so larger
// faces weigh more, and the sum is normalized. A vertex touched by no
// triangle, or whose sum cancels out, gets (0, 0, 1). Any existing normals
// are overwritten. The mesh is modified in place and returned.
func ComputeVertexNormals(m *TriangleMesh) *TriangleMesh {
	normals := make([]vec3.T, len(m.Vertices))
	for _, tri := range m.Triangles {
		n := faceNormal(&m.Vertices[tri[0]], &m.Vertices[tri[1]], &m.Vertices[tri[2]])
		for _, idx := range tri {
			normals[idx].Add(&n)
		}
	}
	for i := range normals {
		length := normals[i].Length()
		if length > 0 {
			normals[i] = vec3.T{normals[i][0] / length, normals[i][1] / length, normals[i][2] / length}
		} else {
			normals[i] = vec3.T{0, 0, 1}
		}
	}
	m.VertexNormals = normals
	return m
}

// faceNormal returns the cross product of the triangle edges. Its length is
// twice the triangle area.
func faceNormal(v0, v1, v2 *vec3.T) vec3.T {
	e1 := vec3.Sub(v1, v0)
	e2 := vec3.Sub(v2, v0)
	return vec3.Cross(&e1, &e2)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mesh

// Library exposes the package functions as a single collaborator value for
// the batch converter and the stats command.
type Library struct{}

// ReadMesh loads an OFF file as a triangle mesh.
func (Library) ReadMesh(path string) (*TriangleMesh, error) {
	return ReadFile(path)
}

// ComputeVertexNormals sets per-vertex normals on m and returns it.
func (Library) ComputeVertexNormals(m *TriangleMesh) *TriangleMesh {
	return ComputeVertexNormals(m)
}

// WriteMesh serializes m to path.
func (Library) WriteMesh(path string, m *TriangleMesh, opts WriteOptions) error {
	return WriteFile(path, m, opts)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats summarizes the OFF meshes in a directory and reports
// whether each one already has a converted output.
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/offconv/internal/convert"
	"github.com/pdiddy/offconv/internal/mesh"
)

// Reader loads a mesh from disk. mesh.Library satisfies it.
type Reader interface {
	ReadMesh(path string) (*mesh.TriangleMesh, error)
}

// Summary describes one input mesh.
type Summary struct {
	File       string     `json:"file" yaml:"file"`
	Vertices   int        `json:"vertices" yaml:"vertices"`
	Triangles  int        `json:"triangles" yaml:"triangles"`
	HasNormals bool       `json:"has_normals" yaml:"has_normals"`
	HasColors  bool       `json:"has_colors" yaml:"has_colors"`
	Min        [3]float64 `json:"min" yaml:"min,flow"`
	Max        [3]float64 `json:"max" yaml:"max,flow"`
	Output     string     `json:"output" yaml:"output"`
	Converted  bool       `json:"converted" yaml:"converted"`
}

// Inspect reads every *.off file in dir and returns one summary per file in
// lexical order. It stops at the first unreadable mesh.
func Inspect(r Reader, dir string) ([]Summary, error) {
	inputs, err := convert.Discover(dir)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(inputs))
	for _, input := range inputs {
		m, err := r.ReadMesh(input)
		if err != nil {
			return summaries, fmt.Errorf("inspecting %s: %w", input, err)
		}

		lo, hi := m.Bounds()
		output := convert.OutputPath(input)
		_, statErr := os.Stat(output)

		summaries = append(summaries, Summary{
			File:       filepath.Base(input),
			Vertices:   len(m.Vertices),
			Triangles:  len(m.Triangles),
			HasNormals: m.HasVertexNormals(),
			HasColors:  m.HasVertexColors(),
			Min:        lo,
			Max:        hi,
			Output:     filepath.Base(output),
			Converted:  statErr == nil,
		})
	}
	return summaries, nil
}

// WriteYAML encodes summaries as a YAML sequence.
func WriteYAML(w io.Writer, summaries []Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summaries); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// WriteJSON encodes summaries as an indented JSON array.
func WriteJSON(w io.Writer, summaries []Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}

// WriteTable prints a fixed-width table, one row per mesh.
func WriteTable(w io.Writer, summaries []Summary) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No meshes found.")
		return err
	}

	fmt.Fprintf(w, "%-30s  %9s  %9s  %-7s  %-6s  %s\n",
		"File", "Vertices", "Triangles", "Normals", "Colors", "Output")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, s := range summaries {
		status := "pending"
		if s.Converted {
			status = "exists"
		}
		fmt.Fprintf(w, "%-30s  %9d  %9d  %-7s  %-6s  %s (%s)\n",
			s.File, s.Vertices, s.Triangles, yesNo(s.HasNormals), yesNo(s.HasColors), s.Output, status)
	}
	_, err := fmt.Fprintf(w, "\n%d mesh(es)\n", len(summaries))
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

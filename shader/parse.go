// Package shader turns combined shader files into linked OpenGL programs.
//
// A combined file carries both pipeline stages, separated by tag lines:
//
//	#shader vertex
//	...GLSL...
//	#shader fragment
//	...GLSL...
package shader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const shaderTag = "#shader"

// Source holds the two GLSL stages split out of a combined file.
type Source struct {
	Vertex   string
	Fragment string
}

// Parse splits a combined source stream into its stages. A line containing
// the tag token switches the section the following lines are collected into;
// a tag line naming no known stage is consumed without switching. Lines
// before the first tag belong to no section and are dropped. Every collected
// line is normalized to end in a single newline. A stream without tags
// yields two empty stages and no error.
func Parse(r io.Reader) (Source, error) {
	var vertex, fragment strings.Builder
	var section *strings.Builder

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, shaderTag) {
			switch {
			case strings.Contains(line, "vertex"):
				section = &vertex
			case strings.Contains(line, "fragment"):
				section = &fragment
			}
			continue
		}
		if section == nil {
			continue
		}
		section.WriteString(line)
		section.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return Source{}, fmt.Errorf("failed to read shader source: %w", err)
	}

	return Source{Vertex: vertex.String(), Fragment: fragment.String()}, nil
}

// ParseFile reads and splits the combined shader file at path. A missing or
// unreadable file is an error.
func ParseFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to open shader file: %w", err)
	}
	defer f.Close()

	src, err := Parse(f)
	if err != nil {
		return Source{}, fmt.Errorf("failed to parse shader file %s: %w", path, err)
	}
	return src, nil
}

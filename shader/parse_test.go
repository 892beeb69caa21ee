package shader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		vertex   string
		fragment string
	}{
		{
			name:     "vertex then fragment",
			in:       "#shader vertex\nvoid main() {}\n#shader fragment\nout vec4 color;\n",
			vertex:   "void main() {}\n",
			fragment: "out vec4 color;\n",
		},
		{
			name:     "fragment before vertex",
			in:       "#shader fragment\nfrag line\n#shader vertex\nvert line",
			vertex:   "vert line\n",
			fragment: "frag line\n",
		},
		{
			name:     "no tags yields empty stages",
			in:       "void main() {}\nmore\n",
			vertex:   "",
			fragment: "",
		},
		{
			name:     "empty input",
			in:       "",
			vertex:   "",
			fragment: "",
		},
		{
			name:     "lines before first tag are dropped",
			in:       "// header\n\n#shader vertex\nA\n",
			vertex:   "A\n",
			fragment: "",
		},
		{
			name:     "unknown stage tag keeps current section",
			in:       "#shader vertex\nA\n#shader geometry\nB\n#shader fragment\nC\n",
			vertex:   "A\nB\n",
			fragment: "C\n",
		},
		{
			name:     "repeated tag appends to same section",
			in:       "#shader vertex\nA\n#shader fragment\nB\n#shader vertex\nC\n",
			vertex:   "A\nC\n",
			fragment: "B\n",
		},
		{
			name:     "blank lines inside a section survive",
			in:       "#shader vertex\n\nA\n\n#shader fragment\nB\n",
			vertex:   "\nA\n\n",
			fragment: "B\n",
		},
		{
			name:     "tag is matched anywhere in the line",
			in:       "// #shader vertex\nA\n",
			vertex:   "A\n",
			fragment: "",
		},
	}

	for _, tt := range tests {
		src, err := Parse(strings.NewReader(tt.in))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if src.Vertex != tt.vertex {
			t.Errorf("%s: vertex = %q, want %q", tt.name, src.Vertex, tt.vertex)
		}
		if src.Fragment != tt.fragment {
			t.Errorf("%s: fragment = %q, want %q", tt.name, src.Fragment, tt.fragment)
		}
	}
}

func TestParseFile(t *testing.T) {
	combined := "#shader vertex\n" +
		"#version 410 core\n" +
		"void main() { gl_Position = vec4(0.0); }\n" +
		"#shader fragment\n" +
		"#version 410 core\n" +
		"out vec4 color;\n" +
		"void main() { color = vec4(1.0); }\n"

	path := filepath.Join(t.TempDir(), "Basic.shader")
	if err := os.WriteFile(path, []byte(combined), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	src, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile(%s): %v", path, err)
	}
	wantVertex := "#version 410 core\nvoid main() { gl_Position = vec4(0.0); }\n"
	wantFragment := "#version 410 core\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n"
	if src.Vertex != wantVertex {
		t.Errorf("vertex = %q, want %q", src.Vertex, wantVertex)
	}
	if src.Fragment != wantFragment {
		t.Errorf("fragment = %q, want %q", src.Fragment, wantFragment)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.shader")); err == nil {
		t.Error("ParseFile on a missing file returned nil error")
	}
}

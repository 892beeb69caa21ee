package shader

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked OpenGL shader program with cached uniform locations.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// NewProgram compiles both stages of src and links them into a program.
// Compile and link failures return the driver's info log as an error, and
// the partial GL objects are deleted before returning. Validation problems
// are logged but not fatal.
func NewProgram(src Source) (*Program, error) {
	vertex, err := compileStage(gl.VERTEX_SHADER, "vertex", src.Vertex)
	if err != nil {
		return nil, err
	}
	fragment, err := compileStage(gl.FRAGMENT_SHADER, "fragment", src.Fragment)
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(program)
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link program:\n%v", infoLog)
	}

	gl.ValidateProgram(program)
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	if status == gl.FALSE {
		log.Printf("program validation: %v", programInfoLog(program))
	}

	return &Program{id: program, uniforms: make(map[string]int32)}, nil
}

// compileStage compiles a single shader stage; name labels any compile
// error with the stage it came from.
func compileStage(stage uint32, name, source string) (uint32, error) {
	shader := gl.CreateShader(stage)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader:\n%v", name, infoLog)
	}
	return shader, nil
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the GL program object.
func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
}

// uniform returns the location for name, looking it up on first use and
// caching it. Unknown names resolve to -1, which uniform uploads ignore.
func (p *Program) uniform(name string) int32 {
	if location, ok := p.uniforms[name]; ok {
		return location
	}
	location := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = location
	return location
}

// SetMat4 uploads m to the named mat4 uniform of the currently used program.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.uniform(name), 1, false, &m[0])
}

// SetVec4 uploads v to the named vec4 uniform of the currently used program.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.uniform(name), v.X(), v.Y(), v.Z(), v.W())
}

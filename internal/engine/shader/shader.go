// Package shader compiles GL programs and wraps their uniform and attribute handles.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/deepv/pkg/math"
)

var (
	// ErrCompile is returned when a shader stage fails to compile or link.
	ErrCompile = errors.New("shader: compile failed")
	// ErrNotFound is returned for an inactive or missing uniform or attribute.
	ErrNotFound = errors.New("shader: name not found")
)

// Program is a linked GL program.
type Program struct {
	ID uint32
}

// CompileProgram compiles vertex and fragment sources and links them.
func CompileProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("link: %s: %w", infoLog(log), ErrCompile)
	}

	return &Program{ID: program}, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s: %w", name, infoLog(log), ErrCompile)
	}

	return shader, nil
}

// infoLog trims the NUL padding and trailing whitespace of a GL info log.
func infoLog(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// Uniform looks up a uniform by name.
func (p *Program) Uniform(name string) (Uniform, error) {
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return Uniform{}, fmt.Errorf("uniform %q: %w", name, ErrNotFound)
	}
	return Uniform{Location: loc}, nil
}

// Attribute looks up a vertex attribute by name.
func (p *Program) Attribute(name string) (Attribute, error) {
	loc := gl.GetAttribLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return Attribute{}, fmt.Errorf("attribute %q: %w", name, ErrNotFound)
	}
	return Attribute{Location: uint32(loc)}, nil
}

// Uniform is a uniform location of the current program.
type Uniform struct {
	Location int32
}

// SetMatrix uploads a column-major matrix.
func (u Uniform) SetMatrix(m math.Mat4) {
	gl.UniformMatrix4fv(u.Location, 1, false, m.Ptr())
}

// SetVec4 uploads one vec4.
func (u Uniform) SetVec4(v math.Vec4) {
	gl.Uniform4f(u.Location, v[0], v[1], v[2], v[3])
}

// SetVec4Array uploads every slot of a as a vec4[] uniform.
func (u Uniform) SetVec4Array(a *math.Vec4Array) {
	if a.Len() == 0 {
		return
	}
	floats := a.Floats()
	gl.Uniform4fv(u.Location, int32(a.Len()), &floats[0])
}

// SetFloat uploads a float.
func (u Uniform) SetFloat(f float32) {
	gl.Uniform1f(u.Location, f)
}

// SetBool uploads a bool as an int.
func (u Uniform) SetBool(b bool) {
	var v int32
	if b {
		v = 1
	}
	gl.Uniform1i(u.Location, v)
}

// Attribute is a vertex attribute location.
type Attribute struct {
	Location uint32
}

// PointTo binds the attribute to the current ARRAY_BUFFER with tightly packed
// float components.
func (a Attribute) PointTo(components int) {
	gl.EnableVertexAttribArray(a.Location)
	gl.VertexAttribPointerWithOffset(a.Location, int32(components), gl.FLOAT, false, 0, 0)
}

package main

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/goxjs/gl"
	"github.com/goxjs/gl/glutil"
	"github.com/shurcooL/triangle/spin"
	"golang.org/x/mobile/exp/f32"
)

const (
	vertexSource = `//#version 120 // OpenGL 2.1.
//#version 100 // WebGL.

attribute vec2 aVertexPosition;

void main() {
	gl_Position = vec4(aVertexPosition, 0.0, 1.0);
}
`
	fragmentSource = `//#version 120 // OpenGL 2.1.
//#version 100 // WebGL.

#ifdef GL_ES
	precision lowp float;
#endif

void main() {
	gl_FragColor = vec4(1.0, 0.0, 0.0, 1.0);
}
`
)

// renderer draws a single solid triangle. The program and vertex buffer
// are created once; only the buffer contents change between frames.
type renderer struct {
	program  gl.Program
	position gl.Attrib
	vbo      gl.Buffer
}

func newRenderer() (*renderer, error) {
	program, err := glutil.CreateProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}

	gl.ValidateProgram(program)
	if gl.GetProgrami(program, gl.VALIDATE_STATUS) != gl.TRUE {
		infoLog := gl.GetProgramInfoLog(program)
		gl.DeleteProgram(program)
		return nil, errors.New("VALIDATE_STATUS: " + infoLog)
	}

	gl.UseProgram(program)

	r := &renderer{
		program:  program,
		position: gl.GetAttribLocation(program, "aVertexPosition"),
		vbo:      gl.CreateBuffer(),
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(r.position)
	gl.VertexAttribPointer(r.position, 2, gl.FLOAT, false, 0, 0)

	gl.ClearColor(0, 1, 0, 1)

	if glError := gl.GetError(); glError != 0 {
		r.Release()
		return nil, fmt.Errorf("gl.GetError: %v", glError)
	}

	return r, nil
}

// Draw clears the frame and draws t.
func (r *renderer) Draw(t spin.Triangle) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, vertexData(t), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, len(t))
}

// Release deletes the vertex buffer and the program.
func (r *renderer) Release() {
	gl.DeleteBuffer(r.vbo)
	gl.DeleteProgram(r.program)
}

// vertexData encodes t as tightly packed little-endian float32 pairs,
// the layout aVertexPosition expects.
func vertexData(t spin.Triangle) []byte {
	vertices := make([]float32, 0, 2*len(t))
	for _, v := range t {
		vertices = append(vertices, float32(v.X()), float32(v.Y()))
	}
	return f32.Bytes(binary.LittleEndian, vertices...)
}

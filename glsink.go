package main

import (
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/cellux/bezier/bezier"
)

const (
	primVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec4 a_color;
    uniform mat4 u_projection;
    varying vec4 v_color;
    void main(void) {
      gl_Position = u_projection * vec4(a_position, 0.0, 1.0);
      v_color = a_color;
    }` + "\x00"
	primFragmentShader = `
    precision highp float;
    varying vec4 v_color;
    void main(void) {
      gl_FragColor = v_color;
    }` + "\x00"
)

// primRun is a stretch of vertices drawn with one primitive mode.
type primRun struct {
	mode  uint32
	first int32
	count int32
}

// GLSink is a bezier.DrawSink which batches lines and rectangles of one
// frame and draws them in submission order on Flush.
type GLSink struct {
	program   *Program
	vertices  []PrimVertex
	runs      []primRun
	lineWidth float32
}

func CreateGLSink(lineWidth float32) (*GLSink, error) {
	program, err := CreateProgram(primVertexShader, primFragmentShader,
		[]string{"a_position", "a_color"},
		[]string{"u_projection"})
	if err != nil {
		return nil, err
	}
	return &GLSink{
		program:   program,
		vertices:  make([]PrimVertex, 0, 6*4096),
		lineWidth: lineWidth,
	}, nil
}

func (s *GLSink) push(mode uint32, c bezier.Color, pts ...bezier.Point) {
	if n := len(s.runs); n == 0 || s.runs[n-1].mode != mode {
		s.runs = append(s.runs, primRun{mode: mode, first: int32(len(s.vertices))})
	}
	col := colorVec(c)
	for _, pt := range pts {
		s.vertices = append(s.vertices, PrimVertex{
			position: [2]float32{float32(pt.X), float32(pt.Y)},
			color:    [4]float32{col[0], col[1], col[2], col[3]},
		})
	}
	s.runs[len(s.runs)-1].count += int32(len(pts))
}

func (s *GLSink) DrawLine(p0, p1 bezier.Point, c bezier.Color) {
	s.push(gl.LINES, c, p0, p1)
}

func (s *GLSink) FillRect(origin, size bezier.Point, c bezier.Color) {
	p0 := origin
	p1 := bezier.Pt(origin.X+size.X, origin.Y)
	p2 := origin.Add(size)
	p3 := bezier.Pt(origin.X, origin.Y+size.Y)
	s.push(gl.TRIANGLES, c, p0, p3, p2, p2, p1, p0)
}

// Clear drops the batched primitives without drawing them.
func (s *GLSink) Clear() {
	s.vertices = s.vertices[:0]
	s.runs = s.runs[:0]
}

// Flush draws everything batched since the last Flush into a framebuffer
// of size fb and clears the batch.
func (s *GLSink) Flush(fb Size) error {
	defer s.Clear()
	if len(s.vertices) == 0 {
		return nil
	}
	p := s.program
	p.Use()
	p.SetMat4("u_projection", pixelProjection(fb))
	aPosition := p.Attrib("a_position")
	aColor := p.Attrib("a_color")
	stride := int32(unsafe.Sizeof(PrimVertex{}))
	gl.EnableVertexAttribArray(aPosition)
	gl.VertexAttribPointer(aPosition, 2, gl.FLOAT, false, stride,
		gl.Ptr(&s.vertices[0].position[0]))
	gl.EnableVertexAttribArray(aColor)
	gl.VertexAttribPointer(aColor, 4, gl.FLOAT, false, stride,
		gl.Ptr(&s.vertices[0].color[0]))
	gl.LineWidth(s.lineWidth)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	for _, run := range s.runs {
		gl.DrawArrays(run.mode, run.first, run.count)
	}
	gl.Disable(gl.BLEND)
	gl.DisableVertexAttribArray(aPosition)
	gl.DisableVertexAttribArray(aColor)
	return nil
}

func (s *GLSink) Close() error {
	return s.program.Close()
}

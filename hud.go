package main

import (
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/cellux/bezier/bezier"
)

const (
	glyphVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    uniform mat4 u_projection;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = u_projection * vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
    }` + "\x00"
	glyphFragmentShader = `
    precision highp float;
    uniform sampler2D u_tex;
    uniform vec4 u_color;
    varying vec2 v_texcoord;
    void main(void) {
      gl_FragColor = vec4(u_color.rgb, u_color.a * texture2D(u_tex, v_texcoord).a);
    }` + "\x00"
)

type textRun struct {
	first int32
	count int32
	color bezier.Color
}

// TextLayer draws single-line strings from a glyph atlas at pixel
// positions on top of the scene.
type TextLayer struct {
	atlas    *GlyphAtlas
	tex      Texture
	program  *Program
	vertices []GlyphVertex
	runs     []textRun
}

func CreateTextLayer(atlas *GlyphAtlas) (*TextLayer, error) {
	program, err := CreateProgram(glyphVertexShader, glyphFragmentShader,
		[]string{"a_position", "a_texcoord"},
		[]string{"u_projection", "u_tex", "u_color"})
	if err != nil {
		return nil, err
	}
	tex, err := CreateTexture(atlas.Image)
	if err != nil {
		program.Close()
		return nil, err
	}
	return &TextLayer{
		atlas:    atlas,
		tex:      tex,
		program:  program,
		vertices: make([]GlyphVertex, 0, 6*256),
	}, nil
}

// LineHeight returns the height of one text line in pixels.
func (tl *TextLayer) LineHeight() int {
	return tl.atlas.CellSize.Y
}

func (tl *TextLayer) drawRune(x, y int, r rune) {
	cols, rows := tl.atlas.Cols, tl.atlas.Rows
	if int(r) >= cols*rows {
		r = '?'
	}
	col := int(r) % cols
	row := int(r) / cols
	cell := tl.atlas.CellSize
	x0 := float32(x)
	x1 := float32(x + cell.X)
	y0 := float32(y)
	y1 := float32(y + cell.Y)
	s0 := float32(col) / float32(cols)
	s1 := float32(col+1) / float32(cols)
	t0 := float32(row) / float32(rows)
	t1 := float32(row+1) / float32(rows)
	tl.vertices = append(tl.vertices,
		GlyphVertex{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}},
		GlyphVertex{position: [2]float32{x0, y1}, texcoord: [2]float32{s0, t1}},
		GlyphVertex{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}},
		GlyphVertex{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}},
		GlyphVertex{position: [2]float32{x1, y0}, texcoord: [2]float32{s1, t0}},
		GlyphVertex{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}},
	)
}

// DrawString queues s with its top left corner at pixel (x, y).
func (tl *TextLayer) DrawString(x, y int, s string, c bezier.Color) {
	first := int32(len(tl.vertices))
	for _, r := range s {
		tl.drawRune(x, y, r)
		x += tl.atlas.CellSize.X
	}
	tl.runs = append(tl.runs, textRun{first: first, count: int32(len(tl.vertices)) - first, color: c})
}

// Render draws the queued strings and clears the queue.
func (tl *TextLayer) Render(fb Size) error {
	defer func() {
		tl.vertices = tl.vertices[:0]
		tl.runs = tl.runs[:0]
	}()
	if len(tl.vertices) == 0 {
		return nil
	}
	p := tl.program
	p.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	tl.tex.Bind()
	p.SetInt("u_tex", 0)
	p.SetMat4("u_projection", pixelProjection(fb))
	aPosition := p.Attrib("a_position")
	aTexcoord := p.Attrib("a_texcoord")
	stride := int32(unsafe.Sizeof(GlyphVertex{}))
	gl.EnableVertexAttribArray(aPosition)
	gl.VertexAttribPointer(aPosition, 2, gl.FLOAT, false, stride,
		gl.Ptr(&tl.vertices[0].position[0]))
	gl.EnableVertexAttribArray(aTexcoord)
	gl.VertexAttribPointer(aTexcoord, 2, gl.FLOAT, false, stride,
		gl.Ptr(&tl.vertices[0].texcoord[0]))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	for _, run := range tl.runs {
		p.SetVec4("u_color", colorVec(run.color))
		gl.DrawArrays(gl.TRIANGLES, run.first, run.count)
	}
	gl.Disable(gl.BLEND)
	gl.DisableVertexAttribArray(aPosition)
	gl.DisableVertexAttribArray(aTexcoord)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (tl *TextLayer) Close() error {
	tl.tex.Close()
	return tl.program.Close()
}

package main

import (
	"fmt"
	"image"

	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/cellux/bezier/bezier"
)

type Texture struct {
	tex  uint32
	size Size
}

func (t Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
}

func (t Texture) Size() Size {
	return t.size
}

// CreateTexture uploads img into a new clamped, linearly filtered texture.
// Only *image.Alpha and *image.RGBA are supported.
func CreateTexture(img image.Image) (Texture, error) {
	var format uint32
	var pix []uint8
	switch img := img.(type) {
	case *image.Alpha:
		format, pix = gl.ALPHA, img.Pix
	case *image.RGBA:
		format, pix = gl.RGBA, img.Pix
	default:
		return Texture{}, fmt.Errorf("unsupported image format %T", img)
	}
	size := img.Bounds().Size()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format),
		int32(size.X), int32(size.Y),
		0, format, gl.UNSIGNED_BYTE,
		gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return Texture{tex: tex, size: size}, nil
}

func (t *Texture) Close() error {
	if t.tex != 0 {
		gl.DeleteTextures(1, &t.tex)
		t.tex = 0
	}
	return nil
}

func shaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetShaderInfoLog(shader, length, &logLen, &log[0])
	return string(log[:logLen])
}

func programInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetProgramInfoLog(program, length, &logLen, &log[0])
	return string(log[:logLen])
}

// compileShader compiles a NUL-terminated GLSL source.
func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	data := gl.Str(source)
	length := int32(len(source) - 1)
	gl.ShaderSource(shader, 1, &data, &length)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader compilation failed: %s", log)
	}
	return shader, nil
}

// Program is a linked shader program with its attribute and uniform
// locations looked up once by name.
type Program struct {
	program  uint32
	attribs  map[string]uint32
	uniforms map[string]int32
}

func CreateProgram(vertexShader, fragmentShader string, attribs, uniforms []string) (*Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(program)
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("program link failed: %s", log)
	}
	p := &Program{
		program:  program,
		attribs:  make(map[string]uint32),
		uniforms: make(map[string]int32),
	}
	for _, name := range attribs {
		loc := gl.GetAttribLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			p.Close()
			return nil, fmt.Errorf("attribute %s not found in program", name)
		}
		p.attribs[name] = uint32(loc)
	}
	for _, name := range uniforms {
		p.uniforms[name] = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}
	return p, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.program)
}

func (p *Program) Attrib(name string) uint32 {
	return p.attribs[name]
}

func (p *Program) SetMat4(name string, m mgl.Mat4) {
	gl.UniformMatrix4fv(p.uniforms[name], 1, false, &m[0])
}

func (p *Program) SetVec4(name string, v mgl.Vec4) {
	gl.Uniform4f(p.uniforms[name], v[0], v[1], v[2], v[3])
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.uniforms[name], v)
}

func (p *Program) Close() error {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
	return nil
}

// pixelProjection maps framebuffer pixels, origin top left and y down, to
// clip space.
func pixelProjection(fb Size) mgl.Mat4 {
	return mgl.Ortho2D(0, float32(fb.X), float32(fb.Y), 0)
}

// colorVec converts a 0xRRGGBBAA color into normalized channels.
func colorVec(c bezier.Color) mgl.Vec4 {
	r, g, b, a := c.RGBA()
	return mgl.Vec4{
		float32(r) / 255.0,
		float32(g) / 255.0,
		float32(b) / 255.0,
		float32(a) / 255.0,
	}
}

package glbackend

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Presenter shows a CPU-rendered frame by uploading it to a texture and drawing
// one fullscreen quad. The GL context must be current on the calling thread.
type Presenter struct {
	program  uint32
	vao      uint32
	vbo      uint32
	tex      uint32
	texW     int
	texH     int
	uniFrame int32
}

func NewPresenter() (*Presenter, error) {
	p := &Presenter{}
	if err := p.Init(); err != nil {
		p.Shutdown()
		return nil, err
	}
	return p, nil
}

func (p *Presenter) Init() error {
	var err error
	p.program, err = linkFrameProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	p.uniFrame = gl.GetUniformLocation(p.program, gl.Str("uFrame\x00"))

	// Triangle strip covering clip space: pos (x,y), uv (u,v). v=0 is the top row.
	verts := []float32{
		//  X,   Y,   U,   V
		-1, 1, 0, 0,
		-1, -1, 0, 1,
		1, 1, 1, 0,
		1, -1, 1, 1,
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	const stride = 4 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenTextures(1, &p.tex)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	return glError("presenter init")
}

// Present draws frame over the whole default framebuffer. The caller swaps buffers.
func (p *Presenter) Present(frame *image.RGBA) error {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	if frame.Stride != w*4 {
		return fmt.Errorf("present: frame stride %d, want %d", frame.Stride, w*4)
	}

	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if w != p.texW || h != p.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix))
		p.texW, p.texH = w, h
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix))
	}

	gl.UseProgram(p.program)
	gl.Uniform1i(p.uniFrame, 0)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return glError("present")
}

func (p *Presenter) Shutdown() {
	if p.tex != 0 {
		gl.DeleteTextures(1, &p.tex)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
	}
	*p = Presenter{}
}

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: gl error 0x%04X", op, code)
	}
	return nil
}

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aUV;
out vec2 vUV;
void main() {
    vUV = aUV;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec2 vUV;
uniform sampler2D uFrame;
out vec4 FragColor;
void main() {
    FragColor = texture(uFrame, vUV);
}
` + "\x00"

// compileStage compiles one shader stage; the error carries the driver's info log.
func compileStage(stage uint32, src string) (uint32, error) {
	sh := gl.CreateShader(stage)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok != gl.FALSE {
		return sh, nil
	}
	var n int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
	msg := infoLog(n, func(buf *uint8) { gl.GetShaderInfoLog(sh, n, nil, buf) })
	gl.DeleteShader(sh)
	return 0, fmt.Errorf("compile %s stage: %s", stageName(stage), msg)
}

// linkFrameProgram builds the presenter's program. Stage objects are always freed.
func linkFrameProgram(vsSrc, fsSrc string) (uint32, error) {
	var stages [2]uint32
	defer func() {
		for _, sh := range stages {
			if sh != 0 {
				gl.DeleteShader(sh)
			}
		}
	}()
	for i, st := range []struct {
		kind uint32
		src  string
	}{{gl.VERTEX_SHADER, vsSrc}, {gl.FRAGMENT_SHADER, fsSrc}} {
		sh, err := compileStage(st.kind, st.src)
		if err != nil {
			return 0, err
		}
		stages[i] = sh
	}

	prog := gl.CreateProgram()
	for _, sh := range stages {
		gl.AttachShader(prog, sh)
	}
	gl.LinkProgram(prog)

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok != gl.FALSE {
		return prog, nil
	}
	var n int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
	msg := infoLog(n, func(buf *uint8) { gl.GetProgramInfoLog(prog, n, nil, buf) })
	gl.DeleteProgram(prog)
	return 0, fmt.Errorf("link frame program: %s", msg)
}

func infoLog(n int32, read func(buf *uint8)) string {
	if n <= 0 {
		return "(no log)"
	}
	buf := make([]uint8, n)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func stageName(stage uint32) string {
	if stage == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

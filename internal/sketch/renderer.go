package sketch

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"spatialsketch/internal/space"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type sphereMesh struct {
	vao, vbo uint32
	count    int32
}

// Renderer draws wireframe spheres in 3D and text on top. It implements Scene.
type Renderer struct {
	lineProg uint32
	uMVP     int32
	uColor   int32
	spheres  map[SphereDetail]*sphereMesh

	viewProj mgl32.Mat4
	fbW, fbH int

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	lineProg, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		return nil, fmt.Errorf("line program: %w", err)
	}
	r := &Renderer{
		lineProg: lineProg,
		spheres:  make(map[SphereDetail]*sphereMesh),
	}
	gl.UseProgram(lineProg)
	r.uMVP = gl.GetUniformLocation(lineProg, gl.Str("uMVP\x00"))
	r.uColor = gl.GetUniformLocation(lineProg, gl.Str("uColor\x00"))
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, m := range r.spheres {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if r.textVBO != 0 {
		gl.DeleteBuffers(1, &r.textVBO)
	}
	if r.textVAO != 0 {
		gl.DeleteVertexArrays(1, &r.textVAO)
	}
	for _, id := range []uint32{r.lineProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the framebuffer and fixes the camera for this frame's draws.
func (r *Renderer) BeginFrame(cam *Camera, fbW, fbH int, world float64) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.fbW, r.fbH = fbW, fbH
	r.viewProj = cam.Projection(fbW, fbH, world).Mul4(cam.View())
}

// mesh returns the cached wireframe for detail, uploading it on first use.
func (r *Renderer) mesh(detail SphereDetail) *sphereMesh {
	if m, ok := r.spheres[detail]; ok {
		return m
	}
	verts := sphereLines(detail)
	m := &sphereMesh{count: int32(len(verts) / 3)}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))
	gl.BindVertexArray(0)
	r.spheres[detail] = m
	return m
}

// DrawSphere strokes a wireframe sphere centred at a world-space position.
func (r *Renderer) DrawSphere(center space.Coordinate, radius float64, detail SphereDetail, col RGB) {
	m := r.mesh(detail)
	model := mgl32.Translate3D(float32(center.X), float32(center.Y), float32(center.Z)).
		Mul4(mgl32.Scale3D(float32(radius), float32(radius), float32(radius)))
	mvp := r.viewProj.Mul4(model)

	cr, cg, cb := col.Floats()
	gl.UseProgram(r.lineProg)
	gl.UniformMatrix4fv(r.uMVP, 1, false, &mvp[0])
	gl.Uniform4f(r.uColor, cr, cg, cb, 1)
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.LINES, 0, m.count)
	gl.BindVertexArray(0)
}

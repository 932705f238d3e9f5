// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psykit

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/herrlich10/psykit/gpu"
)

// mockGPU records resource creation and framebuffer binds in place of a
// real GL context.
type mockGPU struct {
	progs    map[string]*mockProgram
	fbs      []*mockFramebuffer
	fbBinds  int              // eye / offscreen framebuffer Activate calls
	toWindow int              // RenderToWindow calls
	bound    *mockFramebuffer // nil when the default framebuffer is bound
}

func installMockGPU(t *testing.T) (*mockGPU, *mockDrawing) {
	mg := &mockGPU{progs: map[string]*mockProgram{}}
	md := &mockDrawing{gp: mg}
	oldGPU, oldDraw := gpu.TheGPU, gpu.Draw
	gpu.TheGPU = mg
	gpu.Draw = md
	t.Cleanup(func() {
		gpu.TheGPU = oldGPU
		gpu.Draw = oldDraw
	})
	return mg, md
}

func (mg *mockGPU) Init() error { return nil }

func (mg *mockGPU) NewProgram(name string) gpu.Program {
	pr := &mockProgram{name: name, unis: map[string]*mockUniform{}}
	mg.progs[name] = pr
	return pr
}

func (mg *mockGPU) NewTexture2D(name string) gpu.Texture2D {
	return &mockTexture{name: name}
}

func (mg *mockGPU) NewFramebuffer(name string, size image.Point) gpu.Framebuffer {
	fb := &mockFramebuffer{gp: mg, name: name, size: size}
	mg.fbs = append(mg.fbs, fb)
	return fb
}

func (mg *mockGPU) NewBufferMgr() gpu.BufferMgr { return &mockBufferMgr{} }

func (mg *mockGPU) RenderToWindow() { mg.toWindow++; mg.bound = nil }

func (mg *mockGPU) ErrCheck(ctxt string) error { return nil }

type mockProgram struct {
	name     string
	unis     map[string]*mockUniform
	ins      map[string]*mockVector
	compiled bool
	active   int
}

func (pr *mockProgram) Name() string        { return pr.name }
func (pr *mockProgram) SetName(name string) { pr.name = name }

func (pr *mockProgram) AddShader(typ gpu.ShaderTypes, name string, src string) (gpu.Shader, error) {
	return nil, nil
}
func (pr *mockProgram) ShaderByName(name string) gpu.Shader         { return nil }
func (pr *mockProgram) ShaderByType(typ gpu.ShaderTypes) gpu.Shader { return nil }
func (pr *mockProgram) SetFragDataVar(name string)                  {}

func (pr *mockProgram) AddUniform(name string, typ gpu.UniType, ary bool, ln int) gpu.Uniform {
	u := &mockUniform{name: name, typ: typ}
	pr.unis[name] = u
	return u
}

func (pr *mockProgram) UniformByName(name string) gpu.Uniform {
	if u, ok := pr.unis[name]; ok {
		return u
	}
	return nil
}

func (pr *mockProgram) AddInput(name string, typ gpu.VectorType, role gpu.VectorRoles) gpu.Vector {
	if pr.ins == nil {
		pr.ins = map[string]*mockVector{}
	}
	v := &mockVector{name: name, typ: typ, role: role}
	pr.ins[name] = v
	return v
}

func (pr *mockProgram) InputByName(name string) gpu.Vector { return pr.ins[name] }

func (pr *mockProgram) Compile(showSrc bool) error { pr.compiled = true; return nil }
func (pr *mockProgram) Handle() uint32             { return 1 }
func (pr *mockProgram) Activate()                  { pr.active++ }
func (pr *mockProgram) Delete()                    {}

type mockUniform struct {
	name string
	typ  gpu.UniType
	vals []any // every SetValue in order
}

func (un *mockUniform) Name() string      { return un.name }
func (un *mockUniform) Type() gpu.UniType { return un.typ }
func (un *mockUniform) Array() bool       { return false }
func (un *mockUniform) Len() int          { return 0 }
func (un *mockUniform) Handle() int32     { return 0 }
func (un *mockUniform) LenDefine() string { return "" }
func (un *mockUniform) SetValue(val any) error {
	un.vals = append(un.vals, val)
	return nil
}

func (un *mockUniform) last() any {
	if len(un.vals) == 0 {
		return nil
	}
	return un.vals[len(un.vals)-1]
}

type mockVector struct {
	name string
	typ  gpu.VectorType
	role gpu.VectorRoles
}

func (ve *mockVector) Name() string          { return ve.name }
func (ve *mockVector) Type() gpu.VectorType  { return ve.typ }
func (ve *mockVector) Role() gpu.VectorRoles { return ve.role }
func (ve *mockVector) Handle() uint32        { return 0 }

type mockTexture struct {
	name    string
	size    image.Point
	actives int
}

func (tx *mockTexture) Name() string                   { return tx.name }
func (tx *mockTexture) SetName(name string)            { tx.name = name }
func (tx *mockTexture) Size() image.Point              { return tx.size }
func (tx *mockTexture) SetSize(size image.Point)       { tx.size = size }
func (tx *mockTexture) SetImage(img *image.RGBA) error { return nil }
func (tx *mockTexture) Activate(texNo int)             { tx.actives++ }
func (tx *mockTexture) IsActive() bool                 { return tx.actives > 0 }
func (tx *mockTexture) Handle() uint32                 { return 1 }
func (tx *mockTexture) Delete()                        {}

type mockFramebuffer struct {
	gp      *mockGPU
	name    string
	size    image.Point
	tex     mockTexture
	binds   int
	deleted bool
}

func (fb *mockFramebuffer) Name() string             { return fb.name }
func (fb *mockFramebuffer) SetName(name string)      { fb.name = name }
func (fb *mockFramebuffer) Size() image.Point        { return fb.size }
func (fb *mockFramebuffer) SetSize(size image.Point) { fb.size = size }
func (fb *mockFramebuffer) Texture() gpu.Texture2D   { return &fb.tex }
func (fb *mockFramebuffer) Handle() uint32           { return 1 }
func (fb *mockFramebuffer) Delete()                  { fb.deleted = true }

func (fb *mockFramebuffer) Activate() error {
	fb.binds++
	fb.gp.fbBinds++
	fb.gp.bound = fb
	return nil
}

type mockBufferMgr struct {
	actives int
}

func (bm *mockBufferMgr) AddVectorsBuffer(usg gpu.VectorUsages) gpu.VectorsBuffer {
	return &mockVectorsBuffer{}
}
func (bm *mockBufferMgr) VectorsBuffer() gpu.VectorsBuffer { return nil }
func (bm *mockBufferMgr) AddIndexesBuffer(usg gpu.VectorUsages) gpu.IndexesBuffer {
	return &mockIndexesBuffer{}
}
func (bm *mockBufferMgr) IndexesBuffer() gpu.IndexesBuffer { return nil }
func (bm *mockBufferMgr) Activate()                        { bm.actives++ }
func (bm *mockBufferMgr) Handle() uint32                   { return 1 }
func (bm *mockBufferMgr) TransferAll()                     {}
func (bm *mockBufferMgr) Delete()                          {}

type mockVectorsBuffer struct{}

func (vb *mockVectorsBuffer) Usage() gpu.VectorUsages                    { return gpu.StaticDraw }
func (vb *mockVectorsBuffer) AddVectors(vec gpu.Vector, interleave bool) {}
func (vb *mockVectorsBuffer) SetData(data []float32)                     {}
func (vb *mockVectorsBuffer) Len() int                                   { return 4 }
func (vb *mockVectorsBuffer) Activate()                                  {}
func (vb *mockVectorsBuffer) Handle() uint32                             { return 1 }
func (vb *mockVectorsBuffer) Transfer()                                  {}
func (vb *mockVectorsBuffer) Delete()                                    {}

type mockIndexesBuffer struct{}

func (ib *mockIndexesBuffer) Usage() gpu.VectorUsages { return gpu.StaticDraw }
func (ib *mockIndexesBuffer) Set(idxs []uint32)       {}
func (ib *mockIndexesBuffer) Len() int                { return 6 }
func (ib *mockIndexesBuffer) Activate()               {}
func (ib *mockIndexesBuffer) Handle() uint32          { return 1 }
func (ib *mockIndexesBuffer) Transfer()               {}
func (ib *mockIndexesBuffer) Delete()                 {}

// mockDrawing records viewports, draw calls and the framebuffer each
// clear lands on.
type mockDrawing struct {
	gp        *mockGPU
	viewports []image.Rectangle
	draws     []image.Rectangle // viewport at the time of each draw call
	clears    []string          // bound framebuffer name per Clear; "window" for the default
}

func (dr *mockDrawing) Clear(color, depth bool) {
	name := "window"
	if dr.gp != nil && dr.gp.bound != nil {
		name = dr.gp.bound.name
	}
	dr.clears = append(dr.clears, name)
}
func (dr *mockDrawing) ClearColor(r, g, b float32)     {}
func (dr *mockDrawing) DepthTest(on bool)              {}
func (dr *mockDrawing) StencilTest(on bool)            {}
func (dr *mockDrawing) CullFace(front, back, ccw bool) {}
func (dr *mockDrawing) Op(op gpu.TextureOps)           {}
func (dr *mockDrawing) Flush()                         {}

func (dr *mockDrawing) Viewport(rect image.Rectangle) {
	dr.viewports = append(dr.viewports, rect)
}

func (dr *mockDrawing) Triangles(start, count int) {}

func (dr *mockDrawing) TrianglesIndexed(start, count int) {
	var vp image.Rectangle
	if len(dr.viewports) > 0 {
		vp = dr.viewports[len(dr.viewports)-1]
	}
	dr.draws = append(dr.draws, vp)
}

// mockWindow is a plain host window; mockStereoWindow and
// mockDualWindow add the capability interfaces.
type mockWindow struct {
	size      image.Point
	bg        math32.Vector3
	depth     bool
	stencil   bool
	wait      bool
	unitScale float32 // pixels per unit; 0 = pixel units

	swaps     int
	autoDraws int
}

func newMockWindow(w, h int) *mockWindow {
	return &mockWindow{size: image.Pt(w, h), bg: math32.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, wait: true}
}

func (w *mockWindow) Size() image.Point               { return w.size }
func (w *mockWindow) BackgroundColor() math32.Vector3 { return w.bg }
func (w *mockWindow) DepthTest() bool                 { return w.depth }
func (w *mockWindow) StencilTest() bool               { return w.stencil }
func (w *mockWindow) WaitBlanking() bool              { return w.wait }
func (w *mockWindow) DrawAuto()                       { w.autoDraws++ }

func (w *mockWindow) ToPixels(v math32.Vector2) math32.Vector2 {
	if w.unitScale == 0 {
		return v
	}
	return v.MulScalar(w.unitScale)
}

func (w *mockWindow) FromPixels(v math32.Vector2) math32.Vector2 {
	if w.unitScale == 0 {
		return v
	}
	return v.DivScalar(w.unitScale)
}

func (w *mockWindow) SwapBuffers(clear bool) time.Time {
	w.swaps++
	if w.wait {
		return time.Now()
	}
	return time.Time{}
}

type mockStereoWindow struct {
	mockWindow
	drawBufs []Eye
}

func (w *mockStereoWindow) SetDrawBuffer(eye Eye) {
	w.drawBufs = append(w.drawBufs, eye)
}

type mockDualWindow struct {
	mockWindow
	size2       image.Point
	secCurrent  int
	secSwaps    int
	primCurrent int
}

func (w *mockDualWindow) SecondarySize() image.Point { return w.size2 }
func (w *mockDualWindow) MakeSecondaryCurrent()      { w.secCurrent++ }
func (w *mockDualWindow) SwapSecondary()             { w.secSwaps++ }
func (w *mockDualWindow) MakePrimaryCurrent()        { w.primCurrent++ }

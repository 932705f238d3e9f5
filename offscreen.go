// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psykit

import (
	"image"

	"cogentcore.org/core/math32"
	"github.com/herrlich10/psykit/gpu"
	"golang.org/x/image/math/f64"
)

// Offscreen is a reusable offscreen render target: draw into it once,
// then draw its texture onto other targets any number of times (e.g.
// a static background rendered once and re-drawn per eye per frame).
// Created from a Compositor, whose programs and screen quad it shares.
type Offscreen struct {
	cp *Compositor
	fb gpu.Framebuffer
}

// NewOffscreen returns a new offscreen surface of the given pixel size.
// The window's GL context must be current.
func (cp *Compositor) NewOffscreen(name string, size image.Point) (*Offscreen, error) {
	fb := gpu.TheGPU.NewFramebuffer(name, size)
	if err := fb.Activate(); err != nil {
		return nil, err
	}
	bg := cp.win.BackgroundColor()
	gpu.Draw.ClearColor(bg.X, bg.Y, bg.Z)
	gpu.Draw.Clear(true, true)
	gpu.TheGPU.RenderToWindow()
	return &Offscreen{cp: cp, fb: fb}, nil
}

// Size returns the pixel size of the surface.
func (os *Offscreen) Size() image.Point {
	return os.fb.Size()
}

// Texture returns the surface's backing color texture.
func (os *Offscreen) Texture() gpu.Texture2D {
	return os.fb.Texture()
}

// Bind redirects subsequent drawing into this surface, clearing it to
// the window's background color if clear is true.  Binding a different
// surface implicitly unbinds this one.
func (os *Offscreen) Bind(clear bool) {
	os.fb.Activate()
	gpu.Draw.Viewport(image.Rectangle{Max: os.fb.Size()})
	if clear {
		bg := os.cp.win.BackgroundColor()
		gpu.Draw.ClearColor(bg.X, bg.Y, bg.Z)
		gpu.Draw.Clear(true, true)
	}
	gpu.Draw.DepthTest(os.cp.win.DepthTest())
	gpu.Draw.StencilTest(os.cp.win.StencilTest())
}

// Unbind restores the compositor's current buffer selection as the
// render target.
func (os *Offscreen) Unbind() {
	os.cp.SetBuffer(os.cp.cur, false)
}

// Draw composites the surface's texture onto the currently-bound render
// target at full coverage.  Depth and stencil testing are disabled for
// the draw and restored to the window's configured flags afterwards.
func (os *Offscreen) Draw() {
	cp := os.cp
	cp.beginComposite(cp.quad)
	pr := cp.progs[progTexture]
	pr.Activate()
	os.fb.Texture().Activate(0)
	pr.UniformByName("tex").SetValue(0)
	gpu.Draw.TrianglesIndexed(0, 6)
	cp.endComposite()
}

// DrawTexture draws the src sub-rectangle of the surface's texture into
// the dst rectangle of the currently-bound render target (both in
// pixels; target coordinates have the origin at the bottom-left), with
// counter-clockwise rotation in degrees about the destination center
// and the given opacity.  targetSize is the pixel size of the bound
// target.
func (os *Offscreen) DrawTexture(src, dst image.Rectangle, rotation, alpha float32, targetSize image.Point) {
	cp := os.cp
	cp.beginComposite(cp.quad)
	pr := cp.progs[progTransform]
	pr.Activate()
	os.fb.Texture().Activate(0)
	pr.UniformByName("tex").SetValue(0)
	pr.UniformByName("alpha").SetValue(alpha)
	pr.UniformByName("mvp").SetValue(quadTransform(dst, rotation, targetSize))
	sz := os.fb.Size()
	pr.UniformByName("srcRect").SetValue([4]float32{
		float32(src.Min.X) / float32(sz.X),
		float32(src.Min.Y) / float32(sz.Y),
		float32(src.Dx()) / float32(sz.X),
		float32(src.Dy()) / float32(sz.Y),
	})
	if alpha < 1 {
		gpu.Draw.Op(gpu.Over)
	}
	gpu.Draw.Viewport(image.Rectangle{Max: targetSize})
	gpu.Draw.TrianglesIndexed(0, 6)
	gpu.Draw.Op(gpu.Src)
	cp.endComposite()
}

// Delete releases the surface's GPU resources.  Must be called with a
// valid context, before the context is torn down.
func (os *Offscreen) Delete() {
	if os.fb != nil {
		os.fb.Delete()
		os.fb = nil
	}
}

// quadTransform returns the affine mapping the [-1,1] screen quad onto
// the dst rect of a target of the given size, in clip space, rotated
// counter-clockwise by rot degrees about the rect center.
func quadTransform(dst image.Rectangle, rot float32, target image.Point) f64.Aff3 {
	w := float64(target.X)
	h := float64(target.Y)
	cx := float64(dst.Min.X+dst.Max.X)/w - 1
	cy := float64(dst.Min.Y+dst.Max.Y)/h - 1
	sx := float64(dst.Dx()) / w
	sy := float64(dst.Dy()) / h
	th := float64(math32.DegToRad(rot))
	cos, sin := math32.Cos(float32(th)), math32.Sin(float32(th))
	return f64.Aff3{
		float64(cos) * sx, -float64(sin) * sy, cx,
		float64(sin) * sx, float64(cos) * sy, cy,
	}
}

// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/herrlich10/psykit/gpu"
)

// drawing provides commonly-used GPU drawing functions.
// All operate on the current context with current program, target, etc.
type drawing struct {
}

// Clear clears the given properties of the current render target
func (dr *drawing) Clear(color, depth bool) {
	bits := uint32(0)
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// ClearColor sets the color to draw when clear is called
func (dr *drawing) ClearColor(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
}

// DepthTest turns on / off depth testing
func (dr *drawing) DepthTest(on bool) {
	if on {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LEQUAL)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// StencilTest turns on / off stencil testing
func (dr *drawing) StencilTest(on bool) {
	if on {
		gl.Enable(gl.STENCIL_TEST)
	} else {
		gl.Disable(gl.STENCIL_TEST)
	}
}

// CullFace sets face culling, for front and / or back faces (back typical).
// If ccw = true then counter-clockwise is front face, else clockwise.
func (dr *drawing) CullFace(front, back, ccw bool) {
	if front || back {
		if ccw {
			gl.FrontFace(gl.CCW)
		} else {
			gl.FrontFace(gl.CW)
		}
		switch {
		case front && back:
			gl.CullFace(gl.FRONT_AND_BACK)
		case front:
			gl.CullFace(gl.FRONT)
		case back:
			gl.CullFace(gl.BACK)
		}
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

// Op sets the blend function -- Src disables blending, and Over uses
// alpha-blending
func (dr *drawing) Op(op gpu.TextureOps) {
	if op == gpu.Over {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

// Viewport sets the rendering viewport to given rectangle.
// It is important to update this for each render -- scaling from the
// viewport rect to the render target is automatic.
func (dr *drawing) Viewport(rect image.Rectangle) {
	gl.Viewport(int32(rect.Min.X), int32(rect.Min.Y), int32(rect.Dx()), int32(rect.Dy()))
}

// Triangles uses all existing settings to draw Triangles (non-indexed)
func (dr *drawing) Triangles(start, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(start), int32(count))
}

// TrianglesIndexed uses all existing settings to draw Triangles Indexed --
// the active BufferMgr's IndexesBuffer provides the indexes.
func (dr *drawing) TrianglesIndexed(start, count int) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, uintptr(start*4))
}

// Flush ensures that all rendering is pushed to the GPU
func (dr *drawing) Flush() {
	gl.Flush()
}

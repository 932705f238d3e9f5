// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"
)

// Draw is the current Drawing instance, set by the active driver.
var Draw Drawing

// Drawing provides commonly-used drawing functions that are not
// specific to a given resource (program, framebuffer).
type Drawing interface {
	// Clear clears the given properties of the current render target.
	Clear(color, depth bool)

	// ClearColor sets the color to draw when clear is called.
	ClearColor(r, g, b float32)

	// DepthTest turns on / off depth testing.
	DepthTest(on bool)

	// StencilTest turns on / off stencil testing.
	StencilTest(on bool)

	// CullFace sets face culling, for front and / or back faces.
	CullFace(front, back, ccw bool)

	// Op sets the blend function for how source and destination
	// colors are combined.
	Op(op TextureOps)

	// Viewport sets the rendering viewport to given rectangle.
	// It is important to update this for each render -- scaling from
	// this rect to the full window is automatic.
	Viewport(rect image.Rectangle)

	// Triangles uses all existing settings to draw Triangles
	// (non-indexed).
	Triangles(start, count int)

	// TrianglesIndexed uses all existing settings to draw Triangles
	// Indexed.
	TrianglesIndexed(start, count int)

	// Flush ensures that all rendering is pushed to the GPU.
	Flush()
}

// TextureOps are the blend operations for composing source over
// destination.
type TextureOps int32

const (
	// Src copies the source directly, ignoring destination.
	Src TextureOps = iota

	// Over blends source over destination with source alpha.
	Over

	// TextureOpsN is the number of blend operations.
	TextureOpsN
)

// BlankColor is the default background clear color.
var BlankColor = color.RGBA{A: 255}

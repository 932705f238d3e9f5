// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "image"

// Framebuffer is an offscreen render target with a color texture
// attachment and a combined depth / stencil renderbuffer.
type Framebuffer interface {
	// Name returns the unique name of the framebuffer.
	Name() string

	// SetName sets the name of the framebuffer.
	SetName(name string)

	// Size returns the size of the framebuffer.
	Size() image.Point

	// SetSize sets the size of the framebuffer.  If the size changes,
	// the GPU storage is reallocated on the next Activate.
	SetSize(size image.Point)

	// Texture returns the current contents of the framebuffer as a
	// Texture2D, suitable for binding as a sampler input to a
	// compositing program.
	Texture() Texture2D

	// Activate establishes the GPU resources and binds this
	// framebuffer as the current rendering target.  Subsequent draws
	// render into the color texture.  Errors if the framebuffer is
	// incomplete.
	Activate() error

	// Handle returns the GPU handle for the framebuffer -- only valid
	// after Activate.
	Handle() uint32

	// Delete deletes the GPU resources associated with this
	// framebuffer, including the color texture and renderbuffer.
	// Must be called with a valid context.
	Delete()
}

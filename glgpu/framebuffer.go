// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/herrlich10/psykit/gpu"
)

// framebuffer is an offscreen render target with a color texture
// attachment and a combined depth24 / stencil8 renderbuffer.
type framebuffer struct {
	init   bool
	handle uint32
	name   string
	size   image.Point
	drbo   uint32 // depth + stencil render buffer object
	cTex   gpu.Texture2D
}

// Name returns the name of the framebuffer
func (fb *framebuffer) Name() string {
	return fb.name
}

// SetName sets the name of the framebuffer
func (fb *framebuffer) SetName(name string) {
	fb.name = name
}

// Size returns the size of the framebuffer
func (fb *framebuffer) Size() image.Point {
	return fb.size
}

// SetSize sets the size of the framebuffer.
// If framebuffer has been Activate'd, then this resizes the GPU side as well.
func (fb *framebuffer) SetSize(size image.Point) {
	if fb.size == size {
		return
	}
	wasInit := fb.init
	if fb.init {
		fb.Delete()
	}
	fb.size = size
	if wasInit {
		fb.Activate()
	}
}

// Texture returns the color texture attachment as a Texture2D.
// Returns nil if not activated.
func (fb *framebuffer) Texture() gpu.Texture2D {
	if !fb.init {
		return nil
	}
	return fb.cTex
}

// Activate establishes the GPU resources and handle for the
// framebuffer and associated buffers (if not already done), then
// binds this as the current rendering target for subsequent
// drawing commands.  Does not set the viewport.
func (fb *framebuffer) Activate() error {
	if !fb.init {
		szx := int32(fb.size.X)
		szy := int32(fb.size.Y)
		gl.GenFramebuffers(1, &fb.handle)
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)

		fb.cTex = gpu.TheGPU.NewTexture2D(fmt.Sprintf("fb-%s-ctex", fb.name))
		fb.cTex.SetSize(fb.size)
		fb.cTex.Activate(0)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.cTex.Handle(), 0)

		gl.GenRenderbuffers(1, &fb.drbo)
		gl.BindRenderbuffer(gl.RENDERBUFFER, fb.drbo)
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, szx, szy)
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, fb.drbo)
		gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
		fb.init = true
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)
	}
	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		return errors.Log(fmt.Errorf("glgpu framebuffer %s: not complete", fb.name))
	}
	return nil
}

// Handle returns the GPU handle for the framebuffer -- only
// valid after Activate.
func (fb *framebuffer) Handle() uint32 {
	return fb.handle
}

// Delete deletes the GPU resources associated with this framebuffer,
// including the color texture and renderbuffer
// (requires Activate to re-establish a new one).
// Should be called prior to Go object being deleted
// (ref counting can be done externally).
func (fb *framebuffer) Delete() {
	if !fb.init {
		return
	}
	if fb.cTex != nil {
		fb.cTex.Delete()
		fb.cTex = nil
	}
	gl.DeleteRenderbuffers(1, &fb.drbo)
	gl.DeleteFramebuffers(1, &fb.handle)
	fb.handle = 0
	fb.init = false
}

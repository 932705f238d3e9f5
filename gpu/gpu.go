// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the interface layer for the GPU resources consumed
// by the stereo compositing pipeline: shader programs, 2D textures,
// offscreen framebuffers, vertex buffer management, and common drawing
// state.  The glgpu package provides the OpenGL implementation; tests use
// mock implementations.
package gpu

import "image"

// TheGPU is the current GPU instance, set by the active driver
// (e.g., glgpu.Init).
var TheGPU GPU

// GPU provides the main interface to the graphics hardware.
// All calls must be made with a valid graphics context current on the
// calling goroutine.
type GPU interface {
	// Init initializes the GPU driver for the current context.
	// Must be called once after the context is created and current.
	Init() error

	// NewProgram returns a new Program with given unique name,
	// for standalone shader programs.
	NewProgram(name string) Program

	// NewTexture2D returns a new Texture2D with given unique name.
	NewTexture2D(name string) Texture2D

	// NewFramebuffer returns a new Framebuffer with given unique name
	// and size -- a color texture and depth / stencil renderbuffer are
	// established on Activate.
	NewFramebuffer(name string, size image.Point) Framebuffer

	// NewBufferMgr returns a new BufferMgr for managing vertex and
	// index buffers for rendering.
	NewBufferMgr() BufferMgr

	// RenderToWindow binds the default (window back buffer) framebuffer
	// as the current rendering target.  Any Framebuffer bound via
	// Activate remains allocated but no longer receives draws.
	RenderToWindow()

	// ErrCheck checks for pending errors, logging and returning
	// non-nil if found, tagged with given context label.
	ErrCheck(ctxt string) error
}

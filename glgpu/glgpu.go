// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements the gpu interfaces on OpenGL 4.1 core,
// via github.com/go-gl/gl.  All calls must be made on the thread that
// holds the GL context (use glfw / runtime.LockOSThread as usual).
package glgpu

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/herrlich10/psykit/gpu"
)

// in general, use drawelements instead of arrays (i.e., use indexing)

var glTypes = map[gpu.Types]uint32{
	gpu.UndefType: gl.FLOAT,
	gpu.Bool:      gl.BOOL,
	gpu.Int:       gl.INT,
	gpu.UInt:      gl.UNSIGNED_INT,
	gpu.Float32:   gl.FLOAT,
	gpu.Float64:   gl.DOUBLE,
}

type gpuImpl struct {
	init bool
}

var theGPU = &gpuImpl{}

func init() {
	gpu.TheGPU = theGPU
	gpu.Draw = &drawing{}
}

// Init initializes the GL function pointers for the current context.
func (gp *gpuImpl) Init() error {
	if gp.init {
		return nil
	}
	if err := gl.Init(); err != nil {
		return errors.Log(fmt.Errorf("glgpu Init: %w", err))
	}
	gp.init = true
	return nil
}

// NewProgram returns a new Program with given name -- for standalone programs.
func (gp *gpuImpl) NewProgram(name string) gpu.Program {
	pr := &program{name: name}
	return pr
}

// NewTexture2D returns a new Texture2D with given name.
func (gp *gpuImpl) NewTexture2D(name string) gpu.Texture2D {
	tx := &textureImpl{name: name}
	return tx
}

// NewFramebuffer returns a new Framebuffer with given name and size.
func (gp *gpuImpl) NewFramebuffer(name string, size image.Point) gpu.Framebuffer {
	fb := &framebuffer{name: name, size: size}
	return fb
}

// NewBufferMgr returns a new BufferMgr for managing Vectors and Indexes for rendering.
func (gp *gpuImpl) NewBufferMgr() gpu.BufferMgr {
	bm := &bufferMgr{}
	return bm
}

// RenderToWindow binds the default framebuffer as the render target.
func (gp *gpuImpl) RenderToWindow() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ErrCheck checks any gl errors, returning the first as an error, logged
// with given context label.
func (gp *gpuImpl) ErrCheck(ctxt string) error {
	var err error
	for {
		glerr := gl.GetError()
		if glerr == gl.NO_ERROR {
			break
		}
		if err == nil {
			err = errors.Log(fmt.Errorf("glgpu %s: gl error: %x", ctxt, glerr))
		}
	}
	return err
}

func glErrProc(ctxt string) {
	theGPU.ErrCheck(ctxt)
}

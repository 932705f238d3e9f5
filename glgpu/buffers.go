// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/herrlich10/psykit/gpu"
)

var glUsages = map[gpu.VectorUsages]uint32{
	gpu.StreamDraw:  gl.STREAM_DRAW,
	gpu.StreamRead:  gl.STREAM_READ,
	gpu.StreamCopy:  gl.STREAM_COPY,
	gpu.StaticDraw:  gl.STATIC_DRAW,
	gpu.StaticRead:  gl.STATIC_READ,
	gpu.StaticCopy:  gl.STATIC_COPY,
	gpu.DynamicDraw: gl.DYNAMIC_DRAW,
	gpu.DynamicRead: gl.DYNAMIC_READ,
	gpu.DynamicCopy: gl.DYNAMIC_COPY,
}

// vectors is a program input variable
type vectors struct {
	name   string
	handle uint32
	typ    gpu.VectorType
	role   gpu.VectorRoles
}

// Name returns the name of the vector (as it appears in the shader source)
func (ve *vectors) Name() string {
	return ve.name
}

// Type returns the type of the vector
func (ve *vectors) Type() gpu.VectorType {
	return ve.typ
}

// Role returns the role of the vector
func (ve *vectors) Role() gpu.VectorRoles {
	return ve.role
}

// Handle returns the handle (location) of the vector within the program.
// Only valid after the program is compiled.
func (ve *vectors) Handle() uint32 {
	return ve.handle
}

// vectorsBuffer is a buffer of interleaved input vector data
type vectorsBuffer struct {
	init   bool
	handle uint32
	usage  gpu.VectorUsages
	vecs   []gpu.Vector
	data   []float32
	ln     int // number of vertices
	stride int // float32s per vertex
}

// Usage returns the usage of the buffer
func (vb *vectorsBuffer) Usage() gpu.VectorUsages {
	return vb.usage
}

// AddVectors adds a Vector to this buffer -- the order of adds determines
// the interleaved layout.
func (vb *vectorsBuffer) AddVectors(vec gpu.Vector, interleave bool) {
	vb.vecs = append(vb.vecs, vec)
	vb.stride += vec.Type().Vec
}

// SetData sets the raw interleaved data for the buffer
func (vb *vectorsBuffer) SetData(data []float32) {
	vb.data = data
	if vb.stride > 0 {
		vb.ln = len(data) / vb.stride
	}
}

// Len returns the number of vertices in the buffer
func (vb *vectorsBuffer) Len() int {
	return vb.ln
}

// Activate binds the buffer and configures the vertex attribute
// pointers for the added Vectors.
func (vb *vectorsBuffer) Activate() {
	if !vb.init {
		gl.GenBuffers(1, &vb.handle)
		vb.init = true
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.handle)
	stride := int32(vb.stride * 4)
	off := 0
	for _, vec := range vb.vecs {
		hnd := vec.Handle()
		gl.VertexAttribPointerWithOffset(hnd, int32(vec.Type().Vec), gl.FLOAT, false, stride, uintptr(off*4))
		gl.EnableVertexAttribArray(hnd)
		off += vec.Type().Vec
	}
}

// Handle returns the handle for the buffer -- only valid after Activate
func (vb *vectorsBuffer) Handle() uint32 {
	return vb.handle
}

// Transfer transfers the data to the GPU -- Activate must have been called
// with no other such buffers activated in between.  Automatically uses
// re-specification strategy per:
// https://www.khronos.org/opengl/wiki/Buffer_Object_Streaming
// so it is safe if buffer was still being used from prior GL rendering call.
func (vb *vectorsBuffer) Transfer() {
	gl.BufferData(gl.ARRAY_BUFFER, len(vb.data)*4, gl.Ptr(vb.data), glUsages[vb.usage])
}

// Delete deletes the GPU resources associated with this buffer
// (requires Activate to re-establish a new one).
// Should be called prior to Go object being deleted
// (ref counting can be done externally).
func (vb *vectorsBuffer) Delete() {
	if !vb.init {
		return
	}
	gl.DeleteBuffers(1, &vb.handle)
	vb.handle = 0
	vb.init = false
}

// indexesBuffer manages a buffer of indexes for index-based rendering
// (i.e., GL_ELEMENT_ARRAY_BUFFER for glDrawElements calls in OpenGL).
type indexesBuffer struct {
	init   bool
	handle uint32
	usage  gpu.VectorUsages
	idxs   []uint32
}

// Usage returns the usage of the buffer
func (ib *indexesBuffer) Usage() gpu.VectorUsages {
	return ib.usage
}

// Set sets the indexes by copying given data
func (ib *indexesBuffer) Set(idxs []uint32) {
	if len(idxs) == 0 {
		return
	}
	ib.idxs = make([]uint32, len(idxs))
	copy(ib.idxs, idxs)
}

// Len returns the number of indexes in buffer
func (ib *indexesBuffer) Len() int {
	return len(ib.idxs)
}

// Activate binds buffer as active one
func (ib *indexesBuffer) Activate() {
	if !ib.init {
		gl.GenBuffers(1, &ib.handle)
		ib.init = true
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.handle)
}

// Handle returns the unique handle for this buffer -- only valid after Activate()
func (ib *indexesBuffer) Handle() uint32 {
	return ib.handle
}

// Transfer transfers data to GPU -- Activate must have been called first.
func (ib *indexesBuffer) Transfer() {
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(ib.idxs)*4, gl.Ptr(ib.idxs), glUsages[ib.usage])
}

// Delete deletes the GPU resources associated with this buffer
// (requires Activate to re-establish a new one).
func (ib *indexesBuffer) Delete() {
	if !ib.init {
		return
	}
	gl.DeleteBuffers(1, &ib.handle)
	ib.handle = 0
	ib.init = false
}

// bufferMgr maintains the vertex array object that records the buffer
// bindings for a set of vectors and indexes buffers.
type bufferMgr struct {
	init bool
	vao  uint32
	vecs *vectorsBuffer
	idxs *indexesBuffer
}

// AddVectorsBuffer makes a new VectorsBuffer to contain Vectors values,
// with given usage
func (bm *bufferMgr) AddVectorsBuffer(usg gpu.VectorUsages) gpu.VectorsBuffer {
	bm.vecs = &vectorsBuffer{usage: usg}
	return bm.vecs
}

// VectorsBuffer returns the VectorsBuffer for this mgr
func (bm *bufferMgr) VectorsBuffer() gpu.VectorsBuffer {
	return bm.vecs
}

// AddIndexesBuffer makes a new IndexesBuffer to contain indexes, with given usage
func (bm *bufferMgr) AddIndexesBuffer(usg gpu.VectorUsages) gpu.IndexesBuffer {
	bm.idxs = &indexesBuffer{usage: usg}
	return bm.idxs
}

// IndexesBuffer returns the IndexesBuffer for this mgr
func (bm *bufferMgr) IndexesBuffer() gpu.IndexesBuffer {
	return bm.idxs
}

// Activate binds the buffers as the active set for subsequent draw calls,
// establishing the vertex array object and transferring data on first use.
func (bm *bufferMgr) Activate() {
	if !bm.init {
		gl.GenVertexArrays(1, &bm.vao)
		gl.BindVertexArray(bm.vao)
		if bm.vecs != nil {
			bm.vecs.Activate()
		}
		if bm.idxs != nil {
			bm.idxs.Activate()
		}
		bm.TransferAll()
		bm.init = true
	} else {
		gl.BindVertexArray(bm.vao)
	}
}

// Handle returns the handle for the vertex array object -- only valid
// after Activate
func (bm *bufferMgr) Handle() uint32 {
	return bm.vao
}

// TransferAll transfers all buffer data to the GPU -- Activate must have
// been called first
func (bm *bufferMgr) TransferAll() {
	if bm.vecs != nil {
		bm.vecs.Transfer()
	}
	if bm.idxs != nil {
		bm.idxs.Transfer()
	}
}

// Delete deletes the GPU resources associated with the buffers
// (requires Activate to re-establish new ones).
func (bm *bufferMgr) Delete() {
	if bm.vecs != nil {
		bm.vecs.Delete()
	}
	if bm.idxs != nil {
		bm.idxs.Delete()
	}
	if bm.init {
		gl.DeleteVertexArrays(1, &bm.vao)
		bm.vao = 0
		bm.init = false
	}
}

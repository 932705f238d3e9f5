// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// BufferMgr maintains the vertex and index buffers used for rendering,
// wrapped in a vertex array object that records the bindings.
type BufferMgr interface {
	// AddVectorsBuffer makes a new VectorsBuffer to contain Vectors
	// values, with given usage.
	AddVectorsBuffer(usg VectorUsages) VectorsBuffer

	// VectorsBuffer returns the VectorsBuffer for this mgr.
	VectorsBuffer() VectorsBuffer

	// AddIndexesBuffer makes a new IndexesBuffer to contain indexes,
	// with given usage.
	AddIndexesBuffer(usg VectorUsages) IndexesBuffer

	// IndexesBuffer returns the IndexesBuffer for this mgr.
	IndexesBuffer() IndexesBuffer

	// Activate binds the buffers as the active set for subsequent
	// draw calls, transferring any pending data to the GPU.
	Activate()

	// Handle returns the handle for the vertex array object -- only
	// valid after Activate.
	Handle() uint32

	// TransferAll transfers all buffer data to the GPU (vectors and
	// indexes).
	TransferAll()

	// Delete deletes the GPU resources associated with the buffers.
	// Must be called with a valid context.
	Delete()
}

// VectorsBuffer represents a buffer of interleaved Vectors values.
type VectorsBuffer interface {
	// Usage returns the usage of the buffer.
	Usage() VectorUsages

	// AddVectors adds a Vector input to the buffer -- the order of
	// adds determines the interleaved layout.
	AddVectors(vec Vector, interleave bool)

	// SetData sets the raw interleaved float32 data for the buffer.
	SetData(data []float32)

	// Len returns the number of vertices represented in the buffer.
	Len() int

	// Activate binds the buffer and configures the vertex attribute
	// pointers for the added Vectors.
	Activate()

	// Handle returns the handle for the buffer -- only valid after
	// Activate.
	Handle() uint32

	// Transfer transfers the data to the GPU -- Activate must have
	// been called first.
	Transfer()

	// Delete deletes the GPU resources associated with the buffer.
	Delete()
}

// IndexesBuffer represents a buffer of uint32 triangle indexes.
type IndexesBuffer interface {
	// Usage returns the usage of the buffer.
	Usage() VectorUsages

	// Set sets the indexes.
	Set(idxs []uint32)

	// Len returns the number of indexes.
	Len() int

	// Activate binds the buffer.
	Activate()

	// Handle returns the handle for the buffer -- only valid after
	// Activate.
	Handle() uint32

	// Transfer transfers the data to the GPU -- Activate must have
	// been called first.
	Transfer()

	// Delete deletes the GPU resources associated with the buffer.
	Delete()
}

// Vector represents a vertex input variable within a program.
type Vector interface {
	// Name returns the name of the vector (as it appears in the
	// shader source).
	Name() string

	// Type returns the type of the vector.
	Type() VectorType

	// Role returns the role of the vector.
	Role() VectorRoles

	// Handle returns the handle (location) for the vector within the
	// program -- only valid after program has been compiled.
	Handle() uint32
}

// VectorUsages are the standard usage hints for buffer data.
type VectorUsages int32

const (
	StreamDraw VectorUsages = iota
	StreamRead
	StreamCopy
	StaticDraw
	StaticRead
	StaticCopy
	DynamicDraw
	DynamicRead
	DynamicCopy
	VectorUsagesN
)

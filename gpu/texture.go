// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "image"

// Texture2D manages a 2D texture, including loading from an image file
// and activating on the GPU.
type Texture2D interface {
	// Name returns the unique name of the texture.
	Name() string

	// SetName sets the name of the texture.
	SetName(name string)

	// Size returns the size of the texture.
	Size() image.Point

	// SetSize sets the size of the texture.  If the size changes, any
	// existing GPU texture storage is deleted and reallocated on the
	// next Activate.
	SetSize(size image.Point)

	// SetImage sets the texture from the given image.  The GPU side is
	// updated on the next Activate.
	SetImage(img *image.RGBA) error

	// Activate establishes the GPU resources and handle for the
	// texture, using given texture unit number (0-31).  Binds the
	// texture to that unit.
	Activate(texNo int)

	// IsActive returns true if the texture has been Activated.
	IsActive() bool

	// Handle returns the GPU handle for the texture -- only valid
	// after Activate.
	Handle() uint32

	// Delete deletes the GPU resources associated with this texture.
	// Must be called with a valid context.
	Delete()
}

// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// textureImpl manages a 2D RGBA8 texture.
type textureImpl struct {
	init   bool
	handle uint32
	name   string
	size   image.Point
	img    *image.RGBA // pending image data to transfer on next Activate
	imgOld bool
}

// Name returns the name of the texture
func (tx *textureImpl) Name() string {
	return tx.name
}

// SetName sets the name of the texture
func (tx *textureImpl) SetName(name string) {
	tx.name = name
}

// Size returns the size of the texture
func (tx *textureImpl) Size() image.Point {
	return tx.size
}

// SetSize sets the size of the texture.
// If the size changes, deletes the GPU texture, which is then
// re-established at the new size on the next Activate.
func (tx *textureImpl) SetSize(size image.Point) {
	if tx.size == size {
		return
	}
	if tx.init {
		tx.Delete()
	}
	tx.size = size
	tx.img = nil
}

// SetImage sets the texture from the given image.
// The GPU side is updated on the next Activate.
func (tx *textureImpl) SetImage(img *image.RGBA) error {
	if img == nil {
		return errors.Log(fmt.Errorf("glgpu texture %s: SetImage with nil image", tx.name))
	}
	sz := img.Bounds().Size()
	if tx.size != sz {
		if tx.init {
			tx.Delete()
		}
		tx.size = sz
	}
	tx.img = img
	tx.imgOld = true
	return nil
}

// Activate establishes the GPU resources and handle for the texture,
// using given texture number (0-31 range).  Transfers any pending
// image data.
func (tx *textureImpl) Activate(texNo int) {
	if !tx.init {
		gl.GenTextures(1, &tx.handle)
		gl.ActiveTexture(gl.TEXTURE0 + uint32(texNo))
		gl.BindTexture(gl.TEXTURE_2D, tx.handle)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(tx.size.X), int32(tx.size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		tx.init = true
	} else {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(texNo))
		gl.BindTexture(gl.TEXTURE_2D, tx.handle)
	}
	if tx.imgOld && tx.img != nil {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(tx.size.X), int32(tx.size.Y), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tx.img.Pix))
		tx.imgOld = false
	}
}

// IsActive returns true if texture has been Activate'd
func (tx *textureImpl) IsActive() bool {
	return tx.init
}

// Handle returns the GPU handle for the texture -- only
// valid after Activate
func (tx *textureImpl) Handle() uint32 {
	return tx.handle
}

// Delete deletes the GPU resources associated with this texture
// (requires Activate to re-establish a new one).
// Should be called prior to Go object being deleted
// (ref counting can be done externally).
func (tx *textureImpl) Delete() {
	if !tx.init {
		return
	}
	gl.DeleteTextures(1, &tx.handle)
	tx.handle = 0
	tx.init = false
}

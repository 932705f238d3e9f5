// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psykit

import (
	"image"
	"time"

	"cogentcore.org/core/math32"
)

// Window is the host-window capability consumed by the Compositor.
// The glwin package provides the glfw implementation; tests use mocks.
// All methods must be called on the thread holding the GL context.
type Window interface {
	// Size returns the current size of the window drawable in pixels.
	Size() image.Point

	// BackgroundColor returns the window's configured clear color.
	BackgroundColor() math32.Vector3

	// DepthTest returns true if the window is configured with depth
	// testing enabled for stimulus drawing.
	DepthTest() bool

	// StencilTest returns true if the window is configured with stencil
	// testing enabled for stimulus drawing.
	StencilTest() bool

	// WaitBlanking returns true if buffer swaps block until the next
	// vertical blank.
	WaitBlanking() bool

	// ToPixels converts a vector in the window's configured units to
	// pixels.
	ToPixels(v math32.Vector2) math32.Vector2

	// FromPixels converts a vector in pixels to the window's configured
	// units.
	FromPixels(v math32.Vector2) math32.Vector2

	// DrawAuto executes all persistently-registered ("auto-drawn")
	// stimuli into the currently-bound render target.
	DrawAuto()

	// SwapBuffers performs the physical buffer swap on the primary
	// output, blocking until vertical blank if WaitBlanking.  Returns
	// the completion time of the swap, or the zero time if the window
	// does not wait for the blank.  If clear is true, clears the new
	// back buffer to the background color after the swap.
	SwapBuffers(clear bool) time.Time
}

// StereoBuffers is implemented by windows created with native
// hardware stereo (quad-buffered) support.
type StereoBuffers interface {
	// SetDrawBuffer directs subsequent drawing to the hardware back
	// buffer of the given eye.
	SetDrawBuffer(eye Eye)
}

// DualOutput is implemented by windows driving a secondary video
// output for dual-head stereo.  The secondary output shares the GL
// object space with the primary (shared context).
type DualOutput interface {
	// SecondarySize returns the pixel size of the secondary output.
	SecondarySize() image.Point

	// MakeSecondaryCurrent makes the secondary output's context
	// current on the calling thread.  Must be paired with
	// MakePrimaryCurrent before any further primary-output operation.
	MakeSecondaryCurrent()

	// SwapSecondary swaps the secondary output's buffers without
	// blocking for its vertical blank.
	SwapSecondary()

	// MakePrimaryCurrent restores the primary output's context.
	MakePrimaryCurrent()
}

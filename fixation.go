// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psykit

import "cogentcore.org/core/math32"

// FixationAdjustment shifts the two side-by-side eye partitions to aid
// binocular fusion on mirror stereoscopes and similar setups.  All
// values are stored in pixels; the Compositor's accessors convert to
// and from the window's configured units.  Only geometrically effective
// in the left-right and right-left modes.
type FixationAdjustment struct {

	// Offset shifts both eyes together.
	Offset math32.Vector2

	// Vergence shifts the eyes horizontally toward (positive) or away
	// from each other.
	Vergence float32

	// Tilt shifts the eyes vertically in opposite directions.
	Tilt float32
}

// eyeShift returns the partition shift in pixels for the given eye:
// the left eye's partition moves by +vergence / +tilt and the right
// eye's by the negated amounts, on top of the shared offset.
func (fx *FixationAdjustment) eyeShift(eye Eye) math32.Vector2 {
	sign := float32(1)
	if eye == Right {
		sign = -1
	}
	return math32.Vector2{
		X: fx.Offset.X + sign*fx.Vergence,
		Y: fx.Offset.Y + sign*fx.Tilt,
	}
}

// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glwin

import (
	"image"

	"cogentcore.org/core/math32"
)

// Units is the unit system a window exposes for sizes and positions.
type Units int32 //enums:enum -transform lower

const (
	// UnitsPix is raw pixels.
	UnitsPix Units = iota

	// UnitsNorm is normalized device units: x and y each span [-1,1]
	// across the window.
	UnitsNorm

	// UnitsHeight is fractions of the window height, for both axes.
	UnitsHeight

	// UnitsCm is centimeters on the display surface; requires
	// Monitor.WidthCm.
	UnitsCm

	// UnitsDeg is degrees of visual angle, using the small-angle
	// linear approximation; requires Monitor.WidthCm and
	// Monitor.DistanceCm.
	UnitsDeg
)

// ToPixels converts v in this unit system to pixels, for a window of
// the given pixel size and physical geometry.
func (u Units) ToPixels(v math32.Vector2, size image.Point, mon Monitor) math32.Vector2 {
	switch u {
	case UnitsNorm:
		return math32.Vec2(v.X*float32(size.X)/2, v.Y*float32(size.Y)/2)
	case UnitsHeight:
		return v.MulScalar(float32(size.Y))
	case UnitsCm:
		return v.MulScalar(pixPerCm(size, mon))
	case UnitsDeg:
		return v.MulScalar(pixPerDeg(size, mon))
	}
	return v
}

// FromPixels converts v in pixels to this unit system, for a window of
// the given pixel size and physical geometry.
func (u Units) FromPixels(v math32.Vector2, size image.Point, mon Monitor) math32.Vector2 {
	switch u {
	case UnitsNorm:
		return math32.Vec2(v.X*2/float32(size.X), v.Y*2/float32(size.Y))
	case UnitsHeight:
		return v.DivScalar(float32(size.Y))
	case UnitsCm:
		return v.DivScalar(pixPerCm(size, mon))
	case UnitsDeg:
		return v.DivScalar(pixPerDeg(size, mon))
	}
	return v
}

func pixPerCm(size image.Point, mon Monitor) float32 {
	if mon.WidthCm <= 0 {
		return 1
	}
	return float32(size.X) / mon.WidthCm
}

// pixPerDeg uses the standard small-angle approximation: one degree of
// visual angle subtends distance * tan(1 deg) centimeters.
func pixPerDeg(size image.Point, mon Monitor) float32 {
	if mon.DistanceCm <= 0 {
		return 1
	}
	cmPerDeg := mon.DistanceCm * math32.Tan(math32.DegToRad(1))
	return cmPerDeg * pixPerCm(size, mon)
}

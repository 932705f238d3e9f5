// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psykit

import (
	"fmt"
	"strings"
)

// StereoMode is the stereo delivery technique used to composite the two
// eye images into one or two output frames.
type StereoMode int32 //enums:enum -transform kebab

const (
	// None renders directly to the default framebuffer with no stereo
	// compositing at all.
	None StereoMode = iota

	// QuadBuffered uses native hardware stereo back buffers
	// (GL_BACK_LEFT / GL_BACK_RIGHT) with no software compositing.
	// Fixed at construction.
	QuadBuffered

	// DualHead presents the left eye on the primary video output and the
	// right eye on a secondary output.  Fixed at construction.
	DualHead

	// Sequential presents left and right eye images on alternating
	// video frames (frame-sequential, e.g. for shutter glasses or a
	// polarity-switching projector).
	Sequential

	// LeftRight packs the left eye into the left half of the frame and
	// the right eye into the right half, cropping each eye image to its
	// central half width.
	LeftRight

	// RightLeft is LeftRight with the eye-to-half assignment swapped.
	RightLeft

	// SideBySideCompressed packs the full-width eye images into
	// half-width viewports (anamorphic squeeze, as expected by most
	// 3D TVs).
	SideBySideCompressed

	// TopBottom packs the left eye into the top half of the frame and
	// the right eye into the bottom half, cropping to central half
	// height.
	TopBottom

	// BottomTop is TopBottom with the eye-to-half assignment swapped.
	BottomTop

	// TopBottomAnticross is TopBottom with subtractive cross-talk
	// cancellation applied per eye.
	TopBottomAnticross

	// BottomTopAnticross is BottomTop with subtractive cross-talk
	// cancellation applied per eye.
	BottomTopAnticross

	// RedGreen is color anaglyph: left eye on the red channel, right
	// eye on the green channel.
	RedGreen

	// GreenRed is color anaglyph: left eye green, right eye red.
	GreenRed

	// RedBlue is color anaglyph: left eye red, right eye blue.
	RedBlue

	// BlueRed is color anaglyph: left eye blue, right eye red.
	BlueRed

	// RedGreenAnticross is RedGreen with cross-talk cancellation.
	RedGreenAnticross

	// GreenRedAnticross is GreenRed with cross-talk cancellation.
	GreenRedAnticross

	// RedBlueAnticross is RedBlue with cross-talk cancellation.
	RedBlueAnticross

	// BlueRedAnticross is BlueRed with cross-talk cancellation.
	BlueRedAnticross
)

// ParseStereoMode returns the StereoMode named by s.  In addition to the
// canonical kebab-case names, it accepts the classic slash spellings
// ("left/right", "red/green-anticross") used in mode tables and config
// files.
func ParseStereoMode(s string) (StereoMode, error) {
	var m StereoMode
	err := m.SetString(strings.ReplaceAll(strings.ToLower(s), "/", "-"))
	return m, err
}

// Fixed returns true if the mode can only be selected at construction
// time -- it requires window-level resources (hardware stereo buffers,
// a second video output) that cannot be established later.
func (m StereoMode) Fixed() bool {
	return m == QuadBuffered || m == DualHead
}

// Composited returns true if the mode routes drawing through the
// per-eye offscreen buffers and composites at flip time.
func (m StereoMode) Composited() bool {
	return m != None && m != QuadBuffered
}

// Eye identifies one of the two stereo channels.
type Eye int32 //enums:enum -transform lower

const (
	Left Eye = iota
	Right
)

// Other returns the opposite eye.
func (e Eye) Other() Eye {
	if e == Left {
		return Right
	}
	return Left
}

// ParseEye returns the Eye named by s ("left" or "right").
func ParseEye(s string) (Eye, error) {
	var e Eye
	err := e.SetString(strings.ToLower(s))
	return e, err
}

// partAxis is the viewport partitioning axis for split-screen modes.
type partAxis int32

const (
	axisNone partAxis = iota
	axisHorizontal
	axisVertical
)

// progKey identifies one of the compiled compositing programs.
type progKey int32

const (
	progNone progKey = iota
	progTexture
	progCentralX
	progCentralY
	progCentralYComp
	progAnaglyph  // + mode offset for the four plain anaglyph programs
	progAnticross = progAnaglyph + 4
	progFill      = progAnticross + 4
	progTransform = progFill + 1
	progKeysN     = progTransform + 1
)

// modeDescriptor carries the pre-resolved compositing behavior of one
// StereoMode: which program to use, how to partition the viewport,
// which eye occupies the first partition (or first color channel), and
// how many cross-talk components the program consumes.
type modeDescriptor struct {
	prog      progKey
	axis      partAxis
	firstEye  Eye  // eye in the first (left / top) partition, or first channel
	anticross int  // 0 = none, 2 = vec2 uniform at set time, 3 = vec3 at draw time
	fixation  bool // fixation adjustment applies to the partitions
}

var modeDescs = map[StereoMode]modeDescriptor{
	None:                 {prog: progNone},
	QuadBuffered:         {prog: progNone},
	DualHead:             {prog: progTexture},
	Sequential:           {prog: progTexture},
	LeftRight:            {prog: progCentralX, axis: axisHorizontal, firstEye: Left, fixation: true},
	RightLeft:            {prog: progCentralX, axis: axisHorizontal, firstEye: Right, fixation: true},
	SideBySideCompressed: {prog: progTexture, axis: axisHorizontal, firstEye: Left},
	TopBottom:            {prog: progCentralY, axis: axisVertical, firstEye: Left},
	BottomTop:            {prog: progCentralY, axis: axisVertical, firstEye: Right},
	TopBottomAnticross:   {prog: progCentralYComp, axis: axisVertical, firstEye: Left, anticross: 3},
	BottomTopAnticross:   {prog: progCentralYComp, axis: axisVertical, firstEye: Right, anticross: 3},
	RedGreen:             {prog: progAnaglyph + 0, firstEye: Left},
	GreenRed:             {prog: progAnaglyph + 1, firstEye: Left},
	RedBlue:              {prog: progAnaglyph + 2, firstEye: Left},
	BlueRed:              {prog: progAnaglyph + 3, firstEye: Left},
	RedGreenAnticross:    {prog: progAnticross + 0, firstEye: Left, anticross: 2},
	GreenRedAnticross:    {prog: progAnticross + 1, firstEye: Left, anticross: 2},
	RedBlueAnticross:     {prog: progAnticross + 2, firstEye: Left, anticross: 2},
	BlueRedAnticross:     {prog: progAnticross + 3, firstEye: Left, anticross: 2},
}

// anaglyphChannels gives the output channel (glsl swizzle letter) for
// the left and right eye of each anaglyph mode, indexed by the mode's
// offset from the first anaglyph program.
var anaglyphChannels = [4][2]string{
	{"r", "g"}, // red/green
	{"g", "r"}, // green/red
	{"r", "b"}, // red/blue
	{"b", "r"}, // blue/red
}

func (m StereoMode) desc() (modeDescriptor, error) {
	md, ok := modeDescs[m]
	if !ok {
		return modeDescriptor{}, fmt.Errorf("psykit: unknown stereo mode %v", m)
	}
	return md, nil
}

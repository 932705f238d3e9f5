// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vpixx configures a VPixx ProPixx projector to match the
// compositor's stereo delivery mode: DLP sequencer program and VESA
// sync-line behavior, issued over the device's register-write protocol
// with a cached-then-commit pattern.
package vpixx

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/herrlich10/psykit"
)

// Link is the register transport to the device.  The propixx driver
// buffers register writes locally; Commit pushes the buffered writes to
// the hardware in one transaction.
type Link interface {
	// WriteRegister stages a register write.
	WriteRegister(addr, value uint16) error

	// Commit applies all staged writes to the device.
	Commit() error
}

// Device register map (subset used here).
const (
	regSeqProgram   uint16 = 0x0c
	regVideoMode    uint16 = 0x0e
	regVesaBlueline uint16 = 0x14
	regVesaFreeRun  uint16 = 0x16
	regScreenFlip   uint16 = 0x18
)

// screen flip bits
const (
	flipRearProjection uint16 = 1 << 0
	flipCeilingMount   uint16 = 1 << 1
)

// SequencerProgram selects the projector's DLP sequencer: how incoming
// video frames are decomposed into the mirror-flip sequence.
type SequencerProgram int32 //enums:enum -trim-prefix Seq -transform lower

const (
	// SeqRGB is the standard 120 Hz RGB program.
	SeqRGB SequencerProgram = iota

	// SeqRB3D drives the left eye from the red channel and the right
	// eye from the blue channel, alternating with the polarizer.
	SeqRB3D

	// SeqRGB240 shows two half-height frames per video frame at 240 Hz.
	SeqRGB240

	// SeqQuad4x shows the four video quadrants sequentially at 480 Hz.
	SeqQuad4x

	// SeqQuad12x shows the four quadrants as grayscale R, G, B
	// subframes at 1440 Hz.
	SeqQuad12x
)

// VideoMode is the projector's color translation mode.
type VideoMode int32 //enums:enum -trim-prefix Video -transform lower

const (
	// VideoC24 is ordinary 24-bit color.
	VideoC24 VideoMode = iota

	// VideoL48 is 16-bit grayscale through a lookup table.
	VideoL48

	// VideoM16 is 16-bit monochrome from the red and green channels.
	VideoM16

	// VideoC48 is 48-bit color from horizontal pixel pairs.
	VideoC48
)

// PolarizerMode is a stereo delivery technique using the ProPixx
// circular polarizer, mapping to a compositor StereoMode plus the
// matching projector configuration.
type PolarizerMode int32 //enums:enum -trim-prefix Polarizer -transform kebab

const (
	// PolarizerNone turns the polarizer-specific configuration off.
	PolarizerNone PolarizerMode = iota

	// PolarizerBlueline switches the polarizer per frame, triggered by
	// a VESA blueline drawn into the bottom scanline.
	PolarizerBlueline

	// PolarizerFreerun switches the polarizer on every vertical sync.
	PolarizerFreerun

	// PolarizerRB3D encodes the eyes on the red and blue channels and
	// lets the RB3D sequencer drive the polarizer.
	PolarizerRB3D

	// PolarizerDoubleHeight packs the eyes into the top and bottom
	// halves of a double-height video signal; requires the output to
	// already be configured taller than wide.
	PolarizerDoubleHeight
)

// ProPixx drives one projector through a register Link.  Setters only
// stage values; UpdateRegisterCache commits them to the hardware.
type ProPixx struct {
	link Link
	size image.Point // physical output size in pixels

	seq      SequencerProgram
	video    VideoMode
	blueline bool
	freerun  bool

	staged []func() error
}

// New returns a ProPixx driver over the given transport, for an output
// of the given pixel size.
func New(link Link, size image.Point) *ProPixx {
	return &ProPixx{link: link, size: size}
}

// Size returns the physical output size.
func (px *ProPixx) Size() image.Point {
	return px.size
}

// SequencerProgram returns the staged sequencer program.
func (px *ProPixx) SequencerProgram() SequencerProgram {
	return px.seq
}

// SetDlpSequencerProgram stages the DLP sequencer program.
func (px *ProPixx) SetDlpSequencerProgram(p SequencerProgram) {
	px.seq = p
	px.staged = append(px.staged, func() error {
		return px.link.WriteRegister(regSeqProgram, uint16(p))
	})
}

// SetVideoMode stages the color translation mode.
func (px *ProPixx) SetVideoMode(m VideoMode) {
	px.video = m
	px.staged = append(px.staged, func() error {
		return px.link.WriteRegister(regVideoMode, uint16(m))
	})
}

// SetVideoVesaBlueline stages whether the polarizer is triggered by a
// blueline in the bottom scanline.
func (px *ProPixx) SetVideoVesaBlueline(on bool) {
	px.blueline = on
	px.staged = append(px.staged, func() error {
		return px.link.WriteRegister(regVesaBlueline, boolReg(on))
	})
}

// SetVesaFreeRun stages whether the polarizer switches on every
// vertical sync.
func (px *ProPixx) SetVesaFreeRun(on bool) {
	px.freerun = on
	px.staged = append(px.staged, func() error {
		return px.link.WriteRegister(regVesaFreeRun, boolReg(on))
	})
}

// SetScreenFlip stages the image mirroring for rear projection and / or
// ceiling mount.
func (px *ProPixx) SetScreenFlip(rearProjection, ceilingMount bool) {
	px.staged = append(px.staged, func() error {
		var v uint16
		if rearProjection {
			v |= flipRearProjection
		}
		if ceilingMount {
			v |= flipCeilingMount
		}
		return px.link.WriteRegister(regScreenFlip, v)
	})
}

// UpdateRegisterCache writes all staged register values through the
// link and commits them to the device in one transaction.
func (px *ProPixx) UpdateRegisterCache() error {
	for _, fn := range px.staged {
		if err := fn(); err != nil {
			return errors.Log(err)
		}
	}
	px.staged = nil
	return errors.Log(px.link.Commit())
}

// SetPolarizerMode stages the projector configuration for the given
// polarizer delivery mode and commits it, returning the compositor
// StereoMode the application should use.  PolarizerDoubleHeight
// requires the physical output to already be taller than wide (an
// out-of-band device configuration); a wider-than-tall output is an
// invalid-configuration error and no register writes are issued.
func (px *ProPixx) SetPolarizerMode(mode PolarizerMode) (psykit.StereoMode, error) {
	if mode == PolarizerDoubleHeight && px.size.Y <= px.size.X {
		return psykit.None, errors.Log(fmt.Errorf(
			"vpixx: polarizer mode %v requires a double-height output, but the output is %dx%d",
			mode, px.size.X, px.size.Y))
	}
	var sm psykit.StereoMode
	switch mode {
	case PolarizerNone:
		px.SetDlpSequencerProgram(SeqRGB)
		px.SetVideoVesaBlueline(false)
		px.SetVesaFreeRun(false)
		sm = psykit.None
	case PolarizerBlueline:
		px.SetDlpSequencerProgram(SeqRGB)
		px.SetVideoVesaBlueline(true)
		px.SetVesaFreeRun(false)
		sm = psykit.Sequential
	case PolarizerFreerun:
		px.SetDlpSequencerProgram(SeqRGB)
		px.SetVideoVesaBlueline(false)
		px.SetVesaFreeRun(true)
		sm = psykit.Sequential
	case PolarizerRB3D:
		px.SetDlpSequencerProgram(SeqRB3D)
		px.SetVideoVesaBlueline(false)
		px.SetVesaFreeRun(false)
		sm = psykit.RedBlueAnticross
	case PolarizerDoubleHeight:
		// the controller decomposes the double-height signal itself;
		// the sequencer stays on the standard RGB program
		px.SetDlpSequencerProgram(SeqRGB)
		px.SetVideoVesaBlueline(false)
		px.SetVesaFreeRun(false)
		sm = psykit.TopBottomAnticross
	default:
		return psykit.None, errors.Log(fmt.Errorf("vpixx: unknown polarizer mode %v", mode))
	}
	if err := px.UpdateRegisterCache(); err != nil {
		return psykit.None, err
	}
	return sm, nil
}

func boolReg(on bool) uint16 {
	if on {
		return 1
	}
	return 0
}

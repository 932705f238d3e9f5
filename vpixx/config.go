// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpixx

import (
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Config is a declarative projector configuration, typically loaded
// from a TOML file checked in next to the experiment.
type Config struct {

	// Sequencer is the DLP sequencer program ("rgb", "rb3d", "rgb240",
	// "quad4x", "quad12x").
	Sequencer SequencerProgram `toml:"sequencer"`

	// VideoMode is the color translation mode ("c24", "l48", "m16",
	// "c48").
	VideoMode VideoMode `toml:"video-mode"`

	// VesaBlueline triggers the polarizer from a blueline in the
	// bottom scanline.
	VesaBlueline bool `toml:"vesa-blueline"`

	// VesaFreeRun switches the polarizer on every vertical sync.
	VesaFreeRun bool `toml:"vesa-free-run"`

	// RearProjection mirrors the image horizontally.
	RearProjection bool `toml:"rear-projection"`

	// CeilingMount mirrors the image vertically.
	CeilingMount bool `toml:"ceiling-mount"`
}

// ReadConfig decodes a TOML projector configuration.
func ReadConfig(r io.Reader) (*Config, error) {
	cfg := &Config{}
	if err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Log(err)
	}
	return cfg, nil
}

// OpenConfig reads a TOML projector configuration from the given file.
func OpenConfig(fname string) (*Config, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer f.Close()
	return ReadConfig(f)
}

// Apply stages the full configuration and commits it to the device.
func (px *ProPixx) Apply(cfg *Config) error {
	px.SetScreenFlip(cfg.RearProjection, cfg.CeilingMount)
	px.SetDlpSequencerProgram(cfg.Sequencer)
	px.SetVideoMode(cfg.VideoMode)
	px.SetVideoVesaBlueline(cfg.VesaBlueline)
	px.SetVesaFreeRun(cfg.VesaFreeRun)
	return px.UpdateRegisterCache()
}

// DefaultConfig is the ordinary operating configuration: rear
// projection, standard RGB sequencer, 24-bit color, all sync flags off.
func DefaultConfig() *Config {
	return &Config{
		Sequencer:      SeqRGB,
		VideoMode:      VideoC24,
		RearProjection: true,
	}
}

// Reset restores the ordinary operating configuration, or the given one
// if non-nil.
func (px *ProPixx) Reset(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return px.Apply(cfg)
}

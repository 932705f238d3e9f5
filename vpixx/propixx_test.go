// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpixx

import (
	"image"
	"strings"
	"testing"

	"github.com/herrlich10/psykit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type write struct {
	addr, value uint16
}

// fakeLink records register writes and commits in order.
type fakeLink struct {
	writes  []write
	commits int
}

func (lk *fakeLink) WriteRegister(addr, value uint16) error {
	lk.writes = append(lk.writes, write{addr, value})
	return nil
}

func (lk *fakeLink) Commit() error {
	lk.commits++
	return nil
}

func (lk *fakeLink) value(addr uint16) (uint16, bool) {
	for i := len(lk.writes) - 1; i >= 0; i-- {
		if lk.writes[i].addr == addr {
			return lk.writes[i].value, true
		}
	}
	return 0, false
}

func TestStagedCommit(t *testing.T) {
	lk := &fakeLink{}
	px := New(lk, image.Pt(1920, 1080))

	px.SetDlpSequencerProgram(SeqRB3D)
	px.SetVideoVesaBlueline(true)
	assert.Empty(t, lk.writes, "setters only stage")
	assert.Equal(t, SeqRB3D, px.SequencerProgram())

	require.NoError(t, px.UpdateRegisterCache())
	assert.Equal(t, []write{
		{regSeqProgram, uint16(SeqRB3D)},
		{regVesaBlueline, 1},
	}, lk.writes)
	assert.Equal(t, 1, lk.commits)

	// the staged queue is consumed; a second commit writes nothing new
	require.NoError(t, px.UpdateRegisterCache())
	assert.Len(t, lk.writes, 2)
	assert.Equal(t, 2, lk.commits)
}

func TestSetPolarizerMode(t *testing.T) {
	tests := []struct {
		mode     PolarizerMode
		stereo   psykit.StereoMode
		seq      SequencerProgram
		blueline uint16
		freerun  uint16
	}{
		{PolarizerNone, psykit.None, SeqRGB, 0, 0},
		{PolarizerBlueline, psykit.Sequential, SeqRGB, 1, 0},
		{PolarizerFreerun, psykit.Sequential, SeqRGB, 0, 1},
		{PolarizerRB3D, psykit.RedBlueAnticross, SeqRB3D, 0, 0},
	}
	for _, tc := range tests {
		lk := &fakeLink{}
		px := New(lk, image.Pt(1920, 1080))

		sm, err := px.SetPolarizerMode(tc.mode)
		require.NoError(t, err, tc.mode.String())
		assert.Equal(t, tc.stereo, sm, tc.mode.String())
		assert.Equal(t, 1, lk.commits, tc.mode.String())

		seq, ok := lk.value(regSeqProgram)
		require.True(t, ok)
		assert.Equal(t, uint16(tc.seq), seq, tc.mode.String())
		bl, _ := lk.value(regVesaBlueline)
		assert.Equal(t, tc.blueline, bl, tc.mode.String())
		fr, _ := lk.value(regVesaFreeRun)
		assert.Equal(t, tc.freerun, fr, tc.mode.String())
	}
}

func TestSetPolarizerModeDoubleHeight(t *testing.T) {
	lk := &fakeLink{}
	px := New(lk, image.Pt(1920, 2160)) // taller than wide

	sm, err := px.SetPolarizerMode(PolarizerDoubleHeight)
	require.NoError(t, err)
	assert.Equal(t, psykit.TopBottomAnticross, sm)
	seq, _ := lk.value(regSeqProgram)
	assert.Equal(t, uint16(SeqRGB), seq, "the controller decomposes the signal; the sequencer stays on rgb")
	fr, _ := lk.value(regVesaFreeRun)
	assert.Equal(t, uint16(0), fr)
}

func TestSetPolarizerModeDoubleHeightRejected(t *testing.T) {
	lk := &fakeLink{}
	px := New(lk, image.Pt(1920, 1080)) // wider than tall

	_, err := px.SetPolarizerMode(PolarizerDoubleHeight)
	require.Error(t, err)
	assert.Empty(t, lk.writes, "no register writes on a rejected configuration")
	assert.Equal(t, 0, lk.commits)
}

func TestReadConfig(t *testing.T) {
	src := `
sequencer = "rb3d"
video-mode = "m16"
vesa-blueline = true
rear-projection = true
`
	cfg, err := ReadConfig(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, SeqRB3D, cfg.Sequencer)
	assert.Equal(t, VideoM16, cfg.VideoMode)
	assert.True(t, cfg.VesaBlueline)
	assert.False(t, cfg.VesaFreeRun)
	assert.True(t, cfg.RearProjection)
	assert.False(t, cfg.CeilingMount)

	_, err = ReadConfig(strings.NewReader(`sequencer = `))
	assert.Error(t, err)
}

func TestApplyAndReset(t *testing.T) {
	lk := &fakeLink{}
	px := New(lk, image.Pt(1920, 1080))

	cfg := &Config{Sequencer: SeqRGB240, VideoMode: VideoC48, VesaFreeRun: true, CeilingMount: true}
	require.NoError(t, px.Apply(cfg))
	seq, _ := lk.value(regSeqProgram)
	assert.Equal(t, uint16(SeqRGB240), seq)
	vm, _ := lk.value(regVideoMode)
	assert.Equal(t, uint16(VideoC48), vm)
	fr, _ := lk.value(regVesaFreeRun)
	assert.Equal(t, uint16(1), fr)
	fl, _ := lk.value(regScreenFlip)
	assert.Equal(t, flipCeilingMount, fl)

	require.NoError(t, px.Reset(nil))
	seq, _ = lk.value(regSeqProgram)
	assert.Equal(t, uint16(SeqRGB), seq)
	vm, _ = lk.value(regVideoMode)
	assert.Equal(t, uint16(VideoC24), vm)
	fr, _ = lk.value(regVesaFreeRun)
	assert.Equal(t, uint16(0), fr)
	fl, _ = lk.value(regScreenFlip)
	assert.Equal(t, flipRearProjection, fl)
}

// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psykit

import (
	"image"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompositor(t *testing.T, win Window, mode StereoMode) (*Compositor, *mockGPU, *mockDrawing) {
	mg, md := installMockGPU(t)
	cp, err := NewCompositor(win, mode)
	require.NoError(t, err)
	return cp, mg, md
}

func TestNewCompositorCapabilities(t *testing.T) {
	installMockGPU(t)

	_, err := NewCompositor(newMockWindow(800, 600), QuadBuffered)
	assert.Error(t, err)

	_, err = NewCompositor(newMockWindow(800, 600), DualHead)
	assert.Error(t, err)

	sw := &mockStereoWindow{mockWindow: *newMockWindow(800, 600)}
	cp, err := NewCompositor(sw, QuadBuffered)
	require.NoError(t, err)
	assert.Equal(t, QuadBuffered, cp.Mode())

	dw := &mockDualWindow{mockWindow: *newMockWindow(800, 600), size2: image.Pt(800, 600)}
	cp, err = NewCompositor(dw, DualHead)
	require.NoError(t, err)
	assert.Equal(t, DualHead, cp.Mode())
	// the secondary context was made current once to build its quad
	assert.Equal(t, 1, dw.secCurrent)
	assert.Equal(t, 1, dw.primCurrent)
}

func TestQuadBufferedSkipsPipeline(t *testing.T) {
	mg, _ := installMockGPU(t)
	sw := &mockStereoWindow{mockWindow: *newMockWindow(800, 600)}
	_, err := NewCompositor(sw, QuadBuffered)
	require.NoError(t, err)
	assert.Empty(t, mg.progs)
	assert.Empty(t, mg.fbs)
}

func TestSetModeMutable(t *testing.T) {
	cp, _, _ := newTestCompositor(t, newMockWindow(800, 600), None)

	mutable := []StereoMode{
		None, Sequential, LeftRight, RightLeft, SideBySideCompressed,
		TopBottom, BottomTop, TopBottomAnticross, BottomTopAnticross,
		RedGreen, GreenRed, RedBlue, BlueRed,
		RedGreenAnticross, GreenRedAnticross, RedBlueAnticross, BlueRedAnticross,
	}
	for _, m := range mutable {
		require.NoError(t, cp.SetMode(m))
		assert.Equal(t, m, cp.Mode())
	}

	cur := cp.Mode()
	assert.Error(t, cp.SetMode(QuadBuffered))
	assert.Error(t, cp.SetMode(DualHead))
	assert.Equal(t, cur, cp.Mode())
}

func TestSetModeFixed(t *testing.T) {
	dw := &mockDualWindow{mockWindow: *newMockWindow(800, 600), size2: image.Pt(800, 600)}
	cp, _, _ := newTestCompositor(t, dw, DualHead)

	assert.Error(t, cp.SetMode(Sequential))
	assert.Error(t, cp.SetMode(None))
	assert.Equal(t, DualHead, cp.Mode())
}

func TestSetCrossTalkClamp(t *testing.T) {
	cp, _, _ := newTestCompositor(t, newMockWindow(800, 600), RedGreenAnticross)

	cp.SetCrossTalk(CrossTalk{{1.5, -0.2, 0.3}, {0.07, 2, -1}})
	want := CrossTalk{{1, 0, 0.3}, {0.07, 1, 0}}
	assert.Equal(t, want, cp.CrossTalk())
}

func TestSetCrossTalkUniformBroadcast(t *testing.T) {
	cp, _, _ := newTestCompositor(t, newMockWindow(800, 600), RedGreenAnticross)

	cp.SetCrossTalkUniform(0.07, 0.12)
	want := CrossTalk{{0.07, 0.07, 0.07}, {0.12, 0.12, 0.12}}
	assert.Equal(t, want, cp.CrossTalk())
}

func TestSetCrossTalkPushesRedCoefficients(t *testing.T) {
	cp, mg, _ := newTestCompositor(t, newMockWindow(800, 600), RedGreenAnticross)

	cp.SetCrossTalk(CrossTalk{{0.07, 0.5, 0.5}, {0.12, 0.5, 0.5}})
	for _, nm := range []string{"anticross-rg", "anticross-gr", "anticross-rb", "anticross-br"} {
		pr := mg.progs[nm]
		require.NotNil(t, pr, nm)
		un := pr.unis["crossTalk"]
		require.NotNil(t, un, nm)
		assert.Equal(t, [2]float32{0.07, 0.12}, un.last(), nm)
	}
}

func TestSetCrossTalkOnQuadBuffered(t *testing.T) {
	installMockGPU(t)
	sw := &mockStereoWindow{mockWindow: *newMockWindow(800, 600)}
	cp, err := NewCompositor(sw, QuadBuffered)
	require.NoError(t, err)

	// no compositing programs exist; the matrix is still stored
	cp.SetCrossTalk(CrossTalkUniform(0.1, 0.2))
	assert.Equal(t, CrossTalkUniform(0.1, 0.2), cp.CrossTalk())
}

func TestFixationRoundtrip(t *testing.T) {
	win := newMockWindow(800, 600)
	win.unitScale = 400 // norm-like units
	cp, _, _ := newTestCompositor(t, win, LeftRight)

	cp.SetFixationOffset(math32.Vec2(0.25, -0.5))
	got := cp.FixationOffset()
	assert.InDelta(t, 0.25, got.X, 1.0/400)
	assert.InDelta(t, -0.5, got.Y, 1.0/400)

	cp.SetVergence(0.1)
	assert.InDelta(t, 0.1, cp.Vergence(), 1.0/400)

	cp.SetTilt(-0.05)
	assert.InDelta(t, -0.05, cp.Tilt(), 1.0/400)
}

func TestPartitions(t *testing.T) {
	hp := partitions(axisHorizontal, image.Pt(800, 600))
	assert.Equal(t, image.Rect(0, 0, 400, 600), hp[0])
	assert.Equal(t, image.Rect(400, 0, 800, 600), hp[1])

	// odd width: the extra pixel lands in the second partition,
	// and the two always tile the window exactly
	hp = partitions(axisHorizontal, image.Pt(801, 600))
	assert.Equal(t, 400, hp[0].Dx())
	assert.Equal(t, 401, hp[1].Dx())
	assert.Equal(t, hp[0].Max.X, hp[1].Min.X)
	assert.Equal(t, 801, hp[1].Max.X)

	// vertical: the first partition is the top half (GL origin bottom-left)
	vp := partitions(axisVertical, image.Pt(800, 601))
	assert.Equal(t, image.Rect(0, 300, 800, 601), vp[0])
	assert.Equal(t, image.Rect(0, 0, 800, 300), vp[1])
}

func TestFlipNone(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, mg, _ := newTestCompositor(t, win, None)

	binds := mg.fbBinds
	ts := cp.Flip()
	assert.Equal(t, binds, mg.fbBinds, "no eye buffer binds in none mode")
	assert.Equal(t, 1, win.swaps)
	assert.Equal(t, 1, win.autoDraws)
	assert.False(t, ts.IsZero())
}

func TestFlipNoWaitBlanking(t *testing.T) {
	win := newMockWindow(800, 600)
	win.wait = false
	cp, _, _ := newTestCompositor(t, win, None)

	assert.True(t, cp.Flip().IsZero())
}

func TestFlipSequential(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, _, _ := newTestCompositor(t, win, Sequential)

	var order []Eye
	cp.SetFlipFunc(func(eye Eye) { order = append(order, eye) })

	ts := cp.Flip()
	assert.Equal(t, 2, win.swaps)
	assert.Equal(t, []Eye{Left, Right}, order)
	assert.False(t, ts.IsZero())
}

func TestFlipLeftRightViewports(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, _, md := newTestCompositor(t, win, LeftRight)

	cp.Flip()
	require.Len(t, md.draws, 2)
	assert.Equal(t, image.Rect(0, 0, 400, 600), md.draws[0])
	assert.Equal(t, image.Rect(400, 0, 800, 600), md.draws[1])
	assert.Equal(t, 1, win.swaps)
}

func TestFlipRightLeftSwapsPartitions(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, mg, md := newTestCompositor(t, win, RightLeft)

	cp.Flip()
	require.Len(t, md.draws, 2)
	// same partitions; the first draw samples the right eye's texture
	assert.Equal(t, image.Rect(0, 0, 400, 600), md.draws[0])
	rightTex := mg.fbs[Right].tex.actives
	assert.Greater(t, rightTex, 0)
}

func TestFlipFixationShiftsPartitions(t *testing.T) {
	win := newMockWindow(800, 600) // pixel units
	cp, _, md := newTestCompositor(t, win, LeftRight)

	cp.SetVergence(10)
	cp.SetTilt(4)
	cp.Flip()
	require.Len(t, md.draws, 2)
	// left partition shifts by (+10,+4), right by (-10,-4)
	assert.Equal(t, image.Rect(0, 0, 400, 600).Add(image.Pt(10, 4)), md.draws[0])
	assert.Equal(t, image.Rect(400, 0, 800, 600).Add(image.Pt(-10, -4)), md.draws[1])
}

func TestFlipAnticrossCoefficients(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, mg, md := newTestCompositor(t, win, TopBottomAnticross)

	ct := CrossTalk{{0.05, 0.06, 0.07}, {0.11, 0.12, 0.13}}
	cp.SetCrossTalk(ct)
	cp.Flip()

	require.Len(t, md.draws, 2)
	pr := mg.progs["central-y-compensated"]
	require.NotNil(t, pr)
	un := pr.unis["crossTalk"]
	require.Len(t, un.vals, 2)
	// top partition draws first and holds the left eye
	assert.Equal(t, [3]float32(ct[Left]), un.vals[0])
	assert.Equal(t, [3]float32(ct[Right]), un.vals[1])
}

func TestFlipAnaglyphSingleDraw(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, mg, md := newTestCompositor(t, win, RedGreen)

	cp.Flip()
	require.Len(t, md.draws, 1)
	assert.Equal(t, image.Rect(0, 0, 800, 600), md.draws[0])

	pr := mg.progs["anaglyph-rg"]
	require.NotNil(t, pr)
	assert.Equal(t, 0, pr.unis["leftTex"].last())
	assert.Equal(t, 1, pr.unis["rightTex"].last())
}

func TestFlipDualHead(t *testing.T) {
	dw := &mockDualWindow{mockWindow: *newMockWindow(800, 600), size2: image.Pt(1024, 768)}
	cp, _, _ := newTestCompositor(t, dw, DualHead)

	var order []Eye
	cp.SetFlipFunc(func(eye Eye) { order = append(order, eye) })

	ts := cp.Flip()
	assert.Equal(t, 1, dw.swaps, "one blocking swap on the primary output")
	assert.Equal(t, 1, dw.secSwaps)
	assert.Equal(t, []Eye{Left, Right}, order)
	assert.False(t, ts.IsZero())
	// primary context restored after the secondary blip
	assert.Equal(t, dw.secCurrent, dw.primCurrent)
}

func TestSyncLineColors(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, mg, md := newTestCompositor(t, win, Sequential)
	cp.SetSyncLine(SyncBottom)
	assert.Equal(t, SyncBottom, cp.SyncLine())

	cp.Flip()
	pr := mg.progs["fill"]
	require.NotNil(t, pr)
	un := pr.unis["fillColor"]
	require.Len(t, un.vals, 2)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, un.vals[0], "white line on the left-eye frame")
	assert.Equal(t, [4]float32{0, 0, 0, 1}, un.vals[1], "black line on the right-eye frame")

	// the sync line draws occupy the bottom strip
	require.Len(t, md.draws, 4)
	assert.Equal(t, image.Rect(0, 0, 800, 3), md.draws[1])
	assert.Equal(t, image.Rect(0, 0, 800, 3), md.draws[3])
}

func TestSyncLineLocations(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, _, md := newTestCompositor(t, win, Sequential)
	cp.SetSyncLine(SyncBoth)

	cp.Flip()
	// each eye frame: one blip plus top and bottom line draws
	require.Len(t, md.draws, 6)
	assert.Equal(t, image.Rect(0, 0, 800, 3), md.draws[1])
	assert.Equal(t, image.Rect(0, 597, 800, 600), md.draws[2])
}

func TestDefaultSyncLine(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, mg, md := newTestCompositor(t, win, Sequential)
	assert.Equal(t, SyncBottom, cp.SyncLine())

	cp.Flip()
	// a fresh compositor draws the bottom sync line without any setup
	pr := mg.progs["fill"]
	require.NotNil(t, pr)
	assert.Len(t, pr.unis["fillColor"].vals, 2)
	require.Len(t, md.draws, 4)
	assert.Equal(t, image.Rect(0, 0, 800, 3), md.draws[1])
	assert.Equal(t, image.Rect(0, 0, 800, 3), md.draws[3])

	cp.SetSyncLine(SyncNone)
	md.draws = nil
	cp.Flip()
	assert.Len(t, md.draws, 2, "sync line is an opt-out")
}

func TestFlipRetainsEyeBuffers(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, _, md := newTestCompositor(t, win, LeftRight)

	cp.SetBuffer(Left, false)
	cp.SetBuffer(Right, false)
	md.clears = nil
	cp.Flip()
	assert.Empty(t, md.clears, "flip leaves unrequested eye buffer contents in place")

	cp.SetBuffer(Left, true)
	assert.Equal(t, []string{"eye-left"}, md.clears)
}

func TestSetBufferRouting(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, mg, _ := newTestCompositor(t, win, TopBottom)

	cp.SetBuffer(Left, true)
	assert.Equal(t, Left, cp.CurrentBuffer())
	cp.SetBuffer(Right, false)
	assert.Equal(t, Right, cp.CurrentBuffer())
	assert.GreaterOrEqual(t, mg.fbs[Left].binds, 2) // init + SetBuffer
	assert.GreaterOrEqual(t, mg.fbs[Right].binds, 2)

	// none mode targets the default framebuffer directly
	require.NoError(t, cp.SetMode(None))
	wins := mg.toWindow
	cp.SetBuffer(Left, false)
	assert.Equal(t, wins+1, mg.toWindow)
}

func TestSetBufferQuadBuffered(t *testing.T) {
	installMockGPU(t)
	sw := &mockStereoWindow{mockWindow: *newMockWindow(800, 600)}
	cp, err := NewCompositor(sw, QuadBuffered)
	require.NoError(t, err)

	cp.SetBuffer(Left, false)
	cp.SetBuffer(Right, false)
	assert.Equal(t, []Eye{Left, Right}, sw.drawBufs)
}

func TestSelectBuffer(t *testing.T) {
	cp, _, _ := newTestCompositor(t, newMockWindow(800, 600), TopBottom)

	require.NoError(t, cp.SelectBuffer("left", false))
	assert.Equal(t, Left, cp.CurrentBuffer())
	require.NoError(t, cp.SelectBuffer("Right", false))
	assert.Equal(t, Right, cp.CurrentBuffer())
	assert.Error(t, cp.SelectBuffer("up", false))
}

func TestFlipRestoresCurrentBuffer(t *testing.T) {
	win := newMockWindow(800, 600)
	cp, _, _ := newTestCompositor(t, win, LeftRight)

	cp.SetBuffer(Right, false)
	cp.Flip()
	assert.Equal(t, Right, cp.CurrentBuffer())
}

func TestDelete(t *testing.T) {
	cp, mg, _ := newTestCompositor(t, newMockWindow(800, 600), LeftRight)

	cp.Delete()
	for _, fb := range mg.fbs {
		assert.True(t, fb.deleted)
	}
}

// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psykit

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/herrlich10/psykit/gpu"
)

// SyncLine selects where the hardware sync line is drawn on each output
// frame in the sequential and dual-head modes.  The usual protocol puts
// a white line on left-eye frames and a black line at the same location
// on right-eye frames; VESA blueline hardware triggers on the blue
// channel of the bottom scanlines.
type SyncLine int32 //enums:enum -transform lower

const (
	// SyncNone draws no sync line.
	SyncNone SyncLine = iota

	// SyncBottom draws the sync line at the bottom of the frame
	// (the standard blueline location).
	SyncBottom

	// SyncTop draws the sync line at the top of the frame.
	SyncTop

	// SyncBoth draws sync lines at both the top and the bottom.
	SyncBoth
)

// syncLineWidth is the line thickness in pixels.
const syncLineWidth = 3

// Compositor owns the two per-eye offscreen buffers and composites them
// into the window's output frame(s) according to the active StereoMode.
// It wraps a Window rather than extending it; the window keeps its own
// drawing, timing and input behavior.
//
// All methods must be called on the thread holding the window's GL
// context.  One frame proceeds as: SetBuffer(Left), draw, SetBuffer(Right),
// draw, Flip.
type Compositor struct {
	win   Window
	mode  StereoMode
	desc  modeDescriptor
	fixed bool

	eyeBufs [2]gpu.Framebuffer
	progs   [progKeysN]gpu.Program
	quad    gpu.BufferMgr
	quad2   gpu.BufferMgr // secondary-context quad for dual-head

	crossTalk CrossTalk
	fix       FixationAdjustment
	syncLine  SyncLine
	flipFunc  func(Eye)

	cur Eye
}

// NewCompositor returns a Compositor for the given window, starting in
// the given stereo mode.  The QuadBuffered and DualHead modes require
// window support (StereoBuffers, DualOutput respectively) and are fixed
// for the life of the compositor; all other modes can be changed at any
// time with SetMode.
//
// The window's GL context must be current.  Both eye buffers, the
// compositing programs and the screen quad are created here; the eye
// buffers and the default framebuffer are cleared to the window's
// background color so the first frame does not flash.
//
// The sync line starts at SyncBottom, so polarizers triggered by a
// bottom-scanline signal work without further setup; pass SyncNone to
// SetSyncLine to disable it.
func NewCompositor(win Window, mode StereoMode) (*Compositor, error) {
	md, err := mode.desc()
	if err != nil {
		return nil, errors.Log(err)
	}
	switch mode {
	case QuadBuffered:
		if _, ok := win.(StereoBuffers); !ok {
			return nil, errors.Log(fmt.Errorf("psykit: stereo mode %v requires a window with hardware stereo buffers", mode))
		}
	case DualHead:
		if _, ok := win.(DualOutput); !ok {
			return nil, errors.Log(fmt.Errorf("psykit: stereo mode %v requires a window with a secondary output", mode))
		}
	}
	cp := &Compositor{win: win, mode: mode, desc: md, fixed: mode.Fixed(), syncLine: SyncBottom}
	if mode != QuadBuffered {
		if err := cp.initPipeline(); err != nil {
			return nil, err
		}
	}
	return cp, nil
}

// initPipeline creates the eye buffers, compiles the compositing
// programs and uploads the screen quad.
func (cp *Compositor) initPipeline() error {
	sz := cp.win.Size()
	bg := cp.win.BackgroundColor()
	for eye := Left; eye <= Right; eye++ {
		fb := gpu.TheGPU.NewFramebuffer(fmt.Sprintf("eye-%v", eye), sz)
		if err := fb.Activate(); err != nil {
			return err
		}
		gpu.Draw.ClearColor(bg.X, bg.Y, bg.Z)
		gpu.Draw.Clear(true, true)
		cp.eyeBufs[eye] = fb
	}
	gpu.TheGPU.RenderToWindow()
	gpu.Draw.ClearColor(bg.X, bg.Y, bg.Z)
	gpu.Draw.Clear(true, true)

	if err := cp.compilePrograms(); err != nil {
		return err
	}
	cp.quad = newScreenQuad(cp.progs[progTexture])
	if do, ok := cp.win.(DualOutput); ok && cp.mode == DualHead {
		do.MakeSecondaryCurrent()
		cp.quad2 = newScreenQuad(cp.progs[progTexture])
		do.MakePrimaryCurrent()
	}
	return gpu.TheGPU.ErrCheck("compositor init")
}

// compilePrograms builds the full mode-to-program table once.  One
// program serves all modes that are draw-time-identical; the four plain
// and four anticross anaglyph modes each get their own program with the
// channel selection baked into the fragment source.
func (cp *Compositor) compilePrograms() error {
	sampler := gpu.UniType{Type: gpu.Int}
	vec2 := gpu.UniType{Type: gpu.Float32, Vec: 2}
	vec3 := gpu.UniType{Type: gpu.Float32, Vec: 3}
	vec4 := gpu.UniType{Type: gpu.Float32, Vec: 4}
	mat3 := gpu.UniType{Type: gpu.Float32, Mat: 3}

	type progSpec struct {
		key  progKey
		name string
		vert string
		frag string
		unis map[string]gpu.UniType
	}
	specs := []progSpec{
		{progTexture, "texture", vertTexture, fragTexture,
			map[string]gpu.UniType{"tex": sampler}},
		{progCentralX, "central-x", vertCentralX, fragTexture,
			map[string]gpu.UniType{"tex": sampler}},
		{progCentralY, "central-y", vertCentralY, fragTexture,
			map[string]gpu.UniType{"tex": sampler}},
		{progCentralYComp, "central-y-compensated", vertCentralY, fragCompensated,
			map[string]gpu.UniType{"thisTex": sampler, "otherTex": sampler, "crossTalk": vec3}},
		{progFill, "fill", vertTexture, fragFill,
			map[string]gpu.UniType{"fillColor": vec4}},
		{progTransform, "transform", vertTransform, fragTextureAlpha,
			map[string]gpu.UniType{"mvp": mat3, "srcRect": vec4, "tex": sampler, "alpha": {Type: gpu.Float32}}},
	}
	for i := 0; i < 4; i++ {
		ch := anaglyphChannels[i]
		specs = append(specs,
			progSpec{progAnaglyph + progKey(i), "anaglyph-" + ch[0] + ch[1],
				vertTexture, anaglyphFragSrc(ch[0], ch[1]),
				map[string]gpu.UniType{"leftTex": sampler, "rightTex": sampler}},
			progSpec{progAnticross + progKey(i), "anticross-" + ch[0] + ch[1],
				vertTexture, anticrossFragSrc(ch[0], ch[1]),
				map[string]gpu.UniType{"leftTex": sampler, "rightTex": sampler, "crossTalk": vec2}},
		)
	}

	for _, ps := range specs {
		pr := gpu.TheGPU.NewProgram(ps.name)
		if _, err := pr.AddShader(gpu.VertexShader, ps.name+"-vert", ps.vert); err != nil {
			return err
		}
		if _, err := pr.AddShader(gpu.FragmentShader, ps.name+"-frag", ps.frag); err != nil {
			return err
		}
		for nm, ty := range ps.unis {
			pr.AddUniform(nm, ty, false, 0)
		}
		pr.AddInput("pos", gpu.VectorType{Type: gpu.Float32, Vec: 3}, gpu.VertexPosition)
		pr.AddInput("texCoord", gpu.VectorType{Type: gpu.Float32, Vec: 2}, gpu.VertexTexcoord)
		pr.SetFragDataVar("fragColor")
		if err := pr.Compile(false); err != nil {
			return err
		}
		cp.progs[ps.key] = pr
	}
	return nil
}

// newScreenQuad uploads the full-screen quad geometry, using the given
// program's inputs for the attribute layout (all compositing programs
// share explicit locations).
func newScreenQuad(pr gpu.Program) gpu.BufferMgr {
	bm := gpu.TheGPU.NewBufferMgr()
	vb := bm.AddVectorsBuffer(gpu.StaticDraw)
	vb.AddVectors(pr.InputByName("pos"), true)
	vb.AddVectors(pr.InputByName("texCoord"), true)
	vb.SetData([]float32{
		1, -1, 0, 1, 0,
		-1, -1, 0, 0, 0,
		-1, 1, 0, 0, 1,
		1, 1, 0, 1, 1,
	})
	ib := bm.AddIndexesBuffer(gpu.StaticDraw)
	ib.Set([]uint32{0, 1, 2, 3, 0, 2})
	bm.Activate()
	return bm
}

// Win returns the wrapped window.
func (cp *Compositor) Win() Window {
	return cp.win
}

// Mode returns the active stereo mode.
func (cp *Compositor) Mode() StereoMode {
	return cp.mode
}

// SetMode switches the active stereo mode.  The QuadBuffered and
// DualHead modes are fixed at construction: switching into or out of
// them returns an invalid-configuration error and leaves the mode
// unchanged.
func (cp *Compositor) SetMode(mode StereoMode) error {
	if cp.fixed {
		return errors.Log(fmt.Errorf("psykit: stereo mode %v is fixed at construction and cannot be changed", cp.mode))
	}
	if mode.Fixed() {
		return errors.Log(fmt.Errorf("psykit: stereo mode %v can only be selected at construction", mode))
	}
	md, err := mode.desc()
	if err != nil {
		return errors.Log(err)
	}
	cp.mode = mode
	cp.desc = md
	return nil
}

// SetFlipFunc registers fn to be called with the eye tag immediately
// after the physical swap that made that eye's image visible.  Only the
// Sequential and DualHead modes invoke it; used to synchronize external
// hardware such as goggles or projectors.  Pass nil to unregister.
func (cp *Compositor) SetFlipFunc(fn func(Eye)) {
	cp.flipFunc = fn
}

// SyncLine returns the active sync line location.
func (cp *Compositor) SyncLine() SyncLine {
	return cp.syncLine
}

// SetSyncLine sets the sync line location drawn on output frames in the
// Sequential and DualHead modes.
func (cp *Compositor) SetSyncLine(sl SyncLine) {
	cp.syncLine = sl
}

// CrossTalk returns the current cross-talk compensation coefficients.
func (cp *Compositor) CrossTalk() CrossTalk {
	return cp.crossTalk
}

// SetCrossTalk sets the full per-eye, per-channel cross-talk
// compensation matrix, clamping every coefficient to [0,1].  The
// R-channel coefficients are pushed into the plain anaglyph anticross
// programs immediately; the split-screen anticross modes consume the
// full matrix at draw time.
func (cp *Compositor) SetCrossTalk(ct CrossTalk) {
	cp.crossTalk = ct.clamped()
	if cp.progs[progAnticross] == nil {
		return
	}
	red := cp.crossTalk.red()
	for i := 0; i < 4; i++ {
		pr := cp.progs[progAnticross+progKey(i)]
		pr.Activate()
		pr.UniformByName("crossTalk").SetValue(red)
	}
}

// SetCrossTalkUniform sets one scalar compensation coefficient per eye,
// broadcast across the R, G, B channels.
func (cp *Compositor) SetCrossTalkUniform(left, right float32) {
	cp.SetCrossTalk(CrossTalkUniform(left, right))
}

// FixationOffset returns the shared fixation offset of both eyes, in
// the window's configured units.
func (cp *Compositor) FixationOffset() math32.Vector2 {
	return cp.win.FromPixels(cp.fix.Offset)
}

// SetFixationOffset shifts both eye partitions together by v, given in
// the window's configured units.  Effective only in the LeftRight and
// RightLeft modes.
func (cp *Compositor) SetFixationOffset(v math32.Vector2) {
	cp.fix.Offset = cp.win.ToPixels(v)
}

// Vergence returns the horizontal fixation vergence, in the window's
// configured units.
func (cp *Compositor) Vergence() float32 {
	return cp.win.FromPixels(math32.Vec2(cp.fix.Vergence, 0)).X
}

// SetVergence shifts the eye partitions horizontally toward (positive)
// or away from each other, in the window's configured units.
func (cp *Compositor) SetVergence(v float32) {
	cp.fix.Vergence = cp.win.ToPixels(math32.Vec2(v, 0)).X
}

// Tilt returns the vertical fixation tilt, in the window's configured
// units.
func (cp *Compositor) Tilt() float32 {
	return cp.win.FromPixels(math32.Vec2(0, cp.fix.Tilt)).Y
}

// SetTilt shifts the eye partitions vertically in opposite directions,
// in the window's configured units.
func (cp *Compositor) SetTilt(v float32) {
	cp.fix.Tilt = cp.win.ToPixels(math32.Vec2(0, v)).Y
}

// CurrentBuffer returns the eye selected by the last SetBuffer call.
func (cp *Compositor) CurrentBuffer() Eye {
	return cp.cur
}

// SetBuffer directs subsequent drawing into the given eye's render
// target: the default framebuffer in None mode, the hardware stereo
// back buffer in QuadBuffered mode, and the eye's offscreen buffer
// otherwise.  If clear is true the target is cleared to the window's
// background color.  The window's depth / stencil test configuration is
// re-applied.
func (cp *Compositor) SetBuffer(eye Eye, clear bool) {
	switch cp.mode {
	case None:
		gpu.TheGPU.RenderToWindow()
		gpu.Draw.Viewport(image.Rectangle{Max: cp.win.Size()})
	case QuadBuffered:
		cp.win.(StereoBuffers).SetDrawBuffer(eye)
	default:
		cp.eyeBufs[eye].Activate()
		gpu.Draw.Viewport(image.Rectangle{Max: cp.eyeBufs[eye].Size()})
	}
	if clear {
		bg := cp.win.BackgroundColor()
		gpu.Draw.ClearColor(bg.X, bg.Y, bg.Z)
		gpu.Draw.Clear(true, true)
	}
	gpu.Draw.DepthTest(cp.win.DepthTest())
	gpu.Draw.StencilTest(cp.win.StencilTest())
	cp.cur = eye
}

// SelectBuffer is SetBuffer with the eye given by name ("left" or
// "right").  An unknown name is an invalid-configuration error.
func (cp *Compositor) SelectBuffer(name string, clear bool) error {
	eye, err := ParseEye(name)
	if err != nil {
		return errors.Log(err)
	}
	cp.SetBuffer(eye, clear)
	return nil
}

// Flip composites both eye buffers into the output frame(s) per the
// active mode and performs the physical buffer swap(s).  In the
// Sequential and DualHead modes two swaps occur per call, and the
// registered flip func is invoked after each.  Returns the completion
// time of the final primary swap, or the zero time if the window does
// not wait for the vertical blank.
func (cp *Compositor) Flip() time.Time {
	if !cp.mode.Composited() {
		cp.win.DrawAuto()
		return cp.win.SwapBuffers(true)
	}

	cp.drawAutoBoth()
	gpu.TheGPU.RenderToWindow()

	switch cp.mode {
	case Sequential:
		return cp.flipSequential()
	case DualHead:
		return cp.flipDualHead()
	}

	cp.beginComposite(cp.quad)
	cp.compositeFrame(cp.win.Size())
	cp.endComposite()
	t := cp.win.SwapBuffers(true)
	cp.restoreBuffer()
	return t
}

// drawAutoBoth re-executes the window's persistent auto-drawn stimuli
// into both eye buffers, so persistent overlays appear identically in
// both eyes regardless of which buffer the application drew to last.
func (cp *Compositor) drawAutoBoth() {
	for eye := Left; eye <= Right; eye++ {
		cp.eyeBufs[eye].Activate()
		gpu.Draw.Viewport(image.Rectangle{Max: cp.eyeBufs[eye].Size()})
		cp.win.DrawAuto()
	}
}

// restoreBuffer re-binds the eye buffer selected before the flip.  The
// eye buffers themselves are left untouched; clearing is governed by
// SetBuffer's clear flag, so an application can draw incrementally
// across frames.
func (cp *Compositor) restoreBuffer() {
	cp.SetBuffer(cp.cur, false)
}

// compositeFrame issues the mode-specific composite draw(s) into the
// currently-bound render target of the given size.  Assumes
// beginComposite state.
func (cp *Compositor) compositeFrame(sz image.Point) {
	md := cp.desc
	full := image.Rectangle{Max: sz}
	switch {
	case md.axis != axisNone && md.anticross == 3:
		parts := partitions(md.axis, sz)
		for i, vp := range parts {
			eye := md.firstEye
			if i == 1 {
				eye = eye.Other()
			}
			cp.blipCompensated(eye, vp)
		}
	case md.axis != axisNone:
		parts := partitions(md.axis, sz)
		for i, vp := range parts {
			eye := md.firstEye
			if i == 1 {
				eye = eye.Other()
			}
			if md.fixation {
				sh := cp.fix.eyeShift(eye)
				vp = vp.Add(image.Pt(int(math32.Round(sh.X)), int(math32.Round(sh.Y))))
			}
			cp.blipEye(md.prog, eye, vp)
		}
	default: // anaglyph families: one full-viewport draw, both textures
		cp.blipAnaglyph(md.prog, full)
	}
}

// flipSequential presents the two eyes on consecutive video frames:
// blip left + sync line, swap (blocking on vertical blank if the
// window waits for it), notify left; then the same for the right eye.
func (cp *Compositor) flipSequential() time.Time {
	full := image.Rectangle{Max: cp.win.Size()}

	cp.beginComposite(cp.quad)
	cp.blipEye(progTexture, Left, full)
	cp.drawSyncLine(Left, full)
	cp.endComposite()
	cp.win.SwapBuffers(false)
	if cp.flipFunc != nil {
		cp.flipFunc(Left)
	}

	cp.beginComposite(cp.quad)
	cp.blipEye(progTexture, Right, full)
	cp.drawSyncLine(Right, full)
	cp.endComposite()
	t := cp.win.SwapBuffers(true)
	if cp.flipFunc != nil {
		cp.flipFunc(Right)
	}
	cp.restoreBuffer()
	return t
}

// flipDualHead presents the left eye on the primary output and the
// right eye on the secondary output.  The secondary context is made
// current only for the right-eye blip and its non-blocking swap, and
// the primary context is restored before returning.  Framebuffers and
// vertex arrays are not shared across contexts, so the secondary draw
// uses its own quad and samples the (shared) right-eye texture.
func (cp *Compositor) flipDualHead() time.Time {
	do := cp.win.(DualOutput)
	full := image.Rectangle{Max: cp.win.Size()}

	cp.beginComposite(cp.quad)
	cp.blipEye(progTexture, Left, full)
	cp.drawSyncLine(Left, full)
	cp.endComposite()
	t := cp.win.SwapBuffers(true)
	if cp.flipFunc != nil {
		cp.flipFunc(Left)
	}

	do.MakeSecondaryCurrent()
	sz2 := do.SecondarySize()
	gpu.TheGPU.RenderToWindow()
	cp.beginComposite(cp.quad2)
	cp.blipEye(progTexture, Right, image.Rectangle{Max: sz2})
	cp.drawSyncLine(Right, image.Rectangle{Max: sz2})
	cp.endComposite()
	do.SwapSecondary()
	do.MakePrimaryCurrent()
	if cp.flipFunc != nil {
		cp.flipFunc(Right)
	}
	cp.restoreBuffer()
	return t
}

// beginComposite sets up the fixed compositing state: depth / stencil
// tests and blending off, screen quad bound.
func (cp *Compositor) beginComposite(quad gpu.BufferMgr) {
	gpu.Draw.DepthTest(false)
	gpu.Draw.StencilTest(false)
	gpu.Draw.Op(gpu.Src)
	quad.Activate()
}

// endComposite restores the window's configured depth / stencil test
// state -- downstream drawing code is not tolerant of stale state.
func (cp *Compositor) endComposite() {
	gpu.Draw.DepthTest(cp.win.DepthTest())
	gpu.Draw.StencilTest(cp.win.StencilTest())
}

// blipEye draws one eye's texture into the given viewport with a
// single-texture program.
func (cp *Compositor) blipEye(pk progKey, eye Eye, vp image.Rectangle) {
	pr := cp.progs[pk]
	pr.Activate()
	cp.eyeBufs[eye].Texture().Activate(0)
	pr.UniformByName("tex").SetValue(0)
	gpu.Draw.Viewport(vp)
	gpu.Draw.TrianglesIndexed(0, 6)
}

// blipCompensated draws one eye's texture into the given viewport with
// the cross-talk-compensated split program, rebinding the this / other
// texture roles and the eye's 3-channel coefficients per call.
func (cp *Compositor) blipCompensated(eye Eye, vp image.Rectangle) {
	pr := cp.progs[progCentralYComp]
	pr.Activate()
	cp.eyeBufs[eye].Texture().Activate(0)
	cp.eyeBufs[eye.Other()].Texture().Activate(1)
	pr.UniformByName("thisTex").SetValue(0)
	pr.UniformByName("otherTex").SetValue(1)
	pr.UniformByName("crossTalk").SetValue(cp.crossTalk.Eye(eye))
	gpu.Draw.Viewport(vp)
	gpu.Draw.TrianglesIndexed(0, 6)
}

// blipAnaglyph draws both eye textures in one full-viewport pass with
// the given anaglyph program.
func (cp *Compositor) blipAnaglyph(pk progKey, vp image.Rectangle) {
	pr := cp.progs[pk]
	pr.Activate()
	cp.eyeBufs[Left].Texture().Activate(0)
	cp.eyeBufs[Right].Texture().Activate(1)
	pr.UniformByName("leftTex").SetValue(0)
	pr.UniformByName("rightTex").SetValue(1)
	gpu.Draw.Viewport(vp)
	gpu.Draw.TrianglesIndexed(0, 6)
}

// drawSyncLine draws the sync line(s) into the given output rect, if
// configured: white on left-eye frames, black on right-eye frames.
func (cp *Compositor) drawSyncLine(eye Eye, out image.Rectangle) {
	if cp.syncLine == SyncNone {
		return
	}
	pr := cp.progs[progFill]
	pr.Activate()
	col := [4]float32{0, 0, 0, 1}
	if eye == Left {
		col = [4]float32{1, 1, 1, 1}
	}
	pr.UniformByName("fillColor").SetValue(col)
	if cp.syncLine == SyncBottom || cp.syncLine == SyncBoth {
		gpu.Draw.Viewport(image.Rect(out.Min.X, out.Min.Y, out.Max.X, out.Min.Y+syncLineWidth))
		gpu.Draw.TrianglesIndexed(0, 6)
	}
	if cp.syncLine == SyncTop || cp.syncLine == SyncBoth {
		gpu.Draw.Viewport(image.Rect(out.Min.X, out.Max.Y-syncLineWidth, out.Max.X, out.Max.Y))
		gpu.Draw.TrianglesIndexed(0, 6)
	}
}

// partitions returns the two viewport rects along the given axis.
// Integer division gives partitions of d/2 and d-d/2 pixels; they
// always tile the window exactly, and an odd dimension puts the extra
// pixel in the second partition (a known rounding artifact, kept).
func partitions(axis partAxis, sz image.Point) [2]image.Rectangle {
	switch axis {
	case axisHorizontal:
		w := sz.X / 2
		return [2]image.Rectangle{
			image.Rect(0, 0, w, sz.Y),
			image.Rect(w, 0, sz.X, sz.Y),
		}
	case axisVertical:
		h := sz.Y / 2
		// first partition is the top half; GL origin is bottom-left
		return [2]image.Rectangle{
			image.Rect(0, h, sz.X, sz.Y),
			image.Rect(0, 0, sz.X, h),
		}
	}
	return [2]image.Rectangle{{Max: sz}, {}}
}

// Delete releases all GPU resources owned by the compositor.  Must be
// called with the window's context current, before the context is torn
// down.
func (cp *Compositor) Delete() {
	for eye := Left; eye <= Right; eye++ {
		if cp.eyeBufs[eye] != nil {
			cp.eyeBufs[eye].Delete()
			cp.eyeBufs[eye] = nil
		}
	}
	for i, pr := range cp.progs {
		if pr != nil {
			pr.Delete()
			cp.progs[i] = nil
		}
	}
	if cp.quad != nil {
		cp.quad.Delete()
		cp.quad = nil
	}
	if cp.quad2 != nil {
		if do, ok := cp.win.(DualOutput); ok {
			do.MakeSecondaryCurrent()
			cp.quad2.Delete()
			do.MakePrimaryCurrent()
		}
		cp.quad2 = nil
	}
}

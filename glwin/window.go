// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glwin provides the glfw-backed host window consumed by the
// stereo compositor: a double-buffered GL 4.1 core window with optional
// hardware stereo buffers and an optional secondary output sharing its
// GL object space.
//
// Execution is single-threaded and frame-stepped: create the window and
// issue all drawing and flips from the main thread.
package glwin

import (
	"fmt"
	"image"
	"runtime"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/herrlich10/psykit"
	"github.com/herrlich10/psykit/gpu"

	_ "github.com/herrlich10/psykit/glgpu" // installs the GL driver
)

func init() {
	// glfw event handling and context creation must run on the main
	// OS thread.
	runtime.LockOSThread()
}

var glfwInit bool

// Monitor holds the physical geometry needed for the cm and deg unit
// systems.
type Monitor struct {

	// WidthCm is the physical width of the display area in centimeters.
	WidthCm float32

	// DistanceCm is the viewing distance in centimeters.
	DistanceCm float32
}

// Options configures a new Window.  The zero value gives a windowed
// 800x600 pixel-unit window on the primary monitor.
type Options struct {

	// Title is the window title.
	Title string

	// Size is the requested size in screen coordinates.
	Size image.Point

	// Pos is the requested position, for windowed mode.
	Pos image.Point

	// Fullscreen makes the window cover its monitor.
	Fullscreen bool

	// Screen is the monitor index for the (primary) output.
	Screen int

	// Screen2 is the monitor index for the secondary output in
	// dual-head stereo; -1 (the default from NewOptions) for none.
	Screen2 int

	// Units is the unit system for sizes and positions exposed by the
	// window.
	Units Units

	// Monitor is the physical geometry, required by the cm and deg
	// unit systems.
	Monitor Monitor

	// BackgroundColor is the clear color, in [0,1] RGB.
	BackgroundColor math32.Vector3

	// WaitBlanking makes buffer swaps block until the vertical blank.
	WaitBlanking bool

	// DepthTest enables depth testing for stimulus drawing.
	DepthTest bool

	// StencilTest enables stencil testing for stimulus drawing.
	StencilTest bool

	// Stereo requests native hardware stereo (quad-buffered) back
	// buffers; window creation fails if the driver cannot provide
	// them.
	Stereo bool
}

// NewOptions returns Options with the defaults: 800x600, pixel units,
// gray background, waiting for vertical blank.
func NewOptions() *Options {
	return &Options{
		Title:           "psykit",
		Size:            image.Pt(800, 600),
		Screen2:         -1,
		Units:           UnitsPix,
		BackgroundColor: math32.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
		WaitBlanking:    true,
	}
}

// Stim is anything that can draw itself into the current render target.
type Stim interface {
	Draw()
}

// Window is a glfw window implementing the compositor's host window
// capability, including hardware stereo buffer selection when created
// with Options.Stereo and secondary-output control when created with
// Options.Screen2 >= 0.
type Window struct {
	opts Options
	glw  *glfw.Window
	glw2 *glfw.Window

	// auto-drawn stimuli, re-executed into every frame
	stims []Stim
}

// New creates the window, makes its context current and initializes the
// GL driver.  Must be called on the main thread.
func New(opts *Options) (*Window, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if !glfwInit {
		if err := glfw.Init(); err != nil {
			return nil, errors.Log(fmt.Errorf("glwin: glfw init failed: %w", err))
		}
		glfwInit = true
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	if opts.Stereo {
		glfw.WindowHint(glfw.Stereo, glfw.True)
	}

	var mon *glfw.Monitor
	if opts.Fullscreen {
		mon = monitorAt(opts.Screen)
	}
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, mon, nil)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("glwin: window creation failed: %w", err))
	}
	if mon == nil && (opts.Pos.X != 0 || opts.Pos.Y != 0) {
		glw.SetPos(opts.Pos.X, opts.Pos.Y)
	}

	w := &Window{opts: *opts, glw: glw}

	if opts.Screen2 >= 0 {
		glfw.WindowHint(glfw.Stereo, glfw.False)
		mon2 := monitorAt(opts.Screen2)
		if !opts.Fullscreen {
			mon2 = nil
		}
		w.glw2, err = glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, mon2, glw)
		if err != nil {
			glw.Destroy()
			return nil, errors.Log(fmt.Errorf("glwin: secondary window creation failed: %w", err))
		}
		// secondary swaps must not block on its vertical blank
		w.glw2.MakeContextCurrent()
		glfw.SwapInterval(0)
	}

	glw.MakeContextCurrent()
	if opts.WaitBlanking {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if err := gpu.TheGPU.Init(); err != nil {
		w.Close()
		return nil, err
	}
	gpu.Draw.ClearColor(opts.BackgroundColor.X, opts.BackgroundColor.Y, opts.BackgroundColor.Z)
	gpu.Draw.Clear(true, true)
	return w, nil
}

func monitorAt(idx int) *glfw.Monitor {
	mons := glfw.GetMonitors()
	if idx >= 0 && idx < len(mons) {
		return mons[idx]
	}
	return glfw.GetPrimaryMonitor()
}

// Size returns the drawable size in pixels.
func (w *Window) Size() image.Point {
	x, y := w.glw.GetFramebufferSize()
	return image.Pt(x, y)
}

// BackgroundColor returns the configured clear color.
func (w *Window) BackgroundColor() math32.Vector3 {
	return w.opts.BackgroundColor
}

// SetBackgroundColor sets the clear color used for subsequent clears.
func (w *Window) SetBackgroundColor(c math32.Vector3) {
	w.opts.BackgroundColor = c
}

// DepthTest returns the configured depth test flag.
func (w *Window) DepthTest() bool {
	return w.opts.DepthTest
}

// StencilTest returns the configured stencil test flag.
func (w *Window) StencilTest() bool {
	return w.opts.StencilTest
}

// WaitBlanking returns true if swaps block until the vertical blank.
func (w *Window) WaitBlanking() bool {
	return w.opts.WaitBlanking
}

// Units returns the window's configured unit system.
func (w *Window) Units() Units {
	return w.opts.Units
}

// ToPixels converts a vector in the window's configured units to pixels.
func (w *Window) ToPixels(v math32.Vector2) math32.Vector2 {
	return w.opts.Units.ToPixels(v, w.Size(), w.opts.Monitor)
}

// FromPixels converts a vector in pixels to the window's configured
// units.
func (w *Window) FromPixels(v math32.Vector2) math32.Vector2 {
	return w.opts.Units.FromPixels(v, w.Size(), w.opts.Monitor)
}

// AddAutoDraw registers a stimulus to be drawn into every frame until
// removed.
func (w *Window) AddAutoDraw(st Stim) {
	w.stims = append(w.stims, st)
}

// RemoveAutoDraw unregisters a previously added auto-drawn stimulus.
func (w *Window) RemoveAutoDraw(st Stim) {
	for i, s := range w.stims {
		if s == st {
			w.stims = append(w.stims[:i], w.stims[i+1:]...)
			return
		}
	}
}

// DrawAuto executes all auto-drawn stimuli into the current render
// target, in registration order.
func (w *Window) DrawAuto() {
	for _, st := range w.stims {
		st.Draw()
	}
}

// SwapBuffers performs the physical buffer swap, blocking until the
// vertical blank if the window waits for it, and returns the swap
// completion time (the zero time when not waiting -- the swap may then
// complete asynchronously and the clock would lie).  If clear is true
// the new back buffer is cleared to the background color.
func (w *Window) SwapBuffers(clear bool) time.Time {
	w.glw.SwapBuffers()
	var t time.Time
	if w.opts.WaitBlanking {
		// make sure the swap has actually completed before timestamping
		gl.Finish()
		t = time.Now()
	}
	if clear {
		bg := w.opts.BackgroundColor
		gpu.Draw.ClearColor(bg.X, bg.Y, bg.Z)
		gpu.Draw.Clear(true, true)
	}
	return t
}

// SetDrawBuffer directs drawing to the hardware back buffer of the
// given eye.  Only valid on windows created with Options.Stereo.
func (w *Window) SetDrawBuffer(eye psykit.Eye) {
	if eye == psykit.Left {
		gl.DrawBuffer(gl.BACK_LEFT)
	} else {
		gl.DrawBuffer(gl.BACK_RIGHT)
	}
}

// SecondarySize returns the drawable size of the secondary output.
func (w *Window) SecondarySize() image.Point {
	if w.glw2 == nil {
		return image.Point{}
	}
	x, y := w.glw2.GetFramebufferSize()
	return image.Pt(x, y)
}

// MakeSecondaryCurrent makes the secondary output's context current.
func (w *Window) MakeSecondaryCurrent() {
	if w.glw2 != nil {
		w.glw2.MakeContextCurrent()
	}
}

// SwapSecondary swaps the secondary output's buffers without blocking
// on its vertical blank.
func (w *Window) SwapSecondary() {
	if w.glw2 != nil {
		w.glw2.SwapBuffers()
	}
}

// MakePrimaryCurrent restores the primary output's context.
func (w *Window) MakePrimaryCurrent() {
	w.glw.MakeContextCurrent()
}

// ShouldClose reports whether the user has requested the window to
// close.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// PollEvents processes pending window events.  Call once per frame.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Close destroys the window(s).  GPU resources created in their
// contexts must be deleted first.
func (w *Window) Close() {
	if w.glw2 != nil {
		w.glw2.Destroy()
		w.glw2 = nil
	}
	if w.glw != nil {
		w.glw.Destroy()
		w.glw = nil
	}
}

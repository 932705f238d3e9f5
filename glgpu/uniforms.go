// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/herrlich10/psykit/gpu"
	"golang.org/x/image/math/f64"
)

// uniform represents a single uniform variable used as a separate
// independent uniform.  This can be an array of values as well, in which
// case a NAME_LEN macro is always defined to reflect the length of the
// array.  These uniforms are used directly to generate the shader code.
// See Program.AddUniform to create a new standalone one.
type uniform struct {
	init   bool
	name   string
	handle int32
	typ    gpu.UniType
	array  bool
	ln     int
}

// Name returns name of the uniform
func (un *uniform) Name() string {
	return un.name
}

// Type returns type of the uniform
func (un *uniform) Type() gpu.UniType {
	return un.typ
}

// Array returns true if this is an array uniform.
// If so, then it automatically generates a #define NAME_LEN <Len> definition prior
// to the uniform definition, and if Len == 0 then it is *not* defined at all.
// All code referencing this uniform should use #if NAME_LEN>0 wrapper.
func (un *uniform) Array() bool {
	return un.array
}

// Len returns number of array elements, if an Array (can be 0)
func (un *uniform) Len() int {
	return un.ln
}

// Handle returns the unique location for this uniform within its program.
// Only valid after the program is compiled.
func (un *uniform) Handle() int32 {
	return un.handle
}

// SetValue sets the value of the uniform in the currently-active program.
// Must be of a supported elemental, slice, array, math32 vector, or
// f64.Aff3 type matching the uniform's declared type.
func (un *uniform) SetValue(val any) error {
	if !un.init {
		return errors.Log(fmt.Errorf("glgpu uniform %s: SetValue called before program compiled", un.name))
	}
	switch v := val.(type) {
	case bool:
		b := int32(0)
		if v {
			b = 1
		}
		gl.Uniform1i(un.handle, b)
	case int:
		gl.Uniform1i(un.handle, int32(v))
	case int32:
		gl.Uniform1i(un.handle, v)
	case uint32:
		gl.Uniform1ui(un.handle, v)
	case float32:
		gl.Uniform1f(un.handle, v)
	case [2]float32:
		gl.Uniform2f(un.handle, v[0], v[1])
	case [3]float32:
		gl.Uniform3f(un.handle, v[0], v[1], v[2])
	case [4]float32:
		gl.Uniform4f(un.handle, v[0], v[1], v[2], v[3])
	case math32.Vector2:
		gl.Uniform2f(un.handle, v.X, v.Y)
	case math32.Vector3:
		gl.Uniform3f(un.handle, v.X, v.Y, v.Z)
	case []float32:
		switch {
		case un.typ.Vec == 0:
			gl.Uniform1fv(un.handle, int32(len(v)), &v[0])
		case un.typ.Vec == 2:
			gl.Uniform2fv(un.handle, int32(len(v)/2), &v[0])
		case un.typ.Vec == 3:
			gl.Uniform3fv(un.handle, int32(len(v)/3), &v[0])
		case un.typ.Vec == 4:
			gl.Uniform4fv(un.handle, int32(len(v)/4), &v[0])
		default:
			return errors.Log(fmt.Errorf("glgpu uniform %s: unsupported vec size %d", un.name, un.typ.Vec))
		}
	case f64.Aff3:
		writeAff3(un.handle, v)
	default:
		return errors.Log(fmt.Errorf("glgpu uniform %s: unsupported value type %T", un.name, val))
	}
	return theGPU.ErrCheck("uniform SetValue " + un.name)
}

// LenDefine returns the #define NAME_LEN source code for this uniform, empty if not an array
func (un *uniform) LenDefine() string {
	if !un.array {
		return ""
	}
	unm := strings.ToUpper(un.name)
	return fmt.Sprintf("#define %s_LEN %d\n", unm, un.ln)
}

// writeAff3 writes the given affine transform as a 3x3 matrix uniform
// at given location in the currently-active program.
func writeAff3(u int32, a f64.Aff3) {
	var m [9]float32
	m[0*3+0] = float32(a[0*3+0])
	m[0*3+1] = float32(a[1*3+0])
	m[0*3+2] = 0
	m[1*3+0] = float32(a[0*3+1])
	m[1*3+1] = float32(a[1*3+1])
	m[1*3+2] = 0
	m[2*3+0] = float32(a[0*3+2])
	m[2*3+1] = float32(a[1*3+2])
	m[2*3+2] = 1
	gl.UniformMatrix3fv(u, 1, false, &m[0])
	glErrProc("writeaff3")
}

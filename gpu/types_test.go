// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniTypeName(t *testing.T) {
	tests := []struct {
		ty   UniType
		name string
	}{
		{UniType{Type: Float32}, "float"},
		{UniType{Type: Int}, "int"},
		{UniType{Type: Float32, Vec: 2}, "vec2"},
		{UniType{Type: Float32, Vec: 3}, "vec3"},
		{UniType{Type: Float32, Vec: 4}, "vec4"},
		{UniType{Type: Int, Vec: 2}, "ivec2"},
		{UniType{Type: UInt, Vec: 3}, "uvec3"},
		{UniType{Type: Float64, Vec: 2}, "dvec2"},
		{UniType{Type: Float32, Mat: 3}, "mat3"},
		{UniType{Type: Float32, Mat: 4}, "mat4"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.name, tc.ty.Name())
	}
}

func TestUniTypeBytes(t *testing.T) {
	f32 := UniType{Type: Float32}
	assert.Equal(t, 4, f32.Bytes())
	f64 := UniType{Type: Float64}
	assert.Equal(t, 8, f64.Bytes())

	v3 := VectorType{Type: Float32, Vec: 3}
	assert.Equal(t, 12, v3.Bytes())
}

func TestCString(t *testing.T) {
	assert.Equal(t, "abc\x00", CString("abc"))
	assert.Equal(t, "abc\x00", CString("abc\x00"))
	assert.Equal(t, "\x00", CString(""))

	assert.Equal(t, "abc", GoString("abc\x00"))
	assert.Equal(t, "abc", GoString("abc"))
	assert.Equal(t, "", GoString("\x00"))
}

// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// Types is a list of GPU data types that can be used in uniforms and
// vertex inputs.
type Types int32

const (
	UndefType Types = iota
	Bool
	Int
	UInt
	Float32
	Float64
	TypesN
)

// TypeNames maps Types to their GLSL names.
var TypeNames = map[Types]string{
	UndefType: "none",
	Bool:      "bool",
	Int:       "int",
	UInt:      "uint",
	Float32:   "float",
	Float64:   "double",
}

func (tp Types) String() string {
	if nm, ok := TypeNames[tp]; ok {
		return nm
	}
	return "none"
}

// UniType represents a fully-specified GPU uniform type, including vector
// or matrix dimensionality.
type UniType struct {

	// data type
	Type Types

	// if a vector, this is the length of the vector, 0 for scalar
	Vec int

	// if a matrix, this is the number of rows and columns (only square
	// matrices are supported), 0 for non-matrix
	Mat int
}

// Name returns the full GLSL type name for the type.
func (ty *UniType) Name() string {
	if ty.Vec == 0 && ty.Mat == 0 {
		return ty.Type.String()
	}
	pfx := ""
	switch ty.Type {
	case Int:
		pfx = "i"
	case UInt:
		pfx = "u"
	case Float64:
		pfx = "d"
	case Bool:
		pfx = "b"
	}
	if ty.Vec > 0 {
		return fmt.Sprintf("%svec%d", pfx, ty.Vec)
	}
	return fmt.Sprintf("%smat%d", pfx, ty.Mat)
}

// Bytes returns the number of bytes per element of the given type.
func (ty *UniType) Bytes() int {
	switch ty.Type {
	case Float64:
		return 8
	default:
		return 4
	}
}

// VectorType represents a fully-specified GPU vector input type.
type VectorType struct {

	// data type
	Type Types

	// length of vector (1 for scalar inputs)
	Vec int
}

// Bytes returns the number of bytes for one value of the given type.
func (ty *VectorType) Bytes() int {
	n := 4
	if ty.Type == Float64 {
		n = 8
	}
	return n * ty.Vec
}

// CString returns a null-terminated string if not already so terminated.
func CString(s string) string {
	sz := len(s)
	if sz == 0 {
		return "\x00"
	}
	if s[sz-1] != '\x00' {
		return s + "\x00"
	}
	return s
}

// GoString returns a non-null-terminated string if null terminated.
func GoString(s string) string {
	sz := len(s)
	if sz == 0 {
		return s
	}
	if s[sz-1] == '\x00' {
		return s[:sz-1]
	}
	return s
}

// VectorRoles are the roles a vertex buffer element can play in rendering.
type VectorRoles int32

const (
	UndefRole VectorRoles = iota
	VertexPosition
	VertexNormal
	VertexTexcoord
	VertexColor
	VectorRolesN
)

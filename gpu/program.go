// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Program manages a set of shaders and associated uniform and vertex
// input variables, which together comprise a complete GPU rendering
// pipeline program.
type Program interface {
	// Name returns the unique name of this program.
	Name() string

	// SetName sets the name of the program.
	SetName(name string)

	// AddShader adds shader of given type and unique name to the
	// program, with the given GLSL source.  The source does not need
	// to be compiled until Compile is called.
	AddShader(typ ShaderTypes, name string, src string) (Shader, error)

	// ShaderByName returns shader by its unique name.
	ShaderByName(name string) Shader

	// ShaderByType returns shader by its type.
	ShaderByType(typ ShaderTypes) Shader

	// SetFragDataVar sets the variable name to use for the fragment
	// shader output.
	SetFragDataVar(name string)

	// AddUniform adds an individual standalone uniform variable to the
	// program of given type.  Must add all uniform variables before
	// compiling, as they add to source.
	AddUniform(name string, typ UniType, ary bool, ln int) Uniform

	// UniformByName returns a uniform based on unique name -- this
	// could be in a Uniforms collection or standalone.
	UniformByName(name string) Uniform

	// AddInput adds a Vector input variable to the program -- name
	// must = 'location' in loading vertex data.
	AddInput(name string, typ VectorType, role VectorRoles) Vector

	// InputByName returns a Vector input variable by name.
	InputByName(name string) Vector

	// Compile compiles all the shaders and links the program, binds
	// the uniforms and input vectors.  If showSrc is true, shows
	// the source code with line numbers.
	Compile(showSrc bool) error

	// Handle returns the handle for the program -- only valid after
	// a Compile call.
	Handle() uint32

	// Activate activates this as the active program -- must have been
	// Compiled first.
	Activate()

	// Delete deletes the GPU resources associated with this program.
	// Should be called prior to Go object being deleted.
	Delete()
}

// Shader manages a single shader program.
type Shader interface {
	// Name returns the unique name of this shader.
	Name() string

	// Type returns the type of the shader.
	Type() ShaderTypes

	// Compile compiles given source code for the shader.
	Compile(src string) error

	// Handle returns the GPU handle for the shader.
	Handle() uint32

	// Source returns the actual final source code for the shader.
	Source() string

	// OrigSource returns the original user-supplied source code.
	OrigSource() string

	// Delete deletes the GPU resources associated with this shader.
	Delete()
}

// ShaderTypes is a list of GPU shader types.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
	ComputeShader
	GeometryShader
	TessCtrlShader
	TessEvalShader
	ShaderTypesN
)

// Uniform represents a single uniform variable, which can be contained
// within a program.
type Uniform interface {
	// Name returns the name of the uniform.
	Name() string

	// Type returns the type of the uniform.
	Type() UniType

	// Array returns true if this is an array uniform.
	Array() bool

	// Len returns the number of array elements, if an array.
	Len() int

	// Handle returns the handle (location) for the uniform within the
	// program -- only valid after program has been compiled.
	Handle() int32

	// SetValue sets the value of the uniform in the currently-active
	// program.  Errors if the value type is not supported, or the
	// program is not compiled.
	SetValue(val any) error

	// LenDefine returns the #define NAME_LEN source code for
	// array length, empty if not an array.
	LenDefine() string
}

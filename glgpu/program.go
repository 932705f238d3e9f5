// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/herrlich10/psykit/gpu"
)

// program manages a set of shaders and associated variables and uniforms.
// All uniforms must be added before compiling program.
type program struct {
	init        bool
	handle      uint32
	name        string
	shaders     map[gpu.ShaderTypes]*shader
	unis        map[string]*uniform
	ins         map[string]*vectors
	fragDataVar string
}

// Name returns name of program
func (pr *program) Name() string {
	return pr.name
}

// SetName sets name of program
func (pr *program) SetName(name string) {
	pr.name = name
}

// AddShader adds shader of given type, unique name and source code.
// Any array uniforms will add their #define NAME_LEN's to the top
// of the source code automatically, so the source can assume those exist
// when compiled.
func (pr *program) AddShader(typ gpu.ShaderTypes, name string, src string) (gpu.Shader, error) {
	if pr.shaders == nil {
		pr.shaders = make(map[gpu.ShaderTypes]*shader)
	}
	if _, has := pr.shaders[typ]; has {
		return nil, errors.Log(fmt.Errorf("glgpu AddShader: shader of that type already added to program %s", pr.name))
	}
	sh := &shader{name: name, typ: typ, orgSrc: src}
	pr.shaders[typ] = sh
	return sh, nil
}

// ShaderByName returns shader by its unique name
func (pr *program) ShaderByName(name string) gpu.Shader {
	for _, sh := range pr.shaders {
		if sh.name == name {
			return sh
		}
	}
	errors.Log(fmt.Errorf("glgpu ShaderByName: shader named %s not found in program %s", name, pr.name))
	return nil
}

// ShaderByType returns shader by its type
func (pr *program) ShaderByType(typ gpu.ShaderTypes) gpu.Shader {
	sh, ok := pr.shaders[typ]
	if !ok {
		errors.Log(fmt.Errorf("glgpu ShaderByType: shader of given type not found in program %s", pr.name))
		return nil
	}
	return sh
}

// SetFragDataVar sets the variable name to use for the fragment shader's output
func (pr *program) SetFragDataVar(name string) {
	pr.fragDataVar = name
}

// AddUniform adds an individual standalone uniform variable to the program of given type.
// Must add all uniform variables before compiling, as they add to source.
func (pr *program) AddUniform(name string, typ gpu.UniType, ary bool, ln int) gpu.Uniform {
	if pr.unis == nil {
		pr.unis = make(map[string]*uniform)
	}
	u := &uniform{name: name, typ: typ, array: ary, ln: ln}
	pr.unis[name] = u
	return u
}

// UniformByName returns a uniform based on unique name.
// Returns nil if not found (error auto logged)
func (pr *program) UniformByName(name string) gpu.Uniform {
	u, ok := pr.unis[name]
	if !ok {
		errors.Log(fmt.Errorf("glgpu UniformByName: name %s not found in program %s", name, pr.name))
		return nil
	}
	return u
}

// AddInput adds a Vector input variable to the program -- name must = 'in' var name.
// This input will get bound to variable and handle updated when program is compiled.
func (pr *program) AddInput(name string, typ gpu.VectorType, role gpu.VectorRoles) gpu.Vector {
	if pr.ins == nil {
		pr.ins = make(map[string]*vectors)
	}
	v := &vectors{name: name, typ: typ, role: role}
	pr.ins[name] = v
	return v
}

// InputByName returns given input vector by name.
// Returns nil if not found (error auto logged)
func (pr *program) InputByName(name string) gpu.Vector {
	v, ok := pr.ins[name]
	if !ok {
		errors.Log(fmt.Errorf("glgpu InputByName: name %s not found in program %s", name, pr.name))
		return nil
	}
	return v
}

// Compile compiles all the shaders and links the program, binds the uniforms
// and input vector variables.
// This must be called after setting the lengths of any array uniforms.
func (pr *program) Compile(showSrc bool) error {
	defs := ""
	for _, u := range pr.unis {
		defs += u.LenDefine()
	}

	handle := gl.CreateProgram()
	for _, sh := range pr.shaders {
		src := defs + sh.orgSrc
		err := sh.Compile(src)
		if err != nil {
			return err
		}
		gl.AttachShader(handle, sh.handle)
		if showSrc {
			fmt.Printf("\n#################################\nglgpu program: %s shader: %s src:\n%s\n", pr.name, sh.name, sh.Source())
		}
	}
	// fragment output binding must precede the link to take effect
	if pr.fragDataVar != "" {
		gl.BindFragDataLocation(handle, 0, gl.Str(gpu.CString(pr.fragDataVar)))
	}
	gl.LinkProgram(handle)
	gl.ValidateProgram(handle)

	for _, sh := range pr.shaders {
		gl.DetachShader(handle, sh.handle)
		sh.Delete()
	}

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &lgLength)

		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(handle, lgLength, nil, gl.Str(lg))

		return errors.Log(fmt.Errorf("glgpu program %s failed to link: %v", pr.name, lg))
	}

	// bind uniforms
	for _, u := range pr.unis {
		u.handle = gl.GetUniformLocation(handle, gl.Str(gpu.CString(u.name)))
		if u.handle < 0 {
			return errors.Log(fmt.Errorf("glgpu program %s: uniform named: %s not found", pr.name, u.name))
		}
		u.init = true
	}
	// bind inputs
	for _, v := range pr.ins {
		hnd := gl.GetAttribLocation(handle, gl.Str(gpu.CString(v.name)))
		if hnd < 0 {
			return errors.Log(fmt.Errorf("glgpu program %s: input named: %s not found", pr.name, v.name))
		}
		v.handle = uint32(hnd)
	}
	pr.handle = handle
	pr.init = true
	return nil
}

// Handle returns the handle for the program -- only valid after a Compile call
func (pr *program) Handle() uint32 {
	return pr.handle
}

// Activate activates this as the active program -- must have been Compiled first.
func (pr *program) Activate() {
	if !pr.init {
		return
	}
	gl.UseProgram(pr.handle)
}

// Delete deletes the GPU resources associated with this program
// (requires Compile and Activate to re-establish a new one).
// Should be called prior to Go object being deleted
// (ref counting can be done externally).
func (pr *program) Delete() {
	if !pr.init {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
}

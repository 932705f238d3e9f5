// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psykit

import "cogentcore.org/core/math32"

// CrossTalk holds the per-eye, per-channel leakage compensation
// coefficients.  CrossTalk[eye][channel] is the fraction of the other
// eye's channel intensity that leaks into this eye's displayed image,
// to be subtracted (floored at zero) by the anticross compositing
// programs.  Coefficients are always in [0,1].
type CrossTalk [2][3]float32

// CrossTalkUniform returns a CrossTalk with the given scalar coefficient
// per eye, broadcast across the R, G, B channels and clamped to [0,1].
func CrossTalkUniform(left, right float32) CrossTalk {
	var ct CrossTalk
	for c := 0; c < 3; c++ {
		ct[Left][c] = left
		ct[Right][c] = right
	}
	return ct.clamped()
}

// clamped returns the coefficients clamped to [0,1].
func (ct CrossTalk) clamped() CrossTalk {
	for e := range ct {
		for c := range ct[e] {
			ct[e][c] = math32.Clamp(ct[e][c], 0, 1)
		}
	}
	return ct
}

// Eye returns the coefficient vector for the given eye.
func (ct CrossTalk) Eye(eye Eye) [3]float32 {
	return ct[eye]
}

// red returns the R-channel-only 2-component form pushed into the plain
// anaglyph anticross programs.
func (ct CrossTalk) red() [2]float32 {
	return [2]float32{ct[Left][0], ct[Right][0]}
}

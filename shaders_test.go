// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psykit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnaglyphFragSrc(t *testing.T) {
	src := anaglyphFragSrc("r", "g")
	assert.Contains(t, src, "c.r = texture(leftTex, uv).r;")
	assert.Contains(t, src, "c.g = texture(rightTex, uv).g;")
	assert.True(t, strings.HasSuffix(src, "\x00"))

	src = anaglyphFragSrc("b", "r")
	assert.Contains(t, src, "c.b = texture(leftTex, uv).b;")
	assert.Contains(t, src, "c.r = texture(rightTex, uv).r;")
}

func TestAnticrossFragSrc(t *testing.T) {
	// subtraction stays on the same channel and floors at zero
	src := anticrossFragSrc("r", "b")
	assert.Contains(t, src, "c.r = max(texture(leftTex, uv).r - crossTalk.x * texture(rightTex, uv).r, 0.0);")
	assert.Contains(t, src, "c.b = max(texture(rightTex, uv).b - crossTalk.y * texture(leftTex, uv).b, 0.0);")
	assert.True(t, strings.HasSuffix(src, "\x00"))
}

func TestShaderSourcesTerminated(t *testing.T) {
	for _, src := range []string{
		vertTexture, vertCentralX, vertCentralY, vertTransform,
		fragTexture, fragTextureAlpha, fragCompensated, fragFill,
	} {
		assert.True(t, strings.HasSuffix(src, "\x00"))
		assert.Contains(t, src, "#version 410")
	}
}

// Copyright (c) 2025, The PsyKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psykit

import "fmt"

// Vertex stages.  The screen quad spans the full clip space; the
// central-crop variants sample only the middle half of the texture along
// one axis, so that a full-width eye image shown in a half-width viewport
// is cropped rather than squeezed.

var vertTexture = `
#version 410
layout(location = 0) in vec3 pos;
layout(location = 1) in vec2 texCoord;
out vec2 uv;
void main() {
	gl_Position = vec4(pos, 1.0);
	uv = texCoord;
}
` + "\x00"

var vertCentralX = `
#version 410
layout(location = 0) in vec3 pos;
layout(location = 1) in vec2 texCoord;
out vec2 uv;
void main() {
	gl_Position = vec4(pos, 1.0);
	uv = vec2(texCoord.x * 0.5 + 0.25, texCoord.y);
}
` + "\x00"

var vertCentralY = `
#version 410
layout(location = 0) in vec3 pos;
layout(location = 1) in vec2 texCoord;
out vec2 uv;
void main() {
	gl_Position = vec4(pos, 1.0);
	uv = vec2(texCoord.x, texCoord.y * 0.5 + 0.25);
}
` + "\x00"

// vertTransform positions the quad through a model-view 3x3 affine and
// samples a sub-rectangle of the texture, used by offscreen surface
// draws with source / destination rects.
var vertTransform = `
#version 410
uniform mat3 mvp;
uniform vec4 srcRect;
layout(location = 0) in vec3 pos;
layout(location = 1) in vec2 texCoord;
out vec2 uv;
void main() {
	vec3 p = mvp * vec3(pos.xy, 1.0);
	gl_Position = vec4(p.xy, 0.0, 1.0);
	uv = srcRect.xy + texCoord * srcRect.zw;
}
` + "\x00"

// Fragment stages.

var fragTexture = `
#version 410
uniform sampler2D tex;
in vec2 uv;
out vec4 fragColor;
void main() {
	fragColor = texture(tex, uv);
}
` + "\x00"

// fragTextureAlpha modulates the sampled alpha, for offscreen surface
// draws with partial opacity.
var fragTextureAlpha = `
#version 410
uniform sampler2D tex;
uniform float alpha;
in vec2 uv;
out vec4 fragColor;
void main() {
	vec4 c = texture(tex, uv);
	fragColor = vec4(c.rgb, c.a * alpha);
}
` + "\x00"

// fragCompensated subtracts the predicted leakage of the other eye's
// image from this eye's image, per channel, floored at zero.  Texture
// roles are rebound per draw call.
var fragCompensated = `
#version 410
uniform sampler2D thisTex;
uniform sampler2D otherTex;
uniform vec3 crossTalk;
in vec2 uv;
out vec4 fragColor;
void main() {
	vec3 c = max(texture(thisTex, uv).rgb - crossTalk * texture(otherTex, uv).rgb, 0.0);
	fragColor = vec4(c, 1.0);
}
` + "\x00"

// fragFill writes a constant color, used for the sync line.
var fragFill = `
#version 410
uniform vec4 fillColor;
out vec4 fragColor;
void main() {
	fragColor = fillColor;
}
` + "\x00"

// anaglyphFragSrc returns the fragment source for a plain anaglyph mode,
// writing the given channel of each eye's texture to that output channel
// and leaving the third channel dark.
func anaglyphFragSrc(leftCh, rightCh string) string {
	return fmt.Sprintf(`
#version 410
uniform sampler2D leftTex;
uniform sampler2D rightTex;
in vec2 uv;
out vec4 fragColor;
void main() {
	vec3 c = vec3(0.0);
	c.%[1]s = texture(leftTex, uv).%[1]s;
	c.%[2]s = texture(rightTex, uv).%[2]s;
	fragColor = vec4(c, 1.0);
}
`, leftCh, rightCh) + "\x00"
}

// anticrossFragSrc returns the fragment source for an anticross anaglyph
// mode.  crossTalk.x is the left eye's coefficient and crossTalk.y the
// right eye's; each output channel subtracts the leakage predicted from
// the other eye's image on the same channel.
func anticrossFragSrc(leftCh, rightCh string) string {
	return fmt.Sprintf(`
#version 410
uniform sampler2D leftTex;
uniform sampler2D rightTex;
uniform vec2 crossTalk;
in vec2 uv;
out vec4 fragColor;
void main() {
	vec3 c = vec3(0.0);
	c.%[1]s = max(texture(leftTex, uv).%[1]s - crossTalk.x * texture(rightTex, uv).%[1]s, 0.0);
	c.%[2]s = max(texture(rightTex, uv).%[2]s - crossTalk.y * texture(leftTex, uv).%[2]s, 0.0);
	fragColor = vec4(c, 1.0);
}
`, leftCh, rightCh) + "\x00"
}

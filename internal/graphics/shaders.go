package graphics

// Chunk batches: textured, lit by a fixed sun, fogged towards the sky colour.
const chunkVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;
layout(location = 3) in vec3 aNormal;

uniform mat4 view;
uniform mat4 projection;

out vec2 vUV;
out vec4 vColor;
out vec3 vNormal;
out float vDist;

void main() {
	vec4 viewPos = view * vec4(aPos, 1.0);
	gl_Position = projection * viewPos;
	vUV = aUV;
	vColor = aColor;
	vNormal = aNormal;
	vDist = length(viewPos.xyz);
}`

const chunkFragmentShader = `#version 410 core
in vec2 vUV;
in vec4 vColor;
in vec3 vNormal;
in float vDist;

uniform sampler2D atlas;
uniform vec3 skyColor;
uniform float fogEnd;

out vec4 fragColor;

void main() {
	vec3 sun = normalize(vec3(0.4, 1.0, 0.3));
	float light = 0.55 + 0.45 * max(dot(normalize(vNormal), sun), 0.0);
	vec4 tex = texture(atlas, vUV) * vColor;
	float fog = clamp(vDist / fogEnd, 0.0, 1.0);
	fragColor = vec4(mix(tex.rgb * light, skyColor, fog * fog), tex.a);
}`

// Text overlay: a screen-space quad sampling an RGBA texture.
const overlayVertexShader = `#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
out vec2 vUV;
void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	vUV = aUV;
}`

const overlayFragmentShader = `#version 410 core
in vec2 vUV;
uniform sampler2D text;
out vec4 fragColor;
void main() {
	fragColor = texture(text, vUV);
}`

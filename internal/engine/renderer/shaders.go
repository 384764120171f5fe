package renderer

const pointsVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in float aRandom;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
uniform float uTime;
uniform float uPointSize;

out float vRandom;

void main() {
	vec3 pos = aPosition;
	float t = uTime * 0.4 + aRandom * 6.2831;
	pos.x += sin(t) * 0.01;
	pos.y += cos(t * 1.3) * 0.01;
	pos.z += sin(t * 0.7) * 0.01;

	vec4 viewPos = uView * uModel * vec4(pos, 1.0);
	gl_Position = uProjection * viewPos;

	// Perspective attenuation, clamped so close points stay small.
	gl_PointSize = clamp(uPointSize * (1.0 + aRandom) * (4.0 / -viewPos.z), 1.0, 16.0);
	vRandom = aRandom;
}
`

const pointsFragmentShader = `
#version 410 core

uniform vec3 uColor1;
uniform vec3 uColor2;

in float vRandom;
out vec4 FragColor;

void main() {
	float d = length(gl_PointCoord - vec2(0.5));
	if (d > 0.5) {
		discard;
	}
	float alpha = 1.0 - smoothstep(0.0, 0.5, d);
	FragColor = vec4(mix(uColor1, uColor2, vRandom), alpha * 0.8);
}
`

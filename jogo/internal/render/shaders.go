package render

const terrainVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;

uniform mat4 mvp;

out vec2 fragTexCoord;
out vec4 fragColor;
out vec3 fragNormal;
out vec3 fragWorldPos;

void main()
{
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    fragNormal = vertexNormal;
    fragWorldPos = vertexPosition;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const terrainFragmentShader = `
#version 330

in vec2 fragTexCoord;
in vec4 fragColor;
in vec3 fragNormal;
in vec3 fragWorldPos;

uniform vec4 colDiffuse;
uniform vec3 brushPos;
uniform float brushRadius;
uniform float brushActive;

out vec4 finalColor;

void main()
{
    // Iluminação direcional simples
    vec3 lightDir = normalize(vec3(0.5, 1.0, 0.3));
    float diff = max(dot(normalize(fragNormal), lightDir), 0.0);
    vec3 light = vec3(0.35) + vec3(0.65) * diff;

    vec3 color = fragColor.rgb * colDiffuse.rgb * light;

    // Anel de destaque do pincel de escultura
    if (brushActive > 0.5) {
        float dist = distance(fragWorldPos.xz, brushPos.xz);
        float ring = 1.0 - smoothstep(0.0, 0.18, abs(dist - brushRadius));
        float fill = (1.0 - smoothstep(0.0, brushRadius, dist)) * 0.12;
        color = mix(color, vec3(1.0, 0.6, 0.15), ring * 0.85);
        color += vec3(1.0, 0.6, 0.15) * fill;
    }

    finalColor = vec4(color, 1.0);
}
`

const plantVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;

uniform mat4 mvp;
uniform float time;

out vec2 fragTexCoord;
out vec4 fragColor;
out vec3 fragNormal;

void main()
{
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    fragNormal = vertexNormal;

    vec3 pos = vertexPosition;

    // Animação de vento: o canal R do gradiente raiz→ponta pesa o balanço
    // por vértice (raiz presa, ponta solta)
    float weight = vertexColor.r;
    float windStrength = 0.12;
    float freq = 2.0;
    float move = sin(time * freq + pos.x * 0.5 + pos.z * 0.5) * windStrength * weight;
    pos.x += move;
    pos.z += move * 0.3;

    gl_Position = mvp * vec4(pos, 1.0);
}
`

const plantFragmentShader = `
#version 330

in vec2 fragTexCoord;
in vec4 fragColor;
in vec3 fragNormal;

uniform vec4 colDiffuse;

out vec4 finalColor;

void main()
{
    // O gradiente raiz→ponta também escurece a base e clareia a ponta
    vec3 rootColor = vec3(0.05, 0.22, 0.03);
    vec3 tipColor  = vec3(0.45, 0.72, 0.25);
    vec3 color = mix(rootColor, tipColor, fragColor.r) * colDiffuse.rgb;

    finalColor = vec4(color, 1.0);
}
`

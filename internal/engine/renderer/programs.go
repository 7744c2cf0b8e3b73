package renderer

import (
	"fmt"

	"github.com/Faultbox/deepv/internal/engine/lighting"
	"github.com/Faultbox/deepv/internal/engine/shader"
)

const glslVersion = "#version 410 core\n"

const meshVertexSource = glslVersion + `
uniform mat4 modelMatrix;
uniform mat4 normalsMatrix;
uniform mat4 viewProjectionMatrix;

in vec3 aPosition;
in vec3 aNormal;

out vec3 vPosition;
out vec3 vNormal;

void main() {
    vec4 world = modelMatrix * vec4(aPosition, 1.0);
    vPosition = world.xyz;
    vNormal = (normalsMatrix * vec4(aNormal, 0.0)).xyz;
    gl_Position = viewProjectionMatrix * world;
}
`

const morphVertexSource = glslVersion + `
uniform mat4 modelMatrix;
uniform mat4 normalsMatrix;
uniform mat4 viewProjectionMatrix;
uniform float interpolatedTime;

in vec3 aPositionA;
in vec3 aNormalA;
in vec3 aPositionB;
in vec3 aNormalB;

out vec3 vPosition;
out vec3 vNormal;

void main() {
    vec3 position = mix(aPositionA, aPositionB, interpolatedTime);
    vec3 normal = normalize(mix(aNormalA, aNormalB, interpolatedTime));
    vec4 world = modelMatrix * vec4(position, 1.0);
    vPosition = world.xyz;
    vNormal = (normalsMatrix * vec4(normal, 0.0)).xyz;
    gl_Position = viewProjectionMatrix * world;
}
`

const fragmentMain = `
uniform vec4 eyePosition;
uniform vec4 diffuseColor;
uniform vec4 specularColor;
uniform bool twoSided;

in vec3 vPosition;
in vec3 vNormal;

out vec4 fragColor;

void main() {
    vec3 normal = normalize(vNormal);
    if (twoSided && !gl_FrontFacing) {
        normal = -normal;
    }
    LightsIntensity light = lightsIntensity(vPosition, normal, eyePosition.xyz, specularColor.w);
    vec3 color = (light.ambient.rgb + light.diffuse.rgb) * diffuseColor.rgb
        + light.specular.rgb * specularColor.rgb;
    fragColor = vec4(color, diffuseColor.a);
}
`

// fragmentSource returns the shared fragment shader for slots lights.
func fragmentSource(slots int) string {
	return glslVersion + lighting.FragmentSource(slots) + fragmentMain
}

// program is a compiled program with the handles every draw sets.
type program struct {
	*shader.Program

	model          shader.Uniform
	normals        shader.Uniform
	viewProjection shader.Uniform
	eye            shader.Uniform
	diffuse        shader.Uniform
	specular       shader.Uniform
	twoSided       shader.Uniform
	ambient        shader.Uniform
	specs          shader.Uniform
	colors         shader.Uniform

	// morph only
	fraction  shader.Uniform
	positionB shader.Attribute
	normalB   shader.Attribute

	position shader.Attribute
	normal   shader.Attribute

	vao uint32
}

// lookup collects handles and keeps the first error.
type lookup struct {
	p   *shader.Program
	err error
}

func (l *lookup) uniform(name string) shader.Uniform {
	u, err := l.p.Uniform(name)
	if err != nil && l.err == nil {
		l.err = err
	}
	return u
}

func (l *lookup) attribute(name string) shader.Attribute {
	a, err := l.p.Attribute(name)
	if err != nil && l.err == nil {
		l.err = err
	}
	return a
}

func newMeshProgram(slots int) (*program, error) {
	p, err := shader.CompileProgram(meshVertexSource, fragmentSource(slots))
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	l := &lookup{p: p}
	prog := common(l)
	prog.position = l.attribute("aPosition")
	prog.normal = l.attribute("aNormal")
	if l.err != nil {
		p.Delete()
		return nil, fmt.Errorf("mesh program: %w", l.err)
	}
	return prog, nil
}

func newMorphProgram(slots int) (*program, error) {
	p, err := shader.CompileProgram(morphVertexSource, fragmentSource(slots))
	if err != nil {
		return nil, fmt.Errorf("morph program: %w", err)
	}
	l := &lookup{p: p}
	prog := common(l)
	prog.fraction = l.uniform("interpolatedTime")
	prog.position = l.attribute("aPositionA")
	prog.normal = l.attribute("aNormalA")
	prog.positionB = l.attribute("aPositionB")
	prog.normalB = l.attribute("aNormalB")
	if l.err != nil {
		p.Delete()
		return nil, fmt.Errorf("morph program: %w", l.err)
	}
	return prog, nil
}

func common(l *lookup) *program {
	return &program{
		Program:        l.p,
		model:          l.uniform("modelMatrix"),
		normals:        l.uniform("normalsMatrix"),
		viewProjection: l.uniform("viewProjectionMatrix"),
		eye:            l.uniform("eyePosition"),
		diffuse:        l.uniform("diffuseColor"),
		specular:       l.uniform("specularColor"),
		twoSided:       l.uniform("twoSided"),
		ambient:        l.uniform(lighting.UniformAmbient),
		specs:          l.uniform(lighting.UniformSpecs + "[0]"),
		colors:         l.uniform(lighting.UniformColors + "[0]"),
	}
}

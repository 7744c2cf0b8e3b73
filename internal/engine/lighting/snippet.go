package lighting

import (
	"fmt"
	"strings"
)

// Uniform names used by FragmentSource.
const (
	UniformAmbient = "lightsAmbient"
	UniformSpecs   = "lightsSimpleSpec"
	UniformColors  = "lightsSimpleColor"
)

const fragmentTemplate = `
uniform vec4 lightsAmbient;

// w selects the light kind
// -1 directed light, xyz is the direction towards the source
//  0 light is off
// +1 point light, xyz is the source position
uniform vec4 lightsSimpleSpec[SLOTS];
uniform vec4 lightsSimpleColor[SLOTS];

struct LightsIntensity {
    vec4 ambient;
    vec4 diffuse;
    vec4 specular;
};

LightsIntensity lightsIntensity(vec3 position, vec3 normal, vec3 eye, float shininess) {
    LightsIntensity light = LightsIntensity(lightsAmbient, vec4(0.0), vec4(0.0));
    for (int i = 0; i < SLOTS; i++) {
        vec4 lightSpec = lightsSimpleSpec[i];
        if (lightSpec.w == 0.0) {
            continue;
        }
        vec3 lightDirection;
        if (lightSpec.w < 0.0) {
            lightDirection = normalize(lightSpec.xyz);
        } else {
            lightDirection = normalize(lightSpec.xyz - position);
        }
        float lambertian = dot(lightDirection, normal);
        if (lambertian <= 0.0) {
            continue;
        }
        vec3 viewDirection = normalize(eye - position);
        vec3 lightViewHalf = normalize(lightDirection + viewDirection);
        float specularAngle = dot(lightViewHalf, normal);

        vec4 lightColor = lightsSimpleColor[i];
        light.diffuse += lambertian * lightColor;
        light.specular += pow(max(0.0, specularAngle), shininess) * lightColor;
    }
    return light;
}
`

// FragmentSource returns GLSL declaring the light uniforms for slots lights
// and the lightsIntensity function. It panics if slots is not positive.
func FragmentSource(slots int) string {
	if slots <= 0 {
		panic(fmt.Sprintf("lighting: fragment source for %d slots", slots))
	}
	return strings.ReplaceAll(fragmentTemplate, "SLOTS", fmt.Sprint(slots))
}

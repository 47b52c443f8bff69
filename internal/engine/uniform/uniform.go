// Package uniform names the shader inputs shared between Go and GLSL.
package uniform

import "github.com/Faultbox/cubeman/pkg/math"

// Uniform names declared by the cube shader.
const (
	Model            = "model"
	View             = "view"
	Projection       = "projection"
	OverrideColor    = "overrideColor"
	UseOverrideColor = "useOverrideColor"
)

// Setter uploads named uniforms to the active shader program.
// Uploads cannot fail once the program is linked.
type Setter interface {
	SetMat4(name string, m math.Mat4)
	SetVec3(name string, v math.Vec3)
	SetBool(name string, b bool)
}

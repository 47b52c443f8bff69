// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CubeVertexShader transforms the unit cube by model, view and projection.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader shades with the per-face color or the override color.
//
//go:embed cube.frag
var CubeFragmentShader string

// Package scene provides the shared scene graph that exhibits attach to.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/particle-exhibits/internal/engine/palette"
)

// Node is anything that can be attached to a scene.
type Node interface {
	NodeName() string
}

// Rotation is the scene-wide Euler rotation in radians, applied X then Y.
type Rotation struct {
	X float32 // Pitch
	Y float32 // Yaw
}

// Scene is a flat, ordered list of nodes plus scene-wide transform and clear color.
// It is not safe for concurrent use; all mutation happens on the render thread.
type Scene struct {
	nodes []Node

	Rotation   Rotation
	Background palette.Color
}

// New creates an empty scene with a black background.
func New() *Scene {
	return &Scene{Background: palette.Black}
}

// Attach adds n to the scene. Returns false if n was already attached.
func (s *Scene) Attach(n Node) bool {
	if s.Contains(n) {
		return false
	}
	s.nodes = append(s.nodes, n)
	return true
}

// Detach removes n from the scene. Returns false if n was not attached.
func (s *Scene) Detach(n Node) bool {
	for i, existing := range s.nodes {
		if existing == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether n is attached.
func (s *Scene) Contains(n Node) bool {
	for _, existing := range s.nodes {
		if existing == n {
			return true
		}
	}
	return false
}

// Nodes returns the attached nodes in attach order. The slice must not be modified.
func (s *Scene) Nodes() []Node {
	return s.nodes
}

// Len returns the number of attached nodes.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// ModelMatrix returns the scene rotation as a 4x4 transform.
func (s *Scene) ModelMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(s.Rotation.X).Mul4(mgl32.HomogRotate3DY(s.Rotation.Y))
}

package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type stubNode string

func (n *stubNode) NodeName() string { return string(*n) }

func newStub(name string) *stubNode {
	n := stubNode(name)
	return &n
}

func TestAttachDetach(t *testing.T) {
	s := New()
	a, b := newStub("a"), newStub("b")

	assert.True(t, s.Attach(a))
	assert.False(t, s.Attach(a), "second attach is a no-op")
	assert.True(t, s.Attach(b))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Node{a, b}, s.Nodes())

	assert.True(t, s.Detach(a))
	assert.False(t, s.Detach(a), "second detach is a no-op")
	assert.False(t, s.Contains(a))
	assert.True(t, s.Contains(b))
	assert.Equal(t, 1, s.Len())
}

func TestNodesWithSameNameAreDistinct(t *testing.T) {
	s := New()
	a1, a2 := newStub("a"), newStub("a")
	s.Attach(a1)
	assert.False(t, s.Contains(a2))
	assert.True(t, s.Attach(a2))
}

func TestModelMatrixIdentityAtRest(t *testing.T) {
	s := New()
	assert.True(t, s.ModelMatrix().ApproxEqual(mgl32.Ident4()))
}

func TestModelMatrixYaw(t *testing.T) {
	s := New()
	s.Rotation.Y = mgl32.DegToRad(90)

	// +X rotated 90° about Y lands on -Z.
	v := s.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, v.X(), 1e-6)
	assert.InDelta(t, -1, v.Z(), 1e-6)
}

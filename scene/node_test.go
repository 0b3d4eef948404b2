package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_AddRemoveChild(t *testing.T) {
	parent := NewNode("parent")
	other := NewNode("other")
	child := NewNode("child")

	parent.AddChild(child)
	require.Len(t, parent.Children(), 1)
	assert.Same(t, parent, child.Parent())

	// Reparenting detaches from the previous parent
	other.AddChild(child)
	assert.Empty(t, parent.Children())
	assert.Same(t, other, child.Parent())

	other.RemoveChild(child)
	assert.Empty(t, other.Children())
	assert.Nil(t, child.Parent())

	// Removing a node that is not a child is a no-op
	other.RemoveChild(parent)
	assert.Empty(t, other.Children())
}

func TestNode_WorldTransform(t *testing.T) {
	root := NewNode("root")
	root.LocalPosition = mgl32.Vec3{10, 0, 0}
	root.LocalRotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})

	child := NewNode("child")
	child.LocalPosition = mgl32.Vec3{0, 0, 5}
	root.AddChild(child)

	pos := child.WorldPosition()
	// +Z rotated 90 degrees about +Y is +X
	assert.InDelta(t, 15, pos.X(), 1e-4)
	assert.InDelta(t, 0, pos.Y(), 1e-4)
	assert.InDelta(t, 0, pos.Z(), 1e-4)
}

func TestLightNode_Direction(t *testing.T) {
	light := NewLightNode()
	dir := light.Direction()
	assert.InDelta(t, -1, dir.Y(), 1e-6)

	// Tilt the light 90 degrees about +X: -Y turns into -Z
	light.LocalRotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})
	dir = light.Direction()
	assert.InDelta(t, 0, dir.Y(), 1e-5)
	assert.InDelta(t, -1, dir.Z(), 1e-5)
}

func TestScene_Models(t *testing.T) {
	s := NewScene()
	light := NewLightNode()
	model := &Model{Graph: light.GraphNode(), Lights: []*LightNode{light}}

	s.AddModel(model)
	s.AddModel(model)
	assert.Len(t, s.Models(), 1)
	assert.Equal(t, []*LightNode{light}, s.Lights())

	s.RemoveModel(model)
	assert.False(t, s.ContainsModel(model))
	assert.Empty(t, s.Lights())
}

package gekko

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gekko-lights/scene"
)

func TestSceneNodeHierarchy(t *testing.T) {
	app := NewApp()
	app.UseModules(HierarchyModule{})

	cmd := app.Commands()

	// Create Parent
	parentNode := scene.NewNode("parent")
	parent := cmd.AddEntity(
		&TransformComponent{
			Position: mgl32.Vec3{10, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		&SceneNodeComponent{Node: parentNode},
	)

	// Create Child
	childNode := scene.NewNode("child")
	child := cmd.AddEntity(
		&Parent{Entity: parent},
		&TransformComponent{
			Position: mgl32.Vec3{0, 5, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		&SceneNodeComponent{Node: childNode},
	)

	// Create Grandchild
	grandchildNode := scene.NewNode("grandchild")
	_ = cmd.AddEntity(
		&Parent{Entity: child},
		&TransformComponent{Position: mgl32.Vec3{0, 0, 2}},
		&SceneNodeComponent{Node: grandchildNode},
	)

	app.FlushCommands()

	// Run systems manually
	SceneNodeSyncSystem(cmd)

	assert.Same(t, parentNode, childNode.Parent())
	assert.Same(t, childNode, grandchildNode.Parent())
	assert.Nil(t, parentNode.Parent())

	expected := mgl32.Vec3{10, 5, 2}
	assert.True(t, grandchildNode.WorldPosition().ApproxEqual(expected),
		"grandchild world position %v, expected %v", grandchildNode.WorldPosition(), expected)

	// Zero rotation and scale read as identity
	assert.Equal(t, mgl32.QuatIdent(), grandchildNode.LocalRotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, grandchildNode.LocalScale)
}

func TestSceneNodeHierarchy_RotatedParent(t *testing.T) {
	app := NewApp()
	app.UseModules(HierarchyModule{})
	cmd := app.Commands()

	parentNode := scene.NewNode("parent")
	parent := cmd.AddEntity(
		&TransformComponent{Rotation: mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})},
		&SceneNodeComponent{Node: parentNode},
	)
	childNode := scene.NewNode("child")
	_ = cmd.AddEntity(
		&Parent{Entity: parent},
		&TransformComponent{Position: mgl32.Vec3{1, 0, 0}},
		&SceneNodeComponent{Node: childNode},
	)

	// Runs in PostUpdate
	app.Update()

	pos := childNode.WorldPosition()
	assert.InDelta(t, 0, pos.X(), 1e-5)
	assert.InDelta(t, 1, pos.Y(), 1e-5)
	assert.InDelta(t, 0, pos.Z(), 1e-5)
}

func TestSceneNodeHierarchy_Reparent(t *testing.T) {
	app := NewApp()
	app.UseModules(HierarchyModule{})
	cmd := app.Commands()

	a := cmd.AddEntity(&SceneNodeComponent{Node: scene.NewNode("a")})
	b := cmd.AddEntity(&SceneNodeComponent{Node: scene.NewNode("b")})
	childNode := scene.NewNode("child")
	child := cmd.AddEntity(&Parent{Entity: a}, &SceneNodeComponent{Node: childNode})
	app.Update()

	nodeA, ok := GetComponent[SceneNodeComponent](cmd, a)
	require.True(t, ok)
	assert.Same(t, nodeA.Node, childNode.Parent())

	p, ok := GetComponent[Parent](cmd, child)
	require.True(t, ok)
	p.Entity = b
	app.Update()

	nodeB, ok := GetComponent[SceneNodeComponent](cmd, b)
	require.True(t, ok)
	assert.Same(t, nodeB.Node, childNode.Parent())
	assert.Empty(t, nodeA.Node.Children())
}

func TestSceneNodeHierarchy_MissingParentEntity(t *testing.T) {
	app := NewApp()
	app.UseModules(HierarchyModule{})
	cmd := app.Commands()

	childNode := scene.NewNode("orphan")
	cmd.AddEntity(&Parent{Entity: EntityId(4242)}, &SceneNodeComponent{Node: childNode})

	assert.NotPanics(t, app.Update)
	assert.Nil(t, childNode.Parent())
}

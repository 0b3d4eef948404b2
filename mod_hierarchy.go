package gekko

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gekko-lights/scene"
)

// EngineContext is the scene, device and editor state shared by component
// systems. Designer is true when running inside the level editor.
type EngineContext struct {
	Scene    *scene.Scene
	Device   *scene.GraphicsDevice
	Designer bool
}

func NewEngineContext(designer bool) *EngineContext {
	return &EngineContext{
		Scene:    scene.NewScene(),
		Device:   scene.NewGraphicsDevice(),
		Designer: designer,
	}
}

type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// SceneNodeComponent links an entity to its node in the scene graph.
type SceneNodeComponent struct {
	Node *scene.Node
}

type Parent struct {
	Entity EntityId
}

type HierarchyModule struct{}

func (HierarchyModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(SceneNodeSyncSystem).
			InStage(PostUpdate),
	)
}

// SceneNodeSyncSystem copies entity transforms into their scene nodes and
// mirrors Parent links in the graph, so lights follow the entities they sit on.
func SceneNodeSyncSystem(cmd *Commands) {
	MakeQuery3[SceneNodeComponent, TransformComponent, Parent](cmd).Map(func(eid EntityId, nodeComp *SceneNodeComponent, tr *TransformComponent, parent *Parent) bool {
		if nodeComp.Node == nil {
			return true
		}
		if tr != nil {
			applyTransform(nodeComp.Node, tr)
		}

		if parent == nil {
			return true
		}
		parentNode, ok := GetComponent[SceneNodeComponent](cmd, parent.Entity)
		if !ok || parentNode.Node == nil {
			return true
		}
		if nodeComp.Node.Parent() != parentNode.Node {
			parentNode.Node.AddChild(nodeComp.Node)
		}
		return true
	}, TransformComponent{}, Parent{})
}

func applyTransform(node *scene.Node, tr *TransformComponent) {
	node.LocalPosition = tr.Position

	// Zero-valued transforms mean identity
	if tr.Rotation == (mgl32.Quat{}) {
		node.LocalRotation = mgl32.QuatIdent()
	} else {
		node.LocalRotation = tr.Rotation
	}
	if tr.Scale == (mgl32.Vec3{}) {
		node.LocalScale = mgl32.Vec3{1, 1, 1}
	} else {
		node.LocalScale = tr.Scale
	}
}

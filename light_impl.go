package gekko

import (
	"fmt"

	"github.com/gekko3d/gekko-lights/scene"
)

// debugShape produces the editor-only geometry for one light type.
// Shared meshes are built once per implementation; the others are built per
// component and released when the component goes away.
type debugShape interface {
	createDebugMesh(device *scene.GraphicsDevice) (mesh *scene.Mesh, shared bool)
	createDebugMaterial() scene.Material
	toolsUpdate(c *LightComponent)
}

// lightImplementation holds everything one light type needs: the engine light
// type, the debug shape and the debug assets it has handed out.
type lightImplementation struct {
	system    *LightComponentSystem
	kind      LightType
	sceneType scene.LightType
	shape     debugShape

	mesh      *scene.Mesh
	material  scene.Material
	modelMesh map[*scene.Model]AssetId
}

func newLightImplementation(system *LightComponentSystem, kind LightType) (*lightImplementation, error) {
	sceneType, err := kind.sceneType()
	if err != nil {
		return nil, err
	}

	var shape debugShape
	switch kind {
	case LightTypeDirectional:
		shape = directionalShape{}
	case LightTypePoint:
		shape = pointShape{}
	case LightTypeSpot:
		shape = &spotShape{}
	}

	return &lightImplementation{
		system:    system,
		kind:      kind,
		sceneType: sceneType,
		shape:     shape,
		modelMesh: make(map[*scene.Model]AssetId),
	}, nil
}

func (impl *lightImplementation) initialize(entityNode *scene.Node, c *LightComponent) {
	node := impl.createLightNode()
	impl.createDebugShape(entityNode, c, node)
}

func (impl *lightImplementation) createLightNode() *scene.LightNode {
	node := scene.NewLightNode()
	node.SetName(string(impl.kind) + "light")
	node.SetType(impl.sceneType)
	return node
}

func (impl *lightImplementation) createDebugShape(entityNode *scene.Node, c *LightComponent, node *scene.LightNode) {
	ctx := impl.system.context

	model := scene.NewModel()
	model.Graph = node.GraphNode()
	model.Lights = []*scene.LightNode{node}

	if ctx.Designer {
		mesh := impl.debugMesh(model)
		if impl.material == nil {
			impl.material = impl.shape.createDebugMaterial()
			impl.system.assets.LoadMaterial(impl.material)
		}
		model.MeshInstances = []*scene.MeshInstance{scene.NewMeshInstance(node.GraphNode(), mesh, impl.material)}
	}

	ctx.Scene.AddModel(model)
	entityNode.AddChild(node.GraphNode())

	c.Model = model
}

func (impl *lightImplementation) debugMesh(model *scene.Model) *scene.Mesh {
	if impl.mesh != nil {
		return impl.mesh
	}

	mesh, shared := impl.shape.createDebugMesh(impl.system.context.Device)
	id := impl.system.assets.LoadMesh(mesh)
	if shared {
		impl.mesh = mesh
	} else {
		impl.modelMesh[model] = id
	}
	return mesh
}

func (impl *lightImplementation) remove(entityNode *scene.Node, c *LightComponent) {
	if c.Model == nil {
		return
	}
	ctx := impl.system.context

	entityNode.RemoveChild(c.Model.Graph)
	ctx.Scene.RemoveModel(c.Model)

	if id, ok := impl.modelMesh[c.Model]; ok {
		impl.system.assets.UnloadMesh(id)
		delete(impl.modelMesh, c.Model)
	}
	c.Model = nil
}

func (impl *lightImplementation) toolsUpdate(c *LightComponent) {
	impl.shape.toolsUpdate(c)
}

type directionalShape struct{}

func (directionalShape) createDebugMesh(device *scene.GraphicsDevice) (*scene.Mesh, bool) {
	positions := directionalArrowPositions()

	vertexBuffer := scene.NewVertexBuffer(device, positionOnlyFormat(device), directionalArrowVertices, scene.BufferStatic)
	copy(vertexBuffer.Lock(), positions)
	vertexBuffer.Unlock()

	return &scene.Mesh{
		VertexBuffer: vertexBuffer,
		Primitive: scene.Primitive{
			Type:    scene.PrimitiveLines,
			Base:    0,
			Count:   vertexBuffer.NumVertices(),
			Indexed: false,
		},
	}, true
}

func (directionalShape) createDebugMaterial() scene.Material { return newYellowMaterial() }
func (directionalShape) toolsUpdate(c *LightComponent)       {}

type pointShape struct{}

func (pointShape) createDebugMesh(device *scene.GraphicsDevice) (*scene.Mesh, bool) {
	return scene.CreateSphere(device, scene.SphereOptions{Radius: pointDebugSphereRadius}), true
}

func (pointShape) createDebugMaterial() scene.Material { return newYellowMaterial() }
func (pointShape) toolsUpdate(c *LightComponent)       {}

// spotShape shares one index buffer between all spot lights; every light
// gets its own dynamic vertex buffer because the cone follows its range and
// outer angle.
type spotShape struct {
	indexBuffer *scene.IndexBuffer
}

func (s *spotShape) createDebugMesh(device *scene.GraphicsDevice) (*scene.Mesh, bool) {
	if s.indexBuffer == nil {
		indexBuffer := scene.NewIndexBuffer(device, scene.IndexFormatUint8, spotConeIndices)
		copy(indexBuffer.Lock(), spotConeIndexData())
		if err := indexBuffer.Unlock(); err != nil {
			panic(fmt.Sprintf("spot cone index buffer: %v", err))
		}
		s.indexBuffer = indexBuffer
	}

	vertexBuffer := scene.NewVertexBuffer(device, positionOnlyFormat(device), spotConeVertices, scene.BufferDynamic)

	return &scene.Mesh{
		VertexBuffer: vertexBuffer,
		IndexBuffer:  s.indexBuffer,
		Primitive: scene.Primitive{
			Type:    scene.PrimitiveLines,
			Base:    0,
			Count:   s.indexBuffer.NumIndices(),
			Indexed: true,
		},
	}, false
}

func (s *spotShape) createDebugMaterial() scene.Material {
	return scene.NewBasicMaterial()
}

func (s *spotShape) toolsUpdate(c *LightComponent) {
	if c.Model == nil || len(c.Model.MeshInstances) == 0 {
		return
	}
	vertexBuffer := c.Model.MeshInstances[0].Mesh.VertexBuffer

	positions := vertexBuffer.Lock()
	writeSpotConePositions(positions, vertexBuffer.NumVertices(), c.Range, c.OuterConeAngle)
	vertexBuffer.Unlock()
}

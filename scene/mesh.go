package scene

type PrimitiveType int

const (
	PrimitiveLines PrimitiveType = iota
	PrimitiveTriangles
)

type Primitive struct {
	Type    PrimitiveType
	Base    int
	Count   int
	Indexed bool
}

type Mesh struct {
	VertexBuffer *VertexBuffer
	IndexBuffer  *IndexBuffer
	Primitive    Primitive
}

// Destroy releases the vertex buffer only. Index buffers may be shared
// between meshes and are released by whoever created them.
func (m *Mesh) Destroy() {
	if m.VertexBuffer != nil {
		m.VertexBuffer.Destroy()
	}
}

type Material interface {
	Update()
}

// BasicMaterial draws unlit geometry in a single color.
type BasicMaterial struct {
	Color   Color
	version int
}

func NewBasicMaterial() *BasicMaterial {
	return &BasicMaterial{Color: Color{1, 1, 1, 1}}
}

func (m *BasicMaterial) Update() {
	m.version++
}

func (m *BasicMaterial) Version() int {
	return m.version
}

type MeshInstance struct {
	Node     *Node
	Mesh     *Mesh
	Material Material
}

func NewMeshInstance(node *Node, mesh *Mesh, material Material) *MeshInstance {
	return &MeshInstance{Node: node, Mesh: mesh, Material: material}
}

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positionFormat(device *GraphicsDevice) *VertexFormat {
	return NewVertexFormat(device, []VertexElement{
		{Semantic: SemanticPosition, Components: 3, Type: ElementTypeFloat32},
	})
}

func TestVertexBuffer_LockUnlock(t *testing.T) {
	device := NewGraphicsDevice()
	vb := NewVertexBuffer(device, positionFormat(device), 2, BufferDynamic)
	assert.Equal(t, 1, device.LiveBuffers())

	data := vb.Lock()
	require.Len(t, data, 6)
	data[3], data[4], data[5] = 1, 2, 3
	vb.Unlock()

	assert.Equal(t, uint32(1), vb.Version())
	assert.Equal(t, [3]float32{1, 2, 3}, vb.Vertex(1))

	vb.Destroy()
	vb.Destroy()
	assert.True(t, vb.Destroyed())
	assert.Equal(t, 0, device.LiveBuffers())
}

func TestIndexBuffer_Uint8Overflow(t *testing.T) {
	device := NewGraphicsDevice()
	ib := NewIndexBuffer(device, IndexFormatUint8, 2)
	inds := ib.Lock()
	inds[0] = 255
	require.NoError(t, ib.Unlock())

	inds[1] = 256
	assert.Error(t, ib.Unlock())

	wide := NewIndexBuffer(device, IndexFormatUint16, 1)
	wide.Lock()[0] = 256
	assert.NoError(t, wide.Unlock())
}

func TestCreateSphere(t *testing.T) {
	device := NewGraphicsDevice()
	mesh := CreateSphere(device, SphereOptions{Radius: 0.1})

	require.NotNil(t, mesh.IndexBuffer)
	assert.Equal(t, 17*17, mesh.VertexBuffer.NumVertices())
	assert.Equal(t, 16*16*6, mesh.IndexBuffer.NumIndices())
	assert.Equal(t, PrimitiveTriangles, mesh.Primitive.Type)
	assert.True(t, mesh.Primitive.Indexed)
	assert.Equal(t, mesh.IndexBuffer.NumIndices(), mesh.Primitive.Count)

	// Every position sits on the sphere surface
	for i := 0; i < mesh.VertexBuffer.NumVertices(); i++ {
		v := mesh.VertexBuffer.Vertex(i)
		r := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
		assert.InDelta(t, 0.01, r, 1e-6)
	}

	// North pole first
	assert.InDelta(t, 0.1, mesh.VertexBuffer.Vertex(0)[1], 1e-6)

	for _, idx := range mesh.IndexBuffer.Lock() {
		assert.Less(t, int(idx), mesh.VertexBuffer.NumVertices())
	}
}

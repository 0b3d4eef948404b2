package scene

import "fmt"

type Semantic string

const (
	SemanticPosition  Semantic = "POSITION"
	SemanticNormal    Semantic = "NORMAL"
	SemanticTexCoord0 Semantic = "TEXCOORD0"
)

type ElementType int

const (
	ElementTypeFloat32 ElementType = iota
)

type VertexElement struct {
	Semantic   Semantic
	Components int
	Type       ElementType
}

// VertexFormat describes one interleaved vertex.
type VertexFormat struct {
	Elements []VertexElement
	size     int
}

func NewVertexFormat(device *GraphicsDevice, elements []VertexElement) *VertexFormat {
	f := &VertexFormat{Elements: elements}
	for _, e := range elements {
		f.size += e.Components
	}
	return f
}

// Size is the number of float32 values per vertex.
func (f *VertexFormat) Size() int {
	return f.size
}

func (f *VertexFormat) HasSemantic(s Semantic) bool {
	for _, e := range f.Elements {
		if e.Semantic == s {
			return true
		}
	}
	return false
}

type BufferUsage int

const (
	BufferStatic BufferUsage = iota
	BufferDynamic
)

type VertexBuffer struct {
	device      *GraphicsDevice
	format      *VertexFormat
	numVertices int
	usage       BufferUsage
	data        []float32
	version     uint32
	destroyed   bool
}

func NewVertexBuffer(device *GraphicsDevice, format *VertexFormat, numVertices int, usage BufferUsage) *VertexBuffer {
	device.track()
	return &VertexBuffer{
		device:      device,
		format:      format,
		numVertices: numVertices,
		usage:       usage,
		data:        make([]float32, numVertices*format.Size()),
	}
}

// Lock returns the backing storage for writing. Changes are published by Unlock.
func (vb *VertexBuffer) Lock() []float32 {
	return vb.data
}

func (vb *VertexBuffer) Unlock() {
	vb.version++
}

func (vb *VertexBuffer) Format() *VertexFormat { return vb.format }
func (vb *VertexBuffer) NumVertices() int      { return vb.numVertices }
func (vb *VertexBuffer) Usage() BufferUsage    { return vb.usage }
func (vb *VertexBuffer) Version() uint32       { return vb.version }
func (vb *VertexBuffer) Destroyed() bool       { return vb.destroyed }

// Vertex returns the first three components of vertex i.
func (vb *VertexBuffer) Vertex(i int) [3]float32 {
	base := i * vb.format.Size()
	return [3]float32{vb.data[base], vb.data[base+1], vb.data[base+2]}
}

func (vb *VertexBuffer) Destroy() {
	if vb.destroyed {
		return
	}
	vb.destroyed = true
	vb.data = nil
	vb.device.untrack()
}

type IndexFormat int

const (
	IndexFormatUint8 IndexFormat = iota
	IndexFormatUint16
)

type IndexBuffer struct {
	device     *GraphicsDevice
	format     IndexFormat
	numIndices int
	data       []uint16
	destroyed  bool
}

func NewIndexBuffer(device *GraphicsDevice, format IndexFormat, numIndices int) *IndexBuffer {
	device.track()
	return &IndexBuffer{
		device:     device,
		format:     format,
		numIndices: numIndices,
		data:       make([]uint16, numIndices),
	}
}

func (ib *IndexBuffer) Lock() []uint16 {
	return ib.data
}

// Unlock validates the written indices against the buffer format.
func (ib *IndexBuffer) Unlock() error {
	if ib.format != IndexFormatUint8 {
		return nil
	}
	for i, idx := range ib.data {
		if idx > 0xff {
			return fmt.Errorf("index %d at position %d does not fit an 8-bit index buffer", idx, i)
		}
	}
	return nil
}

func (ib *IndexBuffer) Format() IndexFormat { return ib.format }
func (ib *IndexBuffer) NumIndices() int     { return ib.numIndices }
func (ib *IndexBuffer) Destroyed() bool     { return ib.destroyed }

func (ib *IndexBuffer) Destroy() {
	if ib.destroyed {
		return
	}
	ib.destroyed = true
	ib.data = nil
	ib.device.untrack()
}

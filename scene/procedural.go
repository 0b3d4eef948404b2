package scene

import (
	"math"
)

type SphereOptions struct {
	Radius         float32
	LatitudeBands  int
	LongitudeBands int
}

// CreateSphere builds an indexed UV sphere with interleaved position, normal
// and uv attributes. Zero option fields fall back to radius 0.5 and 16 bands.
func CreateSphere(device *GraphicsDevice, opts SphereOptions) *Mesh {
	radius := opts.Radius
	if radius == 0 {
		radius = 0.5
	}
	latBands := opts.LatitudeBands
	if latBands <= 0 {
		latBands = 16
	}
	lonBands := opts.LongitudeBands
	if lonBands <= 0 {
		lonBands = 16
	}

	format := NewVertexFormat(device, []VertexElement{
		{Semantic: SemanticPosition, Components: 3, Type: ElementTypeFloat32},
		{Semantic: SemanticNormal, Components: 3, Type: ElementTypeFloat32},
		{Semantic: SemanticTexCoord0, Components: 2, Type: ElementTypeFloat32},
	})

	numVerts := (latBands + 1) * (lonBands + 1)
	vb := NewVertexBuffer(device, format, numVerts, BufferStatic)
	verts := vb.Lock()
	i := 0
	for lat := 0; lat <= latBands; lat++ {
		theta := float64(lat) * math.Pi / float64(latBands)
		sinTheta, cosTheta := math.Sincos(theta)

		for lon := 0; lon <= lonBands; lon++ {
			// Sweep from -pi/2 so the uv seam lands on -Z
			phi := float64(lon)*2*math.Pi/float64(lonBands) - math.Pi/2
			sinPhi, cosPhi := math.Sincos(phi)

			x := float32(cosPhi * sinTheta)
			y := float32(cosTheta)
			z := float32(sinPhi * sinTheta)
			u := 1 - float32(lon)/float32(lonBands)
			v := 1 - float32(lat)/float32(latBands)

			verts[i+0] = x * radius
			verts[i+1] = y * radius
			verts[i+2] = z * radius
			verts[i+3] = x
			verts[i+4] = y
			verts[i+5] = z
			verts[i+6] = u
			verts[i+7] = v
			i += format.Size()
		}
	}
	vb.Unlock()

	numIndices := latBands * lonBands * 6
	ib := NewIndexBuffer(device, IndexFormatUint16, numIndices)
	inds := ib.Lock()
	i = 0
	for lat := 0; lat < latBands; lat++ {
		for lon := 0; lon < lonBands; lon++ {
			first := uint16(lat*(lonBands+1) + lon)
			second := first + uint16(lonBands) + 1

			inds[i+0] = first + 1
			inds[i+1] = second
			inds[i+2] = first
			inds[i+3] = first + 1
			inds[i+4] = second + 1
			inds[i+5] = second
			i += 6
		}
	}
	// 16-bit buffers never fail validation
	_ = ib.Unlock()

	return &Mesh{
		VertexBuffer: vb,
		IndexBuffer:  ib,
		Primitive: Primitive{
			Type:    PrimitiveTriangles,
			Base:    0,
			Count:   numIndices,
			Indexed: true,
		},
	}
}

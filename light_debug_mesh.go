package gekko

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gekko-lights/scene"
)

const (
	directionalArrowVertices = 32
	spotConeSegments         = 40
	spotConeVertices         = spotConeSegments + 2 // apex, rim, closing rim vertex
	spotConeIndices          = 8 + spotConeSegments*2
	pointDebugSphereRadius   = 0.1
)

var debugYellow = scene.Color{R: 1, G: 1, B: 0, A: 1}

// directionalArrowPositions lays out three arrows pointing down -Y as a line
// list: one in the middle, two thinner ones at z = -2 and z = +2. The last
// eight vertices repeat the z = -2 arrow turned 120 degrees about +Y.
func directionalArrowPositions() []float32 {
	positions := make([]float32, 0, directionalArrowVertices*3)
	positions = append(positions,
		// Center arrow
		0, 0, 0, 0, -8, 0, // Stalk
		-0.5, -8, 0, 0.5, -8, 0, // Arrowhead base
		0.5, -8, 0, 0, -10, 0, // Arrowhead tip
		0, -10, 0, -0.5, -8, 0, // Arrowhead tip
		// Back arrow
		0, 0, -2, 0, -8, -2,
		-0.25, -8, -2, 0.25, -8, -2,
		0.25, -8, -2, 0, -10, -2,
		0, -10, -2, -0.25, -8, -2,
		// Front arrow
		0, 0, 2, 0, -8, 2,
		-0.25, -8, 2, 0.25, -8, 2,
		0.25, -8, 2, 0, -10, 2,
		0, -10, 2, -0.25, -8, 2,
	)

	rot := mgl32.QuatRotate(mgl32.DegToRad(120), mgl32.Vec3{0, 1, 0})
	for i := 8; i < 16; i++ {
		v := rot.Rotate(mgl32.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]})
		positions = append(positions, v.X(), v.Y(), v.Z())
	}
	return positions
}

// spotConeIndexData connects the apex to four rim vertices and walks the rim.
func spotConeIndexData() []uint16 {
	inds := make([]uint16, spotConeIndices)
	// Spot cone side lines
	copy(inds, []uint16{0, 1, 0, 11, 0, 21, 0, 31})
	// Spot cone circle
	for i := 0; i < spotConeSegments; i++ {
		inds[8+i*2+0] = uint16(i + 1)
		inds[8+i*2+1] = uint16(i + 2)
	}
	return inds
}

// writeSpotConePositions fills a position-only buffer with the cone apex at
// the origin and a rim circle of radius range*sin(outer) at y = -range*cos(outer).
// The last rim vertex closes the circle on top of the first one.
func writeSpotConePositions(positions []float32, numVerts int, rangeValue float32, outerConeAngle float32) {
	oca := math.Pi * float64(outerConeAngle) / 180
	ae := float64(rangeValue)
	y := float32(-ae * math.Cos(oca))
	r := ae * math.Sin(oca)

	positions[0] = 0
	positions[1] = 0
	positions[2] = 0
	for i := 0; i < numVerts-1; i++ {
		theta := 2 * math.Pi * (float64(i) / float64(numVerts-2))
		positions[(i+1)*3+0] = float32(r * math.Cos(theta))
		positions[(i+1)*3+1] = y
		positions[(i+1)*3+2] = float32(r * math.Sin(theta))
	}
}

func positionOnlyFormat(device *scene.GraphicsDevice) *scene.VertexFormat {
	return scene.NewVertexFormat(device, []scene.VertexElement{
		{Semantic: scene.SemanticPosition, Components: 3, Type: scene.ElementTypeFloat32},
	})
}

func newYellowMaterial() scene.Material {
	material := scene.NewBasicMaterial()
	material.Color = debugYellow
	material.Update()
	return material
}

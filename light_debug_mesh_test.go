package gekko

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionalArrowPositions(t *testing.T) {
	positions := directionalArrowPositions()
	require.Len(t, positions, directionalArrowVertices*3)

	// Center stalk runs from the origin down to y = -8
	assert.Equal(t, []float32{0, 0, 0, 0, -8, 0}, positions[0:6])
	// Center tip
	assert.Equal(t, []float32{0, -10, 0}, positions[15:18])

	// Vertex 24 is vertex 8, (0, 0, -2), turned 120 degrees about +Y
	assert.InDelta(t, -2*math.Sin(2*math.Pi/3), positions[72], 1e-5)
	assert.InDelta(t, 0, positions[73], 1e-5)
	assert.InDelta(t, 1, positions[74], 1e-5)

	// Rotation about +Y keeps heights
	for i := 0; i < 8; i++ {
		assert.InDelta(t, positions[(8+i)*3+1], positions[(24+i)*3+1], 1e-5)
	}
}

func TestSpotConeIndexData(t *testing.T) {
	inds := spotConeIndexData()
	require.Len(t, inds, 88)

	assert.Equal(t, []uint16{0, 1, 0, 11, 0, 21, 0, 31}, inds[:8])
	assert.Equal(t, []uint16{1, 2}, inds[8:10])
	assert.Equal(t, []uint16{40, 41}, inds[86:88])
	for _, idx := range inds {
		assert.Less(t, int(idx), spotConeVertices)
	}
}

func TestWriteSpotConePositions(t *testing.T) {
	positions := make([]float32, spotConeVertices*3)
	writeSpotConePositions(positions, spotConeVertices, 10, 45)

	half := float32(10 * math.Sqrt2 / 2)
	assert.Equal(t, []float32{0, 0, 0}, positions[0:3])

	// First rim vertex on +X
	assert.InDelta(t, half, positions[3], 1e-4)
	assert.InDelta(t, -half, positions[4], 1e-4)
	assert.InDelta(t, 0, positions[5], 1e-4)

	// Vertex 11 is a quarter turn along, on +Z
	assert.InDelta(t, 0, positions[33], 1e-4)
	assert.InDelta(t, half, positions[35], 1e-4)

	// Last vertex closes the circle
	last := (spotConeVertices - 1) * 3
	assert.InDelta(t, positions[3], positions[last], 1e-4)
	assert.InDelta(t, positions[5], positions[last+2], 1e-4)

	for i := 1; i < spotConeVertices; i++ {
		assert.InDelta(t, -half, positions[i*3+1], 1e-4)
	}
}

func TestWriteSpotConePositions_ZeroAngle(t *testing.T) {
	positions := make([]float32, spotConeVertices*3)
	writeSpotConePositions(positions, spotConeVertices, 5, 0)

	for i := 1; i < spotConeVertices; i++ {
		assert.InDelta(t, 0, positions[i*3], 1e-6)
		assert.InDelta(t, -5, positions[i*3+1], 1e-6)
		assert.InDelta(t, 0, positions[i*3+2], 1e-6)
	}
}

package scene

import "github.com/go-gl/mathgl/mgl32"

type LightType int

const (
	LightTypeDirectional LightType = iota
	LightTypePoint
	LightTypeSpot
)

func (t LightType) String() string {
	switch t {
	case LightTypeDirectional:
		return "directional"
	case LightTypePoint:
		return "point"
	case LightTypeSpot:
		return "spot"
	}
	return "unknown"
}

type FalloffMode int

const (
	FalloffLinear FalloffMode = iota
	FalloffInverseSquared
)

type Color struct {
	R, G, B, A float32
}

func NewColor(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// LightNode is a graph node that emits light. Cone angles are in degrees.
type LightNode struct {
	Node

	lightType LightType

	Enabled          bool
	Color            Color
	Intensity        float32
	AttenuationEnd   float32
	FalloffMode      FalloffMode
	InnerConeAngle   float32
	OuterConeAngle   float32
	CastShadows      bool
	ShadowDistance   float32
	ShadowResolution int
	ShadowBias       float32
}

func NewLightNode() *LightNode {
	l := &LightNode{
		Enabled:          true,
		Color:            NewColor(1, 1, 1),
		Intensity:        1,
		AttenuationEnd:   10,
		InnerConeAngle:   40,
		OuterConeAngle:   45,
		ShadowDistance:   40,
		ShadowResolution: 1024,
		ShadowBias:       0.05,
	}
	l.init("")
	return l
}

func (l *LightNode) Type() LightType        { return l.lightType }
func (l *LightNode) SetType(t LightType)   { l.lightType = t }
func (l *LightNode) GraphNode() *Node      { return &l.Node }
func (l *LightNode) Direction() mgl32.Vec3 { return l.WorldRotation().Rotate(mgl32.Vec3{0, -1, 0}) }

package gekko

import (
	"fmt"

	"github.com/gekko3d/gekko-lights/scene"
)

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
)

func (t LightType) sceneType() (scene.LightType, error) {
	switch t {
	case LightTypeDirectional:
		return scene.LightTypeDirectional, nil
	case LightTypePoint:
		return scene.LightTypePoint, nil
	case LightTypeSpot:
		return scene.LightTypeSpot, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidLightType, string(t))
}

const lightTag = "light"

// LightComponent is the ECS component for lights. Cone angles are in degrees.
// Model is owned by the light system and must not be set by hand.
type LightComponent struct {
	Type             LightType         `gekko:"light" usage:"type"`
	Enabled          bool              `gekko:"light" usage:"enabled"`
	Color            scene.Color       `gekko:"light" usage:"color"`
	Intensity        float32           `gekko:"light" usage:"intensity"`
	CastShadows      bool              `gekko:"light" usage:"castShadows"`
	ShadowDistance   float32           `gekko:"light" usage:"shadowDistance"`
	ShadowResolution int               `gekko:"light" usage:"shadowResolution"`
	ShadowBias       float32           `gekko:"light" usage:"shadowBias"`
	Range            float32           `gekko:"light" usage:"range"`
	FalloffMode      scene.FalloffMode `gekko:"light" usage:"falloffMode"`
	InnerConeAngle   float32           `gekko:"light" usage:"innerConeAngle"`
	OuterConeAngle   float32           `gekko:"light" usage:"outerConeAngle"`
	Model            *scene.Model      `gekko:"light" usage:"model"`
}

// Light returns the live light node, or nil before the component is initialized.
func (c *LightComponent) Light() *scene.LightNode {
	if c.Model == nil || len(c.Model.Lights) == 0 {
		return nil
	}
	return c.Model.Lights[0]
}

// lightProperties is the order in which incoming data is applied.
var lightProperties = []string{
	"type", "model", "enabled", "color", "intensity", "range", "falloffMode",
	"innerConeAngle", "outerConeAngle", "castShadows", "shadowDistance",
	"shadowResolution", "shadowBias",
}

func lightSchema() Schema {
	return Schema{
		{
			Name:         "enabled",
			DisplayName:  "Enabled",
			Description:  "Enable or disable the light",
			Type:         PropertyBoolean,
			DefaultValue: true,
		},
		{
			Name:        "type",
			DisplayName: "Type",
			Description: "The type of the light",
			Type:        PropertyEnumeration,
			Options: PropertyOptions{Enumerations: []EnumOption{
				{Name: "Directional", Value: string(LightTypeDirectional)},
				{Name: "Point", Value: string(LightTypePoint)},
				{Name: "Spot", Value: string(LightTypeSpot)},
			}},
			DefaultValue: string(LightTypeDirectional),
		},
		{
			Name:         "color",
			DisplayName:  "Color",
			Description:  "Light Color",
			Type:         PropertyRGB,
			DefaultValue: scene.NewColor(1, 1, 1),
		},
		{
			Name:         "intensity",
			DisplayName:  "Intensity",
			Description:  "The intensity of the light",
			Type:         PropertyNumber,
			DefaultValue: 1.0,
			Options:      PropertyOptions{Min: bound(0), Max: bound(10), Step: 0.05},
		},
		{
			Name:         "castShadows",
			DisplayName:  "Cast Shadows",
			Description:  "Cast shadows from this light",
			Type:         PropertyBoolean,
			DefaultValue: false,
		},
		{
			Name:         "shadowDistance",
			DisplayName:  "Shadow Distance",
			Description:  "Camera distance at which shadows are no longer rendered",
			Type:         PropertyNumber,
			Options:      PropertyOptions{Min: bound(0), DecimalPrecision: 5},
			DefaultValue: 40.0,
			Filter:       map[string]any{"castShadows": true, "type": string(LightTypeDirectional)},
		},
		{
			Name:        "shadowResolution",
			DisplayName: "Shadow Resolution",
			Description: "Resolution of shadowmap generated by this light",
			Type:        PropertyEnumeration,
			Options: PropertyOptions{Enumerations: []EnumOption{
				{Name: "128", Value: 128},
				{Name: "256", Value: 256},
				{Name: "512", Value: 512},
				{Name: "1024", Value: 1024},
				{Name: "2048", Value: 2048},
			}},
			DefaultValue: 1024,
			Filter:       map[string]any{"castShadows": true},
		},
		{
			Name:         "shadowBias",
			DisplayName:  "Shadow Bias",
			Description:  "Tunes the shadows to reduce rendering artifacts",
			Type:         PropertyNumber,
			Options:      PropertyOptions{Min: bound(0), Max: bound(1), DecimalPrecision: 5, Step: 0.01},
			DefaultValue: 0.05,
			Filter:       map[string]any{"castShadows": true},
		},
		{
			Name:         "range",
			DisplayName:  "Range",
			Description:  "The distance from the light where its contribution falls to zero",
			Type:         PropertyNumber,
			DefaultValue: 10.0,
			Options:      PropertyOptions{Min: bound(0)},
			Filter:       map[string]any{"type": []string{string(LightTypePoint), string(LightTypeSpot)}},
		},
		{
			Name:        "falloffMode",
			DisplayName: "Falloff mode",
			Description: "Controls the rate at which a light attentuates from its position",
			Type:        PropertyEnumeration,
			Options: PropertyOptions{Enumerations: []EnumOption{
				{Name: "Linear", Value: scene.FalloffLinear},
				{Name: "Inverse squared", Value: scene.FalloffInverseSquared},
			}},
			DefaultValue: scene.FalloffLinear,
			Filter:       map[string]any{"type": []string{string(LightTypePoint), string(LightTypeSpot)}},
		},
		{
			Name:         "innerConeAngle",
			DisplayName:  "Inner Cone Angle",
			Description:  "Spotlight inner cone angle",
			Type:         PropertyNumber,
			DefaultValue: 40.0,
			Options:      PropertyOptions{Min: bound(0), Max: bound(90)},
			Filter:       map[string]any{"type": string(LightTypeSpot)},
		},
		{
			Name:         "outerConeAngle",
			DisplayName:  "Outer Cone Angle",
			Description:  "Spotlight outer cone angle",
			Type:         PropertyNumber,
			DefaultValue: 45.0,
			Options:      PropertyOptions{Min: bound(0), Max: bound(90)},
			Filter:       map[string]any{"type": string(LightTypeSpot)},
		},
		{
			Name:   "model",
			Hidden: true,
		},
	}
}

// lightData flattens a component into the property bag used for cloning and
// editor filters. The model is not part of it.
func lightData(c *LightComponent) ComponentData {
	return presetFromComponent(c).Data()
}

// syncLightNode pushes component values into the live light node.
func syncLightNode(c *LightComponent) {
	light := c.Light()
	if light == nil {
		return
	}
	light.Enabled = c.Enabled
	light.Color = c.Color
	light.Intensity = c.Intensity
	light.AttenuationEnd = c.Range
	light.FalloffMode = c.FalloffMode
	light.InnerConeAngle = c.InnerConeAngle
	light.OuterConeAngle = c.OuterConeAngle
	light.CastShadows = c.CastShadows
	light.ShadowDistance = c.ShadowDistance
	light.ShadowResolution = c.ShadowResolution
	light.ShadowBias = c.ShadowBias
}

package gekko

import (
	"fmt"
	"strings"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const lightPresetObject = "light_presets"

// LightPreset is the saved form of a light's settings. It holds the same
// fields as a cloned component.
type LightPreset struct {
	Type             string     `yaml:"type"`
	Enabled          bool       `yaml:"enabled"`
	Color            [3]float32 `yaml:"color"`
	Intensity        float32    `yaml:"intensity"`
	Range            float32    `yaml:"range"`
	InnerConeAngle   float32    `yaml:"innerConeAngle"`
	OuterConeAngle   float32    `yaml:"outerConeAngle"`
	CastShadows      bool       `yaml:"castShadows"`
	ShadowDistance   float32    `yaml:"shadowDistance"`
	ShadowResolution int        `yaml:"shadowResolution"`
	FalloffMode      int        `yaml:"falloffMode"`
	ShadowBias       float32    `yaml:"shadowBias"`
}

func presetFromComponent(c *LightComponent) LightPreset {
	return LightPreset{
		Type:             string(c.Type),
		Enabled:          c.Enabled,
		Color:            [3]float32{c.Color.R, c.Color.G, c.Color.B},
		Intensity:        c.Intensity,
		Range:            c.Range,
		InnerConeAngle:   c.InnerConeAngle,
		OuterConeAngle:   c.OuterConeAngle,
		CastShadows:      c.CastShadows,
		ShadowDistance:   c.ShadowDistance,
		ShadowResolution: c.ShadowResolution,
		FalloffMode:      int(c.FalloffMode),
		ShadowBias:       c.ShadowBias,
	}
}

func (p LightPreset) Data() ComponentData {
	return ComponentData{
		"type":             p.Type,
		"enabled":          p.Enabled,
		"color":            p.Color,
		"intensity":        p.Intensity,
		"range":            p.Range,
		"innerConeAngle":   p.InnerConeAngle,
		"outerConeAngle":   p.OuterConeAngle,
		"castShadows":      p.CastShadows,
		"shadowDistance":   p.ShadowDistance,
		"shadowResolution": p.ShadowResolution,
		"falloffMode":      p.FalloffMode,
		"shadowBias":       p.ShadowBias,
	}
}

// LightPresetStore saves named light settings for the editor. With a nil
// gdata manager the presets only live in memory.
type LightPresetStore struct {
	manager *gdata.Manager
	memory  map[string][]byte
}

func NewLightPresetStore(manager *gdata.Manager) *LightPresetStore {
	return &LightPresetStore{
		manager: manager,
		memory:  make(map[string][]byte),
	}
}

// OpenLightPresetStore opens the per-user data directory of appName.
func OpenLightPresetStore(appName string) (*LightPresetStore, error) {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open preset storage: %w", err)
	}
	return NewLightPresetStore(manager), nil
}

func validPresetName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("invalid preset name %q", name)
	}
	return nil
}

func (s *LightPresetStore) Save(name string, c *LightComponent) error {
	if err := validPresetName(name); err != nil {
		return err
	}
	data, err := yaml.Marshal(presetFromComponent(c))
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	if s.manager == nil {
		s.memory[name] = data
		return nil
	}
	if err := s.manager.SaveObjectProp(lightPresetObject, name, data); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}
	return nil
}

func (s *LightPresetStore) Load(name string) (LightPreset, error) {
	if err := validPresetName(name); err != nil {
		return LightPreset{}, err
	}

	var raw []byte
	if s.manager == nil {
		data, ok := s.memory[name]
		if !ok {
			return LightPreset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
		}
		raw = data
	} else {
		if !s.manager.ObjectPropExists(lightPresetObject, name) {
			return LightPreset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
		}
		data, err := s.manager.LoadObjectProp(lightPresetObject, name)
		if err != nil {
			return LightPreset{}, fmt.Errorf("failed to load preset: %w", err)
		}
		raw = data
	}

	var preset LightPreset
	if err := yaml.Unmarshal(raw, &preset); err != nil {
		return LightPreset{}, fmt.Errorf("failed to unmarshal preset: %w", err)
	}
	return preset, nil
}

// Apply loads a preset onto the entity: a new light if it has none, otherwise
// one edit per property, type first.
func (s *LightPresetStore) Apply(cmd *Commands, lights *LightComponentSystem, eid EntityId, name string) error {
	preset, err := s.Load(name)
	if err != nil {
		return err
	}
	data := preset.Data()

	if _, ok := findComponent[LightComponent](cmd, eid); !ok {
		return lights.AddComponent(cmd, eid, data)
	}
	for _, prop := range lightProperties {
		value, ok := data[prop]
		if !ok {
			continue
		}
		if err := lights.SetProperty(cmd, eid, prop, value); err != nil {
			return err
		}
	}
	return nil
}

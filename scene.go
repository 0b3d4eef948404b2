package gekko

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// SceneDef is a level file: a flat list of entities, optionally parented by
// name, each optionally carrying light data in the same shape the editor
// produces.
type SceneDef struct {
	Entities []EntityDef `yaml:"entities"`
}

type EntityDef struct {
	Name     string        `yaml:"name"`
	Parent   string        `yaml:"parent,omitempty"`
	Position [3]float32    `yaml:"position"`
	Rotation [3]float32    `yaml:"rotation"` // Euler XYZ, degrees
	Light    ComponentData `yaml:"light,omitempty"`
}

// NameComponent carries the entity name from the level file.
type NameComponent struct {
	Name string
}

func LoadSceneFile(path string) (*SceneDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return ParseScene(data)
}

func ParseScene(data []byte) (*SceneDef, error) {
	var def SceneDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene file: %w", err)
	}
	return &def, nil
}

// Validate checks that names are unique and that parents are declared before
// their children.
func (def *SceneDef) Validate() error {
	seen := make(map[string]bool, len(def.Entities))
	for i, e := range def.Entities {
		if e.Name == "" {
			return fmt.Errorf("entity %d has no name", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate entity name %q", e.Name)
		}
		if e.Parent != "" && !seen[e.Parent] {
			return fmt.Errorf("entity %q: parent %q must be declared first", e.Name, e.Parent)
		}
		seen[e.Name] = true
	}
	return nil
}

// LoadScene queues every entity of def and attaches its light. Light data goes
// through the same path as editor data, so invalid lights fail the load.
func LoadScene(cmd *Commands, lights *LightComponentSystem, def *SceneDef) (map[string]EntityId, error) {
	ids := make(map[string]EntityId, len(def.Entities))
	for _, e := range def.Entities {
		rot := mgl32.AnglesToQuat(
			mgl32.DegToRad(e.Rotation[0]),
			mgl32.DegToRad(e.Rotation[1]),
			mgl32.DegToRad(e.Rotation[2]),
			mgl32.XYZ,
		)
		comps := []any{
			&NameComponent{Name: e.Name},
			&TransformComponent{
				Position: mgl32.Vec3(e.Position),
				Rotation: rot,
				Scale:    mgl32.Vec3{1, 1, 1},
			},
		}
		if e.Parent != "" {
			comps = append(comps, &Parent{Entity: ids[e.Parent]})
		}

		eid := cmd.AddEntity(comps...)
		ids[e.Name] = eid

		if e.Light == nil {
			continue
		}
		if err := lights.AddComponent(cmd, eid, e.Light); err != nil {
			return ids, fmt.Errorf("entity %q: %w", e.Name, err)
		}
	}
	return ids, nil
}

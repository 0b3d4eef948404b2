package gekko

import (
	"fmt"
	"math"

	"github.com/gekko3d/gekko-lights/scene"
)

// LightComponentSystem owns the light schema and one implementation per
// light type. It is installed as a resource by LightModule.
type LightComponentSystem struct {
	Id          string
	Description string

	schema          Schema
	implementations map[LightType]*lightImplementation
	context         *EngineContext
	assets          *AssetServer
}

func NewLightComponentSystem(ctx *EngineContext, assets *AssetServer) *LightComponentSystem {
	return &LightComponentSystem{
		Id:              "light",
		Description:     "Enables the Entity to emit light.",
		schema:          lightSchema(),
		implementations: make(map[LightType]*lightImplementation),
		context:         ctx,
		assets:          assets,
	}
}

func (s *LightComponentSystem) Schema() Schema {
	return s.schema
}

// VisibleProperties lists the properties the editor should show for c.
func (s *LightComponentSystem) VisibleProperties(c *LightComponent) Schema {
	return s.schema.Visible(lightData(c))
}

func (s *LightComponentSystem) createImplementation(kind LightType) (*lightImplementation, error) {
	if impl, ok := s.implementations[kind]; ok {
		return impl, nil
	}
	impl, err := newLightImplementation(s, kind)
	if err != nil {
		return nil, err
	}
	s.implementations[kind] = impl
	return impl, nil
}

// AddComponent attaches a light to the entity from a loosely typed property
// bag. Missing properties take their schema defaults. The entity may still be
// queued; the component lands with it on the next flush.
func (s *LightComponentSystem) AddComponent(cmd *Commands, eid EntityId, data ComponentData) error {
	if !cmd.entityAlive(eid) {
		return fmt.Errorf("%w: %v", ErrUnknownEntity, eid)
	}
	if _, ok := findComponent[LightComponent](cmd, eid); ok {
		return fmt.Errorf("%w: %v", ErrLightComponentExist, eid)
	}

	c, impl, err := s.initializeComponentData(cmd, data)
	if err != nil {
		return err
	}

	nodeComp, queued := s.entityNode(cmd, eid)
	impl.initialize(nodeComp.Node, c)
	syncLightNode(c)

	if s.context.Designer {
		impl.toolsUpdate(c)
	}

	if queued {
		cmd.AddComponents(eid, nodeComp, c)
	} else {
		cmd.AddComponents(eid, c)
	}
	cmd.Logger().Debugf("light: added %s light to entity %v", c.Type, eid)
	return nil
}

func (s *LightComponentSystem) initializeComponentData(cmd *Commands, data ComponentData) (*LightComponent, *lightImplementation, error) {
	data = cloneComponentData(data)

	if _, ok := data["type"]; !ok {
		data["type"] = s.defaultType()
	}
	// The deprecated key only counts when truthy, and then wins over enabled.
	if enable, ok := data["enable"]; ok {
		if truthy(enable) {
			cmd.Logger().Warnf("WARNING: enable: Property is deprecated. Set enabled property instead.")
			data["enabled"] = true
		}
		delete(data, "enable")
	}

	c := &LightComponent{}
	for _, p := range s.schema {
		if p.Hidden {
			continue
		}
		if err := bindProperty(c, lightTag, p.Name, p.DefaultValue); err != nil {
			return nil, nil, err
		}
	}

	kind, err := s.coerceType(data["type"])
	if err != nil {
		return nil, nil, err
	}
	impl, err := s.createImplementation(kind)
	if err != nil {
		return nil, nil, err
	}

	for _, name := range lightProperties {
		value, ok := data[name]
		if !ok || name == "model" {
			continue
		}
		if err := s.assign(c, name, value); err != nil {
			return nil, nil, err
		}
	}
	return c, impl, nil
}

func (s *LightComponentSystem) defaultType() string {
	p, _ := s.schema.Property("type")
	return p.DefaultValue.(string)
}

func (s *LightComponentSystem) coerceType(value any) (LightType, error) {
	p, _ := s.schema.Property("type")
	v, err := p.Coerce(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidLightType, value)
	}
	return LightType(v.(string)), nil
}

// assign coerces value through the schema and stores it on c.
func (s *LightComponentSystem) assign(c *LightComponent, name string, value any) error {
	if name == "type" {
		kind, err := s.coerceType(value)
		if err != nil {
			return err
		}
		c.Type = kind
		return nil
	}

	p, ok := s.schema.Property(name)
	if !ok || p.Hidden {
		return fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	v, err := p.Coerce(value)
	if err != nil {
		return err
	}
	return bindProperty(c, lightTag, name, v)
}

// entityNode returns the entity's scene node, creating one when the entity has
// none yet. queued is true when the caller must add the returned component.
func (s *LightComponentSystem) entityNode(cmd *Commands, eid EntityId) (*SceneNodeComponent, bool) {
	if nodeComp, ok := findComponent[SceneNodeComponent](cmd, eid); ok && nodeComp.Node != nil {
		return nodeComp, false
	}
	nodeComp := &SceneNodeComponent{Node: scene.NewNode(fmt.Sprintf("entity-%d", eid))}
	if tr, ok := findComponent[TransformComponent](cmd, eid); ok {
		applyTransform(nodeComp.Node, tr)
	}
	return nodeComp, true
}

// RemoveComponent detaches the light node and debug shape from the entity and
// drops the component.
func (s *LightComponentSystem) RemoveComponent(cmd *Commands, eid EntityId) error {
	c, ok := findComponent[LightComponent](cmd, eid)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoLightComponent, eid)
	}
	s.onRemove(cmd, eid, c)
	cmd.RemoveComponents(eid, LightComponent{})
	return nil
}

// RemoveEntity removes the light, if any, and then the entity itself.
func (s *LightComponentSystem) RemoveEntity(cmd *Commands, eid EntityId) {
	if c, ok := findComponent[LightComponent](cmd, eid); ok {
		s.onRemove(cmd, eid, c)
	}
	cmd.RemoveEntity(eid)
}

// releaseLight is registered as the removal hook for LightComponent, so plain
// RemoveEntity and RemoveComponents calls release the light too.
func (s *LightComponentSystem) releaseLight(cmd *Commands, eid EntityId, component any) {
	if c, ok := component.(*LightComponent); ok {
		s.onRemove(cmd, eid, c)
	}
}

func (s *LightComponentSystem) onRemove(cmd *Commands, eid EntityId, c *LightComponent) {
	if c.Model == nil {
		return
	}
	impl, ok := s.implementations[c.Type]
	if !ok {
		return
	}
	if nodeComp, ok := findComponent[SceneNodeComponent](cmd, eid); ok && nodeComp.Node != nil {
		impl.remove(nodeComp.Node, c)
	} else {
		s.context.Scene.RemoveModel(c.Model)
		c.Model = nil
	}
	cmd.Logger().Debugf("light: removed %s light from entity %v", c.Type, eid)
}

// CloneComponent gives dst a fresh light with the same settings as src.
func (s *LightComponentSystem) CloneComponent(cmd *Commands, src EntityId, dst EntityId) error {
	c, ok := findComponent[LightComponent](cmd, src)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoLightComponent, src)
	}
	return s.AddComponent(cmd, dst, lightData(c))
}

// SetProperty applies an editor edit to the entity's light and pushes it into
// the live scene objects. Changing the type swaps the light node and debug
// shape for the new type's.
func (s *LightComponentSystem) SetProperty(cmd *Commands, eid EntityId, name string, value any) error {
	c, ok := findComponent[LightComponent](cmd, eid)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoLightComponent, eid)
	}

	oldType := c.Type
	if err := s.assign(c, name, value); err != nil {
		return err
	}

	if name == "type" && oldType != c.Type {
		newType := c.Type
		c.Type = oldType
		if err := s.changeType(cmd, eid, c, oldType, newType); err != nil {
			return err
		}
		return nil
	}

	syncLightNode(c)
	return nil
}

// ChangeType is SetProperty(cmd, eid, "type", newType).
func (s *LightComponentSystem) ChangeType(cmd *Commands, eid EntityId, newType LightType) error {
	return s.SetProperty(cmd, eid, "type", string(newType))
}

func (s *LightComponentSystem) changeType(cmd *Commands, eid EntityId, c *LightComponent, oldType LightType, newType LightType) error {
	newImpl, err := s.createImplementation(newType)
	if err != nil {
		return err
	}

	nodeComp, queued := s.entityNode(cmd, eid)
	if queued {
		return fmt.Errorf("%w: %v", ErrNoSceneNode, eid)
	}

	if oldImpl, ok := s.implementations[oldType]; ok {
		oldImpl.remove(nodeComp.Node, c)
	}
	c.Type = newType
	newImpl.initialize(nodeComp.Node, c)
	syncLightNode(c)
	if s.context.Designer {
		newImpl.toolsUpdate(c)
	}

	cmd.Logger().Infof("light: entity %v changed from %s to %s", eid, oldType, newType)
	return nil
}

// Property reads one schema property of the entity's light.
func (s *LightComponentSystem) Property(cmd *Commands, eid EntityId, name string) (any, error) {
	c, ok := findComponent[LightComponent](cmd, eid)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoLightComponent, eid)
	}
	if p, ok := s.schema.Property(name); !ok || p.Hidden {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	return readProperty(c, lightTag, name)
}

// ToolsUpdate runs the per-frame editor update of every light. It does
// nothing outside the designer.
func (s *LightComponentSystem) ToolsUpdate(cmd *Commands) {
	if !s.context.Designer {
		return
	}
	MakeQuery1[LightComponent](cmd).Map(func(eid EntityId, c *LightComponent) bool {
		if impl, ok := s.implementations[c.Type]; ok {
			impl.toolsUpdate(c)
		}
		return true
	})
}

func cloneComponentData(data ComponentData) ComponentData {
	res := make(ComponentData, len(data))
	for k, v := range data {
		res[k] = v
	}
	return res
}

func truthy(value any) bool {
	v, ok := normalizeScalar(value)
	if !ok {
		return value != nil
	}
	switch v := v.(type) {
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case string:
		return v != ""
	}
	return false
}

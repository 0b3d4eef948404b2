package gekko

type Commands struct {
	app *App
}

func (cmd *Commands) App() *App {
	return cmd.app
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}

func (cmd *Commands) Exit() {
	cmd.app.exiting = true
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) AddEntity(components ...any) EntityId {
	eid := cmd.app.ecs.nextEntityId()
	cmd.queue(commandAddEntity, eid, components)
	return eid
}

func (cmd *Commands) AddComponents(entityId EntityId, components ...any) {
	cmd.queue(commandAddComponents, entityId, components)
}

func (cmd *Commands) RemoveComponents(entityId EntityId, components ...any) {
	cmd.queue(commandRemoveComponents, entityId, components)
}

func (cmd *Commands) RemoveEntity(entityId EntityId) {
	cmd.queue(commandRemoveEntity, entityId, nil)
}

func (cmd *Commands) queue(kind commandKind, entityId EntityId, components []any) {
	cmd.app.pending = append(cmd.app.pending, pendingCommand{
		kind:       kind,
		eid:        entityId,
		components: components,
	})
}

func (cmd *Commands) HasEntity(entityId EntityId) bool {
	return cmd.app.ecs.hasEntity(entityId)
}

// GetAllComponents returns copies of the entity's components, or nil when the
// entity is not live.
func (cmd *Commands) GetAllComponents(entityId EntityId) []any {
	return cmd.app.ecs.componentsOf(entityId)
}

// GetComponent returns the live component of type T on the entity. Writes
// through the pointer are visible to later queries.
func GetComponent[T any](cmd *Commands, entityId EntityId) (*T, bool) {
	c := getComponent[T](cmd.app.ecs, entityId)
	return c, c != nil
}

// findComponent returns the component of type T the entity will carry once
// the queued commands are flushed. It starts from live storage and replays the
// queue: queued additions passed by pointer are returned as-is so edits land on
// flush, and queued removals hide the component.
func findComponent[T any](cmd *Commands, entityId EntityId) (*T, bool) {
	found, _ := GetComponent[T](cmd, entityId)
	for _, c := range cmd.app.pending {
		if c.eid != entityId {
			continue
		}
		switch c.kind {
		case commandAddEntity, commandAddComponents:
			if v, ok := pendingComponent[T](c.components); ok {
				found = v
			}
		case commandRemoveEntity:
			found = nil
		case commandRemoveComponents:
			if hasComponentType[T](c.components) {
				found = nil
			}
		}
	}
	return found, found != nil
}

func pendingComponent[T any](components []any) (*T, bool) {
	for _, c := range components {
		switch v := c.(type) {
		case *T:
			return v, true
		case T:
			return &v, true
		}
	}
	return nil, false
}

func hasComponentType[T any](components []any) bool {
	for _, c := range components {
		switch c.(type) {
		case *T, T:
			return true
		}
	}
	return false
}

// entityAlive reports whether the entity exists once the queued commands are
// flushed.
func (cmd *Commands) entityAlive(entityId EntityId) bool {
	alive := cmd.HasEntity(entityId)
	for _, c := range cmd.app.pending {
		if c.eid != entityId {
			continue
		}
		switch c.kind {
		case commandAddEntity:
			alive = true
		case commandRemoveEntity:
			alive = false
		}
	}
	return alive
}

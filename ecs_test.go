package gekko

import (
	"reflect"
	"testing"
)

func TestEcs_MakeEcs(t *testing.T) {
	ecs := MakeEcs()

	// Check if the fields are initialized properly
	if len(ecs.archetypes) != 0 {
		t.Errorf("Expected archetypes to be empty, got %v", ecs.archetypes)
	}

	if len(ecs.entityIndex) != 0 {
		t.Errorf("Expected entityIndex to be empty, got %v", ecs.entityIndex)
	}

	if ecs.entityIdCounter != 0 {
		t.Errorf("Expected entityIdCounter to be 0, got %v", ecs.entityIdCounter)
	}

	if ecs.componentIdCounter != 0 {
		t.Errorf("Expected componentIdCounter to be 0, got %v", ecs.componentIdCounter)
	}
}

func TestEcs_AddEntity(t *testing.T) {
	ecs := MakeEcs()

	// Add an entity with no components (can also test with components added)
	entityId := ecs.addEntity()

	// Check if the entity is added to the entityIndex
	if _, ok := ecs.entityIndex[entityId]; !ok {
		t.Errorf("Expected entityId %v to be in entityIndex", entityId)
	}

	type TestComponent struct {
		x string
	}
	testComp := TestComponent{
		x: "test",
	}

	entityId2 := ecs.addEntity(testComp)
	// Check if the entity is added to the entityIndex
	if _, ok := ecs.entityIndex[entityId2]; !ok {
		t.Errorf("Expected entityId %v to be in entityIndex", entityId2)
	}

	archId1 := ecs.entityIndex[entityId]
	archId2 := ecs.entityIndex[entityId2]
	if archId1 == archId2 {
		t.Errorf("Entities with different components ended up in the same Archetype")
	}
}

func TestEcs_AddComponents(t *testing.T) {
	type TestComponent0 struct{ a int }
	type TestComponent1 struct{ x string }
	type TestComponent2 struct{ y string }
	type TestComponent3 struct{ z string }

	ecs := MakeEcs()

	// Create a new entity
	entityId := ecs.addEntity(TestComponent0{a: 1337})

	// Add components to the entity
	ecs.addComponents(entityId, TestComponent1{x: "test"}, TestComponent2{y: "hello"})

	// Test using pointers too
	ecs.addComponents(entityId, &TestComponent3{z: "test-2"})

	// The entity moved to an archetype holding all four components
	archId := ecs.entityIndex[entityId]
	arch := ecs.archetypes[archId]
	if 4 != len(arch.componentData) {
		t.Errorf("Should have ended up in an Archetype with 4 components")
	}
	if c := getComponent[TestComponent3](&ecs, entityId); c == nil || c.z != "test-2" {
		t.Errorf("pointer component was not stored by value")
	}
}
func TestEcs_AddInvalidComponentShouldPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on invalid component type")
		}
	}()

	ecs := MakeEcs()
	ecs.addEntity(123) // invalid component
}

func TestEcs_ArchetypeKeyExtension(t *testing.T) {
	key := combineArchetypeKeys([]componentId{3, 1, 2}, []componentId{4, 3, 2, 1})
	expected := archetypeKey{1, 2, 3, 4}

	if !reflect.DeepEqual(key, expected) {
		t.Errorf("combine: expected %v, got %v", expected, key)
	}
}

func TestEcs_GetComponentWritesThrough(t *testing.T) {
	type Health struct{ Hp int }
	type Tag struct{}

	ecs := MakeEcs()
	id := ecs.addEntity(Health{Hp: 10})

	hp := getComponent[Health](&ecs, id)
	if hp == nil {
		t.Fatalf("expected Health component")
	}
	hp.Hp = 3

	if got := getComponent[Health](&ecs, id).Hp; got != 3 {
		t.Errorf("expected write-through, got %v", got)
	}
	if getComponent[Tag](&ecs, id) != nil {
		t.Errorf("expected no Tag component")
	}
	if getComponent[Health](&ecs, EntityId(999)) != nil {
		t.Errorf("expected nil for unknown entity")
	}
}

func TestEcs_RemoveComponentsKeepsTheRest(t *testing.T) {
	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }

	ecs := MakeEcs()
	id := ecs.addEntity(Position{1, 2}, Velocity{3, 4})
	ecs.removeComponents(id, Velocity{})

	comps := ecs.componentsOf(id)
	if len(comps) != 1 {
		t.Fatalf("expected 1 component, got %v", comps)
	}
	if comps[0] != (Position{1, 2}) {
		t.Errorf("expected Position to survive, got %v", comps[0])
	}
}

func TestEcs_RemoveEntityRecyclesRow(t *testing.T) {
	type Position struct{ X, Y float64 }

	ecs := MakeEcs()
	first := ecs.addEntity(Position{1, 2})
	ecs.removeEntity(first)
	ecs.removeEntity(first)

	if ecs.hasEntity(first) {
		t.Errorf("entity not removed")
	}
	if ecs.componentsOf(first) != nil {
		t.Errorf("expected no components for removed entity")
	}

	second := ecs.addEntity(Position{5, 6})
	arch := ecs.archetypes[ecs.entityIndex[second]]
	if len(arch.recycled) != 0 {
		t.Errorf("expected recycled row to be reused")
	}
	if got := getComponent[Position](&ecs, second); *got != (Position{5, 6}) {
		t.Errorf("expected fresh data on recycled row, got %v", *got)
	}
}

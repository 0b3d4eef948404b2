package gekko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Map(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{ b float32 }
	type Comp3 struct{}

	app := NewApp()
	cmd := app.Commands()
	cmd.AddEntity(Comp1{a: 1})                                 // comp1 only                       -- shouldn't match
	id2 := cmd.AddEntity(Comp1{a: 2}, Comp2{b: 1.37})          // comp1 & comp2                    -- should match
	id3 := cmd.AddEntity(Comp1{a: 3}, Comp2{b: 4.20}, Comp3{}) // comp1 & comp2 + something extra  -- should match
	cmd.AddEntity(Comp1{a: 4}, Comp3{})                        // comp1 + something extra          -- shouldn't match
	cmd.AddEntity(Comp2{b: 3.14})                              // comp2 only                       -- shouldn't match
	app.FlushCommands()

	found := map[EntityId]int{}
	MakeQuery2[Comp1, Comp2](cmd).Map(func(eid EntityId, c1 *Comp1, c2 *Comp2) bool {
		found[eid] = c1.a
		return true
	})

	assert.Equal(t, map[EntityId]int{id2: 2, id3: 3}, found)
}

func TestQuery_MapOptional(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{ b int }

	app := NewApp()
	cmd := app.Commands()
	withBoth := cmd.AddEntity(Comp1{a: 1}, Comp2{b: 2})
	withOne := cmd.AddEntity(Comp1{a: 3})
	app.FlushCommands()

	seen := map[EntityId]bool{}
	MakeQuery2[Comp1, Comp2](cmd).Map(func(eid EntityId, c1 *Comp1, c2 *Comp2) bool {
		seen[eid] = c2 != nil
		return true
	}, Comp2{})

	assert.Equal(t, map[EntityId]bool{withBoth: true, withOne: false}, seen)
}

func TestQuery_MapStopsEarly(t *testing.T) {
	type Comp1 struct{ a int }

	app := NewApp()
	cmd := app.Commands()
	for i := 0; i < 5; i++ {
		cmd.AddEntity(Comp1{a: i})
	}
	app.FlushCommands()

	calls := 0
	MakeQuery1[Comp1](cmd).Map(func(eid EntityId, c *Comp1) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestQuery_Map3WritesThrough(t *testing.T) {
	type A struct{ v int }
	type B struct{ v int }
	type C struct{ v int }

	app := NewApp()
	cmd := app.Commands()
	id := cmd.AddEntity(A{1}, B{2}, C{3})
	app.FlushCommands()

	MakeQuery3[A, B, C](cmd).Map(func(eid EntityId, a *A, b *B, c *C) bool {
		a.v = a.v + b.v + c.v
		return true
	})

	got, ok := GetComponent[A](cmd, id)
	assert.True(t, ok)
	assert.Equal(t, 6, got.v)
}

package gekko

import (
	"time"
)

// LifetimeComponent removes its entity once TimeLeft runs out. Lights on the
// entity are released with it.
type LifetimeComponent struct {
	TimeLeft time.Duration
}

// LifecycleModule counts lifetimes down every frame. It installs the frame
// clock if nothing else did.
type LifecycleModule struct{}

func (LifecycleModule) Install(app *App, cmd *Commands) {
	TimeModule{}.Install(app, cmd)
	app.UseSystem(
		System(lifetimeSystem).
			InStage(PostUpdate),
	)
}

func lifetimeSystem(clock *Time, cmd *Commands) {
	if clock.Dt <= 0 {
		return
	}
	lights, _ := Resource[LightComponentSystem](cmd.App())

	MakeQuery1[LifetimeComponent](cmd).Map(func(eid EntityId, lt *LifetimeComponent) bool {
		lt.TimeLeft -= clock.Dt
		if lt.TimeLeft > 0 {
			return true
		}
		cmd.Logger().Debugf("lifecycle: entity %v expired", eid)
		if lights != nil {
			lights.RemoveEntity(cmd, eid)
		} else {
			cmd.RemoveEntity(eid)
		}
		return true
	})
}

package gekko

import (
	"time"
)

// Time is the frame clock. Dt is the wall time between the last two frames.
type Time struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64
}

type TimeModule struct{}

func (TimeModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[Time](app); ok {
		return
	}
	cmd.AddResources(&Time{Time: time.Now()})
	app.UseSystem(
		System(timeSystem).
			InStage(Prelude),
	)
}

func timeSystem(clock *Time) {
	clock.advance(time.Now())
}

func (t *Time) advance(now time.Time) {
	t.Dt = now.Sub(t.Time)
	t.Time = now
	t.Frame++
}

package gekko

// LightModule installs the light component system. Designer turns on the
// editor-only debug geometry and its per-frame update.
type LightModule struct {
	Designer bool
}

func (m LightModule) Install(app *App, cmd *Commands) {
	ctx, ok := Resource[EngineContext](app)
	if !ok {
		ctx = NewEngineContext(m.Designer)
		app.addResources(ctx)
	} else if m.Designer {
		ctx.Designer = true
	}

	assets, ok := Resource[AssetServer](app)
	if !ok {
		assets = NewAssetServer()
		app.addResources(assets)
	}

	lights := NewLightComponentSystem(ctx, assets)
	app.addResources(lights)
	app.OnRemove(LightComponent{}, lights.releaseLight)
	app.UseSystem(
		System(lightToolsUpdateSystem).
			InStage(PostUpdate),
	)
	app.Logger().Infof("light: component system installed (designer=%v)", ctx.Designer)
}

func lightToolsUpdateSystem(cmd *Commands, lights *LightComponentSystem) {
	lights.ToolsUpdate(cmd)
}

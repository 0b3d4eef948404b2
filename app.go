package gekko

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

type Module interface {
	Install(app *App, cmd *Commands)
}

type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	ecs       *Ecs
	exiting   bool

	// Command Buffering
	pending      []pendingCommand
	removalHooks map[reflect.Type][]RemovalHook
}

type commandKind int

const (
	commandAddEntity commandKind = iota
	commandRemoveEntity
	commandAddComponents
	commandRemoveComponents
)

// pendingCommand is one queued structural change. Commands are applied in
// the order they were issued.
type pendingCommand struct {
	kind       commandKind
	eid        EntityId
	components []any
}

// RemovalHook runs during a flush, right before a component leaves its entity,
// either on its own or together with the entity. component points at the live
// value.
type RemovalHook func(cmd *Commands, eid EntityId, component any)

func NewApp() *App {
	ecs := MakeEcs()
	app := &App{
		systems:      make(map[string][]systemFn),
		resources:    make(map[reflect.Type]any),
		ecs:          &ecs,
		removalHooks: make(map[reflect.Type][]RemovalHook),
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// UseModules installs the modules in order and applies whatever they queued.
func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		module.Install(app, cmd)
	}
	app.FlushCommands()
	return app
}

// Update runs every stage once. Commands queued by a stage are applied
// before the next stage starts.
func (app *App) Update() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
		app.FlushCommands()
	}
}

// Run calls Update until a system asks to exit.
func (app *App) Run() {
	app.Logger().Infof("Running %d stages", len(app.stages))
	for !app.exiting {
		app.Update()
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("resource %s must be a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the resource of type *T registered on the app.
func Resource[T any](app *App) (*T, bool) {
	var zero T
	r, ok := app.resources[reflect.TypeOf(zero)]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

func (app *App) callSystem(system systemFn) {
	app.callSystemInternal(system)
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystemInternal(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("System %s: argument %d must be a pointer, got %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(), i, argType))
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}

// OnRemove registers hook for every removal of components of the same type
// as component.
func (app *App) OnRemove(component any, hook RemovalHook) *App {
	componentType := reflect.TypeOf(component)
	if componentType.Kind() == reflect.Pointer {
		componentType = componentType.Elem()
	}
	app.removalHooks[componentType] = append(app.removalHooks[componentType], hook)
	return app
}

func (app *App) FlushCommands() {
	cmd := app.Commands()
	// Hooks may queue more commands; those are applied in the same flush.
	for len(app.pending) > 0 {
		batch := app.pending
		app.pending = nil

		for _, c := range batch {
			switch c.kind {
			case commandAddEntity:
				app.ecs.insertEntity(c.eid, c.components...)
			case commandRemoveEntity:
				app.Logger().Debugf("flush: removing entity %v", c.eid)
				app.runRemovalHooks(cmd, c.eid, app.ecs.componentTypes(c.eid))
				app.ecs.removeEntity(c.eid)
			case commandAddComponents:
				app.ecs.addComponents(c.eid, c.components...)
			case commandRemoveComponents:
				app.runRemovalHooks(cmd, c.eid, componentTypesOf(c.components))
				app.ecs.removeComponents(c.eid, c.components...)
			}
		}
	}
}

func (app *App) runRemovalHooks(cmd *Commands, eid EntityId, types []reflect.Type) {
	for _, componentType := range types {
		hooks := app.removalHooks[componentType]
		if len(hooks) == 0 {
			continue
		}
		component, ok := app.ecs.componentRef(eid, componentType)
		if !ok {
			continue
		}
		for _, hook := range hooks {
			hook(cmd, eid, component)
		}
	}
}

func componentTypesOf(components []any) []reflect.Type {
	res := make([]reflect.Type, 0, len(components))
	for _, c := range components {
		componentType := reflect.TypeOf(c)
		if componentType.Kind() == reflect.Pointer {
			componentType = componentType.Elem()
		}
		res = append(res, componentType)
	}
	return res
}

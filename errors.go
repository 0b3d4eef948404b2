package gekko

import "errors"

var (
	ErrInvalidLightType    = errors.New("invalid light type")
	ErrInvalidProperty     = errors.New("invalid property value")
	ErrUnknownProperty     = errors.New("unknown property")
	ErrNoLightComponent    = errors.New("entity has no light component")
	ErrLightComponentExist = errors.New("entity already has a light component")
	ErrUnknownEntity       = errors.New("unknown entity")
	ErrNoSceneNode         = errors.New("entity has no scene node")
	ErrPresetNotFound      = errors.New("preset not found")
)

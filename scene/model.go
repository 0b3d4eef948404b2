package scene

import "slices"

// Model groups a graph with the lights and mesh instances hanging off it.
type Model struct {
	Graph         *Node
	Lights        []*LightNode
	MeshInstances []*MeshInstance
}

func NewModel() *Model {
	return &Model{}
}

type Scene struct {
	models []*Model
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) AddModel(model *Model) {
	if model == nil || slices.Contains(s.models, model) {
		return
	}
	s.models = append(s.models, model)
}

func (s *Scene) RemoveModel(model *Model) {
	idx := slices.Index(s.models, model)
	if idx < 0 {
		return
	}
	s.models = slices.Delete(s.models, idx, idx+1)
}

func (s *Scene) ContainsModel(model *Model) bool {
	return slices.Contains(s.models, model)
}

func (s *Scene) Models() []*Model {
	return slices.Clone(s.models)
}

// Lights returns every light of every model in the scene.
func (s *Scene) Lights() []*LightNode {
	var res []*LightNode
	for _, m := range s.models {
		res = append(res, m.Lights...)
	}
	return res
}

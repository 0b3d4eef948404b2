package gekko

import (
	"github.com/google/uuid"

	"github.com/gekko3d/gekko-lights/scene"
)

type AssetId string

// AssetServer keeps track of the meshes and materials handed to the scene so
// they can be released by id.
type AssetServer struct {
	meshes    map[AssetId]*scene.Mesh
	materials map[AssetId]scene.Material
}

type AssetServerModule struct{}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes:    make(map[AssetId]*scene.Mesh),
		materials: make(map[AssetId]scene.Material),
	}
}

func (server *AssetServer) LoadMesh(mesh *scene.Mesh) AssetId {
	id := makeAssetId()
	server.meshes[id] = mesh
	return id
}

func (server *AssetServer) LoadMaterial(material scene.Material) AssetId {
	id := makeAssetId()
	server.materials[id] = material
	return id
}

func (server *AssetServer) Mesh(id AssetId) (*scene.Mesh, bool) {
	mesh, ok := server.meshes[id]
	return mesh, ok
}

func (server *AssetServer) Material(id AssetId) (scene.Material, bool) {
	material, ok := server.materials[id]
	return material, ok
}

// UnloadMesh forgets the mesh and destroys its vertex buffer.
func (server *AssetServer) UnloadMesh(id AssetId) {
	mesh, ok := server.meshes[id]
	if !ok {
		return
	}
	mesh.Destroy()
	delete(server.meshes, id)
}

func (server *AssetServer) MeshCount() int     { return len(server.meshes) }
func (server *AssetServer) MaterialCount() int { return len(server.materials) }

func (AssetServerModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[AssetServer](app); ok {
		return
	}
	app.addResources(NewAssetServer())
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

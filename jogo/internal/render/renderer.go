package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"log"
	"unsafe"

	"TerraViva/shared/meshing"
	"TerraViva/shared/vegetation"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer é o colaborador de apresentação: recebe os buffers achatados do
// núcleo (posições, UVs, cores, índices) e os converte em malhas Raylib na
// GPU. Todo o resto do sistema enxerga apenas GeometryData.
type Renderer struct {
	TerrainShader rl.Shader
	PlantShader   rl.Shader

	plantTimeLoc   int32
	brushPosLoc    int32
	brushRadiusLoc int32
	brushActiveLoc int32

	// A malha de terreno mantém a cópia em RAM viva: o raycasting do pincel
	// (GetRayCollisionMesh) e o refresh pós-escultura dependem dela.
	terrainMesh  rl.Mesh
	terrainModel rl.Model
	hasTerrain   bool

	vegModels []rl.Model
	VegBlades int
}

// NewRenderer inicializa shaders. Exige a janela Raylib pronta.
func NewRenderer() *Renderer {
	r := &Renderer{}

	if rl.IsWindowReady() {
		r.TerrainShader = rl.LoadShaderFromMemory(terrainVertexShader, terrainFragmentShader)
		r.PlantShader = rl.LoadShaderFromMemory(plantVertexShader, plantFragmentShader)

		r.plantTimeLoc = rl.GetShaderLocation(r.PlantShader, "time")
		r.brushPosLoc = rl.GetShaderLocation(r.TerrainShader, "brushPos")
		r.brushRadiusLoc = rl.GetShaderLocation(r.TerrainShader, "brushRadius")
		r.brushActiveLoc = rl.GetShaderLocation(r.TerrainShader, "brushActive")

		log.Println("[Renderer] Shaders de terreno e vegetação carregados")
	}

	return r
}

// UploadTerrain envia a malha do terreno para a GPU (substituindo a anterior).
func (r *Renderer) UploadTerrain(geo *meshing.GeometryData) {
	if !rl.IsWindowReady() {
		return
	}

	if r.hasTerrain {
		rl.UnloadModel(r.terrainModel)
		r.hasTerrain = false
	}

	mesh := r.geometryToMesh(*geo)
	rl.UploadMesh(&mesh, true) // Dinâmica: a escultura atualiza os buffers
	r.terrainMesh = mesh
	r.terrainModel = rl.LoadModelFromMesh(mesh)
	r.hasTerrain = true

	if r.terrainModel.MaterialCount > 0 {
		materials := unsafe.Slice(r.terrainModel.Materials, r.terrainModel.MaterialCount)
		materials[0].Shader = r.TerrainShader
	}

	log.Printf("[Renderer] Terreno enviado à GPU: %d vértices, %d triângulos",
		geo.VertexCount(), geo.TriangleCount())
}

// RefreshTerrain sincroniza posições, normais e cores já existentes após um
// lote de esculturas: atualiza a cópia em RAM (usada pelo raycasting) e os
// buffers na GPU.
func (r *Renderer) RefreshTerrain(geo *meshing.GeometryData) {
	if !r.hasTerrain {
		return
	}

	copyIntoC(r.terrainMesh.Vertices, geo.Vertices)
	copyIntoC(r.terrainMesh.Normals, geo.Normals)
	if r.terrainMesh.Colors != nil {
		cColors := unsafe.Slice(r.terrainMesh.Colors, len(geo.Colors))
		copy(cColors, geo.Colors)
	}

	// Índices de buffer do vertex array padrão: 0=posições, 2=normais, 3=cores
	rl.UpdateMeshBuffer(r.terrainMesh, 0, floatBytes(geo.Vertices), 0)
	rl.UpdateMeshBuffer(r.terrainMesh, 2, floatBytes(geo.Normals), 0)
	rl.UpdateMeshBuffer(r.terrainMesh, 3, geo.Colors, 0)
}

// TerrainHit interseta um raio com a malha do terreno e devolve o ponto de
// impacto no mundo. O núcleo nunca faz raycasting próprio; só consome o ponto.
func (r *Renderer) TerrainHit(ray rl.Ray) (rl.Vector3, bool) {
	if !r.hasTerrain {
		return rl.Vector3{}, false
	}
	collision := rl.GetRayCollisionMesh(ray, r.terrainMesh, rl.MatrixIdentity())
	return collision.Point, collision.Hit
}

// SetBrush publica a posição/raio do pincel para o anel de destaque do shader.
func (r *Renderer) SetBrush(pos rl.Vector3, radius float32, visible bool) {
	if r.TerrainShader.ID == 0 {
		return
	}
	active := float32(0)
	if visible {
		active = 1
	}
	rl.SetShaderValue(r.TerrainShader, r.brushPosLoc, []float32{pos.X, pos.Y, pos.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.TerrainShader, r.brushRadiusLoc, []float32{radius}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.TerrainShader, r.brushActiveLoc, []float32{active}, rl.ShaderUniformFloat)
}

// SetVegetation troca o campo de vegetação exibido. O conjunto novo é
// construído por inteiro antes de o antigo ser liberado: a troca é atômica
// do ponto de vista de quem desenha.
func (r *Renderer) SetVegetation(field vegetation.Field) {
	if !rl.IsWindowReady() {
		return
	}

	fresh := make([]rl.Model, 0, len(field.Batches))
	for _, geo := range field.Batches {
		if len(geo.Vertices) == 0 {
			continue
		}
		mesh := r.geometryToMesh(geo)
		rl.UploadMesh(&mesh, false)
		r.freeMeshRAM(&mesh)
		model := rl.LoadModelFromMesh(mesh)
		if model.MaterialCount > 0 {
			materials := unsafe.Slice(model.Materials, model.MaterialCount)
			materials[0].Shader = r.PlantShader
		}
		fresh = append(fresh, model)
	}

	old := r.vegModels
	r.vegModels = fresh
	r.VegBlades = field.Blades

	for _, m := range old {
		rl.UnloadModel(m)
	}

	log.Printf("[Renderer] Campo de vegetação trocado: %d lâminas em %d lotes (%d tentativas)",
		field.Blades, len(fresh), field.Attempts)
}

// Draw renderiza o terreno e a vegetação. Chamar dentro de BeginMode3D.
func (r *Renderer) Draw(wireframe bool) {
	if r.PlantShader.ID != 0 {
		rl.SetShaderValue(r.PlantShader, r.plantTimeLoc, []float32{float32(rl.GetTime())}, rl.ShaderUniformFloat)
	}

	if r.hasTerrain {
		if wireframe {
			rl.DrawModelWires(r.terrainModel, rl.Vector3{}, 1.0, rl.White)
		} else {
			rl.DrawModel(r.terrainModel, rl.Vector3{}, 1.0, rl.White)
		}
	}

	// Lâminas são quads finos vistos dos dois lados
	rl.DisableBackfaceCulling()
	for _, m := range r.vegModels {
		rl.DrawModel(m, rl.Vector3{}, 1.0, rl.White)
	}
	rl.EnableBackfaceCulling()
}

// Unload libera todos os recursos de GPU.
func (r *Renderer) Unload() {
	if r.hasTerrain {
		rl.UnloadModel(r.terrainModel)
		r.hasTerrain = false
	}
	for _, m := range r.vegModels {
		rl.UnloadModel(m)
	}
	r.vegModels = nil

	if r.TerrainShader.ID != 0 {
		rl.UnloadShader(r.TerrainShader)
	}
	if r.PlantShader.ID != 0 {
		rl.UnloadShader(r.PlantShader)
	}
}

// geometryToMesh converte GeometryData em uma malha Raylib com buffers
// alocados em memória C (exigência do Raylib para upload/refresh).
func (r *Renderer) geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	mesh.VertexCount = int32(data.VertexCount())
	mesh.TriangleCount = int32(data.TriangleCount())

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(r.copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(r.copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(r.copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	if len(data.UVs) > 0 {
		mesh.Texcoords = (*float32)(r.copyToC(unsafe.Pointer(&data.UVs[0]), len(data.UVs)*4))
	}
	if len(data.Indices) > 0 {
		mesh.Indices = (*uint16)(r.copyToC(unsafe.Pointer(&data.Indices[0]), len(data.Indices)*2))
	}
	return mesh
}

func (r *Renderer) copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM libera a memória C de uma malha após o upload para a GPU.
// Não usar na malha do terreno: ela precisa da cópia em RAM para raycasting.
func (r *Renderer) freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Normals != nil {
		C.free(unsafe.Pointer(mesh.Normals))
		mesh.Normals = nil
	}
	if mesh.Colors != nil {
		C.free(unsafe.Pointer(mesh.Colors))
		mesh.Colors = nil
	}
	if mesh.Texcoords != nil {
		C.free(unsafe.Pointer(mesh.Texcoords))
		mesh.Texcoords = nil
	}
	if mesh.Indices != nil {
		C.free(unsafe.Pointer(mesh.Indices))
		mesh.Indices = nil
	}
}

func copyIntoC(dst *float32, src []float32) {
	if dst == nil || len(src) == 0 {
		return
	}
	cSlice := unsafe.Slice(dst, len(src))
	copy(cSlice, src)
}

func floatBytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}

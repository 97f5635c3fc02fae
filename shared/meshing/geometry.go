package meshing

// GeometryData contém os buffers de vértices para uma malha.
// É o único contrato de geometria entre o núcleo e o renderizador:
// posições (3 floats/vértice), normais, cores RGBA, UVs e índices de triângulos.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
	UVs      []float32
	Indices  []uint16
}

// VertexCount retorna o número de vértices armazenados.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount retorna o número de triângulos indexados.
func (g GeometryData) TriangleCount() int {
	return len(g.Indices) / 3
}

// Clone cria uma cópia profunda dos dados para evitar corrupção de memória.
func (g GeometryData) Clone() GeometryData {
	clone := GeometryData{}
	if len(g.Vertices) > 0 {
		clone.Vertices = make([]float32, len(g.Vertices))
		copy(clone.Vertices, g.Vertices)
	}
	if len(g.Normals) > 0 {
		clone.Normals = make([]float32, len(g.Normals))
		copy(clone.Normals, g.Normals)
	}
	if len(g.Colors) > 0 {
		clone.Colors = make([]uint8, len(g.Colors))
		copy(clone.Colors, g.Colors)
	}
	if len(g.UVs) > 0 {
		clone.UVs = make([]float32, len(g.UVs))
		copy(clone.UVs, g.UVs)
	}
	if len(g.Indices) > 0 {
		clone.Indices = make([]uint16, len(g.Indices))
		copy(clone.Indices, g.Indices)
	}
	return clone
}

// MeshBuffer auxilia na construção de malhas dinâmicas indexadas.
type MeshBuffer struct {
	Geometry GeometryData
}

// NewMeshBuffer aloca um buffer com capacidade inicial para o número de vértices dado.
func NewMeshBuffer(vertexHint int) *MeshBuffer {
	if vertexHint < 0 {
		vertexHint = 0
	}
	return &MeshBuffer{
		Geometry: GeometryData{
			Vertices: make([]float32, 0, vertexHint*3),
			Normals:  make([]float32, 0, vertexHint*3),
			Colors:   make([]uint8, 0, vertexHint*4),
			UVs:      make([]float32, 0, vertexHint*2),
			Indices:  make([]uint16, 0, vertexHint*2),
		},
	}
}

// AddVertex adiciona um vértice completo e retorna seu índice no buffer.
func (mb *MeshBuffer) AddVertex(pos [3]float32, normal [3]float32, uv [2]float32, color [4]uint8) uint16 {
	idx := uint16(len(mb.Geometry.Vertices) / 3)
	mb.Geometry.Vertices = append(mb.Geometry.Vertices, pos[0], pos[1], pos[2])
	mb.Geometry.Normals = append(mb.Geometry.Normals, normal[0], normal[1], normal[2])
	mb.Geometry.UVs = append(mb.Geometry.UVs, uv[0], uv[1])
	mb.Geometry.Colors = append(mb.Geometry.Colors, color[0], color[1], color[2], color[3])
	return idx
}

// AddTriangle registra um triângulo pelos índices dos vértices já adicionados.
func (mb *MeshBuffer) AddTriangle(a, b, c uint16) {
	mb.Geometry.Indices = append(mb.Geometry.Indices, a, b, c)
}

// Reset esvazia o buffer preservando a memória alocada.
func (mb *MeshBuffer) Reset() {
	mb.Geometry.Vertices = mb.Geometry.Vertices[:0]
	mb.Geometry.Normals = mb.Geometry.Normals[:0]
	mb.Geometry.Colors = mb.Geometry.Colors[:0]
	mb.Geometry.UVs = mb.Geometry.UVs[:0]
	mb.Geometry.Indices = mb.Geometry.Indices[:0]
}

package terrain

import (
	"math"

	"TerraViva/shared/meshing"
	"TerraViva/shared/util"
)

// SentinelHeight marca amostras fora do disco jogável: fundo o suficiente para
// renderizar abaixo da área visível e nunca ser amostrado pela lógica de jogo.
const SentinelHeight float32 = -25.0

// HeightSampler é qualquer fonte de altura por posição planar. Tanto o
// Synthesizer (antes da grade) quanto o Grid (depois) satisfazem o contrato,
// o que mantém o algoritmo de vegetação agnóstico à fonte.
type HeightSampler interface {
	HeightAt(x, z float32) float32
}

// HeightAt adapta o Synthesizer ao contrato HeightSampler.
func (s *Synthesizer) HeightAt(x, z float32) float32 {
	return float32(s.Height(float64(x), float64(z)))
}

// Grid é o campo de altura discretizado: uma grade regular de
// (resolução+1)×(resolução+1) amostras cobrindo um plano quadrado centrado na
// origem. Depois da geração inicial é a única fonte de verdade da forma do
// terreno; só o preenchimento inicial, a restauração de snapshot e o pincel de
// escultura escrevem nela.
type Grid struct {
	resolution int
	planeSize  float32
	cellSize   float32
	radius     float32

	heights  []float32 // (resolução+1)² amostras, ordem linha-a-linha
	geometry meshing.GeometryData
}

// BuildGrid aloca a grade e a preenche com o sintetizador: amostras dentro do
// círculo inscrito recebem height(x,z), as de fora o sentinela.
func BuildGrid(synth *Synthesizer, resolution int, planeSize float32) *Grid {
	g := newEmptyGrid(resolution, planeSize)

	radiusSq := float64(g.radius) * float64(g.radius)
	for iz := 0; iz <= resolution; iz++ {
		for ix := 0; ix <= resolution; ix++ {
			x, z := g.SampleWorldPos(ix, iz)
			if float64(x)*float64(x)+float64(z)*float64(z) <= radiusSq {
				g.heights[iz*(resolution+1)+ix] = float32(synth.Height(float64(x), float64(z)))
			} else {
				g.heights[iz*(resolution+1)+ix] = SentinelHeight
			}
		}
	}

	g.buildGeometry()
	return g
}

func newEmptyGrid(resolution int, planeSize float32) *Grid {
	if resolution < 1 {
		resolution = 1
	}
	side := resolution + 1
	return &Grid{
		resolution: resolution,
		planeSize:  planeSize,
		cellSize:   planeSize / float32(resolution),
		radius:     planeSize / 2,
		heights:    make([]float32, side*side),
	}
}

// Resolution retorna o número de células por lado.
func (g *Grid) Resolution() int { return g.resolution }

// PlaneSize retorna o lado do plano coberto pela grade.
func (g *Grid) PlaneSize() float32 { return g.planeSize }

// CellSize retorna o espaçamento uniforme entre amostras.
func (g *Grid) CellSize() float32 { return g.cellSize }

// SampleCount retorna o total de amostras de altura.
func (g *Grid) SampleCount() int { return len(g.heights) }

// Samples expõe o array bruto de amostras para edição in-place pelo pincel.
// Quem editar é obrigado a chamar RefreshGeometry + RecomputeNormals depois.
func (g *Grid) Samples() []float32 { return g.heights }

// SampleWorldPos converte índices de grade para a posição (x, z) no mundo.
func (g *Grid) SampleWorldPos(ix, iz int) (float32, float32) {
	half := g.planeSize / 2
	return -half + float32(ix)*g.cellSize, -half + float32(iz)*g.cellSize
}

// SampleIndex converte uma posição no mundo para índices de grade, com clamp.
func (g *Grid) SampleIndex(x, z float32) (int, int) {
	half := g.planeSize / 2
	ix := int(math.Floor(float64((x + half) / g.cellSize)))
	iz := int(math.Floor(float64((z + half) / g.cellSize)))
	return util.ClampInt(ix, 0, g.resolution), util.ClampInt(iz, 0, g.resolution)
}

// HeightAt retorna a amostra mais próxima da posição (x, z) em O(1).
// Sem interpolação: barato o bastante para milhares de consultas por frame,
// dispensando interseção geométrica contra a malha inteira.
func (g *Grid) HeightAt(x, z float32) float32 {
	ix, iz := g.SampleIndex(x, z)
	return g.heights[iz*(g.resolution+1)+ix]
}

// ExportVertices devolve uma cópia do buffer de posições (triplas x,y,z) para
// o snapshot persistido. Apenas os Y são semanticamente relevantes na
// restauração; x/z são redundantes mas fazem parte do formato.
func (g *Grid) ExportVertices() []float32 {
	out := make([]float32, len(g.geometry.Vertices))
	copy(out, g.geometry.Vertices)
	return out
}

// RestoreVertices reconstrói as amostras a partir de um snapshot. Aceita
// apenas buffers com o comprimento exato da grade atual; qualquer divergência
// devolve false e o chamador cai na geração procedural.
func (g *Grid) RestoreVertices(vertices []float32) bool {
	if len(vertices) != len(g.heights)*3 {
		return false
	}
	for i := range g.heights {
		g.heights[i] = vertices[i*3+1]
	}
	g.RefreshGeometry()
	g.RecomputeNormals()
	return true
}

// RestoreGrid cria uma grade vazia e tenta restaurá-la do snapshot.
func RestoreGrid(vertices []float32, resolution int, planeSize float32) (*Grid, bool) {
	g := newEmptyGrid(resolution, planeSize)
	g.buildGeometry()
	if !g.RestoreVertices(vertices) {
		return nil, false
	}
	return g, true
}

// Geometry retorna a malha renderizável da grade.
func (g *Grid) Geometry() *meshing.GeometryData {
	return &g.geometry
}

// buildGeometry gera a malha completa: posições, UVs remapeados de
// [-planeSize/2, planeSize/2] para [0,1], cores por altura e índices.
func (g *Grid) buildGeometry() {
	side := g.resolution + 1
	buf := meshing.NewMeshBuffer(side * side)

	for iz := 0; iz < side; iz++ {
		for ix := 0; ix < side; ix++ {
			x, z := g.SampleWorldPos(ix, iz)
			h := g.heights[iz*side+ix]
			u := (x + g.planeSize/2) / g.planeSize
			v := (z + g.planeSize/2) / g.planeSize
			buf.AddVertex(
				[3]float32{x, h, z},
				[3]float32{0, 1, 0},
				[2]float32{u, v},
				heightColor(h),
			)
		}
	}

	for iz := 0; iz < g.resolution; iz++ {
		for ix := 0; ix < g.resolution; ix++ {
			v00 := uint16(iz*side + ix)
			v10 := uint16(iz*side + ix + 1)
			v01 := uint16((iz+1)*side + ix)
			v11 := uint16((iz+1)*side + ix + 1)
			buf.AddTriangle(v00, v01, v11)
			buf.AddTriangle(v00, v11, v10)
		}
	}

	g.geometry = buf.Geometry
	g.RecomputeNormals()
}

// RefreshGeometry sincroniza os Y das posições e as cores com as amostras.
// Deve ser chamado após qualquer lote de mutações, antes do próximo draw.
func (g *Grid) RefreshGeometry() {
	for i, h := range g.heights {
		g.geometry.Vertices[i*3+1] = h
		c := heightColor(h)
		g.geometry.Colors[i*4] = c[0]
		g.geometry.Colors[i*4+1] = c[1]
		g.geometry.Colors[i*4+2] = c[2]
		g.geometry.Colors[i*4+3] = c[3]
	}
}

// RecomputeNormals recalcula as normais por diferenças centrais nas amostras.
func (g *Grid) RecomputeNormals() {
	side := g.resolution + 1
	at := func(ix, iz int) float32 {
		if ix < 0 {
			ix = 0
		}
		if ix >= side {
			ix = side - 1
		}
		if iz < 0 {
			iz = 0
		}
		if iz >= side {
			iz = side - 1
		}
		return g.heights[iz*side+ix]
	}

	for iz := 0; iz < side; iz++ {
		for ix := 0; ix < side; ix++ {
			dx := at(ix-1, iz) - at(ix+1, iz)
			dz := at(ix, iz-1) - at(ix, iz+1)
			nx := float64(dx)
			ny := float64(2 * g.cellSize)
			nz := float64(dz)
			inv := 1.0 / math.Sqrt(nx*nx+ny*ny+nz*nz)

			i := (iz*side + ix) * 3
			g.geometry.Normals[i] = float32(nx * inv)
			g.geometry.Normals[i+1] = float32(ny * inv)
			g.geometry.Normals[i+2] = float32(nz * inv)
		}
	}
}

// heightColor devolve a cor do vértice para a altura dada: terra nos cortes,
// verde nos vales, rocha na meia encosta e neve nos picos.
func heightColor(h float32) [4]uint8 {
	switch {
	case h <= SentinelHeight+1:
		return [4]uint8{12, 16, 22, 255}
	case h < 0:
		t := 1 + h/5 // -5..0 → 0..1
		return rampColor([3]uint8{62, 44, 30}, [3]uint8{96, 74, 48}, t)
	case h < 2:
		return rampColor([3]uint8{58, 110, 48}, [3]uint8{92, 140, 60}, h/2)
	case h < 4:
		return rampColor([3]uint8{92, 140, 60}, [3]uint8{128, 122, 110}, (h-2)/2)
	default:
		t := (h - 4) / 6
		if t > 1 {
			t = 1
		}
		return rampColor([3]uint8{128, 122, 110}, [3]uint8{235, 238, 242}, t)
	}
}

func rampColor(a, b [3]uint8, t float32) [4]uint8 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return [4]uint8{
		uint8(float32(a[0]) + (float32(b[0])-float32(a[0]))*t),
		uint8(float32(a[1]) + (float32(b[1])-float32(a[1]))*t),
		uint8(float32(a[2]) + (float32(b[2])-float32(a[2]))*t),
		255,
	}
}

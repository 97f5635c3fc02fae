package vegetation

import (
	"math"
	"math/rand"

	"TerraViva/shared/meshing"
)

// Cores fixas do gradiente raiz→ponta. O shader de vento usa o canal R como
// peso de balanço por vértice: raiz presa ao chão, ponta balançando.
var (
	bladeRootColor = [4]uint8{0, 0, 0, 255}
	bladeMidColor  = [4]uint8{128, 128, 128, 255}
	bladeTipColor  = [4]uint8{255, 255, 255, 255}
)

// BladeParams parametriza a geometria de uma lâmina de grama.
type BladeParams struct {
	Height       float32 // Altura base
	HeightSpread float32 // Meia-largura da banda de variação
	Width        float32 // Largura na raiz
}

// appendBlade gera uma lâmina ancorada em (x, y, z) e a acumula no buffer:
// leque fixo de 5 vértices e 3 triângulos, yaw aleatório, curvatura de ponta
// aleatória e altura sorteada dentro da banda configurada.
func appendBlade(buf *meshing.MeshBuffer, x, y, z, planeSize float32, p BladeParams, rng *rand.Rand) {
	yaw := rng.Float64() * 2 * math.Pi
	dirX := float32(math.Cos(yaw))
	dirZ := float32(math.Sin(yaw))

	// Normal horizontal perpendicular ao plano da lâmina
	normal := [3]float32{-dirZ, 0, dirX}

	height := p.Height + (rng.Float32()*2-1)*p.HeightSpread
	halfW := p.Width / 2

	// Direção e intensidade da curvatura da ponta, independentes do yaw
	bendYaw := rng.Float64() * 2 * math.Pi
	bend := (0.1 + rng.Float32()*0.2) * height
	bendX := float32(math.Cos(bendYaw)) * bend
	bendZ := float32(math.Sin(bendYaw)) * bend

	u := (x + planeSize/2) / planeSize
	v := (z + planeSize/2) / planeSize
	uv := [2]float32{u, v}

	midY := y + height*0.55
	tipY := y + height

	v0 := buf.AddVertex([3]float32{x - dirX*halfW, y, z - dirZ*halfW}, normal, uv, bladeRootColor)
	v1 := buf.AddVertex([3]float32{x + dirX*halfW, y, z + dirZ*halfW}, normal, uv, bladeRootColor)
	v2 := buf.AddVertex([3]float32{x + dirX*halfW*0.7 + bendX*0.4, midY, z + dirZ*halfW*0.7 + bendZ*0.4}, normal, uv, bladeMidColor)
	v3 := buf.AddVertex([3]float32{x - dirX*halfW*0.7 + bendX*0.4, midY, z - dirZ*halfW*0.7 + bendZ*0.4}, normal, uv, bladeMidColor)
	v4 := buf.AddVertex([3]float32{x + bendX, tipY, z + bendZ}, normal, uv, bladeTipColor)

	buf.AddTriangle(v0, v1, v2)
	buf.AddTriangle(v0, v2, v3)
	buf.AddTriangle(v3, v2, v4)
}

// BladeVertexCount e BladeTriangleCount descrevem a topologia fixa da lâmina.
const (
	BladeVertexCount   = 5
	BladeTriangleCount = 3
)

package terrain

import (
	"math"

	"TerraViva/shared/util"
)

// Sinais possíveis do pincel. Raise/Lower correspondem a +1/-1 na mutação.
const (
	SignIdle  = 0
	SignRaise = +1
	SignLower = -1
)

// Brush é o estado transiente do pincel de escultura: raio atual (com clamp)
// e sinal da interação em curso. Resetado a cada interação, nunca persistido.
type Brush struct {
	Radius    float32
	MinRadius float32
	MaxRadius float32
	Strength  float32
	Sign      int
}

// AdjustRadius aplica o delta da roda do mouse ao raio, respeitando os limites.
func (b *Brush) AdjustRadius(delta float32) {
	b.Radius = util.Clamp(b.Radius+delta, b.MinRadius, b.MaxRadius)
}

// Sculptor aplica mutações aditivas localizadas à grade, com clamp duro de altura.
type Sculptor struct {
	MinHeight float32
	MaxHeight float32
}

// Apply eleva ou rebaixa as amostras num raio planar ao redor do ponto de
// impacto. O falloff é quadrático ((1-d/r)²): edita forte no centro e esvanece
// na borda, evitando degraus visíveis no limite do pincel. Retorna o número de
// amostras alteradas.
//
// Recalcular as normais da malha após um lote de Apply é obrigação do
// chamador (Grid.RefreshGeometry + Grid.RecomputeNormals), mantendo mutação e
// recomputação desacopladas para agrupar várias pinceladas por frame.
func (s Sculptor) Apply(g *Grid, hitX, hitZ float32, sign int, radius, strength float32) int {
	if sign == SignIdle || radius <= 0 {
		return 0
	}

	// Varremos apenas o sub-retângulo de índices que o raio pode alcançar.
	minIX, minIZ := g.SampleIndex(hitX-radius, hitZ-radius)
	maxIX, maxIZ := g.SampleIndex(hitX+radius, hitZ+radius)

	side := g.resolution + 1
	heights := g.Samples()
	changed := 0

	for iz := minIZ; iz <= maxIZ; iz++ {
		for ix := minIX; ix <= maxIX; ix++ {
			x, z := g.SampleWorldPos(ix, iz)
			dx := float64(x - hitX)
			dz := float64(z - hitZ)
			dist := float32(math.Sqrt(dx*dx + dz*dz))
			if dist >= radius {
				continue
			}

			idx := iz*side + ix
			old := heights[idx]
			// A borda sentinela fica fora do alcance do pincel; o clamp a
			// puxaria para MinHeight de uma só vez.
			if old <= SentinelHeight+1 {
				continue
			}

			falloff := 1 - dist/radius
			weight := falloff * falloff
			heights[idx] = util.Clamp(old+float32(sign)*strength*weight, s.MinHeight, s.MaxHeight)
			if heights[idx] != old {
				changed++
			}
		}
	}

	return changed
}

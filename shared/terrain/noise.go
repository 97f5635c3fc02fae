package terrain

import (
	"math"
	"math/rand"
)

// Noise é um gerador de ruído coerente 3D (gradiente, estilo Perlin clássico).
// A tabela de permutação é embaralhada pela seed na construção; depois disso o
// gerador é imutável e seguro para chamadas concorrentes.
type Noise struct {
	perm [512]int
}

// NewNoise cria um gerador de ruído com a tabela de permutação embaralhada pela seed.
func NewNoise(seed int64) *Noise {
	n := &Noise{}
	r := rand.New(rand.NewSource(seed))

	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(256, func(i, j int) { p[i], p[j] = p[j], p[i] })

	// Duplicamos a tabela para evitar wrap-around nos índices
	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

// Eval retorna ruído coerente em [-1, 1] para o ponto (x, y, z).
// Determinístico para entradas idênticas e contínuo para pequenos deltas; em
// pontos de coordenadas inteiras o valor é exatamente zero (propriedade do
// ruído de gradiente clássico).
func (n *Noise) Eval(x, y, z float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255

	xf := x - math.Floor(x)
	yf := y - math.Floor(y)
	zf := z - math.Floor(z)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	p := &n.perm
	a := p[xi] + yi
	aa := p[a] + zi
	ab := p[a+1] + zi
	b := p[xi+1] + yi
	ba := p[b] + zi
	bb := p[b+1] + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p[aa], xf, yf, zf), grad(p[ba], xf-1, yf, zf)),
			lerp(u, grad(p[ab], xf, yf-1, zf), grad(p[bb], xf-1, yf-1, zf))),
		lerp(v,
			lerp(u, grad(p[aa+1], xf, yf, zf-1), grad(p[ba+1], xf-1, yf, zf-1)),
			lerp(u, grad(p[ab+1], xf, yf-1, zf-1), grad(p[bb+1], xf-1, yf-1, zf-1))))
}

// fade é a curva de suavização 6t⁵-15t⁴+10t³ do Perlin melhorado.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp recebe o interpolante primeiro, na mesma ordem em que Eval o produz.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad calcula o produto escalar entre um gradiente pseudo-aleatório e o vetor de offset.
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

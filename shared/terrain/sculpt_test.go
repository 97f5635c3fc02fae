package terrain

import (
	"math"
	"testing"
)

// flatGrid cria uma grade com todas as amostras na mesma altura, útil para
// medir o efeito do pincel isolado do relevo.
func flatGrid(t *testing.T, resolution int, planeSize, height float32) *Grid {
	t.Helper()
	g, _ := buildTestGrid(t, resolution, planeSize)
	heights := g.Samples()
	for i := range heights {
		heights[i] = height
	}
	g.RefreshGeometry()
	return g
}

func TestApplyRaisesCenterByStrength(t *testing.T) {
	g := flatGrid(t, 16, 32, 0)
	s := Sculptor{MinHeight: -5, MaxHeight: 15}

	// Impacto exatamente sobre uma amostra: falloff = 1 no centro.
	changed := s.Apply(g, 0, 0, SignRaise, 3, 0.8)
	if changed == 0 {
		t.Fatal("Apply não alterou nenhuma amostra")
	}

	got := g.HeightAt(0, 0)
	if math.Abs(float64(got-0.8)) > 1e-5 {
		t.Errorf("altura no centro = %v, want 0.8 (a força inteira)", got)
	}
}

func TestApplyLowerIsSymmetric(t *testing.T) {
	g := flatGrid(t, 16, 32, 1.0)
	s := Sculptor{MinHeight: -5, MaxHeight: 15}

	s.Apply(g, 0, 0, SignLower, 3, 0.8)
	got := g.HeightAt(0, 0)
	if math.Abs(float64(got-0.2)) > 1e-5 {
		t.Errorf("altura no centro = %v, want 0.2 (1.0 - força 0.8)", got)
	}
}

func TestApplyLocality(t *testing.T) {
	g := flatGrid(t, 16, 32, 1.0)
	s := Sculptor{MinHeight: -5, MaxHeight: 15}

	s.Apply(g, 0, 0, SignRaise, 3, 0.8)

	side := g.Resolution() + 1
	for iz := 0; iz < side; iz++ {
		for ix := 0; ix < side; ix++ {
			x, z := g.SampleWorldPos(ix, iz)
			dist := math.Sqrt(float64(x)*float64(x) + float64(z)*float64(z))
			h := g.Samples()[iz*side+ix]
			if dist >= 3 && h != 1.0 {
				t.Fatalf("amostra fora do raio alterada: (%v, %v) a %.2f do centro, h = %v", x, z, dist, h)
			}
			if dist < 3 && h < 1.0 {
				t.Fatalf("elevar rebaixou a amostra (%v, %v): h = %v", x, z, h)
			}
		}
	}
}

func TestApplyClampsAtLimits(t *testing.T) {
	s := Sculptor{MinHeight: -5, MaxHeight: 15}

	high := flatGrid(t, 16, 32, 14.9)
	for i := 0; i < 100; i++ {
		s.Apply(high, 0, 0, SignRaise, 4, 0.8)
	}
	for i, h := range high.Samples() {
		if h > 15 {
			t.Fatalf("amostra %d = %v acima do teto 15", i, h)
		}
	}

	low := flatGrid(t, 16, 32, -4.9)
	for i := 0; i < 100; i++ {
		s.Apply(low, 0, 0, SignLower, 4, 0.8)
	}
	for i, h := range low.Samples() {
		if h < -5 {
			t.Fatalf("amostra %d = %v abaixo do piso -5", i, h)
		}
	}
}

func TestApplySkipsSentinel(t *testing.T) {
	g, _ := buildTestGrid(t, 32, 60)
	s := Sculptor{MinHeight: -5, MaxHeight: 15}

	var sentinels []int
	for i, h := range g.Samples() {
		if h == SentinelHeight {
			sentinels = append(sentinels, i)
		}
	}
	if len(sentinels) == 0 {
		t.Fatal("grade de teste sem amostras sentinela")
	}

	// Pincelada perto do canto alcança amostras sentinela fora do disco.
	s.Apply(g, -28, -28, SignLower, 6, 0.8)
	for _, i := range sentinels {
		if h := g.Samples()[i]; h != SentinelHeight {
			t.Fatalf("amostra sentinela %d foi editada: h = %v", i, h)
		}
	}
}

func TestApplyIdleIsNoOp(t *testing.T) {
	g := flatGrid(t, 8, 16, 1.0)
	s := Sculptor{MinHeight: -5, MaxHeight: 15}

	if changed := s.Apply(g, 0, 0, SignIdle, 3, 0.8); changed != 0 {
		t.Errorf("Apply com sinal neutro alterou %d amostras", changed)
	}
	if changed := s.Apply(g, 0, 0, SignRaise, 0, 0.8); changed != 0 {
		t.Errorf("Apply com raio zero alterou %d amostras", changed)
	}
}

func TestBrushAdjustRadiusClamps(t *testing.T) {
	b := Brush{Radius: 3, MinRadius: 1, MaxRadius: 8}

	b.AdjustRadius(100)
	if b.Radius != 8 {
		t.Errorf("raio após ajuste grande = %v, want 8", b.Radius)
	}
	b.AdjustRadius(-100)
	if b.Radius != 1 {
		t.Errorf("raio após ajuste grande negativo = %v, want 1", b.Radius)
	}
	b.AdjustRadius(0.5)
	if b.Radius != 1.5 {
		t.Errorf("raio após +0.5 = %v, want 1.5", b.Radius)
	}
}

package terrain

import (
	"math"
	"testing"
)

func testParams(seed int64) SynthesizerParams {
	return SynthesizerParams{
		Seed:           seed,
		Radius:         30,
		BaseFrequency:  0.04,
		AmplitudeScale: 2.5,
		PlateauHeight:  2.0,
	}
}

func TestHeightDeterministic(t *testing.T) {
	a := NewSynthesizer(testParams(42))
	b := NewSynthesizer(testParams(42))

	for i := 0; i < 100; i++ {
		x := float64(i%23)*2.6 - 29
		z := float64(i%17)*3.4 - 28
		if ha, hb := a.Height(x, z), b.Height(x, z); ha != hb {
			t.Fatalf("Height(%v, %v) divergiu entre sintetizadores iguais: %v != %v", x, z, ha, hb)
		}
	}
}

func TestHeightSeedChangesRelief(t *testing.T) {
	a := NewSynthesizer(testParams(1))
	b := NewSynthesizer(testParams(2))

	same := true
	for i := 1; i < 20; i++ {
		x := float64(i) * 1.3
		if a.Height(x, 5) != b.Height(x, 5) {
			same = false
			break
		}
	}
	if same {
		t.Error("seeds diferentes produziram o mesmo relevo")
	}
}

func TestHeightNonNegative(t *testing.T) {
	s := NewSynthesizer(testParams(99))
	for x := -35.0; x <= 35; x += 0.7 {
		for z := -35.0; z <= 35; z += 0.7 {
			if h := s.Height(x, z); h < 0 {
				t.Fatalf("Height(%v, %v) = %v, esperado >= 0", x, z, h)
			}
		}
	}
}

// No centro a componente de domo vale exatamente o platô e o detalhe é pleno;
// perto da borda tanto o domo quanto o detalhe colapsam para perto de zero.
func TestHeightCenterAboveEdge(t *testing.T) {
	s := NewSynthesizer(testParams(42))

	center := s.Height(0, 0)
	edge := s.Height(29, 0)
	if center <= edge {
		t.Errorf("Height(0,0) = %v <= Height(29,0) = %v; o platô central deveria dominar", center, edge)
	}
	if center != 2.0 {
		t.Errorf("Height(0,0) = %v, esperado exatamente o platô 2.0", center)
	}
}

func TestHeightEdgeCollapse(t *testing.T) {
	s := NewSynthesizer(testParams(7))

	// Sobre o círculo limite o falloff zera o detalhe e o domo.
	for _, ang := range []float64{0, 0.7, 1.9, 3.1, 4.4, 5.8} {
		x := 30 * math.Cos(ang)
		z := 30 * math.Sin(ang)
		if h := s.Height(x, z); h > 1e-6 {
			t.Errorf("Height na borda (%v, %v) = %v, esperado ~0", x, z, h)
		}
	}

	// Além do raio o domo fica negativo e o clamp segura em zero.
	if h := s.Height(40, 40); h != 0 {
		t.Errorf("Height(40, 40) = %v, esperado 0 fora do raio", h)
	}
}

func TestDensityDeterministic(t *testing.T) {
	a := NewSynthesizer(testParams(5))
	b := NewSynthesizer(testParams(5))
	if a.DensityAt(3.3, -7.1) != b.DensityAt(3.3, -7.1) {
		t.Error("DensityAt divergiu entre sintetizadores com a mesma seed")
	}
}

package vegetation

import (
	"math"
	"math/rand"
	"testing"
)

// stubSampler responde altura e densidade fixas para isolar a amostragem por
// rejeição do relevo real.
type stubSampler struct {
	height  float32
	density float64
}

func (s stubSampler) HeightAt(x, z float32) float32  { return s.height }
func (s stubSampler) DensityAt(x, z float64) float64 { return s.density }

func testConfig() Config {
	return Config{
		Radius:       28,
		PlaneSize:    60,
		MaxHeight:    3.0,
		MinHeight:    -0.5,
		HeightJitter: 0.75,
		Blade: BladeParams{
			Height:       0.45,
			HeightSpread: 0.25,
			Width:        0.07,
		},
	}
}

func TestPlaceReachesTargetOnFlatGround(t *testing.T) {
	flat := stubSampler{height: 1.0, density: 1.0}
	rng := rand.New(rand.NewSource(1))

	field := Place(testConfig(), flat, flat, 500, rng)
	if field.Blades != 500 {
		t.Errorf("Blades = %d, want 500 em terreno plano dentro da banda", field.Blades)
	}
	if field.Attempts < field.Blades {
		t.Errorf("Attempts = %d < Blades = %d", field.Attempts, field.Blades)
	}
}

func TestPlaceNeverExceedsTarget(t *testing.T) {
	flat := stubSampler{height: 1.0, density: 1.0}
	rng := rand.New(rand.NewSource(2))

	field := Place(testConfig(), flat, flat, 137, rng)
	if field.Blades > 137 {
		t.Errorf("Blades = %d excede o alvo 137", field.Blades)
	}
}

func TestPlaceRejectsAboveSnowLine(t *testing.T) {
	// Teto impossivelmente baixo: todo candidato é rejeitado.
	flat := stubSampler{height: 1.0, density: 1.0}
	rng := rand.New(rand.NewSource(3))
	cfg := testConfig()
	cfg.MaxHeight = -999

	field := Place(cfg, flat, flat, 100, rng)
	if field.Blades != 0 {
		t.Errorf("Blades = %d, want 0 acima da linha da neve", field.Blades)
	}
	if field.Attempts != 300 {
		t.Errorf("Attempts = %d, want orçamento inteiro de 300", field.Attempts)
	}
	if len(field.Batches) != 0 {
		t.Errorf("Batches = %d, want 0 sem lâmina aceita", len(field.Batches))
	}
}

func TestPlaceRejectsBelowFloor(t *testing.T) {
	deep := stubSampler{height: -2.0, density: 1.0}
	rng := rand.New(rand.NewSource(4))

	field := Place(testConfig(), deep, deep, 100, rng)
	if field.Blades != 0 {
		t.Errorf("Blades = %d, want 0 abaixo do corte inferior", field.Blades)
	}
}

func TestPlaceGeometryCardinality(t *testing.T) {
	flat := stubSampler{height: 0.5, density: 1.0}
	rng := rand.New(rand.NewSource(5))

	field := Place(testConfig(), flat, flat, 200, rng)

	verts := 0
	tris := 0
	for _, batch := range field.Batches {
		verts += batch.VertexCount()
		tris += batch.TriangleCount()
	}
	if want := field.Blades * BladeVertexCount; verts != want {
		t.Errorf("vértices totais = %d, want %d (%d por lâmina)", verts, want, BladeVertexCount)
	}
	if want := field.Blades * BladeTriangleCount; tris != want {
		t.Errorf("triângulos totais = %d, want %d (%d por lâmina)", tris, want, BladeTriangleCount)
	}
}

func TestPlaceRespectsDisc(t *testing.T) {
	flat := stubSampler{height: 1.0, density: 1.0}
	rng := rand.New(rand.NewSource(6))
	cfg := testConfig()

	field := Place(cfg, flat, flat, 300, rng)
	// A raiz é o primeiro vértice de cada lâmina no lote.
	for _, batch := range field.Batches {
		for blade := 0; blade < batch.VertexCount()/BladeVertexCount; blade++ {
			i := blade * BladeVertexCount * 3
			x := float64(batch.Vertices[i])
			z := float64(batch.Vertices[i+2])
			if d := math.Sqrt(x*x + z*z); d > cfg.Radius+0.1 {
				t.Fatalf("lâmina %d plantada a %.2f do centro, fora do disco de raio %.0f", blade, d, cfg.Radius)
			}
		}
	}
}

func TestRunBatchesRespectIndexSpace(t *testing.T) {
	flat := stubSampler{height: 1.0, density: 1.0}
	rng := rand.New(rand.NewSource(7))
	cfg := testConfig()
	cfg.MaxPerBatch = 50

	field := Place(cfg, flat, flat, 175, rng)
	if len(field.Batches) != 4 {
		t.Fatalf("Batches = %d, want 4 (50+50+50+25)", len(field.Batches))
	}
	for i, batch := range field.Batches[:3] {
		if got, want := batch.VertexCount(), 50*BladeVertexCount; got != want {
			t.Errorf("lote %d com %d vértices, want %d", i, got, want)
		}
	}
	if got, want := field.Batches[3].VertexCount(), 25*BladeVertexCount; got != want {
		t.Errorf("último lote com %d vértices, want %d", got, want)
	}
}

func TestRunStepSuspendsBetweenBlades(t *testing.T) {
	flat := stubSampler{height: 1.0, density: 1.0}
	rng := rand.New(rand.NewSource(8))

	run := NewRun(NewPlacer(testConfig(), flat, flat, rng), 100)
	run.Step(10)

	accepted, target := run.Progress()
	if accepted > 10 {
		t.Errorf("Step(10) aceitou %d lâminas", accepted)
	}
	if target != 100 {
		t.Errorf("target = %d, want 100", target)
	}
	if run.Done() {
		t.Error("Done() == true antes do alvo com orçamento de sobra")
	}
}

func TestZeroTargetCompletesImmediately(t *testing.T) {
	flat := stubSampler{height: 1.0, density: 1.0}
	rng := rand.New(rand.NewSource(9))

	run := NewRun(NewPlacer(testConfig(), flat, flat, rng), 0)
	run.Step(10)
	if !run.Done() {
		t.Error("execução com alvo 0 não concluiu no primeiro Step")
	}
	if f := run.Field(); f.Blades != 0 || len(f.Batches) != 0 {
		t.Errorf("Field() = %+v, want campo vazio", f)
	}
}

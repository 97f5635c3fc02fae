package terrain

import "testing"

func buildTestGrid(t *testing.T, resolution int, planeSize float32) (*Grid, *Synthesizer) {
	t.Helper()
	s := NewSynthesizer(testParams(42))
	return BuildGrid(s, resolution, planeSize), s
}

func TestBuildGridSampleCount(t *testing.T) {
	g, _ := buildTestGrid(t, 128, 60)
	if got, want := g.SampleCount(), 129*129; got != want {
		t.Fatalf("SampleCount() = %d, want %d", got, want)
	}
	if got, want := g.CellSize(), float32(60)/128; got != want {
		t.Errorf("CellSize() = %v, want %v", got, want)
	}
}

func TestGridMatchesSynthesizerInside(t *testing.T) {
	g, s := buildTestGrid(t, 64, 60)

	for iz := 0; iz <= 64; iz += 7 {
		for ix := 0; ix <= 64; ix += 7 {
			x, z := g.SampleWorldPos(ix, iz)
			if float64(x)*float64(x)+float64(z)*float64(z) > 30*30 {
				continue
			}
			want := float32(s.Height(float64(x), float64(z)))
			if got := g.HeightAt(x, z); got != want {
				t.Errorf("HeightAt(%v, %v) = %v, want %v", x, z, got, want)
			}
		}
	}
}

func TestGridSentinelOutsideDisc(t *testing.T) {
	g, _ := buildTestGrid(t, 64, 60)

	// Os cantos do plano estão fora do círculo inscrito.
	for _, c := range [][2]float32{{-30, -30}, {30, -30}, {-30, 30}, {30, 30}} {
		if h := g.HeightAt(c[0], c[1]); h != SentinelHeight {
			t.Errorf("HeightAt(%v, %v) = %v, esperado sentinela %v", c[0], c[1], h, SentinelHeight)
		}
	}
}

func TestSampleIndexRoundTrip(t *testing.T) {
	g, _ := buildTestGrid(t, 16, 32)

	tests := []struct {
		ix, iz int
	}{
		{0, 0}, {8, 8}, {16, 16}, {3, 12}, {15, 1},
	}
	for _, tt := range tests {
		x, z := g.SampleWorldPos(tt.ix, tt.iz)
		ix, iz := g.SampleIndex(x, z)
		if ix != tt.ix || iz != tt.iz {
			t.Errorf("SampleIndex(SampleWorldPos(%d, %d)) = (%d, %d)", tt.ix, tt.iz, ix, iz)
		}
	}
}

func TestSampleIndexClampsOutOfRange(t *testing.T) {
	g, _ := buildTestGrid(t, 16, 32)

	ix, iz := g.SampleIndex(-1000, -1000)
	if ix != 0 || iz != 0 {
		t.Errorf("SampleIndex fora do plano (negativo) = (%d, %d), want (0, 0)", ix, iz)
	}
	ix, iz = g.SampleIndex(1000, 1000)
	if ix != 16 || iz != 16 {
		t.Errorf("SampleIndex fora do plano (positivo) = (%d, %d), want (16, 16)", ix, iz)
	}
}

func TestExportRestoreRoundTrip(t *testing.T) {
	g, _ := buildTestGrid(t, 32, 60)

	// Perturba algumas amostras para o snapshot não ser trivial.
	g.Samples()[10] = 7.5
	g.Samples()[200] = -1.25
	g.RefreshGeometry()

	exported := g.ExportVertices()

	restored, ok := RestoreGrid(exported, 32, 60)
	if !ok {
		t.Fatal("RestoreGrid recusou um snapshot válido")
	}
	for i, want := range g.Samples() {
		if got := restored.Samples()[i]; got != want {
			t.Fatalf("amostra %d = %v após restauração, want %v", i, got, want)
		}
	}
}

func TestRestoreRejectsWrongLength(t *testing.T) {
	if _, ok := RestoreGrid(make([]float32, 10), 32, 60); ok {
		t.Error("RestoreGrid aceitou um snapshot de comprimento errado")
	}
	g, _ := buildTestGrid(t, 8, 16)
	if g.RestoreVertices(make([]float32, 5)) {
		t.Error("RestoreVertices aceitou buffer de comprimento errado")
	}
}

func TestGeometryTriangleCount(t *testing.T) {
	g, _ := buildTestGrid(t, 8, 16)
	geo := g.Geometry()
	if got, want := geo.VertexCount(), 9*9; got != want {
		t.Errorf("VertexCount() = %d, want %d", got, want)
	}
	if got, want := geo.TriangleCount(), 8*8*2; got != want {
		t.Errorf("TriangleCount() = %d, want %d", got, want)
	}
}

func TestRefreshGeometrySyncsHeights(t *testing.T) {
	g, _ := buildTestGrid(t, 8, 16)

	g.Samples()[40] = 9.0 // amostra central
	g.RefreshGeometry()

	if y := g.Geometry().Vertices[40*3+1]; y != 9.0 {
		t.Errorf("vértice não sincronizado após RefreshGeometry: y = %v, want 9.0", y)
	}
}

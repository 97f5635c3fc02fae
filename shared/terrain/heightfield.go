package terrain

import "math"

// Camadas do espaço de ruído: cada oitava amostra uma fatia Z distinta para
// que as frequências não correlacionem entre si.
const (
	octaveLayer1 = 0.0
	octaveLayer2 = 100.0
	octaveLayer3 = 200.0

	// Fatia reservada ao ruído de densidade da vegetação (ver vegetation.Placer).
	DensityLayer = 500.0
)

// SynthesizerParams parametriza a síntese do campo de altura.
type SynthesizerParams struct {
	Seed           int64
	Radius         float64 // Raio do disco jogável
	BaseFrequency  float64 // Frequência da primeira oitava
	AmplitudeScale float64 // Escala aplicada à soma das oitavas
	PlateauHeight  float64 // Altura do domo central
}

// Synthesizer combina oitavas de ruído com modelagem radial em uma função de
// altura puramente determinística da posição planar. É a fonte inicial do
// TerrainGrid e também serve de HeightSampler antes da grade existir.
type Synthesizer struct {
	params SynthesizerParams
	noise  *Noise
	offset float64 // Deslocamento no eixo X derivado da seed
}

// NewSynthesizer cria o sintetizador para a seed e parâmetros dados.
func NewSynthesizer(params SynthesizerParams) *Synthesizer {
	if params.Radius <= 0 {
		params.Radius = 1
	}
	return &Synthesizer{
		params: params,
		noise:  NewNoise(params.Seed),
		// Mantemos o offset inteiro e pequeno para não degradar a precisão
		// fracionária das coordenadas de ruído.
		offset: float64(params.Seed % 65536),
	}
}

// Seed retorna a seed que parametriza todas as avaliações de ruído.
func (s *Synthesizer) Seed() int64 {
	return s.params.Seed
}

// Height retorna a altura (≥ 0) do terreno em (x, z).
//
// A composição tem dois termos: o detalhe em oitavas atenuado pela borda e um
// domo base (1-d²)·plateau que não sofre atenuação. Isso garante um monte
// caminhável no centro mesmo quando as oitavas se cancelam, e ainda assim o
// terreno desaparece suavemente na borda do disco.
func (s *Synthesizer) Height(x, z float64) float64 {
	d := math.Sqrt(x*x+z*z) / s.params.Radius

	f := s.params.BaseFrequency
	o1 := s.noise.Eval(x*f+s.offset, z*f, octaveLayer1)
	o2 := s.noise.Eval(x*f*2.5+s.offset, z*f*2.5, octaveLayer2) * 0.5
	o3 := s.noise.Eval(x*f*6+s.offset, z*f*6, octaveLayer3) * 0.15
	detail := (o1 + o2 + o3) * s.params.AmplitudeScale

	dc := math.Min(d, 1)
	edge := 1 - dc*dc

	h := detail*edge + (1-d*d)*s.params.PlateauHeight
	if h < 0 {
		h = 0
	}
	return h
}

// DensityAt retorna o ruído secundário usado pela vegetação em [-1, 1].
// Campo independente do relevo: mesma seed, fatia Z própria e frequência fixa.
func (s *Synthesizer) DensityAt(x, z float64) float64 {
	return s.noise.Eval(x*0.15, z*0.15, DensityLayer)
}

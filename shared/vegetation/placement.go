package vegetation

import (
	"math"
	"math/rand"

	"TerraViva/shared/meshing"
	"TerraViva/shared/terrain"
)

// DensitySampler fornece o ruído secundário que modula a densidade da
// vegetação, independente do ruído de relevo. O Synthesizer satisfaz isso.
type DensitySampler interface {
	DensityAt(x, z float64) float64
}

// Config parametriza uma execução de posicionamento.
type Config struct {
	Radius    float64 // Raio do disco de plantio
	PlaneSize float32 // Para o remapeamento de UV

	MaxHeight    float32 // Limite superior de altura (linha da neve)
	MinHeight    float32 // Corte inferior fixo (fundo de cânion)
	HeightJitter float32 // Jitter ± aplicado ao limite superior por candidato

	Blade       BladeParams
	MaxPerBatch int // Lâminas por lote de geometria (espaço de índice uint16)
}

// Field é o resultado de uma execução: os lotes de geometria acumulados e as
// contagens finais. Um campo é imutável após a execução; regenerações
// substituem o campo inteiro atomicamente.
type Field struct {
	Batches  []meshing.GeometryData
	Blades   int
	Attempts int
}

// Placer executa amostragem por rejeição sobre o disco: sorteia candidatos
// uniformes, consulta a fonte de altura e aceita ou rejeita por banda de
// altura e por probabilidade modulada por ruído.
type Placer struct {
	cfg     Config
	heights terrain.HeightSampler
	density DensitySampler
	rng     *rand.Rand
}

// NewPlacer cria um posicionador sobre a fonte de altura dada: o sintetizador
// antes da grade existir, ou a própria grade depois de edições.
func NewPlacer(cfg Config, heights terrain.HeightSampler, density DensitySampler, rng *rand.Rand) *Placer {
	if cfg.MaxPerBatch <= 0 {
		// 5 vértices por lâmina precisam caber no espaço de índice uint16
		cfg.MaxPerBatch = 13000
	}
	return &Placer{cfg: cfg, heights: heights, density: density, rng: rng}
}

// tryPlace sorteia um candidato e, se aceito, acumula a lâmina no buffer.
func (p *Placer) tryPlace(buf *meshing.MeshBuffer) bool {
	// r = R·sqrt(u) para densidade uniforme por área; u linear concentraria
	// candidatos no centro do disco.
	r := p.cfg.Radius * math.Sqrt(p.rng.Float64())
	theta := 2 * math.Pi * p.rng.Float64()
	x := float32(r * math.Cos(theta))
	z := float32(r * math.Sin(theta))

	h := p.heights.HeightAt(x, z)

	// O jitter produz uma linha de neve irregular em vez de um anel perfeito
	maxH := p.cfg.MaxHeight + (p.rng.Float32()*2-1)*p.cfg.HeightJitter
	if h > maxH {
		return false
	}
	if h < p.cfg.MinHeight {
		return false
	}

	// Densidade atrelada a um campo de ruído próprio: manchas naturais de
	// vegetação não correlacionadas apenas com a altura
	chance := 0.7 + 0.3*p.density.DensityAt(float64(x), float64(z))
	if p.rng.Float64() > chance {
		return false
	}

	appendBlade(buf, x, h, z, p.cfg.PlaneSize, p.cfg.Blade, p.rng)
	return true
}

// Run é o estado retomável de uma execução incremental: acumula lotes e
// contadores entre ticks até atingir o alvo ou esgotar o orçamento de
// tentativas.
type Run struct {
	placer *Placer
	target int
	budget int

	accepted int
	attempts int

	batches     []meshing.GeometryData
	buf         *meshing.MeshBuffer
	bladesInBuf int
	done        bool
}

// NewRun prepara uma execução para o alvo dado. O orçamento de tentativas
// (3×alvo) existe porque configurações degeneradas podem tornar a aceitação
// arbitrariamente rara; esgotá-lo não é erro, apenas rende um campo menor.
func NewRun(placer *Placer, target int) *Run {
	if target < 0 {
		target = 0
	}
	return &Run{
		placer: placer,
		target: target,
		budget: target * 3,
		buf:    newBladeBuffer(placer.cfg.MaxPerBatch),
	}
}

func newBladeBuffer(blades int) *meshing.MeshBuffer {
	return meshing.NewMeshBuffer(blades * BladeVertexCount)
}

// Step avança a execução em até maxAccepted lâminas aceitas (não tentativas).
// A suspensão acontece apenas entre lâminas, nunca no meio de uma.
func (r *Run) Step(maxAccepted int) {
	if r.done {
		return
	}

	placed := 0
	for r.accepted < r.target && r.attempts < r.budget && placed < maxAccepted {
		r.attempts++
		if !r.placer.tryPlace(r.buf) {
			continue
		}
		r.accepted++
		r.bladesInBuf++
		placed++

		if r.bladesInBuf >= r.placer.cfg.MaxPerBatch {
			r.sealBatch()
		}
	}

	if r.accepted >= r.target || r.attempts >= r.budget {
		r.sealBatch()
		r.done = true
	}
}

func (r *Run) sealBatch() {
	if r.bladesInBuf == 0 {
		return
	}
	r.batches = append(r.batches, r.buf.Geometry.Clone())
	r.buf.Reset()
	r.bladesInBuf = 0
}

// Done informa se a execução terminou (alvo atingido ou orçamento esgotado).
func (r *Run) Done() bool { return r.done }

// Progress retorna lâminas aceitas e o alvo da execução.
func (r *Run) Progress() (accepted, target int) { return r.accepted, r.target }

// Field materializa o resultado final. Só deve ser chamado com Done() == true.
func (r *Run) Field() Field {
	return Field{Batches: r.batches, Blades: r.accepted, Attempts: r.attempts}
}

// Place executa o posicionamento completo de uma vez, sem fatiamento por
// ticks. Usado pelo gerador headless e pelos testes.
func Place(cfg Config, heights terrain.HeightSampler, density DensitySampler, target int, rng *rand.Rand) Field {
	run := NewRun(NewPlacer(cfg, heights, density, rng), target)
	for !run.Done() {
		run.Step(target + 1)
	}
	return run.Field()
}

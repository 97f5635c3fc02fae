// Gerador headless de mundos do TerraViva. Produz um banco de snapshot
// pronto para ser aberto pelo jogo, sem abrir janela nenhuma. Útil para
// pré-gerar mundos com seed fixa e inspecionar estatísticas do relevo.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"TerraViva/shared/config"
	"TerraViva/shared/savegame"
	"TerraViva/shared/terrain"
	"TerraViva/shared/vegetation"
)

func main() {
	seed := flag.Int64("seed", 0, "Seed do relevo (0 = aleatória)")
	dir := flag.String("dir", "saves", "Diretório de saída dos snapshots")
	world := flag.String("world", "mundo", "Nome do mundo (vira o nome do arquivo)")
	blades := flag.Int("blades", 0, "Lâminas de grama a semear (0 = pula a vegetação)")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.New(rand.NewSource(time.Now().UnixNano())).Int63n(1 << 31)
	}

	cfg := config.DefaultConfig()
	cfg.WorldName = *world

	log.Printf("[Gerador] Seed: %d", *seed)
	start := time.Now()

	synth := terrain.NewSynthesizer(terrain.SynthesizerParams{
		Seed:           *seed,
		Radius:         cfg.TerrainRadius(),
		BaseFrequency:  cfg.BaseFrequency,
		AmplitudeScale: cfg.AmplitudeScale,
		PlateauHeight:  cfg.PlateauHeight,
	})
	grid := terrain.BuildGrid(synth, cfg.GridResolution, cfg.PlaneSize)
	log.Printf("[Gerador] Terreno: %d amostras em %v", grid.SampleCount(), time.Since(start))

	printStats(grid)

	if *blades > 0 {
		vegStart := time.Now()
		// No gerador a vegetação é determinística: a mesma seed do relevo
		// alimenta o RNG de posicionamento.
		rng := rand.New(rand.NewSource(*seed))
		field := vegetation.Place(vegetation.Config{
			Radius:       cfg.TerrainRadius() * float64(cfg.VegetationRadius),
			PlaneSize:    cfg.PlaneSize,
			MaxHeight:    cfg.VegetationMax,
			MinHeight:    cfg.VegetationMin,
			HeightJitter: cfg.VegetationJitter,
			Blade: vegetation.BladeParams{
				Height:       cfg.BladeHeight,
				HeightSpread: cfg.BladeHeightSpread,
				Width:        cfg.BladeWidth,
			},
		}, grid, synth, *blades, rng)
		log.Printf("[Gerador] Vegetação: %d lâminas em %d lotes (%d tentativas, %v)",
			field.Blades, len(field.Batches), field.Attempts, time.Since(vegStart))
	}

	store, err := savegame.Open(*dir, *world)
	if err != nil {
		log.Printf("[Gerador] Erro ao abrir o banco: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	err = store.SaveTerrain(savegame.TerrainSnapshot{
		Seed:     synth.Seed(),
		Vertices: grid.ExportVertices(),
	})
	if err != nil {
		log.Printf("[Gerador] Erro ao salvar o terreno: %v", err)
		os.Exit(1)
	}

	log.Printf("[Gerador] Mundo salvo em %s/%s.tv (total: %v)", *dir, *world, time.Since(start))
}

// printStats resume o relevo gerado: alturas mínima/máxima e cobertura.
func printStats(g *terrain.Grid) {
	minH := float32(0)
	maxH := float32(0)
	inside := 0
	first := true
	for _, h := range g.Samples() {
		if h <= terrain.SentinelHeight+1 {
			continue
		}
		inside++
		if first {
			minH, maxH = h, h
			first = false
			continue
		}
		if h < minH {
			minH = h
		}
		if h > maxH {
			maxH = h
		}
	}
	fmt.Printf("  Alturas: min %.2f / max %.2f\n", minH, maxH)
	fmt.Printf("  Amostras dentro da ilha: %d de %d\n", inside, g.SampleCount())
}

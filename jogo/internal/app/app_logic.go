package app

import (
	"log"
	"math/rand"
	"time"

	"TerraViva/shared/savegame"
	"TerraViva/shared/terrain"
	"TerraViva/shared/vegetation"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// setupWorld cria (ou restaura) a seed, o sintetizador e a grade do terreno.
// A restauração é melhor-esforço: qualquer falha cai na geração procedural.
func (a *App) setupWorld() {
	cfg := a.Config

	var snap savegame.TerrainSnapshot
	restored := false
	if a.store != nil {
		s, err := a.store.LoadTerrain()
		if err == nil {
			snap = s
			restored = true
		} else {
			log.Printf("[App] Sem snapshot de terreno (%v); gerando do zero", err)
		}
	}

	seed := snap.Seed
	if !restored {
		seed = rand.New(rand.NewSource(time.Now().UnixNano())).Int63n(1 << 31)
	}

	a.synth = terrain.NewSynthesizer(terrain.SynthesizerParams{
		Seed:           seed,
		Radius:         cfg.TerrainRadius(),
		BaseFrequency:  cfg.BaseFrequency,
		AmplitudeScale: cfg.AmplitudeScale,
		PlateauHeight:  cfg.PlateauHeight,
	})

	if restored {
		if g, ok := terrain.RestoreGrid(snap.Vertices, cfg.GridResolution, cfg.PlaneSize); ok {
			a.grid = g
			log.Printf("[App] Terreno restaurado do snapshot (seed %d, %d amostras)",
				seed, g.SampleCount())
		} else {
			// Comprimento divergente = snapshot de outra resolução
			log.Printf("[App] Snapshot incompatível com a grade atual; gerando do zero")
			restored = false
		}
	}

	if a.grid == nil {
		a.grid = terrain.BuildGrid(a.synth, cfg.GridResolution, cfg.PlaneSize)
		log.Printf("[App] Terreno gerado (seed %d, %d amostras)", seed, a.grid.SampleCount())
	}

	a.renderer.UploadTerrain(a.grid.Geometry())

	// Órbita centrada no topo do monte, não no plano y=0
	a.Cam.SetTarget(rl.Vector3{X: 0, Y: a.grid.HeightAt(0, 0), Z: 0})
}

// restoreCamera aplica o snapshot de câmera da sessão anterior, se existir.
func (a *App) restoreCamera() {
	if a.store == nil {
		return
	}
	snap, err := a.store.LoadCamera()
	if err != nil {
		return
	}
	a.Cam.Restore(
		rl.Vector3{X: snap.LookAt[0], Y: snap.LookAt[1], Z: snap.LookAt[2]},
		snap.Zoom, snap.AngleX, snap.AngleY,
	)
}

// placementConfig monta a configuração de posicionamento a partir do Config.
func (a *App) placementConfig() vegetation.Config {
	cfg := a.Config
	return vegetation.Config{
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
	}
}

// startPlacement dispara uma execução incremental de vegetação lendo a grade
// atual. Pedido re-entrante durante uma execução ativa é ignorado.
func (a *App) startPlacement(target int) {
	placer := vegetation.NewPlacer(a.placementConfig(), a.grid, a.synth, a.placerRng)
	started := a.scheduler.Start(placer, target, func(field vegetation.Field) {
		a.renderer.SetVegetation(field)
		a.Loading = false
	})
	if !started {
		log.Println("[Vegetação] Regeneração ignorada: execução em andamento")
		return
	}
	log.Printf("[Vegetação] Execução iniciada: alvo de %d lâminas", target)
}

// handleSculpt aplica o pincel de escultura a partir do estado do mouse.
func (a *App) handleSculpt() {
	// Roda do mouse ajusta o raio do pincel
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.brush.AdjustRadius(wheel * 0.5)
	}

	// Sinal da interação: esquerdo eleva, direito rebaixa
	a.brush.Sign = terrain.SignIdle
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		a.brush.Sign = terrain.SignRaise
	} else if rl.IsMouseButtonDown(rl.MouseRightButton) {
		a.brush.Sign = terrain.SignLower
	}

	// O colaborador de render produz o ponto de impacto via interseção de
	// cena; o núcleo só consome o ponto resultante.
	ray := rl.GetMouseRay(rl.GetMousePosition(), a.Cam.RLCamera)
	hit, ok := a.renderer.TerrainHit(ray)
	a.renderer.SetBrush(hit, a.brush.Radius, ok)
	if !ok || a.brush.Sign == terrain.SignIdle {
		return
	}

	changed := a.sculptor.Apply(a.grid, hit.X, hit.Z, a.brush.Sign,
		a.brush.Radius, a.brush.Strength)
	if changed > 0 {
		a.terrainDirty = true
		a.saveDirty = true
		a.lastEditTime = rl.GetTime()
	}
}

// flushTerrainEdits ressincroniza a geometria uma única vez por frame após o
// lote de pinceladas, antes da submissão de render.
func (a *App) flushTerrainEdits() {
	if !a.terrainDirty {
		return
	}
	a.grid.RefreshGeometry()
	a.grid.RecomputeNormals()
	a.renderer.RefreshTerrain(a.grid.Geometry())
	a.terrainDirty = false
}

// handleDebouncedSave coalesce rajadas de edições de um pincel segurado em um
// único write: a janela reinicia a cada edição nova.
func (a *App) handleDebouncedSave() {
	if !a.saveDirty || a.store == nil {
		return
	}
	if rl.GetTime()-a.lastEditTime < a.Config.SaveDebounce {
		return
	}
	a.saveDirty = false

	// Fire-and-forget: nenhuma lógica do núcleo espera pelo write
	snap := savegame.TerrainSnapshot{
		Seed:     a.synth.Seed(),
		Vertices: a.grid.ExportVertices(),
	}
	store := a.store
	go func() {
		if err := store.SaveTerrain(snap); err != nil {
			log.Printf("[Persistence] Erro ao salvar terreno: %v", err)
		}
	}()
}

// persistTerrain grava o snapshot do terreno de forma síncrona (saída).
func (a *App) persistTerrain() {
	if a.store == nil || a.grid == nil {
		return
	}
	snap := savegame.TerrainSnapshot{
		Seed:     a.synth.Seed(),
		Vertices: a.grid.ExportVertices(),
	}
	if err := a.store.SaveTerrain(snap); err != nil {
		log.Printf("[Persistence] Erro ao salvar terreno: %v", err)
	}
}

// persistCamera grava o snapshot da câmera.
func (a *App) persistCamera() {
	if a.store == nil || a.Cam == nil {
		return
	}
	snap := savegame.CameraSnapshot{
		LookAt: [3]float32{a.Cam.TargetLookAt.X, a.Cam.TargetLookAt.Y, a.Cam.TargetLookAt.Z},
		Zoom:   a.Cam.TargetZoom,
		AngleX: a.Cam.TargetAngleX,
		AngleY: a.Cam.TargetAngleY,
	}
	if err := a.store.SaveCamera(snap); err != nil {
		log.Printf("[Persistence] Erro ao salvar câmera: %v", err)
	}
}

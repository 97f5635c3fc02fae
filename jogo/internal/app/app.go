package app

import (
	"log"
	"math/rand"
	"time"

	"TerraViva/jogo/internal/camera"
	"TerraViva/jogo/internal/render"
	"TerraViva/shared/config"
	"TerraViva/shared/savegame"
	"TerraViva/shared/terrain"
	"TerraViva/shared/vegetation"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateLoading AppState = iota // Gerando o campo de vegetação inicial
	StateViewing                 // Explorando/esculpindo a ilha
	StatePaused                  // Pausado
)

// App é a aplicação principal do TerraViva. Todo o estado da simulação vive
// aqui, sem globals compartilhados entre handlers e o loop de tick.
type App struct {
	Config *config.Config
	State  AppState

	Cam      *camera.Controller
	renderer *render.Renderer
	store    *savegame.Store

	// Núcleo do terreno
	synth    *terrain.Synthesizer
	grid     *terrain.Grid
	sculptor terrain.Sculptor
	brush    terrain.Brush

	// Vegetação
	scheduler *vegetation.Scheduler
	placerRng *rand.Rand

	// Consistência pós-escultura e persistência com debounce
	terrainDirty bool    // Geometria precisa de refresh antes do próximo draw
	saveDirty    bool    // Há edições ainda não persistidas
	lastEditTime float64 // Timestamp da última pincelada

	frameCount int

	// Estado da tela de carregamento
	Loading       bool
	LoadingStatus string
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		State:  StateLoading,
		sculptor: terrain.Sculptor{
			MinHeight: cfg.MinHeight,
			MaxHeight: cfg.MaxHeight,
		},
		brush: terrain.Brush{
			Radius:    cfg.BrushRadius,
			MinRadius: cfg.BrushMinRadius,
			MaxRadius: cfg.BrushMaxRadius,
			Strength:  cfg.BrushStrength,
		},
		scheduler: vegetation.NewScheduler(cfg.BladesPerTick),
		// O posicionamento é intencionalmente não-determinístico entre
		// sessões; só o relevo é preso à seed.
		placerRng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Loading:       true,
		LoadingStatus: "Gerando terreno...",
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)

	a.Cam = camera.New(a.Config.CameraSpeed, a.Config.CameraSensitivity,
		a.Config.ZoomSpeed, a.Config.PlaneSize/2)

	log.Println("[TerraViva] Janela inicializada com sucesso")
	log.Printf("[TerraViva] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.renderer = render.NewRenderer()

	// Persistência é melhor-esforço: sem banco, o jogo segue em memória
	store, err := savegame.Open("saves", a.Config.WorldName)
	if err != nil {
		log.Printf("[App] AVISO: persistência indisponível: %v", err)
	} else {
		a.store = store
		log.Printf("[App] Banco de snapshots aberto: saves/%s.tv", a.Config.WorldName)
	}

	a.setupWorld()
	a.restoreCamera()
	a.startPlacement(a.Config.BladeCountFull)

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame. Ordem importa: esculturas do frame
// são aplicadas e a geometria ressincronizada antes da submissão de render.
func (a *App) update() {
	a.frameCount++

	switch a.State {
	case StateLoading:
		// A câmera já responde enquanto a vegetação inicial é semeada
		a.updateCamera()
		a.scheduler.Tick()
		if !a.Loading {
			a.State = StateViewing
		}
	case StateViewing:
		a.updateCamera()
		a.updateInput()
		a.handleSculpt()
		a.scheduler.Tick()
		a.flushTerrainEdits()
		a.handleDebouncedSave()
	case StatePaused:
		a.updateInput() // Permite detectar ESC para despausar
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	// Edições pendentes e câmera são salvas na saída
	a.persistTerrain()
	a.persistCamera()

	if err := a.store.Close(); err != nil {
		log.Printf("[App] Erro ao fechar banco: %v", err)
	}

	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[TerraViva] Erro ao salvar configurações: %v", err)
	}
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do TerraViva.
// Todos os valores são fixados na inicialização; nada aqui é reconfigurável em runtime.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Mundo / Persistência
	WorldName string `json:"world_name"`

	// Terreno
	PlaneSize      float32 `json:"plane_size"`      // Lado do plano quadrado centrado na origem
	GridResolution int     `json:"grid_resolution"` // Células por lado (amostras = resolução+1)
	BaseFrequency  float64 `json:"base_frequency"`  // Frequência da primeira oitava de ruído
	AmplitudeScale float64 `json:"amplitude_scale"` // Escala aplicada à soma das oitavas
	PlateauHeight  float64 `json:"plateau_height"`  // Altura do domo central não atenuado
	MinHeight      float32 `json:"min_height"`      // Piso absoluto para escultura
	MaxHeight      float32 `json:"max_height"`      // Teto absoluto para escultura

	// Pincel de escultura
	BrushMinRadius float32 `json:"brush_min_radius"`
	BrushMaxRadius float32 `json:"brush_max_radius"`
	BrushRadius    float32 `json:"brush_radius"` // Raio inicial
	BrushStrength  float32 `json:"brush_strength"`
	SaveDebounce   float64 `json:"save_debounce"` // Segundos entre a última edição e o save

	// Vegetação
	BladeCountFull    int     `json:"blade_count_full"`    // Geração inicial
	BladeCountRegen   int     `json:"blade_count_regen"`   // Regeneração via gatilho
	BladesPerTick     int     `json:"blades_per_tick"`     // Lâminas aceitas por frame
	VegetationMax     float32 `json:"vegetation_max"`      // Limite superior de altura (linha da neve)
	VegetationMin     float32 `json:"vegetation_min"`      // Corte inferior (fundo de cânion)
	VegetationJitter  float32 `json:"vegetation_jitter"`   // Jitter ± da linha da neve por candidato
	VegetationRadius  float32 `json:"vegetation_radius"`   // Fração do raio do terreno usada no plantio
	BladeHeight       float32 `json:"blade_height"`
	BladeHeightSpread float32 `json:"blade_height_spread"`
	BladeWidth        float32 `json:"blade_width"`

	// Câmera
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
	WireframeMode bool `json:"wireframe_mode"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "TerraViva",
		Fullscreen:   false,
		TargetFPS:    60,

		WorldName: "ilha",

		PlaneSize:      60.0,
		GridResolution: 128,
		BaseFrequency:  0.04,
		AmplitudeScale: 2.5,
		PlateauHeight:  2.0,
		MinHeight:      -5.0,
		MaxHeight:      15.0,

		BrushMinRadius: 1.0,
		BrushMaxRadius: 8.0,
		BrushRadius:    3.0,
		BrushStrength:  0.8,
		SaveDebounce:   1.0,

		BladeCountFull:    120000,
		BladeCountRegen:   60000,
		BladesPerTick:     4000,
		VegetationMax:     3.0,
		VegetationMin:     -0.5,
		VegetationJitter:  0.75,
		VegetationRadius:  0.95,
		BladeHeight:       0.45,
		BladeHeightSpread: 0.25,
		BladeWidth:        0.07,

		CameraSpeed:       10.0,
		CameraSensitivity: 0.3,
		ZoomSpeed:         5.0,

		ShowDebugInfo: true,
		ShowGrid:      false,
		WireframeMode: false,
	}
}

// TerrainRadius retorna o raio do disco jogável inscrito no plano.
func (c *Config) TerrainRadius() float64 {
	return float64(c.PlaneSize) / 2.0
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}

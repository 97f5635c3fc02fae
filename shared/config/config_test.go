package config

import (
	"encoding/json"
	"testing"
)

func TestDefaultConfigConsistency(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BrushRadius < cfg.BrushMinRadius || cfg.BrushRadius > cfg.BrushMaxRadius {
		t.Errorf("raio inicial do pincel %v fora de [%v, %v]",
			cfg.BrushRadius, cfg.BrushMinRadius, cfg.BrushMaxRadius)
	}
	if cfg.VegetationMin >= cfg.VegetationMax {
		t.Errorf("banda de vegetação invertida: [%v, %v]", cfg.VegetationMin, cfg.VegetationMax)
	}
	if cfg.MinHeight >= cfg.MaxHeight {
		t.Errorf("limites de escultura invertidos: [%v, %v]", cfg.MinHeight, cfg.MaxHeight)
	}
	if cfg.BladesPerTick <= 0 || cfg.BladeCountFull <= 0 {
		t.Error("orçamentos de vegetação não positivos")
	}
	if cfg.VegetationRadius <= 0 || cfg.VegetationRadius > 1 {
		t.Errorf("fração do raio de plantio %v fora de (0, 1]", cfg.VegetationRadius)
	}
	if cfg.VegetationJitter < 0 {
		t.Errorf("jitter da linha da neve negativo: %v", cfg.VegetationJitter)
	}
	if cfg.BladeWidth <= 0 || cfg.BladeHeight <= 0 {
		t.Error("dimensões de lâmina não positivas")
	}
}

func TestTerrainRadius(t *testing.T) {
	cfg := DefaultConfig()
	if got, want := cfg.TerrainRadius(), float64(cfg.PlaneSize)/2; got != want {
		t.Errorf("TerrainRadius() = %v, want %v", got, want)
	}
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorldName = "teste"
	cfg.BrushRadius = 5.5

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal falhou: %v", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal falhou: %v", err)
	}
	if loaded.WorldName != "teste" || loaded.BrushRadius != 5.5 {
		t.Errorf("round-trip perdeu campos: %+v", loaded)
	}
}

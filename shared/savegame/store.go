package savegame

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CurrentFormatVersion é a geração do esquema de snapshot. A restauração
// rejeita versões divergentes em vez de depender só da checagem de
// comprimento da grade.
const CurrentFormatVersion = 1

// Chaves de snapshot: terreno e câmera são persistidos independentemente.
const (
	KeyTerrain = "terrain"
	KeyCamera  = "camera"
)

// SnapshotModel representa o esquema do banco de dados para um snapshot.
type SnapshotModel struct {
	Key       string `gorm:"primaryKey"`
	Version   int
	Data      []byte // Snapshot serializado em GOB
	UpdatedAt time.Time
}

// WorldMetadata armazena informações globais do mundo no banco.
type WorldMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// TerrainSnapshot é o estado persistido do terreno: a seed e o buffer de
// posições achatado (triplas x,y,z) da grade. Na restauração apenas os Y
// importam; x/z acompanham porque o snapshot é tirado do buffer completo.
type TerrainSnapshot struct {
	Seed     int64
	Vertices []float32
}

// CameraSnapshot é o estado persistido da câmera.
type CameraSnapshot struct {
	LookAt [3]float32
	Zoom   float32
	AngleX float32
	AngleY float32
}

// Store é a ponte de persistência em SQLite.
type Store struct {
	db *gorm.DB
}

// Open abre (ou cria) o banco SQLite do mundo dentro de dir e roda migrações.
func Open(dir, worldName string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, fmt.Sprintf("%s.tv", worldName))

	// Logger silencioso em produção
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&SnapshotModel{}, &WorldMetadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	db.Save(&WorldMetadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)})
	db.Save(&WorldMetadata{Key: "WorldName", Value: worldName})

	return &Store{db: db}, nil
}

// SaveTerrain grava o snapshot do terreno (upsert).
func (s *Store) SaveTerrain(snap TerrainSnapshot) error {
	return s.save(KeyTerrain, snap)
}

// LoadTerrain carrega o snapshot do terreno, validando a versão do formato.
func (s *Store) LoadTerrain() (TerrainSnapshot, error) {
	var snap TerrainSnapshot
	err := s.load(KeyTerrain, &snap)
	return snap, err
}

// SaveCamera grava o snapshot da câmera (upsert).
func (s *Store) SaveCamera(snap CameraSnapshot) error {
	return s.save(KeyCamera, snap)
}

// LoadCamera carrega o snapshot da câmera.
func (s *Store) LoadCamera() (CameraSnapshot, error) {
	var snap CameraSnapshot
	err := s.load(KeyCamera, &snap)
	return snap, err
}

func (s *Store) save(key string, value any) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return fmt.Errorf("falha ao serializar snapshot %q: %w", key, err)
	}

	model := SnapshotModel{
		Key:     key,
		Version: CurrentFormatVersion,
		Data:    buf.Bytes(),
	}
	return s.db.Save(&model).Error
}

func (s *Store) load(key string, out any) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}

	var model SnapshotModel
	if err := s.db.First(&model, "key = ?", key).Error; err != nil {
		return err
	}
	if model.Version != CurrentFormatVersion {
		return fmt.Errorf("snapshot %q com versão incompatível: %d (esperado %d)",
			key, model.Version, CurrentFormatVersion)
	}

	if err := gob.NewDecoder(bytes.NewReader(model.Data)).Decode(out); err != nil {
		return fmt.Errorf("falha ao desserializar snapshot %q: %w", key, err)
	}
	return nil
}

// Close fecha a conexão com o banco.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

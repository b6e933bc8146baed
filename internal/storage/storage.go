package storage

import (
	"ptr/internal/config"
	"ptr/internal/domain"
)

// Storage persists and loads run metadata (e.g. for the last command).
type Storage interface {
	SaveRun(meta *domain.RunMeta) error
	LoadRun() (*domain.RunMeta, error)
}

// JSONStorage stores run metadata in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

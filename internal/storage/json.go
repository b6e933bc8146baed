package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ptr/internal/domain"
)

// SaveRun writes run metadata to the configured JSON output file.
func (s *JSONStorage) SaveRun(meta *domain.RunMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run metadata: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write run metadata: %w", err)
	}
	return nil
}

// LoadRun reads the last run's metadata from the configured JSON output file.
func (s *JSONStorage) LoadRun() (*domain.RunMeta, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run metadata: %w", err)
	}
	var meta domain.RunMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse run metadata: %w", err)
	}
	return &meta, nil
}

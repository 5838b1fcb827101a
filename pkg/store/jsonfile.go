package store

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
	"github.com/PancyStudios/PancySuggestGo/pkg/models"
)

// FileWriter persists the whole store to a single JSON file, rewriting the
// file on every mutation. This is the default backend; the file maps guild
// ids to their full config.
type FileWriter struct {
	path string
}

// NewFileWriter creates a FileWriter for the given path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Load reads the full store from disk. A missing file is an empty store,
// not an error.
func (w *FileWriter) Load() (map[string]*models.GuildConfig, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info(fmt.Sprintf("Archivo %s no encontrado, iniciando con almacén vacío", w.path), "FileWriter")
			return make(map[string]*models.GuildConfig), nil
		}
		return nil, err
	}

	guilds := make(map[string]*models.GuildConfig)
	if err := json.Unmarshal(data, &guilds); err != nil {
		return nil, fmt.Errorf("error parseando %s: %w", w.path, err)
	}
	for _, g := range guilds {
		if g.Pending == nil {
			g.Pending = make(map[string]*models.SuggestionRecord)
		}
		if g.NextID < 1 {
			g.NextID = 1
		}
	}
	return guilds, nil
}

// Persist rewrites the whole file. The changed guild id is irrelevant for
// this backend since the file always holds every scope.
func (w *FileWriter) Persist(guilds map[string]*models.GuildConfig, _ string) error {
	data, err := json.MarshalIndent(guilds, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(w.path, data, 0644)
}

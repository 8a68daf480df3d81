package state

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	apperrors "jejum/internal/platform/errors"
)

// FileStore persists the whole aggregate as one JSON document. Before each
// save the previous file is copied to state.json.bak so a torn write never
// costs more than one transition.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (AppState, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return AppState{}, fmt.Errorf("read state: %w", err)
	}
	decoded := Default()
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return AppState{}, fmt.Errorf("decode state: %w", err)
	}
	return Sanitize(decoded), nil
}

func (s *FileStore) Save(_ context.Context, appState AppState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if prev, err := os.ReadFile(s.path); err == nil {
		_ = os.WriteFile(s.path+".bak", prev, 0o644)
	}
	payload, err := json.MarshalIndent(appState, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// ExportJSON is the backup format: the aggregate, byte for byte.
func (s *FileStore) ExportJSON(ctx context.Context) ([]byte, error) {
	appState, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(appState, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return append(payload, '\n'), nil
}

// ValidateImport applies the structural contract for restored backups: a
// `user` object and a `history` array must be present. Accepted payloads get
// the same sanitisation as Load.
func ValidateImport(raw []byte) (AppState, error) {
	shape := struct {
		User    json.RawMessage `json:"user"`
		History json.RawMessage `json:"history"`
	}{}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return AppState{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedImport, err)
	}
	if !startsWith(shape.User, '{') {
		return AppState{}, fmt.Errorf("%w: missing user object", apperrors.ErrMalformedImport)
	}
	if !startsWith(shape.History, '[') {
		return AppState{}, fmt.Errorf("%w: missing history array", apperrors.ErrMalformedImport)
	}
	decoded := Default()
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return AppState{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedImport, err)
	}
	return Sanitize(decoded), nil
}

func startsWith(raw json.RawMessage, b byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == b
}

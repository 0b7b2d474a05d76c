package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"salvatore/models"
)

// FileStore persists one JSON document per session identifier under a
// sessions directory. Records live on disk indefinitely.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(id string) string {
	// Identifiers are server-generated UUIDs, but a client may echo back
	// anything. Strip path separators before touching the filesystem.
	id = strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(id)
	return filepath.Join(s.dir, id+".json")
}

func (s *FileStore) GetOrCreate(_ context.Context, id string) (*models.Session, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewSession(id), nil
		}
		return nil, fmt.Errorf("failed to read session %s: %w", id, err)
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("corrupt session file %s: %w", id, err)
	}
	return &sess, nil
}

func (s *FileStore) Save(_ context.Context, sess *models.Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(sess.ID), data, 0644)
}

func (s *FileStore) Reset(ctx context.Context, id string) (*models.Session, error) {
	sess := models.NewSession(id)
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

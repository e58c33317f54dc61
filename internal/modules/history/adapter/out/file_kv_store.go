package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	historyout "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/port/out"
)

// FileKVStore keeps every key in one JSON document. Writes go through a temp file and rename.
type FileKVStore struct {
	mu   sync.Mutex
	path string
}

var _ historyout.KVStore = (*FileKVStore)(nil)

func NewFileKVStore(path string) *FileKVStore {
	return &FileKVStore{path: path}
}

func (s *FileKVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return "", false, err
	}
	value, ok := doc[key]
	return value, ok, nil
}

func (s *FileKVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc[key] = value
	return s.write(doc)
}

func (s *FileKVStore) read() (map[string]string, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read kv store: %w", err)
	}
	doc := map[string]string{}
	if len(payload) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode kv store %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *FileKVStore) write(doc map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create kv dir: %w", err)
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal kv store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write kv store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace kv store: %w", err)
	}
	return nil
}

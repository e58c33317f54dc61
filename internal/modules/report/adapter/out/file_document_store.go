package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	reportout "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/port/out"
)

type FileDocumentStore struct{}

func NewFileDocumentStore() reportout.DocumentStore {
	return FileDocumentStore{}
}

func (FileDocumentStore) Read(_ context.Context, path string) (string, bool, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read report: %w", err)
	}
	return string(payload), true, nil
}

func (FileDocumentStore) Write(_ context.Context, path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	gradingin "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/port/in"
	historyin "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/port/in"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/report/domain"
	reportout "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/port/out"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/clock"
	apperrors "github.com/teamit2026-cmd/cgpatracker/internal/platform/errors"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/markdown"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/slug"
)

type ReportService struct {
	clock   clock.Clock
	store   reportout.DocumentStore
	history historyin.Usecase
	grading gradingin.Usecase
}

func NewReportService(clk clock.Clock, store reportout.DocumentStore, history historyin.Usecase, grading gradingin.Usecase) *ReportService {
	return &ReportService{clock: clk, store: store, history: history, grading: grading}
}

// Export writes <dir>/<slug(title)>.md. Re-exporting refreshes the frontmatter and the managed
// results block; everything else in an existing file is kept.
func (s *ReportService) Export(ctx context.Context, title, dir string) (string, int, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = domain.DefaultTitle
	}
	if strings.TrimSpace(dir) == "" {
		return "", 0, fmt.Errorf("report dir is required: %w", apperrors.ErrInvalidInput)
	}
	results, err := s.history.LoadAll(ctx)
	if err != nil {
		return "", 0, err
	}
	if len(results) == 0 {
		return "", 0, fmt.Errorf("no saved results: %w", apperrors.ErrNotFound)
	}
	stats, err := s.history.Stats(ctx)
	if err != nil {
		return "", 0, err
	}

	rows := make([]domain.Row, 0, len(results))
	for _, result := range results {
		classification, err := s.grading.Classify(ctx, result.Value)
		if err != nil {
			return "", 0, fmt.Errorf("classify %s: %w", result.Label, err)
		}
		rows = append(rows, domain.Row{
			SavedAt:      result.Timestamp,
			Label:        result.Label,
			SubjectCount: result.SubjectCount,
			Value:        result.Value,
			Band:         classification.Band,
			Percentage:   classification.Percentage,
		})
	}

	path := filepath.Join(dir, slug.Make(title)+".md")
	meta := map[string]any{}
	body := "# " + title + "\n"
	existing, ok, err := s.store.Read(ctx, path)
	if err != nil {
		return "", 0, err
	}
	if ok {
		meta, body, err = markdown.Split(existing)
		if err != nil {
			return "", 0, fmt.Errorf("parse existing report: %w", err)
		}
		if meta == nil {
			meta = map[string]any{}
		}
	}
	meta["title"] = title
	meta["generated_at"] = s.clock.Now().UTC().Format(time.RFC3339)
	meta["count"] = stats.Count
	meta["average"] = stats.Mean
	meta["highest"] = stats.Max
	meta["lowest"] = stats.Min
	meta["latest"] = stats.Latest.Value

	body = markdown.ReplaceBlock(body, domain.ManagedResultsStart, domain.ManagedResultsEnd, domain.Table(rows))
	content, err := markdown.Render(meta, body)
	if err != nil {
		return "", 0, err
	}
	if err := s.store.Write(ctx, path, content); err != nil {
		return "", 0, err
	}
	return path, len(rows), nil
}

package bootstrap_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/teamit2026-cmd/cgpatracker/internal/bootstrap"
	historydto "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/config"
	apperrors "github.com/teamit2026-cmd/cgpatracker/internal/platform/errors"
)

func TestComputeSaveExportAcrossBackends(t *testing.T) {
	t.Parallel()
	for _, backend := range []string{config.BackendFile, config.BackendSQLite, config.BackendMemory} {
		backend := backend
		t.Run(backend, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("store:\n  backend: "+backend+"\nlog:\n  level: error\n"), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			cfg, err := config.New(dir, "")
			if err != nil {
				t.Fatalf("new config: %v", err)
			}
			app, err := bootstrap.New(cfg)
			if err != nil {
				t.Fatalf("bootstrap: %v", err)
			}
			defer app.Close()
			ctx := context.Background()

			if _, err := app.ReportCLI.Export(ctx, "", app.ReportDir); !errors.Is(err, apperrors.ErrNotFound) {
				t.Fatalf("export without history should be not found, got %v", err)
			}

			subjects, err := app.CatalogCLI.Subjects(ctx, "it", 1)
			if err != nil {
				t.Fatalf("subjects: %v", err)
			}
			grades := map[string]string{}
			for _, s := range subjects.Subjects {
				grades[s.Code] = "A"
			}
			out, err := app.GradingCLI.ComputeCurriculum(ctx, "it", 1, grades)
			if err != nil {
				t.Fatalf("compute: %v", err)
			}
			if out.Value != 9 || out.SubjectCount != 7 {
				t.Fatalf("unexpected compute output: %+v", out)
			}
			err = app.HistoryCLI.Save(ctx, historydto.SaveInput{
				Value:        out.Value,
				Mode:         out.Mode,
				Department:   out.Department,
				Semester:     out.Semester,
				SubjectCount: out.SubjectCount,
				Timestamp:    out.Timestamp.Truncate(time.Second),
			})
			if err != nil {
				t.Fatalf("save: %v", err)
			}
			latest, ok, err := app.HistoryCLI.Latest(ctx)
			if err != nil || !ok || latest.ContextKey != "IT:1" {
				t.Fatalf("unexpected latest: %+v ok=%v err=%v", latest, ok, err)
			}
			report, err := app.ReportCLI.Export(ctx, "", app.ReportDir)
			if err != nil {
				t.Fatalf("export: %v", err)
			}
			if report.Count != 1 || report.Path != filepath.Join(dir, "reports", "cgpa-report.md") {
				t.Fatalf("unexpected report: %+v", report)
			}
		})
	}
}

package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	cataloginadapter "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/adapter/in"
	catalogoutadapter "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/adapter/out"
	catalogout "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/port/out"
	catalogservice "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/service"
	catalogusecase "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/usecase"
	gradinginadapter "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/adapter/in"
	gradingservice "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/service"
	gradingusecase "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/usecase"
	historyinadapter "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/adapter/in"
	historyoutadapter "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/adapter/out"
	historyout "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/port/out"
	historyservice "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/service"
	historyusecase "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/usecase"
	reportinadapter "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/adapter/in"
	reportoutadapter "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/adapter/out"
	reportservice "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/service"
	reportusecase "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/usecase"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/clock"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/config"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/logging"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/tx"
	uiapp "github.com/teamit2026-cmd/cgpatracker/internal/ui/app"
)

type App struct {
	CatalogCLI cataloginadapter.CLIHandler
	GradingCLI gradinginadapter.CLIHandler
	HistoryCLI historyinadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler
	ReportDir  string
	Backend    string

	closers []func() error
}

func New(cfg config.Config) (*App, error) {
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	clk := clock.SystemClock{}

	curriculum := catalogoutadapter.NewEmbeddedCurriculumSource()
	if cfg.CurriculumPath != "" {
		var err error
		curriculum, err = catalogoutadapter.NewFileCurriculumSource(cfg.CurriculumPath)
		if err != nil {
			return nil, err
		}
	}
	catalogSvc, err := newCatalogService(curriculum)
	if err != nil {
		return nil, err
	}
	catalogUC := catalogusecase.NewInteractor(catalogSvc)
	gradingUC := gradingusecase.NewInteractor(gradingservice.NewGradingService(catalogUC), clk)

	app := &App{ReportDir: filepath.Join(cfg.DataDir, "reports"), Backend: cfg.Backend}
	store, txm, err := app.openHistoryStore(cfg)
	if err != nil {
		return nil, err
	}
	historyUC := historyusecase.NewInteractor(historyservice.NewHistoryService(store, txm))
	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(
		clk,
		reportoutadapter.NewFileDocumentStore(),
		historyUC,
		gradingUC,
	))

	app.CatalogCLI = cataloginadapter.NewCLIHandler(catalogUC)
	app.GradingCLI = gradinginadapter.NewCLIHandler(gradingUC)
	app.HistoryCLI = historyinadapter.NewCLIHandler(historyUC)
	app.ReportCLI = reportinadapter.NewCLIHandler(reportUC)
	return app, nil
}

func newCatalogService(source catalogout.CurriculumSource) (*catalogservice.CatalogService, error) {
	svc, err := catalogservice.NewCatalogService(context.Background(), source)
	if err != nil {
		return nil, fmt.Errorf("load curriculum: %w", err)
	}
	return svc, nil
}

func (a *App) openHistoryStore(cfg config.Config) (historyout.KVStore, tx.Manager, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := historyoutadapter.NewSQLiteKVStore(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("new sqlite store: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		return store, store, nil
	case config.BackendPostgres:
		store, err := historyoutadapter.NewPostgresKVStore(cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("new postgres store: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		return store, store, nil
	case config.BackendMemory:
		logging.Log.Warn("memory backend selected; results are not kept after exit")
		return historyoutadapter.NewMemoryKVStore(), tx.NoopManager{}, nil
	default:
		return historyoutadapter.NewFileKVStore(cfg.KVPath), tx.NoopManager{}, nil
	}
}

func (a *App) Close() error {
	var first error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CatalogCLI, app.GradingCLI, app.HistoryCLI, app.ReportCLI, app.ReportDir)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

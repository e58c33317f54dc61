package usecase

import (
	"context"
	"strings"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/history/domain"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
	historyin "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/port/in"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/history/service"
)

type Interactor struct {
	svc *service.HistoryService
}

func NewInteractor(svc *service.HistoryService) historyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) error {
	return i.svc.Save(ctx, domain.Result{
		Value:        input.Value,
		Context:      toContext(input.Mode, input.Department, input.Semester),
		SubjectCount: input.SubjectCount,
		Timestamp:    input.Timestamp,
	})
}

func (i *Interactor) LoadAll(ctx context.Context) ([]dto.ResultOutput, error) {
	results, err := i.svc.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResultOutput, 0, len(results))
	for _, result := range results {
		out = append(out, toOutput(result))
	}
	return out, nil
}

func (i *Interactor) LoadLatest(ctx context.Context) (dto.ResultOutput, bool, error) {
	result, ok, err := i.svc.LoadLatest(ctx)
	if err != nil || !ok {
		return dto.ResultOutput{}, false, err
	}
	return toOutput(result), true, nil
}

func (i *Interactor) LoadByContext(ctx context.Context, input dto.ContextInput) (dto.ResultOutput, bool, error) {
	result, ok, err := i.svc.LoadByContext(ctx, toContext(input.Mode, input.Department, input.Semester))
	if err != nil || !ok {
		return dto.ResultOutput{}, false, err
	}
	return toOutput(result), true, nil
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	stats, err := i.svc.Stats(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	out := dto.StatsOutput{Count: stats.Count, Mean: stats.Mean, Max: stats.Max, Min: stats.Min}
	if stats.Count > 0 {
		out.Latest = toOutput(stats.Latest)
	}
	return out, nil
}

func toContext(mode, department string, semester int) domain.Context {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == domain.ModeCustom {
		return domain.Context{Mode: domain.ModeCustom}
	}
	return domain.Context{Mode: mode, Department: strings.ToUpper(strings.TrimSpace(department)), Semester: semester}
}

func toOutput(r domain.Result) dto.ResultOutput {
	return dto.ResultOutput{
		Value:        r.Value,
		Mode:         r.Context.Mode,
		Department:   r.Context.Department,
		Semester:     r.Context.Semester,
		ContextKey:   r.Context.Key(),
		Label:        r.Context.Label(),
		SubjectCount: r.SubjectCount,
		Timestamp:    r.Timestamp,
	}
}

package out

import (
	"context"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/domain"
)

type CurriculumSource interface {
	Load(ctx context.Context) (domain.Curriculum, error)
}

package project

import (
	"context"

	"github.com/khoahotran/portfolio-cms/internal/application/service"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
)

type DeleteProjectUseCase struct {
	repo     content.Repository
	notifier *service.Notifier
}

func NewDeleteProjectUseCase(r content.Repository, n *service.Notifier) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{repo: r, notifier: n}
}

type DeleteProjectInput struct {
	ProjectID string
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	ctx, span := tracer.Start(ctx, "DeleteProject")
	defer span.End()

	if err := uc.repo.DeleteItem(ctx, content.SectionProjects, input.ProjectID); err != nil {
		span.RecordError(err)
		return err
	}
	uc.notifier.ContentChanged(ctx, content.SectionProjects, content.ActionDelete, input.ProjectID)
	return nil
}

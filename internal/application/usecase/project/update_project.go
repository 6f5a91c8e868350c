package project

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio-cms/internal/application/service"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
)

type UpdateProjectUseCase struct {
	repo     content.Repository
	notifier *service.Notifier
}

func NewUpdateProjectUseCase(r content.Repository, n *service.Notifier) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{repo: r, notifier: n}
}

type UpdateProjectInput struct {
	ProjectID string
	Fields    content.Object
}

type UpdateProjectOutput struct {
	Project content.Object
}

// Execute merges the given fields onto the stored project. The merged result
// must still have a title; the id never changes.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	ctx, span := tracer.Start(ctx, "UpdateProject")
	defer span.End()
	span.SetAttributes(attribute.String("project_id", input.ProjectID))

	p, err := uc.repo.UpdateItem(ctx, content.SectionProjects, input.ProjectID, input.Fields)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.notifier.ContentChanged(ctx, content.SectionProjects, content.ActionUpdate, input.ProjectID)
	return &UpdateProjectOutput{Project: p}, nil
}

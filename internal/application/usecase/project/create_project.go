package project

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio-cms/internal/application/service"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/internal/domain/project"
	"github.com/khoahotran/portfolio-cms/pkg/apperror"
)

var tracer = otel.Tracer("project_usecase")

type CreateProjectUseCase struct {
	repo     content.Repository
	notifier *service.Notifier
}

func NewCreateProjectUseCase(r content.Repository, n *service.Notifier) *CreateProjectUseCase {
	return &CreateProjectUseCase{repo: r, notifier: n}
}

type CreateProjectInput struct {
	Fields content.Object
}

type CreateProjectOutput struct {
	Project content.Object
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	ctx, span := tracer.Start(ctx, "CreateProject")
	defer span.End()

	p := project.New(input.Fields)
	if err := p.Validate(); err != nil {
		span.RecordError(err)
		return nil, apperror.NewValidation(err.Error())
	}
	span.SetAttributes(attribute.String("project_id", p.ID))

	created, err := uc.repo.AddItem(ctx, content.SectionProjects, p.ToObject())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.notifier.ContentChanged(ctx, content.SectionProjects, content.ActionCreate, p.ID)
	return &CreateProjectOutput{Project: created}, nil
}

package experience

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio-cms/internal/application/service"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/internal/domain/experience"
	"github.com/khoahotran/portfolio-cms/pkg/apperror"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

var tracer = otel.Tracer("experience_usecase")

type ExperienceUseCase struct {
	repo     content.Repository
	notifier *service.Notifier
	logger   logger.Logger
}

func NewExperienceUseCase(r content.Repository, n *service.Notifier, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r, notifier: n, logger: log}
}

func (uc *ExperienceUseCase) ListExperience(ctx context.Context) ([]content.Object, error) {
	return uc.repo.ListItems(ctx, content.SectionExperience)
}

func (uc *ExperienceUseCase) CreateExperience(ctx context.Context, fields content.Object) (content.Object, error) {
	ctx, span := tracer.Start(ctx, "CreateExperience")
	defer span.End()

	e := experience.New(fields)
	if err := e.Validate(); err != nil {
		span.RecordError(err)
		return nil, apperror.NewValidation(err.Error())
	}
	span.SetAttributes(attribute.String("experience_id", e.ID))

	created, err := uc.repo.AddItem(ctx, content.SectionExperience, e.ToObject())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	uc.notifier.ContentChanged(ctx, content.SectionExperience, content.ActionCreate, e.ID)
	return created, nil
}

func (uc *ExperienceUseCase) UpdateExperience(ctx context.Context, id string, partial content.Object) (content.Object, error) {
	ctx, span := tracer.Start(ctx, "UpdateExperience")
	defer span.End()
	span.SetAttributes(attribute.String("experience_id", id))

	updated, err := uc.repo.UpdateItem(ctx, content.SectionExperience, id, partial)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	uc.notifier.ContentChanged(ctx, content.SectionExperience, content.ActionUpdate, id)
	return updated, nil
}

func (uc *ExperienceUseCase) DeleteExperience(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "DeleteExperience")
	defer span.End()

	if err := uc.repo.DeleteItem(ctx, content.SectionExperience, id); err != nil {
		span.RecordError(err)
		return err
	}
	uc.notifier.ContentChanged(ctx, content.SectionExperience, content.ActionDelete, id)
	return nil
}

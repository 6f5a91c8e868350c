package skill

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio-cms/internal/application/service"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/internal/domain/skill"
	"github.com/khoahotran/portfolio-cms/pkg/apperror"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

var tracer = otel.Tracer("skill_usecase")

type SkillUseCase struct {
	repo     content.Repository
	notifier *service.Notifier
	logger   logger.Logger
}

func NewSkillUseCase(r content.Repository, n *service.Notifier, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: r, notifier: n, logger: log}
}

func (uc *SkillUseCase) ListSkills(ctx context.Context) ([]content.Object, error) {
	return uc.repo.ListItems(ctx, content.SectionSkills)
}

// CreateSkill stores a new skill under a server generated id.
func (uc *SkillUseCase) CreateSkill(ctx context.Context, fields content.Object) (content.Object, error) {
	ctx, span := tracer.Start(ctx, "CreateSkill")
	defer span.End()

	s := skill.New(fields)
	if err := s.Validate(); err != nil {
		span.RecordError(err)
		return nil, apperror.NewValidation(err.Error())
	}
	span.SetAttributes(attribute.String("skill_id", s.ID))

	created, err := uc.repo.AddItem(ctx, content.SectionSkills, s.ToObject())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	uc.notifier.ContentChanged(ctx, content.SectionSkills, content.ActionCreate, s.ID)
	return created, nil
}

func (uc *SkillUseCase) UpdateSkill(ctx context.Context, id string, partial content.Object) (content.Object, error) {
	ctx, span := tracer.Start(ctx, "UpdateSkill")
	defer span.End()
	span.SetAttributes(attribute.String("skill_id", id))

	updated, err := uc.repo.UpdateItem(ctx, content.SectionSkills, id, partial)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	uc.notifier.ContentChanged(ctx, content.SectionSkills, content.ActionUpdate, id)
	return updated, nil
}

func (uc *SkillUseCase) DeleteSkill(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "DeleteSkill")
	defer span.End()
	span.SetAttributes(attribute.String("skill_id", id))

	if err := uc.repo.DeleteItem(ctx, content.SectionSkills, id); err != nil {
		span.RecordError(err)
		return err
	}
	uc.notifier.ContentChanged(ctx, content.SectionSkills, content.ActionDelete, id)
	return nil
}

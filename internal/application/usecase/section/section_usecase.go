package section

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio-cms/internal/application/service"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/apperror"
)

var tracer = otel.Tracer("section_usecase")

// SectionUseCase serves the sections without entity rules: hero, about,
// contact, settings, stats and the education list. It also returns the whole document.
type SectionUseCase struct {
	repo     content.Repository
	notifier *service.Notifier
}

func NewSectionUseCase(r content.Repository, n *service.Notifier) *SectionUseCase {
	return &SectionUseCase{repo: r, notifier: n}
}

func (uc *SectionUseCase) GetAll(ctx context.Context) (*content.Document, error) {
	return uc.repo.GetDocument(ctx)
}

func (uc *SectionUseCase) Get(ctx context.Context, section content.Section) (content.Object, error) {
	if !section.IsObject() {
		return nil, apperror.NewInternal("get section", fmt.Errorf("%w: %s", content.ErrUnknownSection, section))
	}
	return uc.repo.GetObject(ctx, section)
}

// Update shallow-merges partial onto the section and returns the merged value.
func (uc *SectionUseCase) Update(ctx context.Context, section content.Section, partial content.Object) (content.Object, error) {
	ctx, span := tracer.Start(ctx, "UpdateSection")
	defer span.End()
	span.SetAttributes(attribute.String("section", string(section)))

	if !section.IsObject() {
		return nil, apperror.NewInternal("update section", fmt.Errorf("%w: %s", content.ErrUnknownSection, section))
	}
	merged, err := uc.repo.UpdateObject(ctx, section, partial)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	uc.notifier.ContentChanged(ctx, section, content.ActionUpdate, "")
	return merged, nil
}

func (uc *SectionUseCase) GetEducation(ctx context.Context) ([]content.Object, error) {
	return uc.repo.ListItems(ctx, content.SectionEducation)
}

// ReplaceEducation swaps the whole education list.
func (uc *SectionUseCase) ReplaceEducation(ctx context.Context, entries []content.Object) ([]content.Object, error) {
	ctx, span := tracer.Start(ctx, "ReplaceEducation")
	defer span.End()

	out, err := uc.repo.ReplaceItems(ctx, content.SectionEducation, entries)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	uc.notifier.ContentChanged(ctx, content.SectionEducation, content.ActionReplace, "")
	return out, nil
}

package profile

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/khoahotran/portfolio-cms/internal/application/service"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
)

var tracer = otel.Tracer("profile_usecase")

type ProfileUseCase struct {
	repo     content.Repository
	notifier *service.Notifier
}

func NewProfileUseCase(repo content.Repository, n *service.Notifier) *ProfileUseCase {
	return &ProfileUseCase{
		repo:     repo,
		notifier: n,
	}
}

type GetProfileOutput struct {
	Profile content.Object
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.repo.GetObject(ctx, content.SectionProfile)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	Fields content.Object
}

type UpdateProfileOutput struct {
	Profile content.Object
}

// ExecuteUpdateProfile merges the fields onto the stored profile. The merged
// profile must have a name.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "UpdateProfile")
	defer span.End()

	p, err := uc.repo.UpdateObject(ctx, content.SectionProfile, input.Fields)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	uc.notifier.ContentChanged(ctx, content.SectionProfile, content.ActionUpdate, "")
	return &UpdateProfileOutput{Profile: p}, nil
}

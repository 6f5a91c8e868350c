package project

import (
	"context"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
)

type ListProjectsUseCase struct {
	repo content.Repository
}

func NewListProjectsUseCase(r content.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{repo: r}
}

type ListProjectsOutput struct {
	Projects []content.Object
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	projects, err := uc.repo.ListItems(ctx, content.SectionProjects)
	if err != nil {
		return nil, err
	}
	return &ListProjectsOutput{Projects: projects}, nil
}

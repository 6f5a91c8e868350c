package section

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-cms/adapters/persistence"
	"github.com/khoahotran/portfolio-cms/internal/application/service"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
	"github.com/khoahotran/portfolio-cms/pkg/metrics"
)

func newUseCase(t *testing.T) *SectionUseCase {
	t.Helper()
	log := logger.NewNopLogger()
	store := persistence.NewFileStore(filepath.Join(t.TempDir(), "data.json"), log)
	require.NoError(t, store.Init(context.Background()))
	repo := persistence.NewDocumentRepo(store, log, metrics.Nop{})
	return NewSectionUseCase(repo, service.NewNotifier(nil, nil, log))
}

func TestUpdate_MergesIntoSection(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	_, err := uc.Update(ctx, content.SectionAbout, content.Object{"tagline": "t", "quote": "q"})
	require.NoError(t, err)

	merged, err := uc.Update(ctx, content.SectionAbout, content.Object{"quote": "new"})
	require.NoError(t, err)
	assert.Equal(t, content.Object{"tagline": "t", "quote": "new"}, merged)

	doc, err := uc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", doc.About["quote"])
	assert.Empty(t, doc.Hero)
}

func TestUpdate_RejectsListSection(t *testing.T) {
	_, err := newUseCase(t).Update(context.Background(), content.SectionSkills, content.Object{})
	assert.ErrorIs(t, err, content.ErrUnknownSection)
}

func TestReplaceEducation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	_, err := uc.ReplaceEducation(ctx, []content.Object{{"school": "A"}})
	require.NoError(t, err)
	_, err = uc.ReplaceEducation(ctx, []content.Object{{"school": "B"}, {"school": "C"}})
	require.NoError(t, err)

	entries, err := uc.GetEducation(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0]["school"])
}

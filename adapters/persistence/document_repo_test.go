package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/apperror"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
	"github.com/khoahotran/portfolio-cms/pkg/metrics"
)

type DocumentRepoTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *FileStore
	repo  content.Repository
}

func (s *DocumentRepoTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewFileStore(filepath.Join(s.T().TempDir(), "data.json"), logger.NewNopLogger())
	s.Require().NoError(s.store.Init(s.ctx))
	s.repo = NewDocumentRepo(s.store, logger.NewNopLogger(), metrics.Nop{})
}

func TestDocumentRepo(t *testing.T) {
	suite.Run(t, new(DocumentRepoTestSuite))
}

func (s *DocumentRepoTestSuite) Test_UpdateObject_ShallowMerge() {
	_, err := s.repo.UpdateObject(s.ctx, content.SectionHero, content.Object{
		"headline":    "Hello",
		"subheadline": "I build things",
	})
	s.Require().NoError(err)

	merged, err := s.repo.UpdateObject(s.ctx, content.SectionHero, content.Object{"headline": "X"})
	s.Require().NoError(err)
	s.Equal("X", merged["headline"])
	s.Equal("I build things", merged["subheadline"])

	stored, err := s.repo.GetObject(s.ctx, content.SectionHero)
	s.Require().NoError(err)
	s.Equal(merged, stored)
}

func (s *DocumentRepoTestSuite) Test_UpdateObject_ProfileRequiresName() {
	_, err := s.repo.UpdateObject(s.ctx, content.SectionProfile, content.Object{"title": "Engineer"})
	s.ErrorIs(err, apperror.ErrInvalidInput)
	s.EqualError(err, apperror.NewValidation("Name is required").Error())

	p, err := s.repo.UpdateObject(s.ctx, content.SectionProfile, content.Object{"name": "Ada"})
	s.Require().NoError(err)
	s.Equal("Ada", p["name"])

	p, err = s.repo.UpdateObject(s.ctx, content.SectionProfile, content.Object{"title": "Engineer"})
	s.Require().NoError(err, "merged profile keeps its name")
	s.Equal("Ada", p["name"])
}

func (s *DocumentRepoTestSuite) Test_AddItem_AssignsIDWhenMissing() {
	added, err := s.repo.AddItem(s.ctx, content.SectionSkills, content.Object{"name": "Go"})
	s.Require().NoError(err)
	s.NotEmpty(added.ID())

	items, err := s.repo.ListItems(s.ctx, content.SectionSkills)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(added.ID(), items[0].ID())
}

func (s *DocumentRepoTestSuite) Test_AddItem_ValidatesAndRejectsDuplicates() {
	_, err := s.repo.AddItem(s.ctx, content.SectionSkills, content.Object{"name": " "})
	s.ErrorIs(err, apperror.ErrInvalidInput)

	_, err = s.repo.AddItem(s.ctx, content.SectionExperience, content.Object{"title": "Engineer"})
	s.ErrorIs(err, apperror.ErrInvalidInput)

	_, err = s.repo.AddItem(s.ctx, content.SectionProjects, content.Object{"id": "p1", "title": "CMS"})
	s.Require().NoError(err)
	_, err = s.repo.AddItem(s.ctx, content.SectionProjects, content.Object{"id": "p1", "title": "Other"})
	s.ErrorIs(err, apperror.ErrInvalidInput)

	items, err := s.repo.ListItems(s.ctx, content.SectionProjects)
	s.Require().NoError(err)
	s.Len(items, 1)
}

func (s *DocumentRepoTestSuite) Test_UpdateItem_PreservesID() {
	added, err := s.repo.AddItem(s.ctx, content.SectionProjects, content.Object{"id": "p1", "title": "CMS", "description": "old"})
	s.Require().NoError(err)

	updated, err := s.repo.UpdateItem(s.ctx, content.SectionProjects, added.ID(), content.Object{"id": "hijack", "description": "new"})
	s.Require().NoError(err)
	s.Equal("p1", updated.ID())
	s.Equal("CMS", updated["title"])
	s.Equal("new", updated["description"])

	items, err := s.repo.ListItems(s.ctx, content.SectionProjects)
	s.Require().NoError(err)
	s.Equal([]content.Object{updated}, items)
}

func (s *DocumentRepoTestSuite) Test_UpdateItem_RejectsBlankingRequiredField() {
	_, err := s.repo.AddItem(s.ctx, content.SectionSkills, content.Object{"id": "s1", "name": "Go"})
	s.Require().NoError(err)

	_, err = s.repo.UpdateItem(s.ctx, content.SectionSkills, "s1", content.Object{"name": ""})
	s.ErrorIs(err, apperror.ErrInvalidInput)

	items, err := s.repo.ListItems(s.ctx, content.SectionSkills)
	s.Require().NoError(err)
	s.Equal("Go", items[0]["name"])
}

func (s *DocumentRepoTestSuite) Test_UpdateAndDelete_NotFound() {
	_, err := s.repo.AddItem(s.ctx, content.SectionSkills, content.Object{"id": "s1", "name": "Go"})
	s.Require().NoError(err)

	_, err = s.repo.UpdateItem(s.ctx, content.SectionSkills, "nope", content.Object{"name": "Rust"})
	s.ErrorIs(err, apperror.ErrNotFound)
	s.Equal("Skill not found", apperror.ToJSON(err)["error"])

	err = s.repo.DeleteItem(s.ctx, content.SectionSkills, "nope")
	s.ErrorIs(err, apperror.ErrNotFound)

	items, err := s.repo.ListItems(s.ctx, content.SectionSkills)
	s.Require().NoError(err)
	s.Len(items, 1)
}

func (s *DocumentRepoTestSuite) Test_DeleteItem_KeepsOrder() {
	for _, id := range []string{"a", "b", "c"} {
		_, err := s.repo.AddItem(s.ctx, content.SectionSkills, content.Object{"id": id, "name": id})
		s.Require().NoError(err)
	}

	s.Require().NoError(s.repo.DeleteItem(s.ctx, content.SectionSkills, "b"))

	items, err := s.repo.ListItems(s.ctx, content.SectionSkills)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("a", items[0].ID())
	s.Equal("c", items[1].ID())
}

func (s *DocumentRepoTestSuite) Test_ReplaceItems_Education() {
	edu := []content.Object{{"degree": "BSc", "institution": "Uni"}}

	got, err := s.repo.ReplaceItems(s.ctx, content.SectionEducation, edu)
	s.Require().NoError(err)
	s.Equal(edu, got)

	_, err = s.repo.ReplaceItems(s.ctx, content.SectionSkills, nil)
	s.Error(err)
}

func (s *DocumentRepoTestSuite) Test_WritesLeaveOtherSectionsUntouched() {
	_, err := s.repo.UpdateObject(s.ctx, content.SectionSettings, content.Object{"siteName": "Mine"})
	s.Require().NoError(err)
	before, err := s.repo.GetDocument(s.ctx)
	s.Require().NoError(err)

	_, err = s.repo.AddItem(s.ctx, content.SectionSkills, content.Object{"name": "Go"})
	s.Require().NoError(err)

	after, err := s.repo.GetDocument(s.ctx)
	s.Require().NoError(err)
	s.Equal(before.Settings, after.Settings)
	s.Equal(before.Hero, after.Hero)
	s.Len(after.Skills, 1)
}

func (s *DocumentRepoTestSuite) Test_WritesKeepUnknownTopLevelSections() {
	seed := []byte(`{"hero":{"headline":"Hi"},"testimonials":[{"q":"great"}]}`)
	s.Require().NoError(os.WriteFile(s.store.Path(), seed, 0o644))

	_, err := s.repo.UpdateObject(s.ctx, content.SectionHero, content.Object{"headline": "X"})
	s.Require().NoError(err)

	raw, err := os.ReadFile(s.store.Path())
	s.Require().NoError(err)
	var onDisk map[string]any
	s.Require().NoError(json.Unmarshal(raw, &onDisk))
	s.Equal([]any{map[string]any{"q": "great"}}, onDisk["testimonials"])
	s.Equal(map[string]any{"headline": "X"}, onDisk["hero"])

	doc, err := s.repo.GetDocument(s.ctx)
	s.Require().NoError(err)
	encoded, err := json.Marshal(doc)
	s.Require().NoError(err)
	s.Contains(string(encoded), `"testimonials":[{"q":"great"}]`)
}

func (s *DocumentRepoTestSuite) Test_ConcurrentAddsAreNotLost() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.AddItem(s.ctx, content.SectionSkills, content.Object{"name": "Go"})
			s.NoError(err)
		}()
	}
	wg.Wait()

	items, err := s.repo.ListItems(s.ctx, content.SectionSkills)
	s.Require().NoError(err)
	s.Len(items, 20)
}

type brokenStore struct {
	loadErr, saveErr error
}

func (b brokenStore) Load(context.Context) (*content.Document, error) {
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	return content.NewDocument(), nil
}

func (b brokenStore) Save(context.Context, *content.Document) error {
	return b.saveErr
}

func TestDocumentRepo_StorageFailures(t *testing.T) {
	ctx := context.Background()

	readRepo := NewDocumentRepo(brokenStore{loadErr: errors.New("disk gone")}, logger.NewNopLogger(), nil)
	_, err := readRepo.GetDocument(ctx)
	assert.ErrorIs(t, err, apperror.ErrStorage)
	assert.Equal(t, "Failed to read data", apperror.ToJSON(err)["error"])

	writeRepo := NewDocumentRepo(brokenStore{saveErr: errors.New("read-only fs")}, logger.NewNopLogger(), nil)
	_, err = writeRepo.UpdateObject(ctx, content.SectionHero, content.Object{"headline": "X"})
	assert.ErrorIs(t, err, apperror.ErrStorage)
	assert.NotErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "Failed to write data", apperror.ToJSON(err)["error"])
}

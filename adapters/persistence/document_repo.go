package persistence

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/internal/domain/experience"
	"github.com/khoahotran/portfolio-cms/internal/domain/profile"
	"github.com/khoahotran/portfolio-cms/internal/domain/project"
	"github.com/khoahotran/portfolio-cms/internal/domain/skill"
	"github.com/khoahotran/portfolio-cms/pkg/apperror"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
	"github.com/khoahotran/portfolio-cms/pkg/metrics"
)

type documentRepo struct {
	store   content.Store
	logger  logger.Logger
	metrics metrics.Recorder

	// serializes load-mutate-save cycles within this process
	mu sync.Mutex
}

// NewDocumentRepo wraps store with section level operations. Writes are serialized and
// every added or updated record is validated before the document is saved.
func NewDocumentRepo(store content.Store, log logger.Logger, rec metrics.Recorder) content.Repository {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &documentRepo{store: store, logger: log, metrics: rec}
}

func (r *documentRepo) load(ctx context.Context) (*content.Document, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		r.logger.Error("Error reading content document", err)
		r.metrics.RecordStorageFailure("read")
		return nil, apperror.NewStorageRead(err)
	}
	return doc, nil
}

func (r *documentRepo) save(ctx context.Context, doc *content.Document) error {
	if err := r.store.Save(ctx, doc); err != nil {
		r.logger.Error("Error writing content document", err)
		r.metrics.RecordStorageFailure("write")
		return apperror.NewStorageWrite(err)
	}
	return nil
}

func (r *documentRepo) mutate(ctx context.Context, fn func(doc *content.Document) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return r.save(ctx, doc)
}

func (r *documentRepo) GetDocument(ctx context.Context) (*content.Document, error) {
	return r.load(ctx)
}

func (r *documentRepo) GetObject(ctx context.Context, section content.Section) (content.Object, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	o, err := doc.Object(section)
	if err != nil {
		return nil, apperror.NewInternal("get object section", err)
	}
	return o, nil
}

func (r *documentRepo) UpdateObject(ctx context.Context, section content.Section, partial content.Object) (content.Object, error) {
	var merged content.Object
	err := r.mutate(ctx, func(doc *content.Document) error {
		current, err := doc.Object(section)
		if err != nil {
			return apperror.NewInternal("update object section", err)
		}
		merged = current.Merge(partial)
		if err := validate(section, merged); err != nil {
			return err
		}
		return doc.SetObject(section, merged)
	})
	if err != nil {
		return nil, err
	}
	r.logger.Debug("Section updated", zap.String("section", string(section)))
	return merged, nil
}

func (r *documentRepo) ListItems(ctx context.Context, section content.Section) ([]content.Object, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	items, err := doc.Items(section)
	if err != nil {
		return nil, apperror.NewInternal("list section items", err)
	}
	return items, nil
}

// ReplaceItems overwrites a list section that has no item identity, such as education.
func (r *documentRepo) ReplaceItems(ctx context.Context, section content.Section, items []content.Object) ([]content.Object, error) {
	if section.HasItems() {
		return nil, apperror.NewInternal("replace items", fmt.Errorf("%s items must be changed one by one", section))
	}
	if items == nil {
		items = []content.Object{}
	}
	err := r.mutate(ctx, func(doc *content.Document) error {
		if err := doc.SetItems(section, items); err != nil {
			return apperror.NewInternal("replace items", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *documentRepo) AddItem(ctx context.Context, section content.Section, item content.Object) (content.Object, error) {
	if !section.HasItems() {
		return nil, apperror.NewInternal("add item", fmt.Errorf("%w: %s", content.ErrUnknownSection, section))
	}
	added := item.Clone()
	if added.ID() == "" {
		added[content.IDKey] = uuid.NewString()
	}
	if err := validate(section, added); err != nil {
		return nil, err
	}

	err := r.mutate(ctx, func(doc *content.Document) error {
		items, err := doc.Items(section)
		if err != nil {
			return apperror.NewInternal("add item", err)
		}
		if content.FindByID(items, added.ID()) >= 0 {
			return apperror.NewValidation(fmt.Sprintf("%s id already exists", section.ItemName()))
		}
		return doc.SetItems(section, append(items, added))
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (r *documentRepo) UpdateItem(ctx context.Context, section content.Section, id string, partial content.Object) (content.Object, error) {
	if !section.HasItems() {
		return nil, apperror.NewInternal("update item", fmt.Errorf("%w: %s", content.ErrUnknownSection, section))
	}
	var updated content.Object
	err := r.mutate(ctx, func(doc *content.Document) error {
		items, err := doc.Items(section)
		if err != nil {
			return apperror.NewInternal("update item", err)
		}
		idx := content.FindByID(items, id)
		if idx == -1 {
			return apperror.NewNotFound(section.ItemName(), id)
		}
		updated = items[idx].Merge(partial)
		updated[content.IDKey] = id
		if err := validate(section, updated); err != nil {
			return err
		}
		items[idx] = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *documentRepo) DeleteItem(ctx context.Context, section content.Section, id string) error {
	if !section.HasItems() {
		return apperror.NewInternal("delete item", fmt.Errorf("%w: %s", content.ErrUnknownSection, section))
	}
	return r.mutate(ctx, func(doc *content.Document) error {
		items, err := doc.Items(section)
		if err != nil {
			return apperror.NewInternal("delete item", err)
		}
		idx := content.FindByID(items, id)
		if idx == -1 {
			return apperror.NewNotFound(section.ItemName(), id)
		}
		return doc.SetItems(section, slices.Delete(items, idx, idx+1))
	})
}

type validator interface {
	Validate() error
}

// validate applies the entity rules for the sections that have them.
func validate(section content.Section, o content.Object) error {
	var v validator
	switch section {
	case content.SectionProfile:
		v = profile.FromObject(o)
	case content.SectionSkills:
		v = skill.FromObject(o)
	case content.SectionProjects:
		v = project.FromObject(o)
	case content.SectionExperience:
		v = experience.FromObject(o)
	default:
		return nil
	}

	err := v.Validate()
	var verr *content.ValidationError
	if errors.As(err, &verr) {
		return apperror.NewValidation(verr.Message)
	}
	return err
}

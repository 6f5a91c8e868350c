package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

type fakePublisher struct {
	events []content.Event
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, evt content.Event) error {
	p.events = append(p.events, evt)
	return p.err
}

type countingRecorder struct {
	writes map[string]int
}

func (r *countingRecorder) RecordHTTPStatus(int)               {}
func (r *countingRecorder) RecordRequestLatency(time.Duration) {}
func (r *countingRecorder) RecordStorageFailure(string)        {}

func (r *countingRecorder) RecordContentWrite(section, action string) {
	r.writes[section+"/"+action]++
}

func TestNotifier_PublishesAndCounts(t *testing.T) {
	pub := &fakePublisher{}
	rec := &countingRecorder{writes: map[string]int{}}
	n := NewNotifier(pub, rec, logger.NewNopLogger())

	n.ContentChanged(context.Background(), content.SectionSkills, content.ActionCreate, "id-1")

	assert.Len(t, pub.events, 1)
	assert.Equal(t, content.SectionSkills, pub.events[0].Section)
	assert.Equal(t, "id-1", pub.events[0].ItemID)
	assert.Equal(t, 1, rec.writes["skills/create"])
}

func TestNotifier_PublishFailureIsSwallowed(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	rec := &countingRecorder{writes: map[string]int{}}
	n := NewNotifier(pub, rec, logger.NewNopLogger())

	assert.NotPanics(t, func() {
		n.ContentChanged(context.Background(), content.SectionHero, content.ActionUpdate, "")
	})
	assert.Equal(t, 1, rec.writes["hero/update"])
}

func TestNewNotifier_Defaults(t *testing.T) {
	n := NewNotifier(nil, nil, logger.NewNopLogger())
	assert.NotPanics(t, func() {
		n.ContentChanged(context.Background(), content.SectionStats, content.ActionUpdate, "")
	})
}

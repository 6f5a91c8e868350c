package project

import (
	"context"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/internal/domain/project"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

// FeedUseCase renders the projects collection as an RSS feed.
type FeedUseCase struct {
	repo    content.Repository
	baseURL string
	logger  logger.Logger
}

func NewFeedUseCase(r content.Repository, baseURL string, log logger.Logger) *FeedUseCase {
	return &FeedUseCase{repo: r, baseURL: strings.TrimRight(baseURL, "/"), logger: log}
}

func (uc *FeedUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	doc, err := uc.repo.GetDocument(ctx)
	if err != nil {
		uc.logger.Error("Failed to load document for feed", err)
		return nil, err
	}

	title := doc.Settings.String("siteName")
	if title == "" {
		title = doc.Profile.String("name")
	}
	if title == "" {
		title = "Portfolio"
	}

	feed := &feeds.Feed{
		Title:       title,
		Link:        &feeds.Link{Href: uc.baseURL + "/"},
		Description: doc.Hero.String("headline"),
		Author:      &feeds.Author{Name: doc.Profile.String("name"), Email: doc.Contact.String("email")},
		Created:     time.Now(),
	}

	for _, item := range doc.Projects {
		p := project.FromObject(item)
		link := p.LiveURL
		if link == "" {
			link = p.GithubURL
		}
		if link == "" {
			link = uc.baseURL + "/#projects"
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          p.ID,
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: p.Description,
			Content:     item.String("fullDescription"),
		})
	}

	uc.logger.Info("Project feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}

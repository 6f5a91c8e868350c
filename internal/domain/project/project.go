package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
)

type Project struct {
	ID          string
	Title       string
	Description string
	Image       string
	Tags        []string
	GithubURL   string
	LiveURL     string
	fields      content.Object
}

func FromObject(o content.Object) *Project {
	p := &Project{
		ID:          o.ID(),
		Title:       o.String("title"),
		Description: o.String("description"),
		Image:       o.String("image"),
		GithubURL:   o.String("githubUrl"),
		LiveURL:     o.String("liveUrl"),
		fields:      o.Clone(),
	}
	if tags, ok := o["tags"].([]any); ok {
		for _, t := range tags {
			if s, ok := t.(string); ok {
				p.Tags = append(p.Tags, s)
			}
		}
	}
	return p
}

// New builds a project from a client payload with a fresh id. An image that is
// not a string becomes "" and tags that are not a list become an empty list.
func New(o content.Object) *Project {
	p := FromObject(o)
	p.ID = uuid.NewString()
	if _, ok := p.fields["image"].(string); !ok {
		p.fields["image"] = ""
	}
	if _, ok := p.fields["tags"].([]any); !ok {
		p.fields["tags"] = []any{}
	}
	return p
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return content.Required("title", "Project title is required")
	}
	return nil
}

func (p *Project) ToObject() content.Object {
	o := p.fields.Clone()
	o[content.IDKey] = p.ID
	return o
}

package profile

import (
	"strings"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
)

// Profile is the site owner card. It has no identity; there is exactly one.
type Profile struct {
	Name   string
	Title  string
	Bio    string
	Avatar string
}

func FromObject(o content.Object) *Profile {
	return &Profile{
		Name:   o.String("name"),
		Title:  o.String("title"),
		Bio:    o.String("bio"),
		Avatar: o.String("avatar"),
	}
}

func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return content.Required("name", "Name is required")
	}
	return nil
}

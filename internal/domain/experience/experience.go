package experience

import (
	"strings"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
)

const DefaultIcon = "work"

type Experience struct {
	ID      string
	Title   string
	Company string
	Period  string
	Icon    string
	fields  content.Object
}

func FromObject(o content.Object) *Experience {
	return &Experience{
		ID:      o.ID(),
		Title:   o.String("title"),
		Company: o.String("company"),
		Period:  o.String("period"),
		Icon:    o.String("icon"),
		fields:  o.Clone(),
	}
}

// New builds an entry from a client payload with a fresh id and the default icon.
func New(o content.Object) *Experience {
	e := FromObject(o)
	e.ID = uuid.NewString()
	if e.Icon == "" {
		e.Icon = DefaultIcon
		e.fields["icon"] = DefaultIcon
	}
	return e
}

func (e *Experience) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return content.Required("title", "Experience title is required")
	}
	if strings.TrimSpace(e.Company) == "" {
		return content.Required("company", "Company is required")
	}
	return nil
}

func (e *Experience) ToObject() content.Object {
	o := e.fields.Clone()
	o[content.IDKey] = e.ID
	return o
}

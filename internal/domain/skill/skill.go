package skill

import (
	"strings"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
)

type Skill struct {
	ID       string
	Name     string
	Category string
	Icon     string
	fields   content.Object
}

// FromObject reads a stored or incoming skill. Unknown keys are carried along.
func FromObject(o content.Object) *Skill {
	return &Skill{
		ID:       o.ID(),
		Name:     o.String("name"),
		Category: o.String("category"),
		Icon:     o.String("icon"),
		fields:   o.Clone(),
	}
}

// New builds a skill from a client payload with a fresh id. Any id in the payload is ignored.
func New(o content.Object) *Skill {
	s := FromObject(o)
	s.ID = uuid.NewString()
	return s
}

func (s *Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return content.Required("name", "Skill name is required")
	}
	return nil
}

func (s *Skill) ToObject() content.Object {
	o := s.fields.Clone()
	o[content.IDKey] = s.ID
	return o
}

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

type Section string

const (
	SectionProfile    Section = "profile"
	SectionHero       Section = "hero"
	SectionAbout      Section = "about"
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionContact    Section = "contact"
	SectionSettings   Section = "settings"
	SectionStats      Section = "stats"
)

var ErrUnknownSection = errors.New("unknown content section")

// ObjectSections are the singleton sections updated by shallow merge.
var ObjectSections = []Section{
	SectionProfile, SectionHero, SectionAbout, SectionContact, SectionSettings, SectionStats,
}

// ItemSections are the list sections whose items carry an immutable id.
var ItemSections = []Section{SectionSkills, SectionProjects, SectionExperience}

func (s Section) IsObject() bool {
	for _, o := range ObjectSections {
		if s == o {
			return true
		}
	}
	return false
}

func (s Section) HasItems() bool {
	for _, o := range ItemSections {
		if s == o {
			return true
		}
	}
	return false
}

// ItemName is the display name used in messages about a single item.
func (s Section) ItemName() string {
	switch s {
	case SectionSkills:
		return "Skill"
	case SectionProjects:
		return "Project"
	case SectionExperience:
		return "Experience"
	case SectionEducation:
		return "Education"
	}
	return string(s)
}

// ValidationError names the required field that is missing. Message is client facing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Required(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// documentOrder is the key order of an encoded document. Unknown keys follow, sorted.
var documentOrder = []Section{
	SectionProfile, SectionHero, SectionAbout, SectionSkills, SectionProjects,
	SectionExperience, SectionEducation, SectionContact, SectionSettings, SectionStats,
}

// Document holds every section of the site. It is always read and written as a whole.
// Top-level keys it does not know are kept verbatim in extra.
type Document struct {
	Profile    Object   `json:"profile"`
	Hero       Object   `json:"hero"`
	About      Object   `json:"about"`
	Skills     []Object `json:"skills"`
	Projects   []Object `json:"projects"`
	Experience []Object `json:"experience"`
	Education  []Object `json:"education"`
	Contact    Object   `json:"contact"`
	Settings   Object   `json:"settings"`
	Stats      Object   `json:"stats"`

	extra map[string]json.RawMessage
}

// documentFields has the Document fields without its JSON methods.
type documentFields Document

func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var f documentFields
	if err := dec.Decode(&f); err != nil {
		return err
	}
	*d = Document(f)

	for _, s := range documentOrder {
		delete(raw, string(s))
	}
	if len(raw) > 0 {
		d.extra = raw
	}
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	write := func(key string, v any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode section %s: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}

	for _, s := range documentOrder {
		var v any
		if ref := d.objectRef(s); ref != nil {
			v = *ref
		} else {
			v = *d.itemsRef(s)
		}
		if err := write(string(s), v); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(d.extra))
	for k := range d.extra {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := write(k, d.extra[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NewDocument returns a document with every section present and empty.
func NewDocument() *Document {
	d := &Document{}
	d.fillEmpty()
	return d
}

func (d *Document) fillEmpty() {
	for _, s := range ObjectSections {
		ref := d.objectRef(s)
		if *ref == nil {
			*ref = Object{}
		}
	}
	for _, s := range []Section{SectionSkills, SectionProjects, SectionExperience, SectionEducation} {
		ref := d.itemsRef(s)
		if *ref == nil {
			*ref = []Object{}
		}
	}
}

func (d *Document) objectRef(s Section) *Object {
	switch s {
	case SectionProfile:
		return &d.Profile
	case SectionHero:
		return &d.Hero
	case SectionAbout:
		return &d.About
	case SectionContact:
		return &d.Contact
	case SectionSettings:
		return &d.Settings
	case SectionStats:
		return &d.Stats
	}
	return nil
}

func (d *Document) itemsRef(s Section) *[]Object {
	switch s {
	case SectionSkills:
		return &d.Skills
	case SectionProjects:
		return &d.Projects
	case SectionExperience:
		return &d.Experience
	case SectionEducation:
		return &d.Education
	}
	return nil
}

func (d *Document) Object(s Section) (Object, error) {
	ref := d.objectRef(s)
	if ref == nil {
		return nil, fmt.Errorf("%w: %s is not an object section", ErrUnknownSection, s)
	}
	return *ref, nil
}

func (d *Document) SetObject(s Section, o Object) error {
	ref := d.objectRef(s)
	if ref == nil {
		return fmt.Errorf("%w: %s is not an object section", ErrUnknownSection, s)
	}
	*ref = o
	return nil
}

func (d *Document) Items(s Section) ([]Object, error) {
	ref := d.itemsRef(s)
	if ref == nil {
		return nil, fmt.Errorf("%w: %s is not a list section", ErrUnknownSection, s)
	}
	return *ref, nil
}

func (d *Document) SetItems(s Section, items []Object) error {
	ref := d.itemsRef(s)
	if ref == nil {
		return fmt.Errorf("%w: %s is not a list section", ErrUnknownSection, s)
	}
	*ref = items
	return nil
}

// Store loads and saves the whole document.
type Store interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// Repository is the section level contract over a Store. Every write
// rewrites the whole document.
type Repository interface {
	GetDocument(ctx context.Context) (*Document, error)
	GetObject(ctx context.Context, section Section) (Object, error)
	UpdateObject(ctx context.Context, section Section, partial Object) (Object, error)
	ListItems(ctx context.Context, section Section) ([]Object, error)
	ReplaceItems(ctx context.Context, section Section, items []Object) ([]Object, error)
	AddItem(ctx context.Context, section Section, item Object) (Object, error)
	UpdateItem(ctx context.Context, section Section, id string, partial Object) (Object, error)
	DeleteItem(ctx context.Context, section Section, id string) error
}

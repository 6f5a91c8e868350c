package content

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_MergeIsShallow(t *testing.T) {
	hero := Object{
		"headline":    "Hello",
		"subheadline": "Builder",
		"socials":     map[string]any{"github": "gh", "twitter": "tw"},
	}

	merged := hero.Merge(Object{
		"headline": "X",
		"socials":  map[string]any{"github": "new"},
	})

	assert.Equal(t, "X", merged["headline"])
	assert.Equal(t, "Builder", merged["subheadline"])
	assert.Equal(t, map[string]any{"github": "new"}, merged["socials"])
	assert.Equal(t, "Hello", hero["headline"], "original must not change")
}

func TestObject_Blank(t *testing.T) {
	o := Object{"name": "  ", "title": "Dev", "count": 3}

	assert.True(t, o.Blank("name"))
	assert.True(t, o.Blank("missing"))
	assert.True(t, o.Blank("count"))
	assert.False(t, o.Blank("title"))
}

func TestObject_SetDefault(t *testing.T) {
	o := Object{"icon": ""}
	o.SetDefault("icon", "work")
	o.SetDefault("tags", []any{})

	assert.Equal(t, "", o["icon"])
	assert.Equal(t, []any{}, o["tags"])
}

func TestFindByID(t *testing.T) {
	items := []Object{{"id": "a"}, {"id": "b"}}

	assert.Equal(t, 1, FindByID(items, "b"))
	assert.Equal(t, -1, FindByID(items, "c"))
}

func TestDocument_SectionAccess(t *testing.T) {
	doc := NewDocument()

	require.NoError(t, doc.SetObject(SectionHero, Object{"headline": "Hi"}))
	hero, err := doc.Object(SectionHero)
	require.NoError(t, err)
	assert.Equal(t, "Hi", hero["headline"])

	_, err = doc.Object(SectionSkills)
	assert.ErrorIs(t, err, ErrUnknownSection)

	require.NoError(t, doc.SetItems(SectionSkills, []Object{{"id": "1"}}))
	skills, err := doc.Items(SectionSkills)
	require.NoError(t, err)
	assert.Len(t, skills, 1)

	_, err = doc.Items(SectionStats)
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestSection_Kinds(t *testing.T) {
	assert.True(t, SectionHero.IsObject())
	assert.False(t, SectionHero.HasItems())
	assert.True(t, SectionSkills.HasItems())
	assert.False(t, SectionEducation.HasItems())
	assert.False(t, SectionEducation.IsObject())
	assert.Equal(t, "Experience", SectionExperience.ItemName())
}

func TestDecodeEncode_PreservesNumbersAndFillsSections(t *testing.T) {
	raw := []byte(`{"stats":{"years":5,"ratio":1.25},"skills":[{"id":"x","name":"Go"}]}`)

	doc, err := Decode(raw)
	require.NoError(t, err)
	assert.NotNil(t, doc.Hero)
	assert.NotNil(t, doc.Projects)
	assert.Equal(t, json.Number("5"), doc.Stats["years"])

	out, err := Encode(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n  \"profile\": {}")
	assert.Contains(t, string(out), "\"ratio\": 1.25")
	assert.Contains(t, string(out), "\"years\": 5")
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestDecodeEncode_KeepsUnknownTopLevelKeys(t *testing.T) {
	raw := []byte(`{"hero":{"headline":"Hi"},"testimonials":[{"q":"great","stars":5}],"blog":{"enabled":true}}`)

	doc, err := Decode(raw)
	require.NoError(t, err)
	require.Contains(t, doc.extra, "testimonials")

	doc.Hero = doc.Hero.Merge(Object{"headline": "X"})
	out, err := Encode(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, []any{map[string]any{"q": "great", "stars": float64(5)}}, decoded["testimonials"])
	assert.Equal(t, map[string]any{"enabled": true}, decoded["blog"])
	assert.Equal(t, map[string]any{"headline": "X"}, decoded["hero"])

	assert.Less(t, strings.Index(string(out), `"stats"`), strings.Index(string(out), `"blog"`))
	assert.Less(t, strings.Index(string(out), `"blog"`), strings.Index(string(out), `"testimonials"`))
}

func TestEncode_KnownSectionOrder(t *testing.T) {
	out, err := json.Marshal(NewDocument())
	require.NoError(t, err)
	assert.Equal(t,
		`{"profile":{},"hero":{},"about":{},"skills":[],"projects":[],"experience":[],"education":[],"contact":{},"settings":{},"stats":{}}`,
		string(out))
}

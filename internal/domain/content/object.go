package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Object is an open JSON record. Keys not known to the entities are kept.
type Object map[string]any

const IDKey = "id"

func (o Object) Clone() Object {
	out := make(Object, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Merge returns a copy of o with every key of partial written over it.
// Nested values are replaced, not merged.
func (o Object) Merge(partial Object) Object {
	out := o.Clone()
	for k, v := range partial {
		out[k] = v
	}
	return out
}

// String returns the value at key when it is a string, "" otherwise.
func (o Object) String(key string) string {
	s, _ := o[key].(string)
	return s
}

// Blank reports whether key is missing or holds only whitespace.
func (o Object) Blank(key string) bool {
	return strings.TrimSpace(o.String(key)) == ""
}

func (o Object) ID() string {
	return o.String(IDKey)
}

// SetDefault writes value only when key is absent.
func (o Object) SetDefault(key string, value any) {
	if _, ok := o[key]; !ok {
		o[key] = value
	}
}

// FindByID returns the index of the item with id, or -1.
func FindByID(items []Object, id string) int {
	for i, item := range items {
		if item.ID() == id {
			return i
		}
	}
	return -1
}

// Decode parses a stored document. Numbers are kept as json.Number so they
// are written back exactly as read.
func Decode(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode content document: %w", err)
	}
	doc.fillEmpty()
	return doc, nil
}

// Encode renders the document pretty-printed with two space indentation.
func Encode(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode content document: %w", err)
	}
	return data, nil
}

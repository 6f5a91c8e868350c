package persistence

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

func TestFileStore_InitSeedsEmptyDocument(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	store := NewFileStore(path, logger.NewNopLogger())

	require.NoError(t, store.Init(ctx))

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Skills)
	assert.NotNil(t, doc.Hero)
}

func TestFileStore_InitKeepsExistingFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hero":{"headline":"Kept"}}`), 0o644))
	store := NewFileStore(path, logger.NewNopLogger())

	require.NoError(t, store.Init(ctx))

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Kept", doc.Hero["headline"])
}

func TestFileStore_SaveWritesPrettyJSON(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	store := NewFileStore(path, logger.NewNopLogger())

	doc := content.NewDocument()
	doc.Skills = append(doc.Skills, content.Object{"id": "a", "name": "Go"})
	require.NoError(t, store.Save(ctx, doc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{\n  \"profile\""))
	assert.Contains(t, string(raw), "\"name\": \"Go\"")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be renamed away")
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"), logger.NewNopLogger())

	_, err := store.Load(context.Background())
	assert.Error(t, err)
}

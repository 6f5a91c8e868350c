package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-cms/internal/config"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

func TestOpenStore_FileDriverSeedsPath(t *testing.T) {
	var cfg config.Config
	cfg.Store.Driver = config.StoreDriverFile
	cfg.Store.Path = filepath.Join(t.TempDir(), "data", "data.json")

	store, cleanup, err := OpenStore(context.Background(), cfg, logger.NewNopLogger())
	require.NoError(t, err)
	defer cleanup()

	fs, ok := store.(*FileStore)
	require.True(t, ok)
	assert.Equal(t, cfg.Store.Path, fs.Path())
	_, err = os.Stat(fs.Path())
	assert.NoError(t, err)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	var cfg config.Config
	cfg.Store.Driver = "s3"

	_, _, err := OpenStore(context.Background(), cfg, logger.NewNopLogger())
	assert.ErrorContains(t, err, "unknown store driver")
}

func TestNewPostgresPool_ConfigErrors(t *testing.T) {
	var cfg config.Config
	_, err := NewPostgresPool(context.Background(), cfg, logger.NewNopLogger())
	assert.ErrorContains(t, err, "db.dsn is not configured")

	cfg.DB.DSN = "postgres://user@host:notaport/db"
	_, err = NewPostgresPool(context.Background(), cfg, logger.NewNopLogger())
	assert.ErrorContains(t, err, "postgres store: parse dsn")
}

package media

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-cms/pkg/apperror"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

type fakeUploader struct {
	folder, publicID, deleted string
}

func (f *fakeUploader) Upload(_ context.Context, _ io.Reader, folder, publicID string) (string, error) {
	f.folder, f.publicID = folder, publicID
	return "https://cdn.example/" + folder + "/" + publicID, nil
}

func (f *fakeUploader) Delete(_ context.Context, publicID string) error {
	f.deleted = publicID
	return nil
}

func TestUploadMedia(t *testing.T) {
	up := &fakeUploader{}
	uc := NewUploadMediaUseCase(up, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), UploadMediaInput{File: strings.NewReader("png"), Filename: "me.png", Kind: "Avatar"})
	require.NoError(t, err)
	assert.Equal(t, "portfolio/avatar", up.folder)
	assert.Equal(t, "portfolio/avatar/"+up.publicID, out.PublicID)
	assert.True(t, strings.HasPrefix(out.URL, "https://cdn.example/portfolio/avatar/"))

	_, err = uc.Execute(context.Background(), UploadMediaInput{File: strings.NewReader("png"), Kind: "secrets"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestDeleteMedia(t *testing.T) {
	up := &fakeUploader{}
	uc := NewDeleteMediaUseCase(up, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), "portfolio/hero/abc"))
	assert.Equal(t, "portfolio/hero/abc", up.deleted)

	assert.ErrorIs(t, uc.Execute(context.Background(), "backups/content/x.json"), apperror.ErrInvalidInput)
}

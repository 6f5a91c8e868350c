package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/internal/application/service"
	"github.com/khoahotran/portfolio-cms/pkg/apperror"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

const rootFolder = "portfolio"

// Kinds accepted as upload folders.
var kinds = map[string]bool{
	"avatar":  true,
	"hero":    true,
	"project": true,
	"misc":    true,
}

type UploadMediaUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadMediaUseCase(u service.Uploader, log logger.Logger) *UploadMediaUseCase {
	return &UploadMediaUseCase{uploader: u, logger: log}
}

type UploadMediaInput struct {
	File     io.Reader
	Filename string
	Kind     string
}

type UploadMediaOutput struct {
	URL      string
	PublicID string
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, input UploadMediaInput) (*UploadMediaOutput, error) {
	kind := strings.ToLower(input.Kind)
	if kind == "" {
		kind = "misc"
	}
	if !kinds[kind] {
		return nil, apperror.NewValidation(fmt.Sprintf("Unknown media kind '%s'", input.Kind))
	}

	folder := path.Join(rootFolder, kind)
	publicID := uuid.NewString()

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload media file", err)
	}

	uc.logger.Info("Media uploaded",
		zap.String("public_id", publicID),
		zap.String("folder", folder),
		zap.String("filename", input.Filename),
	)
	return &UploadMediaOutput{URL: url, PublicID: path.Join(folder, publicID)}, nil
}

type DeleteMediaUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewDeleteMediaUseCase(u service.Uploader, log logger.Logger) *DeleteMediaUseCase {
	return &DeleteMediaUseCase{uploader: u, logger: log}
}

// Execute removes an asset previously returned by an upload.
func (uc *DeleteMediaUseCase) Execute(ctx context.Context, publicID string) error {
	if !strings.HasPrefix(publicID, rootFolder+"/") {
		return apperror.NewValidation("public_id must reference an uploaded portfolio asset")
	}
	if err := uc.uploader.Delete(ctx, publicID); err != nil {
		return apperror.NewInternal("failed to delete media file", err)
	}
	uc.logger.Info("Media deleted", zap.String("public_id", publicID))
	return nil
}

package backup

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/internal/application/service"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/apperror"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

const Folder = "backups/content"

// BackupUseCase uploads a snapshot of the whole document.
type BackupUseCase struct {
	repo     content.Repository
	uploader service.Uploader
	logger   logger.Logger
	now      func() time.Time
}

func NewBackupUseCase(repo content.Repository, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		repo:     repo,
		uploader: uploader,
		logger:   log,
		now:      time.Now,
	}
}

type BackupOutput struct {
	URL      string
	PublicID string
}

func (uc *BackupUseCase) Execute(ctx context.Context) (*BackupOutput, error) {
	uc.logger.Info("Starting content backup...")

	doc, err := uc.repo.GetDocument(ctx)
	if err != nil {
		return nil, err
	}
	data, err := content.Encode(doc)
	if err != nil {
		return nil, apperror.NewInternal("encode backup", err)
	}

	timestamp := uc.now().UTC().Format("2006-01-02_15-04-05")
	publicID := fmt.Sprintf("content-%s.json", timestamp)

	url, err := uc.uploader.Upload(ctx, bytes.NewReader(data), Folder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload content backup", err)
		return nil, apperror.NewInternal("upload backup", err)
	}

	uc.logger.Info("Content backup completed and uploaded successfully",
		zap.String("url", url),
		zap.String("public_id", publicID),
	)
	return &BackupOutput{URL: url, PublicID: Folder + "/" + publicID}, nil
}

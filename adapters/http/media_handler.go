package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	backupUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/backup"
	mediaUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/media"
	"github.com/khoahotran/portfolio-cms/pkg/apperror"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

// MediaHandler fronts the Cloudinary backed operations: image uploads and document backups.
type MediaHandler struct {
	uploadMediaUC *mediaUC.UploadMediaUseCase
	deleteMediaUC *mediaUC.DeleteMediaUseCase
	backupUC      *backupUC.BackupUseCase
	logger        logger.Logger
}

func NewMediaHandler(
	uploadUC *mediaUC.UploadMediaUseCase,
	deleteUC *mediaUC.DeleteMediaUseCase,
	backup *backupUC.BackupUseCase,
	log logger.Logger,
) *MediaHandler {
	return &MediaHandler{
		uploadMediaUC: uploadUC,
		deleteMediaUC: deleteUC,
		backupUC:      backup,
		logger:        log,
	}
}

func (h *MediaHandler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewValidation("File is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	input := mediaUC.UploadMediaInput{
		File:     file,
		Filename: fileHeader.Filename,
		Kind:     c.PostForm("kind"),
	}
	output, err := h.uploadMediaUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": output.URL, "public_id": output.PublicID})
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	if err := h.deleteMediaUC.Execute(c.Request.Context(), c.Query("public_id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Backup uploads a snapshot of the current document on demand.
func (h *MediaHandler) Backup(c *gin.Context) {
	output, err := h.backupUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": output.URL, "public_id": output.PublicID})
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/experience"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

type ExperienceHandler struct {
	experienceUseCase *experienceUC.ExperienceUseCase
	logger            logger.Logger
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{experienceUseCase: uc, logger: log}
}

func (h *ExperienceHandler) ListExperience(c *gin.Context) {
	entries, err := h.experienceUseCase.ListExperience(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	fields, err := bindObject(c)
	if err != nil {
		c.Error(err)
		return
	}
	created, err := h.experienceUseCase.CreateExperience(c.Request.Context(), fields)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	partial, err := bindObject(c)
	if err != nil {
		c.Error(err)
		return
	}
	updated, err := h.experienceUseCase.UpdateExperience(c.Request.Context(), c.Param("id"), partial)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	if err := h.experienceUseCase.DeleteExperience(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

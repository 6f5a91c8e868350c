package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sectionUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/section"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

// SectionHandler serves the whole document, the singleton sections and education.
type SectionHandler struct {
	sectionUseCase *sectionUC.SectionUseCase
	logger         logger.Logger
}

func NewSectionHandler(uc *sectionUC.SectionUseCase, log logger.Logger) *SectionHandler {
	return &SectionHandler{
		sectionUseCase: uc,
		logger:         log,
	}
}

func (h *SectionHandler) GetAll(c *gin.Context) {
	doc, err := h.sectionUseCase.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetSection returns a handler that reads one singleton section.
func (h *SectionHandler) GetSection(section content.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj, err := h.sectionUseCase.Get(c.Request.Context(), section)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, obj)
	}
}

// UpdateSection returns a handler that merges the body into one singleton section.
func (h *SectionHandler) UpdateSection(section content.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		partial, err := bindObject(c)
		if err != nil {
			c.Error(err)
			return
		}
		merged, err := h.sectionUseCase.Update(c.Request.Context(), section, partial)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, merged)
	}
}

func (h *SectionHandler) GetEducation(c *gin.Context) {
	entries, err := h.sectionUseCase.GetEducation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *SectionHandler) ReplaceEducation(c *gin.Context) {
	entries, err := bindObjectList(c)
	if err != nil {
		c.Error(err)
		return
	}
	out, err := h.sectionUseCase.ReplaceEducation(c.Request.Context(), entries)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}

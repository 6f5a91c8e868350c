package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
	logger       logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{skillUseCase: uc, logger: log}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUseCase.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	fields, err := bindObject(c)
	if err != nil {
		c.Error(err)
		return
	}
	created, err := h.skillUseCase.CreateSkill(c.Request.Context(), fields)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	partial, err := bindObject(c)
	if err != nil {
		c.Error(err)
		return
	}
	updated, err := h.skillUseCase.UpdateSkill(c.Request.Context(), c.Param("id"), partial)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	if err := h.skillUseCase.DeleteSkill(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

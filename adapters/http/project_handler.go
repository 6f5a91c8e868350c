package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/project"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

type ProjectHandler struct {
	createProjectUseCase *projectUC.CreateProjectUseCase
	listProjectsUseCase  *projectUC.ListProjectsUseCase
	updateProjectUseCase *projectUC.UpdateProjectUseCase
	deleteProjectUseCase *projectUC.DeleteProjectUseCase
	feedUseCase          *projectUC.FeedUseCase
	logger               logger.Logger
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	feedUC *projectUC.FeedUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUseCase: createUC,
		listProjectsUseCase:  listUC,
		updateProjectUseCase: updateUC,
		deleteProjectUseCase: deleteUC,
		feedUseCase:          feedUC,
		logger:               log,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	output, err := h.listProjectsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Projects)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	fields, err := bindObject(c)
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.createProjectUseCase.Execute(c.Request.Context(), projectUC.CreateProjectInput{Fields: fields})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output.Project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	fields, err := bindObject(c)
	if err != nil {
		c.Error(err)
		return
	}

	input := projectUC.UpdateProjectInput{
		ProjectID: c.Param("id"),
		Fields:    fields,
	}
	output, err := h.updateProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	err := h.deleteProjectUseCase.Execute(c.Request.Context(), projectUC.DeleteProjectInput{ProjectID: c.Param("id")})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Feed writes the projects as RSS.
func (h *ProjectHandler) Feed(c *gin.Context) {
	feed, err := h.feedUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	rss, err := feed.ToRss()
	if err != nil {
		h.logger.Error("Failed to render RSS feed", err)
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(rss))
}

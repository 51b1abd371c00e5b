package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/validation"
)

type ProjectHandler struct {
	projectUseCase *projectUC.ProjectUseCase
	logger         logger.Logger
}

func NewProjectHandler(uc *projectUC.ProjectUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{projectUseCase: uc, logger: log}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, projectLabels), err))
		return
	}

	result, err := h.projectUseCase.Create(c.Request.Context(), projectUC.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Summary:      req.Summary,
		Technologies: req.Technologies,
		ImageURL:     req.ImageURL,
		LiveURL:      req.LiveURL,
		SourceURL:    req.SourceURL,
		Featured:     req.Featured,
		DisplayOrder: req.DisplayOrder,
		Category:     req.Category,
		TeamSize:     req.TeamSize,
		Duration:     req.Duration,
		Achievements: req.Achievements,
		Priority:     req.Priority,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondCreated(c, "Project created", result)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Project")
	if !ok {
		return
	}
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, projectLabels), err))
		return
	}

	result, err := h.projectUseCase.Update(c.Request.Context(), projectUC.UpdateProjectInput{
		ProjectID:    id,
		Title:        req.Title,
		Description:  req.Description,
		Summary:      req.Summary,
		Technologies: req.Technologies,
		ImageURL:     req.ImageURL,
		LiveURL:      req.LiveURL,
		SourceURL:    req.SourceURL,
		Featured:     req.Featured,
		DisplayOrder: req.DisplayOrder,
		Category:     req.Category,
		TeamSize:     req.TeamSize,
		Duration:     req.Duration,
		Achievements: req.Achievements,
		IsActive:     req.IsActive,
		Priority:     req.Priority,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Project updated", result)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Project")
	if !ok {
		return
	}
	if err := h.projectUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Project deleted", nil)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Project")
	if !ok {
		return
	}
	result, err := h.projectUseCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Project retrieved", result)
}

func (h *ProjectHandler) List(c *gin.Context) {
	result, err := h.projectUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Projects retrieved", result)
}

// parseIDParam maps a malformed identifier to a not-found error rather than a
// validation error, so probing with junk IDs is indistinguishable from probing
// with unused ones.
func parseIDParam(c *gin.Context, resource string) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		c.Error(apperror.NewNotFound(resource, raw))
		return uuid.Nil, false
	}
	return id, true
}

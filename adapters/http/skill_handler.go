package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/validation"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
	logger       logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{skillUseCase: uc, logger: log}
}

func (h *SkillHandler) CreateCategory(c *gin.Context) {
	var req CreateSkillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, skillLabels), err))
		return
	}

	result, err := h.skillUseCase.CreateCategory(c.Request.Context(), skillUC.CreateCategoryInput{
		Name:         req.Name,
		Description:  req.Description,
		Skills:       toSkillInputs(req.Skills),
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondCreated(c, "Skill category created", result)
}

func (h *SkillHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "Skill category")
	if !ok {
		return
	}
	var req UpdateSkillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, skillLabels), err))
		return
	}

	result, err := h.skillUseCase.UpdateCategory(c.Request.Context(), skillUC.UpdateCategoryInput{
		CategoryID:   id,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Skill category updated", result)
}

func (h *SkillHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "Skill category")
	if !ok {
		return
	}
	if err := h.skillUseCase.DeleteCategory(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Skill category deleted", nil)
}

func (h *SkillHandler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "Skill category")
	if !ok {
		return
	}
	result, err := h.skillUseCase.GetCategory(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Skill category retrieved", result)
}

func (h *SkillHandler) ListCategories(c *gin.Context) {
	results, err := h.skillUseCase.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Skill categories retrieved", results)
}

func (h *SkillHandler) AddSkill(c *gin.Context) {
	id, ok := parseIDParam(c, "Skill category")
	if !ok {
		return
	}
	var req SkillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, skillLabels), err))
		return
	}

	result, err := h.skillUseCase.AddSkill(c.Request.Context(), id, toSkillInput(req))
	if err != nil {
		c.Error(err)
		return
	}
	respondCreated(c, "Skill added", result)
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "Skill category")
	if !ok {
		return
	}
	skillID, ok := parseSkillIDParam(c)
	if !ok {
		return
	}
	var req SkillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, skillLabels), err))
		return
	}

	result, err := h.skillUseCase.UpdateSkill(c.Request.Context(), categoryID, skillID, toSkillInput(req))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Skill updated", result)
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "Skill category")
	if !ok {
		return
	}
	skillID, ok := parseSkillIDParam(c)
	if !ok {
		return
	}
	if err := h.skillUseCase.DeleteSkill(c.Request.Context(), categoryID, skillID); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Skill deleted", nil)
}

func parseSkillIDParam(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("skillID")
	id, err := uuid.Parse(raw)
	if err != nil {
		c.Error(apperror.NewNotFound("Skill", raw))
		return uuid.Nil, false
	}
	return id, true
}

func toSkillInput(req SkillItemRequest) skillUC.SkillInput {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return skillUC.SkillInput{
		Name:        req.Name,
		Icon:        req.Icon,
		Color:       req.Color,
		Proficiency: req.Proficiency,
		Years:       req.Years,
		IsActive:    active,
	}
}

func toSkillInputs(reqs []SkillItemRequest) []skillUC.SkillInput {
	out := make([]skillUC.SkillInput, len(reqs))
	for i, r := range reqs {
		out[i] = toSkillInput(r)
	}
	return out
}

package http

import (
	"github.com/gin-gonic/gin"
	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/validation"
)

type ExperienceHandler struct {
	experienceUseCase *experienceUC.ExperienceUseCase
	logger            logger.Logger
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{experienceUseCase: uc, logger: log}
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, experienceLabels), err))
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("Start date must be a valid date in YYYY-MM-DD format", err))
		return
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("End date must be a valid date in YYYY-MM-DD format", err))
		return
	}

	result, err := h.experienceUseCase.Create(c.Request.Context(), experienceUC.CreateExperienceInput{
		Company:      req.Company,
		Position:     req.Position,
		StartDate:    startDate,
		EndDate:      endDate,
		Current:      req.Current,
		Description:  req.Description,
		Achievements: req.Achievements,
		Technologies: req.Technologies,
		Location:     req.Location,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondCreated(c, "Experience created", toExperienceDTO(result))
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Experience")
	if !ok {
		return
	}
	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, experienceLabels), err))
		return
	}

	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("Start date must be a valid date in YYYY-MM-DD format", err))
		return
	}
	// An explicit empty end_date clears the stored value; anything else is a
	// date to set, and an absent field leaves it alone.
	clearEndDate := req.EndDate != nil && *req.EndDate == ""
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("End date must be a valid date in YYYY-MM-DD format", err))
		return
	}

	result, err := h.experienceUseCase.Update(c.Request.Context(), experienceUC.UpdateExperienceInput{
		ExperienceID: id,
		Company:      req.Company,
		Position:     req.Position,
		StartDate:    startDate,
		EndDate:      endDate,
		ClearEndDate: clearEndDate,
		Current:      req.Current,
		Description:  req.Description,
		Achievements: req.Achievements,
		Technologies: req.Technologies,
		Location:     req.Location,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Experience updated", toExperienceDTO(result))
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Experience")
	if !ok {
		return
	}
	if err := h.experienceUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Experience deleted", nil)
}

func (h *ExperienceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Experience")
	if !ok {
		return
	}
	result, err := h.experienceUseCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Experience retrieved", toExperienceDTO(result))
}

func (h *ExperienceHandler) List(c *gin.Context) {
	results, err := h.experienceUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ExperienceDTO, len(results))
	for i, e := range results {
		dtos[i] = toExperienceDTO(e)
	}
	respondOK(c, "Experience entries retrieved", dtos)
}

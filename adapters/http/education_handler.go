package http

import (
	"github.com/gin-gonic/gin"
	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/validation"
)

type EducationHandler struct {
	educationUseCase *educationUC.EducationUseCase
	logger           logger.Logger
}

func NewEducationHandler(uc *educationUC.EducationUseCase, log logger.Logger) *EducationHandler {
	return &EducationHandler{educationUseCase: uc, logger: log}
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, educationLabels), err))
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("Start date must be a valid date in YYYY-MM-DD format", err))
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("End date must be a valid date in YYYY-MM-DD format", err))
		return
	}

	result, err := h.educationUseCase.Create(c.Request.Context(), educationUC.CreateEducationInput{
		Institution:  req.Institution,
		Degree:       req.Degree,
		Field:        req.Field,
		StartDate:    startDate,
		EndDate:      endDate,
		GPA:          req.GPA,
		Percentage:   req.Percentage,
		Description:  req.Description,
		Location:     req.Location,
		Achievements: req.Achievements,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondCreated(c, "Education created", toEducationDTO(result))
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Education")
	if !ok {
		return
	}
	var req UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, educationLabels), err))
		return
	}

	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("Start date must be a valid date in YYYY-MM-DD format", err))
		return
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("End date must be a valid date in YYYY-MM-DD format", err))
		return
	}

	result, err := h.educationUseCase.Update(c.Request.Context(), educationUC.UpdateEducationInput{
		EducationID:  id,
		Institution:  req.Institution,
		Degree:       req.Degree,
		Field:        req.Field,
		StartDate:    startDate,
		EndDate:      endDate,
		GPA:          req.GPA,
		Percentage:   req.Percentage,
		Description:  req.Description,
		Location:     req.Location,
		Achievements: req.Achievements,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Education updated", toEducationDTO(result))
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Education")
	if !ok {
		return
	}
	if err := h.educationUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Education deleted", nil)
}

func (h *EducationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Education")
	if !ok {
		return
	}
	result, err := h.educationUseCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Education retrieved", toEducationDTO(result))
}

func (h *EducationHandler) List(c *gin.Context) {
	results, err := h.educationUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]EducationDTO, len(results))
	for i, e := range results {
		dtos[i] = toEducationDTO(e)
	}
	respondOK(c, "Education entries retrieved", dtos)
}

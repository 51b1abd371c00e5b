package http

import (
	"github.com/gin-gonic/gin"
	leadershipUC "github.com/khoahotran/portfolio-api/internal/application/usecase/leadership"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/validation"
)

type LeadershipHandler struct {
	leadershipUseCase *leadershipUC.LeadershipUseCase
	logger            logger.Logger
}

func NewLeadershipHandler(uc *leadershipUC.LeadershipUseCase, log logger.Logger) *LeadershipHandler {
	return &LeadershipHandler{leadershipUseCase: uc, logger: log}
}

func (h *LeadershipHandler) Create(c *gin.Context) {
	var req CreateLeadershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, leadershipLabels), err))
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

	result, err := h.leadershipUseCase.Create(c.Request.Context(), leadershipUC.CreateLeadershipInput{
		Role:          req.Role,
		Organization:  req.Organization,
		StartDate:     startDate,
		EndDate:       endDate,
		Current:       req.Current,
		Description:   req.Description,
		Contributions: req.Contributions,
		TeamSize:      req.TeamSize,
		Impact:        req.Impact,
		Skills:        req.Skills,
		DisplayOrder:  req.DisplayOrder,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondCreated(c, "Leadership entry created", toLeadershipDTO(result))
}

func (h *LeadershipHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Leadership entry")
	if !ok {
		return
	}
	var req UpdateLeadershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, leadershipLabels), err))
		return
	}

	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("Start date must be a valid date in YYYY-MM-DD format", err))
		return
	}
	clearEndDate := req.EndDate != nil && *req.EndDate == ""
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		c.Error(apperror.NewInvalidInput("End date must be a valid date in YYYY-MM-DD format", err))
		return
	}

	result, err := h.leadershipUseCase.Update(c.Request.Context(), leadershipUC.UpdateLeadershipInput{
		LeadershipID:  id,
		Role:          req.Role,
		Organization:  req.Organization,
		StartDate:     startDate,
		EndDate:       endDate,
		ClearEndDate:  clearEndDate,
		Current:       req.Current,
		Description:   req.Description,
		Contributions: req.Contributions,
		TeamSize:      req.TeamSize,
		Impact:        req.Impact,
		Skills:        req.Skills,
		DisplayOrder:  req.DisplayOrder,
		IsActive:      req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Leadership entry updated", toLeadershipDTO(result))
}

func (h *LeadershipHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Leadership entry")
	if !ok {
		return
	}
	if err := h.leadershipUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Leadership entry deleted", nil)
}

func (h *LeadershipHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Leadership entry")
	if !ok {
		return
	}
	result, err := h.leadershipUseCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Leadership entry retrieved", toLeadershipDTO(result))
}

func (h *LeadershipHandler) List(c *gin.Context) {
	results, err := h.leadershipUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]LeadershipDTO, len(results))
	for i, l := range results {
		dtos[i] = toLeadershipDTO(l)
	}
	respondOK(c, "Leadership entries retrieved", dtos)
}

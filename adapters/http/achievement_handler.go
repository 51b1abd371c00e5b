package http

import (
	"github.com/gin-gonic/gin"
	achievementUC "github.com/khoahotran/portfolio-api/internal/application/usecase/achievement"
	"github.com/khoahotran/portfolio-api/internal/domain/achievement"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/validation"
)

type AchievementHandler struct {
	achievementUseCase *achievementUC.AchievementUseCase
	logger             logger.Logger
}

func NewAchievementHandler(uc *achievementUC.AchievementUseCase, log logger.Logger) *AchievementHandler {
	return &AchievementHandler{achievementUseCase: uc, logger: log}
}

func (h *AchievementHandler) Create(c *gin.Context) {
	var req CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, achievementLabels), err))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.Error(apperror.NewInvalidInput("Date must be a valid date in YYYY-MM-DD format", err))
		return
	}

	result, err := h.achievementUseCase.Create(c.Request.Context(), achievementUC.CreateAchievementInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Date:         date,
		Organization: req.Organization,
		Participants: req.Participants,
		Rank:         req.Rank,
		Prize:        toPrize(req.Prize),
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondCreated(c, "Achievement created", result)
}

func (h *AchievementHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Achievement")
	if !ok {
		return
	}
	var req UpdateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, achievementLabels), err))
		return
	}

	date, err := parseDatePtr(req.Date)
	if err != nil {
		c.Error(apperror.NewInvalidInput("Date must be a valid date in YYYY-MM-DD format", err))
		return
	}

	result, err := h.achievementUseCase.Update(c.Request.Context(), achievementUC.UpdateAchievementInput{
		AchievementID: id,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Date:          date,
		Organization:  req.Organization,
		Participants:  req.Participants,
		Rank:          req.Rank,
		Prize:         toPrize(req.Prize),
		DisplayOrder:  req.DisplayOrder,
		IsActive:      req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Achievement updated", result)
}

func (h *AchievementHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Achievement")
	if !ok {
		return
	}
	if err := h.achievementUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Achievement deleted", nil)
}

func (h *AchievementHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Achievement")
	if !ok {
		return
	}
	result, err := h.achievementUseCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Achievement retrieved", result)
}

func (h *AchievementHandler) List(c *gin.Context) {
	results, err := h.achievementUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Achievements retrieved", results)
}

func toPrize(req *PrizeRequest) *achievement.Prize {
	if req == nil {
		return nil
	}
	return &achievement.Prize{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	}
}

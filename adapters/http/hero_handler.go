package http

import (
	"github.com/gin-gonic/gin"
	heroUC "github.com/khoahotran/portfolio-api/internal/application/usecase/hero"
	"github.com/khoahotran/portfolio-api/internal/domain/hero"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/validation"
)

type HeroHandler struct {
	heroUseCase *heroUC.HeroUseCase
	logger      logger.Logger
}

func NewHeroHandler(uc *heroUC.HeroUseCase, log logger.Logger) *HeroHandler {
	return &HeroHandler{heroUseCase: uc, logger: log}
}

func (h *HeroHandler) Get(c *gin.Context) {
	result, err := h.heroUseCase.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Hero retrieved", result)
}

func (h *HeroHandler) Upsert(c *gin.Context) {
	var req UpsertHeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, heroLabels), err))
		return
	}

	result, err := h.heroUseCase.Upsert(c.Request.Context(), heroUC.UpsertHeroInput{
		Name:     req.Name,
		Title:    req.Title,
		Summary:  req.Summary,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Socials: hero.SocialLinks{
			GitHub:   req.Socials.GitHub,
			LinkedIn: req.Socials.LinkedIn,
			Twitter:  req.Socials.Twitter,
			Website:  req.Socials.Website,
		},
		ImageURL:  req.ImageURL,
		ResumeURL: req.ResumeURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Hero saved", result)
}

package http

import (
	"github.com/gin-gonic/gin"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/validation"
)

type AuthHandler struct {
	authUseCase *authUC.AuthUseCase
	logger      logger.Logger
}

func NewAuthHandler(uc *authUC.AuthUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{authUseCase: uc, logger: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, registerLabels), err))
		return
	}

	out, err := h.authUseCase.Register(c.Request.Context(), authUC.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondCreated(c, "Account registered", gin.H{
		"access_token": out.AccessToken,
		"account":      toAccountDTO(out.Account),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, loginLabels), err))
		return
	}

	out, err := h.authUseCase.Login(c.Request.Context(), authUC.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, "Login successful", gin.H{
		"access_token": out.AccessToken,
		"account":      toAccountDTO(out.Account),
	})
}

// Verify simply reports what the auth middleware already established.
func (h *AuthHandler) Verify(c *gin.Context) {
	acc, ok := GetAccountFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("account missing from context", nil))
		return
	}
	respondOK(c, "Token is valid", gin.H{"account": toAccountDTO(acc)})
}

func (h *AuthHandler) Me(c *gin.Context) {
	acc, ok := GetAccountFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("account missing from context", nil))
		return
	}
	respondOK(c, "Account retrieved", toAccountDTO(acc))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := getTokenFromGinContext(c)
	if !ok {
		c.Error(apperror.NewInternal("token missing from context", nil))
		return
	}
	if err := h.authUseCase.Logout(c.Request.Context(), token); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Logged out", nil)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khoahotran/portfolio-api/internal/domain/account"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type stubAccountRepo struct {
	accounts  map[uuid.UUID]*account.Account
	lookupErr error
}

func (r *stubAccountRepo) Save(context.Context, *account.Account) error { return nil }
func (r *stubAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*account.Account, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	if a, ok := r.accounts[id]; ok {
		return a, nil
	}
	return nil, apperror.NewNotFound("Account", id.String())
}
func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*account.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, apperror.NewNotFound("Account", username)
}
func (r *stubAccountRepo) UpdateLastLogin(context.Context, uuid.UUID, time.Time) error { return nil }

type stubSessionStore struct {
	revoked map[string]bool
}

func (s *stubSessionStore) Revoke(_ context.Context, token string, _ time.Duration) error {
	s.revoked[token] = true
	return nil
}
func (s *stubSessionStore) IsRevoked(_ context.Context, token string) (bool, error) {
	return s.revoked[token], nil
}

type authFixture struct {
	router   *gin.Engine
	jwtSvc   *auth.JWTService
	repo     *stubAccountRepo
	sessions *stubSessionStore
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &authFixture{
		jwtSvc:   auth.NewJWTService("test-secret", time.Hour),
		repo:     &stubAccountRepo{accounts: make(map[uuid.UUID]*account.Account)},
		sessions: &stubSessionStore{revoked: make(map[string]bool)},
	}

	log := logger.NewNop()
	router := gin.New()
	router.Use(ErrorMiddleware(log, false))

	protected := router.Group("/")
	protected.Use(AuthMiddleware(f.jwtSvc, f.repo, f.sessions, log), AdminMiddleware())
	protected.DELETE("/resource", func(c *gin.Context) {
		respondOK(c, "Deleted", nil)
	})

	f.router = router
	return f
}

func (f *authFixture) addAccount(role string, active bool) (*account.Account, string) {
	a := &account.Account{
		ID:       uuid.New(),
		Username: "user-" + uuid.New().String()[:8],
		Role:     role,
		IsActive: active,
	}
	f.repo.accounts[a.ID] = a
	token, _ := f.jwtSvc.GenerateToken(a.ID)
	return a, token
}

func doDelete(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/resource", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	msg, _ := body["message"].(string)
	return msg
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	f := newAuthFixture(t)

	rr := doDelete(f.router, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Authentication required", errorMessage(t, rr))
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	f := newAuthFixture(t)
	_, token := f.addAccount(account.RoleAdmin, true)

	// Right token, wrong scheme.
	rr := doDelete(f.router, "Basic "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Authentication required", errorMessage(t, rr))
}

func TestAuthMiddleware_ForgedToken(t *testing.T) {
	f := newAuthFixture(t)
	outsider := auth.NewJWTService("other-secret", time.Hour)
	token, _ := outsider.GenerateToken(uuid.New())

	rr := doDelete(f.router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, rr))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	expiredSvc := auth.NewJWTService("test-secret", -time.Minute)
	a, _ := f.addAccount(account.RoleAdmin, true)
	token, _ := expiredSvc.GenerateToken(a.ID)

	rr := doDelete(f.router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Token expired", errorMessage(t, rr))
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	f := newAuthFixture(t)
	_, token := f.addAccount(account.RoleAdmin, true)
	f.sessions.revoked[token] = true

	rr := doDelete(f.router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, rr))
}

func TestAuthMiddleware_DeactivatedAccount(t *testing.T) {
	f := newAuthFixture(t)
	_, token := f.addAccount(account.RoleAdmin, false)

	rr := doDelete(f.router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, rr))
}

func TestAuthMiddleware_UnknownAccount(t *testing.T) {
	f := newAuthFixture(t)
	token, _ := f.jwtSvc.GenerateToken(uuid.New())

	rr := doDelete(f.router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, rr))
}

func TestAuthMiddleware_AccountStoreFaultIsNotAnAuthFailure(t *testing.T) {
	f := newAuthFixture(t)
	_, token := f.addAccount(account.RoleAdmin, true)
	f.repo.lookupErr = apperror.NewInternal("db connection refused", nil)

	rr := doDelete(f.router, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "An internal server error occurred", errorMessage(t, rr))
}

func TestAdminMiddleware_MemberForbidden(t *testing.T) {
	f := newAuthFixture(t)
	_, token := f.addAccount(account.RoleMember, true)

	rr := doDelete(f.router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Admin privileges required", errorMessage(t, rr))
}

func TestAdminMiddleware_AdminAllowed(t *testing.T) {
	f := newAuthFixture(t)
	_, token := f.addAccount(account.RoleAdmin, true)

	rr := doDelete(f.router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rr.Code)
}

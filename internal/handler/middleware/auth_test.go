//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"showroom-scheduler/internal/domain/user"
	"showroom-scheduler/internal/handler/middleware"
	"showroom-scheduler/internal/pkg/config"
	"showroom-scheduler/internal/pkg/cookie"
	"showroom-scheduler/internal/pkg/jwt"
	"showroom-scheduler/internal/usecase"
	"showroom-scheduler/tests/common/authtest"
	"showroom-scheduler/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	tokens *authtest.JWTHelper
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	s.tokens = authtest.NewJWTHelper(cfg.JWT)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.JWT.Secret, 0)))

	s.router = gin.New()
	s.router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": actor.UserID, "role": actor.Role})
	})
	s.router.GET("/staff", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleStaff), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	s.router.GET("/misconfigured", auth.RequireRoleAtLeast(user.RoleStaff), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	userID := uuid.New()

	s.Run("success: bearer token sets the actor", func() {
		token := s.tokens.GenerateToken(s.T(), userID, user.RoleCustomer)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)

		var body struct {
			UserID uuid.UUID `json:"userId"`
			Role   string    `json:"role"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(userID, body.UserID)
		s.Equal("customer", body.Role)
	})

	s.Run("success: falls back to the access token cookie", func() {
		token := s.tokens.GenerateToken(s.T(), userID, user.RoleStaff)
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil, cookies, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 on a tampered token", func() {
		token := s.tokens.GenerateToken(s.T(), userID, user.RoleCustomer) + "x"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 401 on an expired token", func() {
		token := s.tokens.CreateExpiredToken(s.T(), userID, user.RoleCustomer)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 401 on an unknown role claim", func() {
		token, err := jwt.NewService(config.NewTestConfig().JWT.Secret, time.Minute).GenerateToken(userID, user.Role("guest"))
		s.Require().NoError(err)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	testCases := []struct {
		role       user.Role
		expectCode int
	}{
		{role: user.RoleCustomer, expectCode: http.StatusForbidden},
		{role: user.RoleStaff, expectCode: http.StatusNoContent},
		{role: user.RoleAdmin, expectCode: http.StatusNoContent},
	}

	for _, tc := range testCases {
		s.Run(tc.role.String(), func() {
			token := s.tokens.GenerateToken(s.T(), uuid.New(), tc.role)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff", nil, token)
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("without RequireAuth the chain is misconfigured", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

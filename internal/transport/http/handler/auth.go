package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/StudenikinNikolay/filecloud/internal/domain"
	"github.com/StudenikinNikolay/filecloud/internal/metrics"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Login(ctx context.Context, login, password string) (string, error)
	Logout(ctx context.Context, header string)
}

// AuthHeader carries the session token on every authenticated request and
// on logout. An optional "Bearer" prefix is tolerated.
const AuthHeader = "auth-token"

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// POST /login
// Failures come back as 400 with exactly one populated field in the
// {"email": [...], "password": [...]} shape; an unreadable body counts as
// bad credentials on the email field.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fieldError(c, domain.ErrMalformedCredentials)
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		var credErr *domain.CredentialsError
		if errors.As(err, &credErr) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			fieldError(c, credErr)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// POST /logout
// Always acknowledges; the usecase swallows its own failures.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authUsecase.Logout(c.Request.Context(), c.GetHeader(AuthHeader))
	c.Status(http.StatusOK)
}

func fieldError(c *gin.Context, err *domain.CredentialsError) {
	c.JSON(http.StatusBadRequest, domain.ValidationErrors{}.Add(err.Field, err.Message))
}

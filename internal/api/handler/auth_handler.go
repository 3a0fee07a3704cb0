package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-esports/cms-api/internal/api/metrics"
	"github.com/arcadia-esports/cms-api/internal/api/middleware"
	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"max=100"`
	Email    string `json:"email"    validate:"max=254"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userView struct {
	ID    string      `json:"id,omitempty"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

type authResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    userView `json:"user"`
}

// claimsView mirrors the token payload, with iat and exp in Unix seconds.
type claimsView struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	Iat   int64       `json:"iat"`
	Exp   int64       `json:"exp"`
}

type verifyResponse struct {
	Message string     `json:"message"`
	User    claimsView `json:"user"`
}

// Register creates a new account with the user role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Name, email and password"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", outcome(err)).Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()

	return c.JSON(http.StatusCreated, authResponse{
		Message: "User created successfully",
		Token:   res.Token,
		User:    userView{Name: res.User.Name, Email: res.User.Email, Role: res.User.Role},
	})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", outcome(err)).Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()

	u := res.User
	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   res.Token,
		User:    userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
	})
}

// Verify echoes the claims of the presented token.
//
// @Summary      Verify token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, verifyResponse{
		Message: "Token valid",
		User: claimsView{
			ID:    id.UserID,
			Email: id.Email,
			Role:  id.Role,
			Iat:   id.IssuedAt.Unix(),
			Exp:   id.ExpiresAt.Unix(),
		},
	})
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateIdentity):
		return "duplicate"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid"
	default:
		return "error"
	}
}

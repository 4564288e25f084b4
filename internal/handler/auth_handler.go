package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"expensetracker/internal/auth"
	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/model"
	"expensetracker/internal/service"
)

// AuthHandler handles signup, login, and logout.
type AuthHandler struct {
	authService  service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Branch   string `json:"branch" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents a successful signup or login response.
type AuthResponse struct {
	Message string           `json:"message"`
	User    model.PublicUser `json:"user"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/user/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Invalid request body",
			Code:    "INVALID_BODY",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: formatValidationError(err),
			Code:    "VALIDATION_FAILED",
		})
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.FullName, req.Username, req.Email, req.Password, req.Branch)
	if err != nil {
		return mapError(err)
	}

	c.SetCookie(auth.SessionCookie(token, h.cookieSecure))
	return c.JSON(http.StatusCreated, AuthResponse{
		Message: "User created successfully",
		User:    user.Public(),
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Invalid request body",
			Code:    "INVALID_BODY",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: formatValidationError(err),
			Code:    "VALIDATION_FAILED",
		})
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapError(err)
	}

	c.SetCookie(auth.SessionCookie(token, h.cookieSecure))
	return c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		User:    user.Public(),
	})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/user/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(auth.ExpiredSessionCookie(h.cookieSecure))
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logout successful",
	})
}

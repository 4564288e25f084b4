package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"expensetracker/internal/service"
)

// UserHandler handles session and profile self-lookup endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// IsLoggedIn godoc
// @Summary Check whether the session is valid
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /isLoggedIn [get]
func (h *UserHandler) IsLoggedIn(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "User is logged in",
		"user":    map[string]string{"id": userID.String()},
	})
}

// FindUser godoc
// @Summary Fetch the acting user's profile
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /findUser [get]
func (h *UserHandler) FindUser(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

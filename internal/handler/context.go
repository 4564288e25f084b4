package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "expensetracker/internal/errors"
)

// actingUserID resolves the identity attached by the session guard.
func actingUserID(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Message: "Unauthorized: Invalid token",
			Code:    "INVALID_TOKEN",
		})
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Message: "Unauthorized: Invalid token",
			Code:    "INVALID_TOKEN",
		})
	}
	subject, _ := claims["id"].(string)
	id, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Message: "Unauthorized: Invalid token",
			Code:    "INVALID_TOKEN",
		})
	}
	return id, nil
}

// mapError translates a service error into an echo error, keeping the
// original cause as the internal error so the central error handler can
// surface it in development mode.
func mapError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

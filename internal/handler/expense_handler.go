package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/service"
)

// ExpenseHandler handles owner-scoped expense endpoints.
type ExpenseHandler struct {
	expenseService service.ExpenseService
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the body of an add or update expense request.
type ExpenseRequest struct {
	Date          string   `json:"date"`
	Branch        string   `json:"branch"`
	ExpenseType   string   `json:"expenseType"`
	Amount        *float64 `json:"amount"`
	ModeOfPayment string   `json:"modeOfPayment"`
	PaymentTo     string   `json:"paymentTo"`
	VehicleNumber string   `json:"vehicleNumber"`
	Remarks       string   `json:"remarks"`
}

func (r ExpenseRequest) toInput() service.ExpenseInput {
	return service.ExpenseInput{
		Date:          r.Date,
		Branch:        r.Branch,
		ExpenseType:   r.ExpenseType,
		Amount:        r.Amount,
		ModeOfPayment: r.ModeOfPayment,
		PaymentTo:     r.PaymentTo,
		VehicleNumber: r.VehicleNumber,
		Remarks:       r.Remarks,
	}
}

// AddExpense godoc
// @Summary Create an expense for the acting user
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "Expense fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/expense/addExpense [post]
func (h *ExpenseHandler) AddExpense(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Invalid request body",
			Code:    "INVALID_BODY",
		})
	}

	expense, err := h.expenseService.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Expense added successfully",
		"expense": expense,
	})
}

// GetExpenses godoc
// @Summary List the acting user's expenses, most recent date first
// @Tags expenses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/expense/getExpenses [get]
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	expenses, err := h.expenseService.List(c.Request().Context(), userID)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"expenses": expenses,
	})
}

// UpdateExpense godoc
// @Summary Replace an expense owned by the acting user
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body ExpenseRequest true "Expense fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/expense/updateExpense/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Invalid expense ID",
			Code:    "INVALID_UUID",
		})
	}

	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Invalid request body",
			Code:    "INVALID_BODY",
		})
	}

	expense, err := h.expenseService.Update(c.Request().Context(), userID, expenseID, req.toInput())
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Expense updated successfully",
		"expense": expense,
	})
}

// DeleteExpense godoc
// @Summary Delete an expense owned by the acting user
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/expense/deleteExpense/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Invalid expense ID",
			Code:    "INVALID_UUID",
		})
	}

	if err := h.expenseService.Delete(c.Request().Context(), userID, expenseID); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Expense deleted successfully",
	})
}

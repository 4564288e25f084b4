package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/model"
)

// ExpenseInput carries the client-supplied fields of a create or update
// request. Amount is a pointer so a missing amount and a zero amount stay
// distinguishable.
type ExpenseInput struct {
	Date          string
	Branch        string
	ExpenseType   string
	Amount        *float64
	ModeOfPayment string
	PaymentTo     string
	VehicleNumber string
	Remarks       string
}

// expenseFields is a fully validated and normalized set of expense fields.
type expenseFields struct {
	Date          time.Time
	Branch        string
	ExpenseType   model.ExpenseType
	Amount        decimal.Decimal
	ModeOfPayment model.PaymentMode
	PaymentTo     string
	VehicleNumber string
	Remarks       string
}

// ExpenseValidator validates and normalizes expense input.
type ExpenseValidator struct{}

// NewExpenseValidator creates a new expense validator.
func NewExpenseValidator() *ExpenseValidator {
	return &ExpenseValidator{}
}

// Validate checks every field and reports all violations at once. On success
// it returns the normalized field set: date defaulted to now when absent,
// vehicle number uppercased, remarks capped.
func (v *ExpenseValidator) Validate(input ExpenseInput) (*expenseFields, error) {
	var problems []string

	date, ok := v.parseDate(strings.TrimSpace(input.Date))
	if !ok {
		problems = append(problems, "Date is invalid")
	}

	branch := strings.TrimSpace(input.Branch)
	if branch == "" {
		problems = append(problems, "Branch is required")
	}

	expenseType := model.ExpenseType(strings.TrimSpace(input.ExpenseType))
	if expenseType == "" {
		problems = append(problems, "Expense type is required")
	} else if !expenseType.IsValid() {
		problems = append(problems, "Invalid expense type")
	}

	var amount decimal.Decimal
	if input.Amount == nil {
		problems = append(problems, "Amount is required")
	} else if *input.Amount < 0 {
		problems = append(problems, "Amount cannot be negative")
	} else {
		amount = decimal.NewFromFloat(*input.Amount)
	}

	mode := model.PaymentMode(strings.TrimSpace(input.ModeOfPayment))
	if mode == "" {
		problems = append(problems, "Mode of payment is required")
	} else if !mode.IsValid() {
		problems = append(problems, "Invalid mode of payment")
	}

	if len(problems) > 0 {
		return nil, apperrors.NewValidationError(problems...)
	}

	return &expenseFields{
		Date:          date,
		Branch:        branch,
		ExpenseType:   expenseType,
		Amount:        amount,
		ModeOfPayment: mode,
		PaymentTo:     strings.TrimSpace(input.PaymentTo),
		VehicleNumber: strings.ToUpper(strings.TrimSpace(input.VehicleNumber)),
		Remarks:       capRemarks(strings.TrimSpace(input.Remarks)),
	}, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339; an empty date defaults to now.
func (v *ExpenseValidator) parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Now(), true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func capRemarks(remarks string) string {
	runes := []rune(remarks)
	if len(runes) <= model.RemarksMaxLen {
		return remarks
	}
	return string(runes[:model.RemarksMaxLen])
}

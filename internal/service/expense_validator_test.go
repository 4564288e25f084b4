package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "expensetracker/internal/errors"
)

func TestExpenseValidator_ReportsAllViolationsAtOnce(t *testing.T) {
	negative := -5.0
	input := ExpenseInput{
		Date:          "not-a-date",
		Branch:        "",
		ExpenseType:   "Groceries",
		Amount:        &negative,
		ModeOfPayment: "Barter",
	}

	fields, err := NewExpenseValidator().Validate(input)

	assert.Nil(t, fields)
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{
		"Date is invalid",
		"Branch is required",
		"Invalid expense type",
		"Amount cannot be negative",
		"Invalid mode of payment",
	}, ve.Problems)
	assert.Contains(t, err.Error(), "Branch is required")
	assert.Contains(t, err.Error(), "Amount cannot be negative")
}

func TestExpenseValidator_MissingRequiredFields(t *testing.T) {
	fields, err := NewExpenseValidator().Validate(ExpenseInput{})

	assert.Nil(t, fields)
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{
		"Branch is required",
		"Expense type is required",
		"Amount is required",
		"Mode of payment is required",
	}, ve.Problems)
}

func TestExpenseValidator_DateFormats(t *testing.T) {
	amount := 10.0
	base := ExpenseInput{
		Branch:        "Mumbai",
		ExpenseType:   "Miscellaneous",
		Amount:        &amount,
		ModeOfPayment: "Online",
	}

	t.Run("accepts YYYY-MM-DD", func(t *testing.T) {
		in := base
		in.Date = "2024-01-05"
		fields, err := NewExpenseValidator().Validate(in)
		assert.NoError(t, err)
		assert.Equal(t, 2024, fields.Date.Year())
	})

	t.Run("accepts RFC 3339", func(t *testing.T) {
		in := base
		in.Date = "2024-01-05T10:30:00Z"
		fields, err := NewExpenseValidator().Validate(in)
		assert.NoError(t, err)
		assert.Equal(t, 10, fields.Date.Hour())
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		zero := 0.0
		in := base
		in.Amount = &zero
		fields, err := NewExpenseValidator().Validate(in)
		assert.NoError(t, err)
		assert.True(t, fields.Amount.IsZero())
	})
}

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/model"
)

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *model.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Expense, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Expense, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockExpenseRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func newTestExpenseService(repo *MockExpenseRepository) ExpenseService {
	return NewExpenseService(repo, NewExpenseValidator(), nil)
}

func validInput() ExpenseInput {
	amount := 500.0
	return ExpenseInput{
		Date:          "2024-01-05",
		Branch:        "Mumbai",
		ExpenseType:   "Labour",
		Amount:        &amount,
		ModeOfPayment: "Cash",
	}
}

func TestExpenseService_Create(t *testing.T) {
	ownerID := uuid.New()

	t.Run("persists a valid expense with the owner attached", func(t *testing.T) {
		mockRepo := new(MockExpenseRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Expense")).Return(nil)

		service := newTestExpenseService(mockRepo)
		expense, err := service.Create(context.Background(), ownerID, validInput())

		assert.NoError(t, err)
		assert.NotNil(t, expense)
		assert.Equal(t, ownerID, expense.UserID)
		assert.Equal(t, model.ExpenseTypeLabour, expense.ExpenseType)
		assert.Equal(t, model.PaymentModeCash, expense.ModeOfPayment)
		assert.True(t, expense.Amount.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), expense.Date)
		mockRepo.AssertExpectations(t)
	})

	t.Run("normalizes optional fields", func(t *testing.T) {
		mockRepo := new(MockExpenseRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Expense")).Return(nil)

		input := validInput()
		input.PaymentTo = "  City Fuels  "
		input.VehicleNumber = " mh12ab1234 "
		input.Remarks = strings.Repeat("x", 600)

		service := newTestExpenseService(mockRepo)
		expense, err := service.Create(context.Background(), uuid.New(), input)

		assert.NoError(t, err)
		assert.Equal(t, "City Fuels", expense.PaymentTo)
		assert.Equal(t, "MH12AB1234", expense.VehicleNumber)
		assert.Len(t, expense.Remarks, model.RemarksMaxLen)
	})

	t.Run("defaults a missing date to now", func(t *testing.T) {
		mockRepo := new(MockExpenseRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Expense")).Return(nil)

		input := validInput()
		input.Date = ""

		service := newTestExpenseService(mockRepo)
		expense, err := service.Create(context.Background(), uuid.New(), input)

		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now(), expense.Date, time.Minute)
	})

	t.Run("rejects invalid input without persisting", func(t *testing.T) {
		negative := -1.0
		cases := []struct {
			name   string
			mutate func(*ExpenseInput)
		}{
			{"negative amount", func(in *ExpenseInput) { in.Amount = &negative }},
			{"missing amount", func(in *ExpenseInput) { in.Amount = nil }},
			{"unknown expense type", func(in *ExpenseInput) { in.ExpenseType = "Groceries" }},
			{"unknown payment mode", func(in *ExpenseInput) { in.ModeOfPayment = "Barter" }},
			{"missing branch", func(in *ExpenseInput) { in.Branch = "  " }},
			{"unparseable date", func(in *ExpenseInput) { in.Date = "05/01/2024" }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				mockRepo := new(MockExpenseRepository)
				input := validInput()
				tc.mutate(&input)

				service := newTestExpenseService(mockRepo)
				expense, err := service.Create(context.Background(), uuid.New(), input)

				assert.Error(t, err)
				assert.Nil(t, expense)
				var ve *apperrors.ValidationError
				assert.ErrorAs(t, err, &ve)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestExpenseService_List(t *testing.T) {
	ownerID := uuid.New()

	t.Run("returns the owner's records as provided by the repository", func(t *testing.T) {
		records := []model.Expense{
			{ID: uuid.New(), UserID: ownerID, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
			{ID: uuid.New(), UserID: ownerID, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		}
		mockRepo := new(MockExpenseRepository)
		mockRepo.On("ListByOwner", mock.Anything, ownerID).Return(records, nil)

		service := newTestExpenseService(mockRepo)
		expenses, err := service.List(context.Background(), ownerID)

		assert.NoError(t, err)
		assert.Equal(t, records, expenses)
		mockRepo.AssertExpectations(t)
	})

	t.Run("returns an empty collection when the owner has none", func(t *testing.T) {
		mockRepo := new(MockExpenseRepository)
		mockRepo.On("ListByOwner", mock.Anything, ownerID).Return(nil, nil)

		service := newTestExpenseService(mockRepo)
		expenses, err := service.List(context.Background(), ownerID)

		assert.NoError(t, err)
		assert.NotNil(t, expenses)
		assert.Empty(t, expenses)
	})
}

func TestExpenseService_Update(t *testing.T) {
	ownerID := uuid.New()
	expenseID := uuid.New()

	t.Run("replaces the mutable fields", func(t *testing.T) {
		existing := &model.Expense{
			ID:            expenseID,
			UserID:        ownerID,
			Date:          time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Branch:        "Mumbai",
			ExpenseType:   model.ExpenseTypeLabour,
			Amount:        decimal.NewFromInt(500),
			ModeOfPayment: model.PaymentModeCash,
		}
		mockRepo := new(MockExpenseRepository)
		mockRepo.On("FindByIDAndOwner", mock.Anything, expenseID, ownerID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Expense")).Return(nil)

		amount := 750.0
		input := ExpenseInput{
			Date:          "2024-03-01",
			Branch:        "Pune",
			ExpenseType:   "Transportation",
			Amount:        &amount,
			ModeOfPayment: "UPI",
			VehicleNumber: "ka01cd5678",
		}

		service := newTestExpenseService(mockRepo)
		updated, err := service.Update(context.Background(), ownerID, expenseID, input)

		assert.NoError(t, err)
		assert.Equal(t, expenseID, updated.ID)
		assert.Equal(t, ownerID, updated.UserID)
		assert.Equal(t, "Pune", updated.Branch)
		assert.Equal(t, model.ExpenseTypeTransportation, updated.ExpenseType)
		assert.Equal(t, model.PaymentModeUPI, updated.ModeOfPayment)
		assert.Equal(t, "KA01CD5678", updated.VehicleNumber)
		assert.True(t, updated.Amount.Equal(decimal.NewFromInt(750)))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing record and foreign owner fail identically", func(t *testing.T) {
		mockRepo := new(MockExpenseRepository)
		mockRepo.On("FindByIDAndOwner", mock.Anything, expenseID, ownerID).Return(nil, gorm.ErrRecordNotFound)

		service := newTestExpenseService(mockRepo)
		updated, err := service.Update(context.Background(), ownerID, expenseID, validInput())

		assert.Nil(t, updated)
		assert.Equal(t, apperrors.ErrExpenseNotFound, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("invalid input fails before any lookup", func(t *testing.T) {
		mockRepo := new(MockExpenseRepository)

		input := validInput()
		input.ExpenseType = "Groceries"

		service := newTestExpenseService(mockRepo)
		_, err := service.Update(context.Background(), ownerID, expenseID, input)

		var ve *apperrors.ValidationError
		assert.ErrorAs(t, err, &ve)
		mockRepo.AssertNotCalled(t, "FindByIDAndOwner", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestExpenseService_Delete(t *testing.T) {
	ownerID := uuid.New()
	expenseID := uuid.New()

	t.Run("deletes an owned record", func(t *testing.T) {
		mockRepo := new(MockExpenseRepository)
		mockRepo.On("DeleteByIDAndOwner", mock.Anything, expenseID, ownerID).Return(nil)

		service := newTestExpenseService(mockRepo)
		err := service.Delete(context.Background(), ownerID, expenseID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing record and foreign owner fail identically", func(t *testing.T) {
		mockRepo := new(MockExpenseRepository)
		mockRepo.On("DeleteByIDAndOwner", mock.Anything, expenseID, ownerID).Return(gorm.ErrRecordNotFound)

		service := newTestExpenseService(mockRepo)
		err := service.Delete(context.Background(), ownerID, expenseID)

		assert.Equal(t, apperrors.ErrExpenseNotFound, err)
	})
}

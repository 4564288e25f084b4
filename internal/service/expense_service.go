package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"expensetracker/internal/cache"
	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/model"
	"expensetracker/internal/repository"
)

const expenseListCacheTTL = 5 * time.Minute

// ExpenseService handles owner-scoped expense operations. Every operation
// takes the acting identity resolved by the session guard; a record that does
// not exist and a record owned by someone else are indistinguishable.
type ExpenseService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input ExpenseInput) (*model.Expense, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Expense, error)
	Update(ctx context.Context, ownerID, expenseID uuid.UUID, input ExpenseInput) (*model.Expense, error)
	Delete(ctx context.Context, ownerID, expenseID uuid.UUID) error
}

type expenseService struct {
	repo      repository.ExpenseRepository
	validator *ExpenseValidator
	cache     *cache.Client
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo repository.ExpenseRepository, validator *ExpenseValidator, cache *cache.Client) ExpenseService {
	return &expenseService{
		repo:      repo,
		validator: validator,
		cache:     cache,
	}
}

func (s *expenseService) listCacheKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("expenses:%s", ownerID)
}

// Create validates, normalizes, and persists a new expense owned by ownerID.
func (s *expenseService) Create(ctx context.Context, ownerID uuid.UUID, input ExpenseInput) (*model.Expense, error) {
	fields, err := s.validator.Validate(input)
	if err != nil {
		return nil, err
	}

	expense := &model.Expense{
		UserID:        ownerID,
		Date:          fields.Date,
		Branch:        fields.Branch,
		ExpenseType:   fields.ExpenseType,
		Amount:        fields.Amount,
		ModeOfPayment: fields.ModeOfPayment,
		PaymentTo:     fields.PaymentTo,
		VehicleNumber: fields.VehicleNumber,
		Remarks:       fields.Remarks,
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(ownerID))
	return expense, nil
}

// List returns all expenses owned by ownerID, most recent date first, served
// read-through from the cache.
func (s *expenseService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Expense, error) {
	if data, _ := s.cache.Get(ctx, s.listCacheKey(ownerID)); data != nil {
		var cached []model.Expense
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	expenses, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}

	if payload, err := json.Marshal(expenses); err == nil {
		_ = s.cache.Set(ctx, s.listCacheKey(ownerID), payload, expenseListCacheTTL)
	}
	return expenses, nil
}

// Update replaces the mutable fields of the expense matching (expenseID,
// ownerID). Last write wins; there is no version check.
func (s *expenseService) Update(ctx context.Context, ownerID, expenseID uuid.UUID, input ExpenseInput) (*model.Expense, error) {
	fields, err := s.validator.Validate(input)
	if err != nil {
		return nil, err
	}

	expense, err := s.repo.FindByIDAndOwner(ctx, expenseID, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("find expense: %w", err)
	}

	expense.Date = fields.Date
	expense.Branch = fields.Branch
	expense.ExpenseType = fields.ExpenseType
	expense.Amount = fields.Amount
	expense.ModeOfPayment = fields.ModeOfPayment
	expense.PaymentTo = fields.PaymentTo
	expense.VehicleNumber = fields.VehicleNumber
	expense.Remarks = fields.Remarks

	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(ownerID))
	return expense, nil
}

// Delete removes the expense matching (expenseID, ownerID).
func (s *expenseService) Delete(ctx context.Context, ownerID, expenseID uuid.UUID) error {
	if err := s.repo.DeleteByIDAndOwner(ctx, expenseID, ownerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrExpenseNotFound
		}
		return fmt.Errorf("delete expense: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(ownerID))
	return nil
}

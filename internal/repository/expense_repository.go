package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"expensetracker/internal/model"
)

// ExpenseRepository defines expense persistence operations. Every lookup that
// targets a single record matches on (id, user_id) so ownership is enforced
// at the query level.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	Update(ctx context.Context, expense *model.Expense) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Expense, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Expense, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository builds a GORM-backed expense repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) Update(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Expense, error) {
	var expense model.Expense
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

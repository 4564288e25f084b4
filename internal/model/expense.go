package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Amounts serialize as plain JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ExpenseType is the category of an expense.
type ExpenseType string

const (
	ExpenseTypeLogisticCost   ExpenseType = "Logistic Cost"
	ExpenseTypeStaffWelfare   ExpenseType = "Staff Welfare"
	ExpenseTypeLabour         ExpenseType = "Labour"
	ExpenseTypeTransportation ExpenseType = "Transportation"
	ExpenseTypeMiscellaneous  ExpenseType = "Miscellaneous"
)

// IsValid reports whether the expense type is one of the enumerated values.
func (t ExpenseType) IsValid() bool {
	switch t {
	case ExpenseTypeLogisticCost, ExpenseTypeStaffWelfare, ExpenseTypeLabour,
		ExpenseTypeTransportation, ExpenseTypeMiscellaneous:
		return true
	}
	return false
}

// PaymentMode is how an expense was paid.
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "Cash"
	PaymentModeOnline PaymentMode = "Online"
	PaymentModeUPI    PaymentMode = "UPI"
	PaymentModeCheque PaymentMode = "Cheque"
	PaymentModeCard   PaymentMode = "Card"
)

// IsValid reports whether the payment mode is one of the enumerated values.
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeOnline, PaymentModeUPI,
		PaymentModeCheque, PaymentModeCard:
		return true
	}
	return false
}

// RemarksMaxLen bounds the remarks field.
const RemarksMaxLen = 500

// Expense represents a single expense record owned by exactly one user.
type Expense struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID       `json:"userId" gorm:"type:char(36);not null;index"`
	Date          time.Time       `json:"date" gorm:"not null;index"`
	Branch        string          `json:"branch" gorm:"size:255;not null;index"`
	ExpenseType   ExpenseType     `json:"expenseType" gorm:"type:varchar(32);not null;index"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	ModeOfPayment PaymentMode     `json:"modeOfPayment" gorm:"type:varchar(16);not null;index"`
	PaymentTo     string          `json:"paymentTo,omitempty" gorm:"size:255"`
	VehicleNumber string          `json:"vehicleNumber,omitempty" gorm:"size:64"`
	Remarks       string          `json:"remarks,omitempty" gorm:"size:500"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

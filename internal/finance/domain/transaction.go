package domain

import (
	"time"

	financeErrors "github.com/IreshEranga/Finance-Tracker/internal/finance/errors"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}

type TransactionRepository interface {
	Save(transaction Transaction) error
	FindByID(transactionID string) (*Transaction, error)
	FindByUser(userID string) ([]Transaction, error)
	FindAllWithOwners() ([]TransactionWithOwner, error)
	FindForScope(scope Scope) ([]Transaction, error)
	Update(transaction Transaction) error
	Delete(transactionID string) error
	SumExpensesByUserAndCategory(userID, category string) (decimal.Decimal, error)
}

type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        string          `json:"type"` // "income" or "expense"
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Tags        []string        `json:"tags"`
	Description string          `json:"description,omitempty"`
	RecordedAt  time.Time       `json:"recorded_at"`
}

// TransactionWithOwner carries minimal owner identity for admin-scope listings.
type TransactionWithOwner struct {
	Transaction
	OwnerName  string `json:"owner_name,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return financeErrors.NewValidationError("Type must be 'income' or 'expense'")
	}
	if t.Amount.IsNegative() {
		return financeErrors.NewValidationError("Amount must not be negative")
	}
	if t.Category == "" {
		return financeErrors.NewValidationError("Category is required")
	}
	if len(t.Description) > 200 {
		return financeErrors.NewValidationError("Description must be of length less than 200")
	}
	return nil
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

package domain

import (
	financeErrors "github.com/IreshEranga/Finance-Tracker/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type BudgetRepository interface {
	Save(budget Budget) error
	FindByID(budgetID string) (*Budget, error)
	FindByUserAndCategory(userID, category string) (*Budget, error)
	FindForScope(scope Scope) ([]Budget, error)
	UpdateLimit(budgetID string, limit decimal.Decimal) error
	UpdateSpent(budgetID string, spent decimal.Decimal) error
	Delete(budgetID string) error
	ExistsByUserAndCategory(userID, category string) (bool, error)
}

// Budget holds the spending ceiling for one (user, category) pair. Spent is a
// cache of the expense sum, refreshed by recompute, never edited directly.
type Budget struct {
	ID       string          `json:"id"`
	UserID   string          `json:"user_id"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
}

func (b *Budget) Validate() error {
	if b.Category == "" {
		return financeErrors.NewValidationError("Category is required")
	}
	if b.Limit.IsNegative() {
		return financeErrors.NewValidationError("Limit must not be negative")
	}
	return nil
}

func (b *Budget) IsExceeded() bool {
	return b.Spent.GreaterThan(b.Limit)
}

func (b *Budget) Remaining() decimal.Decimal {
	return b.Limit.Sub(b.Spent)
}

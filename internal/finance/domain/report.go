package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BudgetStatusWithin = "Within Budget"
	BudgetStatusOver   = "Over Budget"
)

// Scope limits which transactions and budgets a request may see. A zero UserID
// means the global (admin) scope.
type Scope struct {
	UserID string
}

func GlobalScope() Scope {
	return Scope{}
}

func UserScope(userID string) Scope {
	return Scope{UserID: userID}
}

func (s Scope) IsGlobal() bool {
	return s.UserID == ""
}

type BudgetUsage struct {
	Category  string          `json:"category"`
	Limit     decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Status    string          `json:"status"`
}

// Report is a read-side projection over transactions and budgets for one scope.
// It is assembled on demand and never persisted.
type Report struct {
	GeneratedAt        time.Time                  `json:"generated_at"`
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	NetBalance         decimal.Decimal            `json:"netBalance"`
	CategoryExpenses   map[string]decimal.Decimal `json:"categoryExpenses"`
	BudgetUsage        []BudgetUsage              `json:"budgetUsage"`
	RecentTransactions []Transaction              `json:"recentTransactions"`
}

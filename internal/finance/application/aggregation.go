package application

import (
	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	"github.com/shopspring/decimal"
)

type KindTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

func (t KindTotals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// TotalsByKind sums transaction amounts per type with exact decimal arithmetic.
func TotalsByKind(transactions []domain.Transaction) KindTotals {
	totals := KindTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, transaction := range transactions {
		switch transaction.Type {
		case domain.TransactionTypeIncome:
			totals.Income = totals.Income.Add(transaction.Amount)
		case domain.TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(transaction.Amount)
		}
	}
	return totals
}

// TotalsByCategory groups amounts of the given type by exact category string.
// Categories differing only in case or whitespace are distinct groups.
func TotalsByCategory(transactions []domain.Transaction, transactionType string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, transaction := range transactions {
		if transaction.Type != transactionType {
			continue
		}
		current, ok := totals[transaction.Category]
		if !ok {
			current = decimal.Zero
		}
		totals[transaction.Category] = current.Add(transaction.Amount)
	}
	return totals
}

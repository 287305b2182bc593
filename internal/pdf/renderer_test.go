package pdf

import (
	"testing"
	"time"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRender_FullReport(t *testing.T) {
	renderer := NewRenderer()

	report := domain.Report{
		GeneratedAt:   time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
		TotalIncome:   decimal.NewFromInt(1500),
		TotalExpenses: decimal.NewFromInt(600),
		NetBalance:    decimal.NewFromInt(900),
		CategoryExpenses: map[string]decimal.Decimal{
			"Rent": decimal.NewFromInt(400),
			"Food": decimal.NewFromInt(200),
		},
		BudgetUsage: []domain.BudgetUsage{
			{Category: "Rent", Limit: decimal.NewFromInt(500), Spent: decimal.NewFromInt(400), Remaining: decimal.NewFromInt(100), Status: domain.BudgetStatusWithin},
			{Category: "Food", Limit: decimal.NewFromInt(100), Spent: decimal.NewFromInt(200), Remaining: decimal.NewFromInt(-100), Status: domain.BudgetStatusOver},
		},
		RecentTransactions: []domain.Transaction{
			{Type: "expense", Amount: decimal.NewFromInt(400), Category: "Rent", RecordedAt: time.Date(2025, time.February, 27, 0, 0, 0, 0, time.UTC)},
			{Type: "income", Amount: decimal.NewFromInt(1500), Category: "Salary", RecordedAt: time.Date(2025, time.February, 25, 0, 0, 0, 0, time.UTC)},
		},
	}

	document, err := renderer.Render(report)
	assert.NoError(t, err)
	assert.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestRender_EmptyReport(t *testing.T) {
	renderer := NewRenderer()

	document, err := renderer.Render(domain.Report{
		GeneratedAt:      time.Now(),
		CategoryExpenses: map[string]decimal.Decimal{},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, document, "a report with no data must still render")
	assert.Equal(t, "%PDF", string(document[:4]))
}

package application

import (
	"testing"
	"time"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	"github.com/IreshEranga/Finance-Tracker/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
)

func day(offset int) time.Time {
	return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestAssemble_GlobalScopeTotals(t *testing.T) {
	transactionRepo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "user-1", Type: "income", Amount: amount("1000"), Category: "Salary", RecordedAt: day(0)},
			{ID: "t2", UserID: "user-1", Type: "expense", Amount: amount("400"), Category: "Rent", RecordedAt: day(1)},
			{ID: "t3", UserID: "user-2", Type: "income", Amount: amount("500"), Category: "Salary", RecordedAt: day(2)},
			{ID: "t4", UserID: "user-2", Type: "expense", Amount: amount("200"), Category: "Rent", RecordedAt: day(3)},
		},
	}
	service := NewReportService(transactionRepo, &infrastructure.MockBudgetRepository{}, &MockRenderer{}, &MockEmailSender{})

	report, err := service.Assemble(domain.GlobalScope())
	assert.NoError(t, err)
	assert.True(t, report.TotalIncome.Equal(amount("1500")), "expected totalIncome 1500, got %s", report.TotalIncome)
	assert.True(t, report.TotalExpenses.Equal(amount("600")), "expected totalExpenses 600, got %s", report.TotalExpenses)
	assert.True(t, report.NetBalance.Equal(amount("900")), "expected netBalance 900, got %s", report.NetBalance)
	assert.Len(t, report.CategoryExpenses, 1)
	assert.True(t, report.CategoryExpenses["Rent"].Equal(amount("600")), "expected Rent 600, got %s", report.CategoryExpenses["Rent"])
}

func TestAssemble_NetBalanceMatchesKindTotals(t *testing.T) {
	transactionRepo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "user-1", Type: "income", Amount: amount("123.45"), Category: "Salary", RecordedAt: day(0)},
			{ID: "t2", UserID: "user-1", Type: "expense", Amount: amount("67.89"), Category: "Food", RecordedAt: day(1)},
		},
	}
	service := NewReportService(transactionRepo, &infrastructure.MockBudgetRepository{}, &MockRenderer{}, &MockEmailSender{})

	report, err := service.Assemble(domain.UserScope("user-1"))
	assert.NoError(t, err)
	assert.True(t, report.NetBalance.Equal(report.TotalIncome.Sub(report.TotalExpenses)))
}

func TestAssemble_BudgetUsageDerivation(t *testing.T) {
	budgetRepo := &infrastructure.MockBudgetRepository{
		Budgets: []domain.Budget{
			{ID: "b1", UserID: "user-1", Category: "Food", Limit: amount("80"), Spent: amount("100")},
			{ID: "b2", UserID: "user-1", Category: "Rent", Limit: amount("500"), Spent: amount("400")},
			{ID: "b3", UserID: "user-1", Category: "Fuel", Limit: amount("50"), Spent: amount("50")},
		},
	}
	service := NewReportService(&infrastructure.MockTransactionRepository{}, budgetRepo, &MockRenderer{}, &MockEmailSender{})

	report, err := service.Assemble(domain.UserScope("user-1"))
	assert.NoError(t, err)
	assert.Len(t, report.BudgetUsage, 3)

	byCategory := map[string]domain.BudgetUsage{}
	for _, usage := range report.BudgetUsage {
		byCategory[usage.Category] = usage
	}

	food := byCategory["Food"]
	assert.Equal(t, domain.BudgetStatusOver, food.Status)
	assert.True(t, food.Remaining.Equal(amount("-20")), "expected remaining -20, got %s", food.Remaining)

	rent := byCategory["Rent"]
	assert.Equal(t, domain.BudgetStatusWithin, rent.Status)
	assert.True(t, rent.Remaining.Equal(amount("100")))

	// boundary: spent equal to limit stays within budget
	fuel := byCategory["Fuel"]
	assert.Equal(t, domain.BudgetStatusWithin, fuel.Status)
	assert.True(t, fuel.Remaining.IsZero())
}

func TestAssemble_RecentTransactionsOrderedAndTruncated(t *testing.T) {
	transactionRepo := &infrastructure.MockTransactionRepository{}
	for i := 0; i < 15; i++ {
		transactionRepo.Transactions = append(transactionRepo.Transactions, domain.Transaction{
			ID: string(rune('a' + i)), UserID: "user-1", Type: "expense", Amount: amount("1"),
			Category: "Food", RecordedAt: day(i),
		})
	}
	service := NewReportService(transactionRepo, &infrastructure.MockBudgetRepository{}, &MockRenderer{}, &MockEmailSender{})

	report, err := service.Assemble(domain.UserScope("user-1"))
	assert.NoError(t, err)
	assert.Len(t, report.RecentTransactions, 10)
	for i := 1; i < len(report.RecentTransactions); i++ {
		assert.False(t, report.RecentTransactions[i].RecordedAt.After(report.RecentTransactions[i-1].RecordedAt),
			"recent transactions must be ordered newest first")
	}
	assert.Equal(t, day(14), report.RecentTransactions[0].RecordedAt)
}

func TestAssembleAndDeliver_EmptyScopeStillDispatches(t *testing.T) {
	renderer := &MockRenderer{}
	mailer := &MockEmailSender{}
	service := NewReportService(&infrastructure.MockTransactionRepository{}, &infrastructure.MockBudgetRepository{}, renderer, mailer)

	err := service.AssembleAndDeliver(domain.UserScope("user-1"), "user@example.com")
	assert.NoError(t, err)

	assert.Len(t, renderer.Rendered, 1)
	rendered := renderer.Rendered[0]
	assert.True(t, rendered.TotalIncome.IsZero())
	assert.True(t, rendered.TotalExpenses.IsZero())
	assert.True(t, rendered.NetBalance.IsZero())
	assert.Empty(t, rendered.CategoryExpenses)
	assert.NotNil(t, rendered.CategoryExpenses)

	assert.Len(t, mailer.Sent, 1)
	sent := mailer.Sent[0]
	assert.Equal(t, "user@example.com", sent.To)
	assert.Equal(t, "Your Financial Report", sent.Subject)
	assert.Equal(t, "financial_report.pdf", sent.Filename)
	assert.NotEmpty(t, sent.Attachment)
	assert.Contains(t, sent.Body, "Total Income: $0.00")
	assert.Contains(t, sent.Body, "Net Balance: $0.00")
}

func TestAssembleAndDeliver_PropagatesDispatchFailure(t *testing.T) {
	mailer := &MockEmailSender{Err: assert.AnError}
	service := NewReportService(&infrastructure.MockTransactionRepository{}, &infrastructure.MockBudgetRepository{}, &MockRenderer{}, mailer)

	err := service.AssembleAndDeliver(domain.UserScope("user-1"), "user@example.com")
	assert.Error(t, err)
}

func TestAssembleAndDeliver_PropagatesRenderFailure(t *testing.T) {
	renderer := &MockRenderer{Err: assert.AnError}
	mailer := &MockEmailSender{}
	service := NewReportService(&infrastructure.MockTransactionRepository{}, &infrastructure.MockBudgetRepository{}, renderer, mailer)

	err := service.AssembleAndDeliver(domain.UserScope("user-1"), "user@example.com")
	assert.Error(t, err)
	assert.Empty(t, mailer.Sent, "nothing must be dispatched when rendering fails")
}

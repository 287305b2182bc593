package application

import (
	"fmt"
	"sort"
	"time"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
)

const recentTransactionsLimit = 10

type DocumentRenderer interface {
	Render(report domain.Report) ([]byte, error)
}

type EmailSender interface {
	SendWithAttachment(to, subject, body, filename string, attachment []byte) error
}

type ReportService struct {
	transactions domain.TransactionRepository
	budgets      domain.BudgetRepository
	renderer     DocumentRenderer
	mailer       EmailSender
}

func NewReportService(transactions domain.TransactionRepository, budgets domain.BudgetRepository, renderer DocumentRenderer, mailer EmailSender) *ReportService {
	return &ReportService{
		transactions: transactions,
		budgets:      budgets,
		renderer:     renderer,
		mailer:       mailer,
	}
}

// Assemble builds the report for one scope. Budget spent values are read as
// cached, the write-time recompute trigger keeps them current.
func (s *ReportService) Assemble(scope domain.Scope) (*domain.Report, error) {
	transactions, err := s.transactions.FindForScope(scope)
	if err != nil {
		return nil, err
	}

	totals := TotalsByKind(transactions)
	categoryExpenses := TotalsByCategory(transactions, domain.TransactionTypeExpense)

	budgets, err := s.budgets.FindForScope(scope)
	if err != nil {
		return nil, err
	}

	usage := make([]domain.BudgetUsage, 0, len(budgets))
	for _, budget := range budgets {
		status := domain.BudgetStatusWithin
		if budget.IsExceeded() {
			status = domain.BudgetStatusOver
		}
		usage = append(usage, domain.BudgetUsage{
			Category:  budget.Category,
			Limit:     budget.Limit,
			Spent:     budget.Spent,
			Remaining: budget.Remaining(),
			Status:    status,
		})
	}

	recent := make([]domain.Transaction, len(transactions))
	copy(recent, transactions)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].RecordedAt.After(recent[j].RecordedAt)
	})
	if len(recent) > recentTransactionsLimit {
		recent = recent[:recentTransactionsLimit]
	}

	return &domain.Report{
		GeneratedAt:        time.Now().UTC(),
		TotalIncome:        totals.Income,
		TotalExpenses:      totals.Expense,
		NetBalance:         totals.Net(),
		CategoryExpenses:   categoryExpenses,
		BudgetUsage:        usage,
		RecentTransactions: recent,
	}, nil
}

// AssembleAndDeliver renders the report to a fully buffered PDF and emails it.
// The dispatch attempt happens before this returns, so a send failure reaches
// the caller.
func (s *ReportService) AssembleAndDeliver(scope domain.Scope, recipient string) error {
	report, err := s.Assemble(scope)
	if err != nil {
		return err
	}

	document, err := s.renderer.Render(*report)
	if err != nil {
		return fmt.Errorf("error rendering report document: %w", err)
	}

	body := fmt.Sprintf(
		"Here is your financial report.\n\nTotal Income: $%s\nTotal Expenses: $%s\nNet Balance: $%s\n\nThe full report is attached as a PDF.",
		report.TotalIncome.StringFixed(2),
		report.TotalExpenses.StringFixed(2),
		report.NetBalance.StringFixed(2),
	)
	return s.mailer.SendWithAttachment(recipient, "Your Financial Report", body, "financial_report.pdf", document)
}

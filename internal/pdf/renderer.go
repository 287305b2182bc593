// Package pdf renders assembled financial reports to an in-memory PDF document.
package pdf

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	"github.com/jung-kurt/gofpdf"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the full report document: title header, generation date,
// financial summary, category expenses, budget usage, the 10 most recent
// transactions as a table, and a footer line. The whole document is buffered
// in memory before it is returned.
func (r *Renderer) Render(report domain.Report) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Arial", "I", 8)
		doc.SetTextColor(128, 128, 128)
		doc.CellFormat(0, 10, fmt.Sprintf("Finance Tracker - Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	doc.SetFont("Arial", "B", 18)
	doc.CellFormat(0, 12, "Financial Report", "", 1, "C", false, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(100, 100, 100)
	doc.CellFormat(0, 6, "Generated on "+report.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	r.writeSummary(doc, report)
	r.writeCategoryExpenses(doc, report)
	r.writeBudgetUsage(doc, report)
	r.writeTransactionsTable(doc, report)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeSummary(doc *gofpdf.Fpdf, report domain.Report) {
	r.sectionTitle(doc, "Financial Summary")

	doc.SetFont("Arial", "", 12)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 7, "Total Income: $"+report.TotalIncome.StringFixed(2), "", 1, "", false, 0, "")
	doc.CellFormat(0, 7, "Total Expenses: $"+report.TotalExpenses.StringFixed(2), "", 1, "", false, 0, "")

	if report.NetBalance.IsNegative() {
		doc.SetTextColor(200, 30, 30)
	} else {
		doc.SetTextColor(30, 140, 30)
	}
	doc.CellFormat(0, 7, "Net Balance: $"+report.NetBalance.StringFixed(2), "", 1, "", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(4)
}

func (r *Renderer) writeCategoryExpenses(doc *gofpdf.Fpdf, report domain.Report) {
	r.sectionTitle(doc, "Category Expenses")

	doc.SetFont("Arial", "", 12)
	doc.SetTextColor(0, 0, 0)
	if len(report.CategoryExpenses) == 0 {
		doc.CellFormat(0, 7, "No expenses recorded.", "", 1, "", false, 0, "")
		doc.Ln(4)
		return
	}

	// map iteration order is random, keep the document deterministic
	categories := make([]string, 0, len(report.CategoryExpenses))
	for category := range report.CategoryExpenses {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		doc.CellFormat(0, 7, fmt.Sprintf("%s: $%s", category, report.CategoryExpenses[category].StringFixed(2)), "", 1, "", false, 0, "")
	}
	doc.Ln(4)
}

func (r *Renderer) writeBudgetUsage(doc *gofpdf.Fpdf, report domain.Report) {
	r.sectionTitle(doc, "Budget Usage")

	doc.SetFont("Arial", "", 12)
	doc.SetTextColor(0, 0, 0)
	if len(report.BudgetUsage) == 0 {
		doc.CellFormat(0, 7, "No budgets configured.", "", 1, "", false, 0, "")
		doc.Ln(4)
		return
	}

	for _, usage := range report.BudgetUsage {
		doc.SetTextColor(0, 0, 0)
		line := fmt.Sprintf("%s: Limit $%s, Spent $%s, Remaining $%s",
			usage.Category, usage.Limit.StringFixed(2), usage.Spent.StringFixed(2), usage.Remaining.StringFixed(2))
		doc.CellFormat(140, 7, line, "", 0, "", false, 0, "")

		if usage.Status == domain.BudgetStatusOver {
			doc.SetTextColor(200, 30, 30)
		} else {
			doc.SetTextColor(30, 140, 30)
		}
		doc.CellFormat(0, 7, usage.Status, "", 1, "", false, 0, "")
	}
	doc.SetTextColor(0, 0, 0)
	doc.Ln(4)
}

func (r *Renderer) writeTransactionsTable(doc *gofpdf.Fpdf, report domain.Report) {
	r.sectionTitle(doc, "Recent Transactions")

	doc.SetFont("Arial", "B", 11)
	doc.SetFillColor(230, 230, 230)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(40, 8, "Date", "1", 0, "C", true, 0, "")
	doc.CellFormat(30, 8, "Type", "1", 0, "C", true, 0, "")
	doc.CellFormat(40, 8, "Amount", "1", 0, "C", true, 0, "")
	doc.CellFormat(80, 8, "Category", "1", 1, "C", true, 0, "")

	doc.SetFont("Arial", "", 11)
	if len(report.RecentTransactions) == 0 {
		doc.CellFormat(190, 8, "No transactions recorded.", "1", 1, "C", false, 0, "")
		doc.Ln(4)
		return
	}

	for _, transaction := range report.RecentTransactions {
		doc.CellFormat(40, 8, transaction.RecordedAt.Format("2006-01-02"), "1", 0, "", false, 0, "")
		doc.CellFormat(30, 8, transaction.Type, "1", 0, "", false, 0, "")
		doc.CellFormat(40, 8, "$"+transaction.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(80, 8, transaction.Category, "1", 1, "", false, 0, "")
	}
	doc.Ln(4)
}

func (r *Renderer) sectionTitle(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Arial", "BU", 14)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 9, title, "", 1, "", false, 0, "")
}

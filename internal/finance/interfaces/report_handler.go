package interfaces

import (
	"log"
	"net/http"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	"github.com/IreshEranga/Finance-Tracker/internal/user"
)

type ReportServiceInterface interface {
	Assemble(scope domain.Scope) (*domain.Report, error)
	AssembleAndDeliver(scope domain.Scope, recipient string) error
}

type ReportHandler struct {
	service      ReportServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewReportHandler(
	service ReportServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *ReportHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &ReportHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func scopeFor(requester *user.User) domain.Scope {
	if requester.IsAdmin() {
		return domain.GlobalScope()
	}
	return domain.UserScope(requester.ID)
}

func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	report, err := h.service.Assemble(scopeFor(requester))
	if err != nil {
		log.Printf("Error generating report: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error generating report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":            "Report generated successfully",
		"totalIncome":        report.TotalIncome,
		"totalExpenses":      report.TotalExpenses,
		"netBalance":         report.NetBalance,
		"categoryExpenses":   report.CategoryExpenses,
		"budgetUsage":        report.BudgetUsage,
		"recentTransactions": report.RecentTransactions,
	})
}

// EmailReport renders the requester's report to a PDF and emails it to their
// own registered address. The response is written only after the dispatch
// attempt, so a local send failure surfaces as 500.
func (h *ReportHandler) EmailReport(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.AssembleAndDeliver(scopeFor(requester), requester.Email); err != nil {
		log.Printf("Error generating and emailing PDF report: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error generating and emailing PDF report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Financial report emailed successfully!",
	})
}

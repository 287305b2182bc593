package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	financeErrors "github.com/IreshEranga/Finance-Tracker/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type BudgetServiceInterface interface {
	CreateBudget(budget *domain.Budget) error
	ListForScope(scope domain.Scope) ([]domain.Budget, error)
	UpdateBudgetLimit(requesterID, budgetID string, limit decimal.Decimal) (*domain.Budget, error)
	DeleteBudget(requesterID, budgetID string) error
}

type BudgetHandler struct {
	service      BudgetServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewBudgetHandler(
	service BudgetServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *BudgetHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &BudgetHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Category string          `json:"category"`
		Limit    decimal.Decimal `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget := domain.Budget{
		UserID:   requester.ID,
		Category: req.Category,
		Limit:    req.Limit,
	}
	if err := h.service.CreateBudget(&budget); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Error creating budget: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error creating budget")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Budget created successfully",
		"budget":  budget,
	})
}

func (h *BudgetHandler) GetBudgets(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	scope := domain.UserScope(requester.ID)
	if requester.IsAdmin() {
		scope = domain.GlobalScope()
	}
	budgets, err := h.service.ListForScope(scope)
	if err != nil {
		log.Printf("Error retrieving budgets: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error retrieving budgets")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Budgets load successfully",
		"budgets": budgets,
	})
}

func (h *BudgetHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Limit decimal.Decimal `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget, err := h.service.UpdateBudgetLimit(requester.ID, r.PathValue("id"), req.Limit)
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("Error updating budget: %v", err)
			h.respondError(w, status, "Error updating budget")
			return
		}
		h.respondError(w, status, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Budget updated successfully",
		"updatedBudget": budget,
	})
}

func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteBudget(requester.ID, r.PathValue("id")); err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("Error deleting budget: %v", err)
			h.respondError(w, status, "Error deleting budget")
			return
		}
		h.respondError(w, status, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Budget deleted",
	})
}

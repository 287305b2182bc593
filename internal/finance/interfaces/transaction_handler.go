package interfaces

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/application"
	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	financeErrors "github.com/IreshEranga/Finance-Tracker/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type TransactionServiceInterface interface {
	CreateTransaction(transaction *domain.Transaction) (*application.CreateResult, error)
	ListAllTransactions() ([]domain.TransactionWithOwner, error)
	ListUserTransactions(userID string) ([]domain.Transaction, error)
	UpdateTransaction(requesterID, transactionID string, patch application.TransactionPatch) (*domain.Transaction, error)
	DeleteTransaction(requesterID, transactionID string) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *TransactionHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Type        string          `json:"type"`
		Amount      decimal.Decimal `json:"amount"`
		Category    string          `json:"category"`
		Tags        []string        `json:"tags"`
		Description string          `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction := domain.Transaction{
		UserID:      requester.ID,
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Tags:        req.Tags,
		Description: req.Description,
	}
	result, err := h.service.CreateTransaction(&transaction)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Error during transaction creation: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error adding transaction")
		return
	}

	if result.BudgetExceeded {
		h.respondJSON(w, http.StatusOK, map[string]interface{}{
			"message":     fmt.Sprintf("Transaction added successfully, but WARNING: You exceeded the budget for %s!", transaction.Category),
			"transaction": result.Transaction,
		})
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Transaction added successfully",
		"transaction": result.Transaction,
	})
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload interface{}
	var err error
	if requester.IsAdmin() {
		payload, err = h.service.ListAllTransactions()
	} else {
		payload, err = h.service.ListUserTransactions(requester.ID)
	}
	if err != nil {
		log.Printf("Error retrieving transactions: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error retrieving transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Transactions load successfully",
		"transactions": payload,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch application.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateTransaction(requester.ID, r.PathValue("id"), patch)
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("Error updating transaction: %v", err)
			h.respondError(w, status, "Error updating transaction")
			return
		}
		h.respondError(w, status, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":            "Transaction updated successfully",
		"updatedTransaction": updated,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteTransaction(requester.ID, r.PathValue("id")); err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("Error deleting transaction: %v", err)
			h.respondError(w, status, "Error deleting transaction")
			return
		}
		h.respondError(w, status, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Transaction deleted",
	})
}

package application

import (
	"time"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	financeErrors "github.com/IreshEranga/Finance-Tracker/internal/finance/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetTracker is the invalidation hook fired after every transaction mutation
// that can change an (owner, category) expense sum.
type BudgetTracker interface {
	RecomputeSpent(userID, category string) (*domain.Budget, error)
}

type TransactionService struct {
	repo    domain.TransactionRepository
	budgets BudgetTracker
}

func NewTransactionService(repo domain.TransactionRepository, budgets BudgetTracker) *TransactionService {
	return &TransactionService{repo: repo, budgets: budgets}
}

// CreateResult reports whether the mutation pushed the matching budget over its
// limit. The transaction is persisted either way, the warning is advisory.
type CreateResult struct {
	Transaction    domain.Transaction
	BudgetExceeded bool
}

func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) (*CreateResult, error) {
	transaction.ID = uuid.NewString()
	if transaction.RecordedAt.IsZero() {
		transaction.RecordedAt = time.Now().UTC()
	}
	if transaction.Tags == nil {
		transaction.Tags = []string{}
	}
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(*transaction); err != nil {
		return nil, err
	}

	result := &CreateResult{Transaction: *transaction}
	if transaction.IsExpense() {
		budget, err := s.budgets.RecomputeSpent(transaction.UserID, transaction.Category)
		if err != nil {
			return nil, err
		}
		if budget != nil && budget.IsExceeded() {
			result.BudgetExceeded = true
		}
	}
	return result, nil
}

func (s *TransactionService) ListAllTransactions() ([]domain.TransactionWithOwner, error) {
	transactions, err := s.repo.FindAllWithOwners()
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.TransactionWithOwner{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) ListUserTransactions(userID string) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

// TransactionPatch carries the updatable fields, nil means "leave unchanged".
type TransactionPatch struct {
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Tags        *[]string        `json:"tags"`
	Description *string          `json:"description"`
}

func (s *TransactionService) UpdateTransaction(requesterID, transactionID string, patch TransactionPatch) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, financeErrors.ErrTransactionNotFound
	}
	if transaction.UserID != requesterID {
		return nil, financeErrors.ErrNotOwner
	}

	oldCategory := transaction.Category
	if patch.Type != nil {
		transaction.Type = *patch.Type
	}
	if patch.Amount != nil {
		transaction.Amount = *patch.Amount
	}
	if patch.Category != nil {
		transaction.Category = *patch.Category
	}
	if patch.Tags != nil {
		transaction.Tags = *patch.Tags
	}
	if patch.Description != nil {
		transaction.Description = *patch.Description
	}
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*transaction); err != nil {
		return nil, err
	}

	// Both the old and the new pair may have gained or lost expense membership.
	if _, err := s.budgets.RecomputeSpent(transaction.UserID, oldCategory); err != nil {
		return nil, err
	}
	if transaction.Category != oldCategory {
		if _, err := s.budgets.RecomputeSpent(transaction.UserID, transaction.Category); err != nil {
			return nil, err
		}
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(requesterID, transactionID string) error {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return financeErrors.ErrTransactionNotFound
	}
	if transaction.UserID != requesterID {
		return financeErrors.ErrNotOwner
	}

	if err := s.repo.Delete(transactionID); err != nil {
		return err
	}

	if transaction.IsExpense() {
		if _, err := s.budgets.RecomputeSpent(transaction.UserID, transaction.Category); err != nil {
			return err
		}
	}
	return nil
}

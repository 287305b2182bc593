package infrastructure

import (
	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	"github.com/shopspring/decimal"
)

// MockTransactionRepository is an in-memory repository for service and handler
// tests. Owners maps user id to (name, email) for the admin listing join.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	Owners       map[string]struct{ Name, Email string }
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) FindByID(transactionID string) (*domain.Transaction, error) {
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID {
			found := transaction
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (m *MockTransactionRepository) FindAllWithOwners() ([]domain.TransactionWithOwner, error) {
	var transactions []domain.TransactionWithOwner
	for _, transaction := range m.Transactions {
		withOwner := domain.TransactionWithOwner{Transaction: transaction}
		if owner, ok := m.Owners[transaction.UserID]; ok {
			withOwner.OwnerName = owner.Name
			withOwner.OwnerEmail = owner.Email
		}
		transactions = append(transactions, withOwner)
	}
	return transactions, nil
}

func (m *MockTransactionRepository) FindForScope(scope domain.Scope) ([]domain.Transaction, error) {
	if scope.IsGlobal() {
		return m.Transactions, nil
	}
	return m.FindByUser(scope.UserID)
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID {
			m.Transactions[i] = transaction
			return nil
		}
	}
	return nil
}

func (m *MockTransactionRepository) Delete(transactionID string) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockTransactionRepository) SumExpensesByUserAndCategory(userID, category string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && transaction.Category == category && transaction.Type == domain.TransactionTypeExpense {
			sum = sum.Add(transaction.Amount)
		}
	}
	return sum, nil
}

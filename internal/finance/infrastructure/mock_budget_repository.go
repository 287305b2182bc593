package infrastructure

import (
	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	"github.com/shopspring/decimal"
)

type MockBudgetRepository struct {
	Budgets []domain.Budget
}

func (m *MockBudgetRepository) Save(budget domain.Budget) error {
	m.Budgets = append(m.Budgets, budget)
	return nil
}

func (m *MockBudgetRepository) FindByID(budgetID string) (*domain.Budget, error) {
	for _, budget := range m.Budgets {
		if budget.ID == budgetID {
			found := budget
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockBudgetRepository) FindByUserAndCategory(userID, category string) (*domain.Budget, error) {
	for _, budget := range m.Budgets {
		if budget.UserID == userID && budget.Category == category {
			found := budget
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockBudgetRepository) FindForScope(scope domain.Scope) ([]domain.Budget, error) {
	if scope.IsGlobal() {
		return m.Budgets, nil
	}
	var budgets []domain.Budget
	for _, budget := range m.Budgets {
		if budget.UserID == scope.UserID {
			budgets = append(budgets, budget)
		}
	}
	return budgets, nil
}

func (m *MockBudgetRepository) UpdateLimit(budgetID string, limit decimal.Decimal) error {
	for i := range m.Budgets {
		if m.Budgets[i].ID == budgetID {
			m.Budgets[i].Limit = limit
			return nil
		}
	}
	return nil
}

func (m *MockBudgetRepository) UpdateSpent(budgetID string, spent decimal.Decimal) error {
	for i := range m.Budgets {
		if m.Budgets[i].ID == budgetID {
			m.Budgets[i].Spent = spent
			return nil
		}
	}
	return nil
}

func (m *MockBudgetRepository) Delete(budgetID string) error {
	for i := range m.Budgets {
		if m.Budgets[i].ID == budgetID {
			m.Budgets = append(m.Budgets[:i], m.Budgets[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockBudgetRepository) ExistsByUserAndCategory(userID, category string) (bool, error) {
	budget, err := m.FindByUserAndCategory(userID, category)
	return budget != nil, err
}

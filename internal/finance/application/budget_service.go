package application

import (
	"log"
	"sync"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	financeErrors "github.com/IreshEranga/Finance-Tracker/internal/finance/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetService struct {
	repo         domain.BudgetRepository
	transactions domain.TransactionRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex // one lock per (user, category) recompute key
}

func NewBudgetService(repo domain.BudgetRepository, transactions domain.TransactionRepository) *BudgetService {
	return &BudgetService{
		repo:         repo,
		transactions: transactions,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (s *BudgetService) recomputeLock(userID, category string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userID + "\x00" + category
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

func (s *BudgetService) CreateBudget(budget *domain.Budget) error {
	budget.ID = uuid.NewString()
	budget.Spent = decimal.Zero
	if err := budget.Validate(); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByUserAndCategory(budget.UserID, budget.Category)
	if err != nil {
		return err
	}
	if exists {
		return financeErrors.NewDuplicateBudgetError(budget.Category)
	}

	if err := s.repo.Save(*budget); err != nil {
		return err
	}

	// A budget created after transactions already exist starts with the real sum.
	refreshed, err := s.RecomputeSpent(budget.UserID, budget.Category)
	if err != nil {
		return err
	}
	if refreshed != nil {
		budget.Spent = refreshed.Spent
	}
	return nil
}

func (s *BudgetService) FindByOwnerAndCategory(userID, category string) (*domain.Budget, error) {
	return s.repo.FindByUserAndCategory(userID, category)
}

func (s *BudgetService) ListForScope(scope domain.Scope) ([]domain.Budget, error) {
	budgets, err := s.repo.FindForScope(scope)
	if err != nil {
		return nil, err
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

// RecomputeSpent refreshes the cached spent value from the expense sum of the
// matching transactions. Recomputes for the same (user, category) pair are
// serialized so concurrent mutations cannot lose an update. Returns nil when no
// budget exists for the pair.
func (s *BudgetService) RecomputeSpent(userID, category string) (*domain.Budget, error) {
	lock := s.recomputeLock(userID, category)
	lock.Lock()
	defer lock.Unlock()

	budget, err := s.repo.FindByUserAndCategory(userID, category)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, nil
	}

	spent, err := s.transactions.SumExpensesByUserAndCategory(userID, category)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateSpent(budget.ID, spent); err != nil {
		return nil, err
	}
	budget.Spent = spent
	return budget, nil
}

func (s *BudgetService) UpdateBudgetLimit(requesterID, budgetID string, limit decimal.Decimal) (*domain.Budget, error) {
	budget, err := s.repo.FindByID(budgetID)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, financeErrors.ErrBudgetNotFound
	}
	if budget.UserID != requesterID {
		return nil, financeErrors.ErrNotOwner
	}
	if limit.IsNegative() {
		return nil, financeErrors.NewValidationError("Limit must not be negative")
	}

	if err := s.repo.UpdateLimit(budget.ID, limit); err != nil {
		return nil, err
	}
	budget.Limit = limit
	return budget, nil
}

func (s *BudgetService) DeleteBudget(requesterID, budgetID string) error {
	budget, err := s.repo.FindByID(budgetID)
	if err != nil {
		return err
	}
	if budget == nil {
		return financeErrors.ErrBudgetNotFound
	}
	if budget.UserID != requesterID {
		return financeErrors.ErrNotOwner
	}
	return s.repo.Delete(budgetID)
}

// ReconcileAll recomputes every budget. Run from the scheduler as a safety net
// for recompute triggers missed while the process was down.
func (s *BudgetService) ReconcileAll() error {
	budgets, err := s.repo.FindForScope(domain.GlobalScope())
	if err != nil {
		return err
	}
	for _, budget := range budgets {
		if _, err := s.RecomputeSpent(budget.UserID, budget.Category); err != nil {
			log.Printf("Error reconciling budget %s (%s): %v", budget.ID, budget.Category, err)
		}
	}
	return nil
}

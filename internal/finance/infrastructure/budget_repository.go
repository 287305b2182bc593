package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	"github.com/shopspring/decimal"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Save(budget domain.Budget) error {
	_, err := r.db.Exec(
		`INSERT INTO budgets (id, user_id, category, spending_limit, spent)
        VALUES ($1, $2, $3, $4, $5)`,
		budget.ID, budget.UserID, budget.Category, budget.Limit, budget.Spent,
	)
	return err
}

func (r *BudgetRepository) FindByID(budgetID string) (*domain.Budget, error) {
	return r.queryBudget(
		`SELECT id, user_id, category, spending_limit, spent FROM budgets WHERE id = $1`, budgetID)
}

func (r *BudgetRepository) FindByUserAndCategory(userID, category string) (*domain.Budget, error) {
	return r.queryBudget(
		`SELECT id, user_id, category, spending_limit, spent FROM budgets
        WHERE user_id = $1 AND category = $2`, userID, category)
}

func (r *BudgetRepository) queryBudget(query string, args ...interface{}) (*domain.Budget, error) {
	var budget domain.Budget
	err := r.db.QueryRow(query, args...).
		Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Limit, &budget.Spent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &budget, nil
}

func (r *BudgetRepository) FindForScope(scope domain.Scope) ([]domain.Budget, error) {
	query := `SELECT id, user_id, category, spending_limit, spent FROM budgets`
	var args []interface{}
	if !scope.IsGlobal() {
		query += ` WHERE user_id = $1`
		args = append(args, scope.UserID)
	}
	query += ` ORDER BY category`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Limit, &budget.Spent); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) UpdateLimit(budgetID string, limit decimal.Decimal) error {
	_, err := r.db.Exec(`UPDATE budgets SET spending_limit = $1 WHERE id = $2`, limit, budgetID)
	return err
}

func (r *BudgetRepository) UpdateSpent(budgetID string, spent decimal.Decimal) error {
	_, err := r.db.Exec(`UPDATE budgets SET spent = $1 WHERE id = $2`, spent, budgetID)
	return err
}

func (r *BudgetRepository) Delete(budgetID string) error {
	_, err := r.db.Exec(`DELETE FROM budgets WHERE id = $1`, budgetID)
	return err
}

func (r *BudgetRepository) ExistsByUserAndCategory(userID, category string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM budgets WHERE user_id = $1 AND category = $2)`
	err := r.db.QueryRow(query, userID, category).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

package infrastructure

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction domain.Transaction) error {
	tags, err := json.Marshal(transaction.Tags)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO transactions (id, user_id, type, amount, category, tags, description, recorded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		transaction.ID, transaction.UserID, transaction.Type, transaction.Amount,
		transaction.Category, tags, transaction.Description, transaction.RecordedAt,
	)
	return err
}

func scanTransaction(row interface{ Scan(...interface{}) error }, transaction *domain.Transaction) error {
	var tags []byte
	if err := row.Scan(&transaction.ID, &transaction.UserID, &transaction.Type, &transaction.Amount,
		&transaction.Category, &tags, &transaction.Description, &transaction.RecordedAt); err != nil {
		return err
	}
	return json.Unmarshal(tags, &transaction.Tags)
}

func (r *TransactionRepository) FindByID(transactionID string) (*domain.Transaction, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, type, amount, category, tags, description, recorded_at
        FROM transactions WHERE id = $1`, transactionID)

	var transaction domain.Transaction
	if err := scanTransaction(row, &transaction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	return r.queryTransactions(
		`SELECT id, user_id, type, amount, category, tags, description, recorded_at
        FROM transactions WHERE user_id = $1 ORDER BY recorded_at DESC`, userID)
}

func (r *TransactionRepository) FindForScope(scope domain.Scope) ([]domain.Transaction, error) {
	if scope.IsGlobal() {
		return r.queryTransactions(
			`SELECT id, user_id, type, amount, category, tags, description, recorded_at
            FROM transactions ORDER BY recorded_at DESC`)
	}
	return r.FindByUser(scope.UserID)
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := scanTransaction(rows, &transaction); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindAllWithOwners() ([]domain.TransactionWithOwner, error) {
	rows, err := r.db.Query(
		`SELECT t.id, t.user_id, t.type, t.amount, t.category, t.tags, t.description, t.recorded_at, u.name, u.email
        FROM transactions t
        JOIN users u ON u.id = t.user_id
        ORDER BY t.recorded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.TransactionWithOwner
	for rows.Next() {
		var transaction domain.TransactionWithOwner
		var tags []byte
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.Type, &transaction.Amount,
			&transaction.Category, &tags, &transaction.Description, &transaction.RecordedAt,
			&transaction.OwnerName, &transaction.OwnerEmail); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(tags, &transaction.Tags); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) Update(transaction domain.Transaction) error {
	tags, err := json.Marshal(transaction.Tags)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`UPDATE transactions SET type = $1, amount = $2, category = $3, tags = $4, description = $5
        WHERE id = $6`,
		transaction.Type, transaction.Amount, transaction.Category, tags, transaction.Description, transaction.ID,
	)
	return err
}

func (r *TransactionRepository) Delete(transactionID string) error {
	_, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1`, transactionID)
	return err
}

func (r *TransactionRepository) SumExpensesByUserAndCategory(userID, category string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
        WHERE user_id = $1 AND category = $2 AND type = 'expense'`,
		userID, category,
	).Scan(&sum)
	return sum, err
}

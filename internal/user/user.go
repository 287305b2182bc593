package user

import (
	"database/sql"
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // "user" or "admin"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Repository interface {
	getUserByID(id string) (*User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{db: db}
}

func (r *userRepository) getUserByID(id string) (*User, error) {
	var u User
	query := `SELECT id, name, email, role FROM users WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

type Service interface {
	GetUserByID(id string) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetUserByID(id string) (*User, error) {
	return s.repo.getUserByID(id)
}

package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string {
	return e.Msg
}

func NewAuthorizationError(msg string) error {
	return &AuthorizationError{Msg: msg}
}

func IsAuthorizationError(err error) bool {
	var authorizationError *AuthorizationError
	ok := errors.As(err, &authorizationError)
	return ok
}

var ErrTransactionNotFound = NewNotFoundError("Transaction not found")
var ErrBudgetNotFound = NewNotFoundError("Budget not found")
var ErrNotOwner = NewAuthorizationError("Unauthorized")

func NewDuplicateBudgetError(category string) error {
	return NewValidationError(fmt.Sprintf("Budget already exists for category '%s'", category))
}

package models

import (
	"errors"
	"strings"
)

// Sentinel errors shared by the controllers. Handlers translate these to
// HTTP statuses at the boundary.
var (
	ErrItemNotFound      = errors.New("item not found")
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartItemNotFound  = errors.New("item not found in cart")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUser     = errors.New("user already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidOrder      = errors.New("invalid order data")
	ErrTotalMismatch     = errors.New("order total does not match server-side total")
)

type validationError struct {
	problems []string
}

func (e validationError) Error() string {
	return "invalid order data: " + strings.Join(e.problems, "; ")
}

func (e validationError) Is(target error) bool {
	return target == ErrInvalidOrder
}

// Problems exposes the individual field messages of a validation error,
// or nil if err is not one.
func Problems(err error) []string {
	var v validationError
	if errors.As(err, &v) {
		return v.problems
	}
	return nil
}

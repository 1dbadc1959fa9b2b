package service

import "errors"

// Sentinel errors returned by services. Handlers and middleware map these
// to HTTP status codes and stable error codes with errors.Is.
var (
	// Token verification
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is malformed or invalid")

	// Authentication
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrWrongPassword      = errors.New("current password is incorrect")

	// Transactions
	ErrInvalidDateFormat      = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")
	ErrInvalidCategory        = errors.New("unknown category for transaction type")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")

	// Generic
	ErrNotFound = errors.New("resource not found")
)

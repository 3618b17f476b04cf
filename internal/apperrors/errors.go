package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a failed login or a missing/unknown session identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInsufficientFunds indicates a wallet operation that would require funds
// the wallet does not hold, e.g. a debit against a wallet that does not exist.
var ErrInsufficientFunds = errors.New("insufficient funds")

package transaction

import "errors"

// Service errors
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrDuplicateTransaction = errors.New("duplicate transaction")
	ErrCardNotFound         = errors.New("card not found")
	ErrCardExpired          = errors.New("card expired")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrNoCards              = errors.New("customer has no cards")
	ErrStatementNotFound    = errors.New("statement not found")
)

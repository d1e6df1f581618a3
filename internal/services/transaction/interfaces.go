package transaction

import (
	"context"
	"time"
)

// Cache is the caching surface the service needs. Satisfied by
// cache.CacheService; mocked in tests.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Service is the transaction lifecycle contract consumed by the transport layer.
type Service interface {
	// CRUD
	Add(ctx context.Context, txn *Transaction) (*Transaction, error)
	Save(ctx context.Context, txn *Transaction) (*Transaction, error)
	FindAll(ctx context.Context) ([]Transaction, error)
	FindByID(ctx context.Context, id uint) (*Transaction, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error

	// Authorization
	Authorize(ctx context.Context, cardNumber string, amount float64, description string) (*Transaction, error)

	// History
	HistoryByCard(ctx context.Context, cardNumber string) ([]Transaction, error)
	HistoryByCustomer(ctx context.Context, userID string) ([]Transaction, error)
	HistoryForStatement(ctx context.Context, statementID uint) ([]Transaction, error)
}

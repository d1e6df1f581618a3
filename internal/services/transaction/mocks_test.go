package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cardledger/internal/models"

	"github.com/stretchr/testify/mock"
)

var errCacheMiss = errors.New("cache miss")

type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(txn *models.Transaction) error {
	args := m.Called(txn)
	return args.Error(0)
}

func (m *MockTransactionRepo) Save(txn *models.Transaction) error {
	args := m.Called(txn)
	return args.Error(0)
}

func (m *MockTransactionRepo) DeleteByID(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTransactionRepo) FindByID(id uint) (*models.Transaction, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) ExistsByID(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepo) FindAll() ([]models.Transaction, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) FindByCardNumber(cardNumber string) ([]models.Transaction, error) {
	args := m.Called(cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

type MockCardRepo struct {
	mock.Mock
}

func (m *MockCardRepo) FindByNumber(cardNumber string) (*models.Card, error) {
	args := m.Called(cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepo) FindAll() ([]models.Card, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockCardRepo) FindByCustomerID(customerID string) ([]models.Card, error) {
	args := m.Called(customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockCardRepo) Reserve(cardNumber string, amount float64) (bool, error) {
	args := m.Called(cardNumber, amount)
	return args.Bool(0), args.Error(1)
}

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) FindByID(userID string) (*models.Customer, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

type MockStatementRepo struct {
	mock.Mock
}

func (m *MockStatementRepo) FindByID(statementID uint) (*models.Statement, error) {
	args := m.Called(statementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Statement), args.Error(1)
}

func (m *MockStatementRepo) FindByCardNumber(cardNumber string) ([]models.Statement, error) {
	args := m.Called(cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Statement), args.Error(1)
}

// noopCache drops writes and always misses; cache behavior is covered
// separately where it matters.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) error {
	return errCacheMiss
}

func (noopCache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (noopCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}

// mapCache is an in-memory stand-in for the Redis-backed cache service.
type mapCache struct {
	data map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (c *mapCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := c.data[key]
	if !ok {
		return errCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *mapCache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *mapCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.data, key)
	}
	return nil
}

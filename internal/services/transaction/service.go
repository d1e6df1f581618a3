package transaction

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cardledger/internal/models"
	"cardledger/internal/repositories"

	"github.com/google/uuid"
)

type service struct {
	txns       repositories.TransactionRepository
	cards      repositories.CardRepository
	customers  repositories.CustomerRepository
	statements repositories.StatementRepository
	cache      Cache
	now        func() time.Time
}

// NewService creates the transaction service with its storage and cache
// collaborators.
func NewService(
	txns repositories.TransactionRepository,
	cards repositories.CardRepository,
	customers repositories.CustomerRepository,
	statements repositories.StatementRepository,
	cache Cache,
) Service {
	if txns == nil {
		panic("transaction repository is required")
	}
	if cards == nil {
		panic("card repository is required")
	}
	if customers == nil {
		panic("customer repository is required")
	}
	if statements == nil {
		panic("statement repository is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	return &service{
		txns:       txns,
		cards:      cards,
		customers:  customers,
		statements: statements,
		cache:      cache,
		now:        time.Now,
	}
}

// Add persists a new transaction. A nil input is a no-op, not an error; the
// permissive contract belongs to administrative batch callers that feed
// optional records.
func (s *service) Add(ctx context.Context, txn *Transaction) (*Transaction, error) {
	if txn == nil {
		return nil, nil
	}

	exists, err := s.txns.ExistsByID(txn.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: transaction %d already exists", ErrDuplicateTransaction, txn.TransactionID)
	}

	entity := toEntity(txn)
	if err := s.txns.Create(entity); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.cacheTransaction(ctx, entity)
	return toModel(entity), nil
}

// Save upserts the transaction unconditionally.
func (s *service) Save(ctx context.Context, txn *Transaction) (*Transaction, error) {
	if txn == nil {
		return nil, fmt.Errorf("%w: transaction details cannot be nil", ErrInvalidInput)
	}

	entity := toEntity(txn)
	if err := s.txns.Save(entity); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.cacheTransaction(ctx, entity)
	return toModel(entity), nil
}

func (s *service) FindAll(ctx context.Context) ([]Transaction, error) {
	entities, err := s.txns.FindAll()
	if err != nil {
		return nil, err
	}
	return toModels(entities), nil
}

// FindByID returns the transaction, or (nil, nil) when the existence check
// passed but the fetch came back empty. That fallback papers over a store
// inconsistency; callers must tolerate a nil result.
func (s *service) FindByID(ctx context.Context, id uint) (*Transaction, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: transaction id is required", ErrInvalidInput)
	}

	exists, err := s.txns.ExistsByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: transaction %d does not exist", ErrTransactionNotFound, id)
	}

	var cached Transaction
	if err := s.cache.Get(ctx, cacheKey(id), &cached); err == nil {
		return &cached, nil
	}

	entity, err := s.txns.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	s.cacheTransaction(ctx, entity)
	return toModel(entity), nil
}

func (s *service) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, fmt.Errorf("%w: transaction id is required", ErrInvalidInput)
	}
	return s.txns.ExistsByID(id)
}

func (s *service) DeleteByID(ctx context.Context, id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: transaction id is required", ErrInvalidInput)
	}

	exists, err := s.txns.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check transaction: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: transaction %d does not exist", ErrTransactionNotFound, id)
	}

	if err := s.txns.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if err := s.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Printf("failed to invalidate transaction cache: %v", err)
	}
	return nil
}

// Authorize validates a purchase against the card's credit limit and records
// the outcome. The credit check runs as a single conditional update in the
// card store, so concurrent attempts on one card cannot both pass on a stale
// used limit. A rejected attempt still persists a zero-amount FAILED record
// for audit.
func (s *service) Authorize(ctx context.Context, cardNumber string, amount float64, description string) (*Transaction, error) {
	if cardNumber == "" {
		return nil, fmt.Errorf("%w: card number is required", ErrInvalidInput)
	}

	card, err := s.cards.FindByNumber(cardNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, fmt.Errorf("%w: card %s does not exist", ErrCardNotFound, cardNumber)
		}
		return nil, err
	}

	now := s.now()
	if card.Expired(now) {
		return nil, fmt.Errorf("%w: card %s expired on %s", ErrCardExpired, card.CardNumber, card.ExpiryDate.Format("2006-01-02"))
	}

	// Date and time are captured once, here; the stored record reflects the
	// moment of authorization, not of persistence.
	entity := &models.Transaction{
		TransactionID: 0,
		CardNumber:    cardNumber,
		Date:          time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Time:          now.Format(models.TimeLayout),
		Description:   description,
		Reference:     uuid.NewString(),
	}

	reserved, err := s.cards.Reserve(cardNumber, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve credit: %w", err)
	}
	if reserved {
		entity.Amount = amount
		entity.Status = models.StatusSuccessful
	} else {
		entity.Amount = 0
		entity.Status = models.StatusFailed
	}

	if err := s.txns.Create(entity); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.cacheTransaction(ctx, entity)
	return toModel(entity), nil
}

// cacheTransaction is best effort; a cache failure never fails the operation.
func (s *service) cacheTransaction(ctx context.Context, entity *models.Transaction) {
	if err := s.cache.SetWithTTL(ctx, cacheKey(entity.TransactionID), toModel(entity), CacheTTL); err != nil {
		log.Printf("failed to cache transaction %d: %v", entity.TransactionID, err)
	}
}

func cacheKey(id uint) string {
	return fmt.Sprintf("%s%d", TransactionCachePrefix, id)
}

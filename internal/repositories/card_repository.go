package repositories

import (
	"errors"

	"cardledger/internal/models"
)

var (
	ErrCardNotFound = errors.New("card not found")
)

type CardRepository interface {
	// Core operations
	FindByNumber(cardNumber string) (*models.Card, error)
	FindAll() ([]models.Card, error)

	// Query operations
	FindByCustomerID(customerID string) ([]models.Card, error)

	// Reserve atomically raises the card's used limit by amount when the
	// projected usage stays strictly below the credit limit. Returns false
	// when the reservation was rejected.
	Reserve(cardNumber string, amount float64) (bool, error)
}

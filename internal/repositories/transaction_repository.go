package repositories

import (
	"errors"

	"cardledger/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

type TransactionRepository interface {
	// Core operations
	Create(txn *models.Transaction) error
	Save(txn *models.Transaction) error
	DeleteByID(id uint) error

	// Query operations
	FindByID(id uint) (*models.Transaction, error)
	ExistsByID(id uint) (bool, error)
	FindAll() ([]models.Transaction, error)
	FindByCardNumber(cardNumber string) ([]models.Transaction, error)
}

package repositories

import (
	"errors"
	"fmt"

	"cardledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

type CustomerRepository interface {
	// FindByID loads the customer with their cards attached.
	FindByID(userID string) (*models.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

func (r *customerRepository) FindByID(userID string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Preload("Cards").First(&customer, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

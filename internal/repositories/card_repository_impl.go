package repositories

import (
	"fmt"

	"cardledger/internal/models"

	"gorm.io/gorm"
)

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{
		db: db,
	}
}

func (r *cardRepository) FindByNumber(cardNumber string) (*models.Card, error) {
	var card models.Card
	if err := r.db.First(&card, "card_number = ?", cardNumber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) FindAll() ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.Order("card_number").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

func (r *cardRepository) FindByCustomerID(customerID string) ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.Where("customer_id = ?", customerID).Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get customer cards: %w", err)
	}
	return cards, nil
}

// Reserve pushes the credit check into a single conditional UPDATE so two
// concurrent authorizations against the same card cannot both pass on a
// stale used limit. Strict inequality: projected usage equal to the credit
// limit is rejected.
func (r *cardRepository) Reserve(cardNumber string, amount float64) (bool, error) {
	result := r.db.Model(&models.Card{}).
		Where("card_number = ? AND used_limit + ? < credit_limit", cardNumber, amount).
		Update("used_limit", gorm.Expr("used_limit + ?", amount))
	if result.Error != nil {
		return false, fmt.Errorf("failed to reserve amount: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

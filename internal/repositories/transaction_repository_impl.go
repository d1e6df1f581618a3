package repositories

import (
	"fmt"

	"cardledger/internal/models"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) Create(txn *models.Transaction) error {
	return r.db.Create(txn).Error
}

func (r *transactionRepository) Save(txn *models.Transaction) error {
	return r.db.Save(txn).Error
}

func (r *transactionRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&models.Transaction{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) FindByID(id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.First(&txn, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

func (r *transactionRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).Where("transaction_id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check transaction: %w", err)
	}
	return count > 0, nil
}

func (r *transactionRepository) FindAll() ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := r.db.Order("transaction_id").Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) FindByCardNumber(cardNumber string) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := r.db.Where("card_number = ?", cardNumber).Order("transaction_id").Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("failed to list card transactions: %w", err)
	}
	return txns, nil
}

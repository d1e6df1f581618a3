package repositories

import (
	"errors"
	"fmt"

	"cardledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrStatementNotFound = errors.New("statement not found")
)

type StatementRepository interface {
	FindByID(statementID uint) (*models.Statement, error)
	FindByCardNumber(cardNumber string) ([]models.Statement, error)
}

type statementRepository struct {
	db *gorm.DB
}

func NewStatementRepository(db *gorm.DB) StatementRepository {
	return &statementRepository{
		db: db,
	}
}

func (r *statementRepository) FindByID(statementID uint) (*models.Statement, error) {
	var statement models.Statement
	if err := r.db.First(&statement, statementID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}
	return &statement, nil
}

func (r *statementRepository) FindByCardNumber(cardNumber string) ([]models.Statement, error) {
	var statements []models.Statement
	if err := r.db.Where("card_number = ?", cardNumber).Order("bill_date DESC").Find(&statements).Error; err != nil {
		return nil, fmt.Errorf("failed to list card statements: %w", err)
	}
	return statements, nil
}

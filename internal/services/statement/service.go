// Package statement exposes read-side statement operations. Statements are
// generated by the billing cycle job; this service only resolves them.
package statement

import (
	"context"
	"errors"
	"fmt"

	"cardledger/internal/models"
	"cardledger/internal/repositories"
)

var (
	ErrStatementNotFound = errors.New("statement not found")
)

type Service interface {
	GetStatement(ctx context.Context, statementID uint) (*models.Statement, error)
	GetCardStatements(ctx context.Context, cardNumber string) ([]models.Statement, error)
}

type service struct {
	repo repositories.StatementRepository
}

func NewService(repo repositories.StatementRepository) Service {
	if repo == nil {
		panic("statement repository is required")
	}
	return &service{
		repo: repo,
	}
}

func (s *service) GetStatement(ctx context.Context, statementID uint) (*models.Statement, error) {
	statement, err := s.repo.FindByID(statementID)
	if err != nil {
		if errors.Is(err, repositories.ErrStatementNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrStatementNotFound, statementID)
		}
		return nil, err
	}
	return statement, nil
}

func (s *service) GetCardStatements(ctx context.Context, cardNumber string) ([]models.Statement, error) {
	return s.repo.FindByCardNumber(cardNumber)
}

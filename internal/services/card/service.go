// Package card exposes read-side card operations. Card provisioning lives in
// a separate back-office flow; this service only reports on what it issued.
package card

import (
	"context"
	"errors"
	"fmt"

	"cardledger/internal/models"
	"cardledger/internal/repositories"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrNoCards      = errors.New("customer has no cards")
)

type Service interface {
	GetCard(ctx context.Context, cardNumber string) (*models.Card, error)
	ListCards(ctx context.Context) ([]models.Card, error)
	GetCustomerCards(ctx context.Context, customerID string) ([]models.Card, error)
	AvailableCredit(ctx context.Context, cardNumber string) (float64, error)
}

type service struct {
	repo repositories.CardRepository
}

func NewService(repo repositories.CardRepository) Service {
	if repo == nil {
		panic("card repository is required")
	}
	return &service{
		repo: repo,
	}
}

func (s *service) GetCard(ctx context.Context, cardNumber string) (*models.Card, error) {
	card, err := s.repo.FindByNumber(cardNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCardNotFound, cardNumber)
		}
		return nil, err
	}
	return card, nil
}

func (s *service) ListCards(ctx context.Context) ([]models.Card, error) {
	return s.repo.FindAll()
}

func (s *service) GetCustomerCards(ctx context.Context, customerID string) ([]models.Card, error) {
	cards, err := s.repo.FindByCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: customer %s", ErrNoCards, customerID)
	}
	return cards, nil
}

func (s *service) AvailableCredit(ctx context.Context, cardNumber string) (float64, error) {
	card, err := s.GetCard(ctx, cardNumber)
	if err != nil {
		return 0, err
	}
	return card.AvailableCredit(), nil
}

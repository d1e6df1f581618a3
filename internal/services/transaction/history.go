package transaction

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cardledger/internal/repositories"
)

// HistoryByCard returns every transaction recorded against the card, in
// storage order.
func (s *service) HistoryByCard(ctx context.Context, cardNumber string) ([]Transaction, error) {
	if cardNumber == "" {
		return nil, fmt.Errorf("%w: card number is required", ErrInvalidInput)
	}

	entities, err := s.txns.FindByCardNumber(cardNumber)
	if err != nil {
		return nil, err
	}
	return toModels(entities), nil
}

// HistoryByCustomer combines the histories of all the customer's cards,
// most recent first. Ties on date are broken by later time first.
func (s *service) HistoryByCustomer(ctx context.Context, userID string) ([]Transaction, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	customer, err := s.customers.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, fmt.Errorf("%w: customer %s does not exist", ErrCustomerNotFound, userID)
		}
		return nil, err
	}
	if len(customer.Cards) == 0 {
		return nil, fmt.Errorf("%w: customer %s", ErrNoCards, userID)
	}

	combined := make([]Transaction, 0)
	for _, card := range customer.Cards {
		history, err := s.HistoryByCard(ctx, card.CardNumber)
		if err != nil {
			return nil, err
		}
		combined = append(combined, history...)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		a, b := combined[i], combined[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Time < b.Time
	})
	for i, j := 0, len(combined)-1; i < j; i, j = i+1, j-1 {
		combined[i], combined[j] = combined[j], combined[i]
	}
	return combined, nil
}

// HistoryForStatement returns the statement card's transactions dated inside
// the one-month window ending at (and excluding) the bill date, in storage
// order.
func (s *service) HistoryForStatement(ctx context.Context, statementID uint) ([]Transaction, error) {
	if statementID == 0 {
		return nil, fmt.Errorf("%w: statement id is required", ErrInvalidInput)
	}

	statement, err := s.statements.FindByID(statementID)
	if err != nil {
		if errors.Is(err, repositories.ErrStatementNotFound) {
			return nil, fmt.Errorf("%w: statement %d does not exist", ErrStatementNotFound, statementID)
		}
		return nil, err
	}

	card, err := s.cards.FindByNumber(statement.CardNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, fmt.Errorf("%w: card %s does not exist", ErrCardNotFound, statement.CardNumber)
		}
		return nil, err
	}

	entities, err := s.txns.FindByCardNumber(card.CardNumber)
	if err != nil {
		return nil, err
	}

	history := make([]Transaction, 0)
	for i := range entities {
		e := &entities[i]
		if e.Date.Before(statement.BillDate) && plusOneMonth(e.Date).After(statement.BillDate) {
			history = append(history, *toModel(e))
		}
	}
	return history, nil
}

// plusOneMonth adds a calendar month, clamping to the last day of the target
// month: Jan 31 + 1 month is Feb 29 (or Feb 28), never Mar 2 or Mar 3.
func plusOneMonth(d time.Time) time.Time {
	y, m, _ := d.Date()
	first := time.Date(y, m+1, 1, 0, 0, 0, 0, d.Location())
	day := d.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, d.Location())
}

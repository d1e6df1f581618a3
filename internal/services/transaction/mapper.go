package transaction

import "cardledger/internal/models"

// Pure entity<->model transforms. Kept side-effect free so a round trip
// preserves every field.

func toModel(e *models.Transaction) *Transaction {
	if e == nil {
		return nil
	}
	return &Transaction{
		TransactionID: e.TransactionID,
		CardNumber:    e.CardNumber,
		Date:          e.Date,
		Time:          e.Time,
		Amount:        e.Amount,
		Description:   e.Description,
		Status:        e.Status,
		Reference:     e.Reference,
	}
}

func toEntity(m *Transaction) *models.Transaction {
	if m == nil {
		return nil
	}
	return &models.Transaction{
		TransactionID: m.TransactionID,
		CardNumber:    m.CardNumber,
		Date:          m.Date,
		Time:          m.Time,
		Amount:        m.Amount,
		Description:   m.Description,
		Status:        m.Status,
		Reference:     m.Reference,
	}
}

func toModels(entities []models.Transaction) []Transaction {
	out := make([]Transaction, 0, len(entities))
	for i := range entities {
		out = append(out, *toModel(&entities[i]))
	}
	return out
}

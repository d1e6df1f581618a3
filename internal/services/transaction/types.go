package transaction

import (
	"time"

	"cardledger/internal/models"
)

// Transaction is the service-facing representation of a stored transaction.
// Handlers and other services work with this shape; the storage entity never
// leaves the repository boundary.
type Transaction struct {
	TransactionID uint                     `json:"transaction_id"`
	CardNumber    string                   `json:"card_number"`
	Date          time.Time                `json:"date"`
	Time          string                   `json:"time"`
	Amount        float64                  `json:"amount"`
	Description   string                   `json:"description"`
	Status        models.TransactionStatus `json:"status"`
	Reference     string                   `json:"reference"`
}

// AuthorizeRequest carries the inputs of an authorization attempt.
type AuthorizeRequest struct {
	CardNumber  string  `json:"card_number"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

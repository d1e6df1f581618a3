package models

import "time"

// TransactionStatus is the closed set of authorization outcomes.
type TransactionStatus string

const (
	StatusSuccessful TransactionStatus = "SUCCESSFUL"
	StatusFailed     TransactionStatus = "FAILED"
)

// TimeLayout is the wire format for a transaction's time of day. Fixed-width,
// so lexicographic order equals chronological order.
const TimeLayout = "15:04:05"

// Transaction is the stored authorization record. TransactionID 0 means
// "assign on save"; the database allocates the real id.
type Transaction struct {
	TransactionID uint              `gorm:"primarykey" json:"transaction_id"`
	CardNumber    string            `gorm:"not null;index" json:"card_number"`
	Date          time.Time         `gorm:"not null" json:"date"`
	Time          string            `gorm:"not null" json:"time"`
	Amount        float64           `gorm:"not null" json:"amount"`
	Description   string            `json:"description"`
	Status        TransactionStatus `gorm:"not null" json:"status"`
	Reference     string            `gorm:"index" json:"reference"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

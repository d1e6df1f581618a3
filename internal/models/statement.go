package models

import "time"

// Statement is a monthly bill for a single card. BillDate marks the end of
// the billing window; transactions from the month before it belong to the bill.
type Statement struct {
	StatementID uint      `gorm:"primarykey" json:"statement_id"`
	CardNumber  string    `gorm:"not null;index" json:"card_number"`
	BillDate    time.Time `gorm:"not null" json:"bill_date"`
	DueAmount   float64   `gorm:"default:0" json:"due_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

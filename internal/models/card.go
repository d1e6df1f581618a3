package models

import "time"

// Card represents an issued credit card. Cards are provisioned out of band;
// this service only reads them and adjusts UsedLimit during authorization.
type Card struct {
	CardNumber  string    `gorm:"primarykey" json:"card_number"`
	CardName    string    `json:"card_name"`
	CardType    string    `json:"card_type"`
	ExpiryDate  time.Time `gorm:"not null" json:"expiry_date"`
	CreditLimit float64   `gorm:"not null" json:"credit_limit"`
	UsedLimit   float64   `gorm:"not null;default:0" json:"used_limit"`
	CustomerID  string    `gorm:"index" json:"customer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Expired reports whether the card's expiry date falls strictly before the
// given day. The comparison is date-only; the time component is ignored.
func (c *Card) Expired(today time.Time) bool {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ey, em, ed := c.ExpiryDate.Date()
	expiry := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return expiry.Before(day)
}

// AvailableCredit is the portion of the credit limit not yet consumed.
func (c *Card) AvailableCredit() float64 {
	return c.CreditLimit - c.UsedLimit
}

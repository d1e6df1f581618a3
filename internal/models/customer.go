package models

import "time"

// Customer owns zero or more cards. The association is referential only;
// card storage is managed by the provisioning flow.
type Customer struct {
	UserID    string    `gorm:"primarykey" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Phone     string    `json:"phone"`
	Cards     []Card    `gorm:"foreignKey:CustomerID;references:UserID" json:"cards,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

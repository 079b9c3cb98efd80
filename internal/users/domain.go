package users

import "time"

// Roles recognized by the API.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User represents an account that can authenticate and place sales.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:customer"`
	CreatedAt    time.Time `json:"created_at"`
}

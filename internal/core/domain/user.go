package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole distinguishes regular users from P2P merchants.
type UserRole string

const (
	UserRoleUser     UserRole = "user"
	UserRoleMerchant UserRole = "merchant"
)

// User is an account holder. Wallets and bank accounts hang off a user;
// merchants additionally take the counterparty side of P2P orders.
type User struct {
	ID           uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsMerchant reports whether the user can act as a P2P merchant.
func (u *User) IsMerchant() bool {
	return u.Role == UserRoleMerchant
}

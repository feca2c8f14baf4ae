package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the local record of an identity-provider account.
//
// ClerkID is the unique key; ID and CreatedAt are assigned by the store.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ClerkID   string    `json:"clerk_id" db:"clerk_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

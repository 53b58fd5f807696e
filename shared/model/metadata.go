package model

import "time"

// Metadata holds the store-owned timestamps. Clients never supply these.
type Metadata struct {
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

package client

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("client not found")

// TrustRating is derived from the client's loan history and is written only
// by the ledger recompute path. Nothing else may set it.
type Client struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	ClientID    string    `gorm:"size:36;uniqueIndex:ux_clients_client_id" json:"client_id"`
	Name        string    `gorm:"size:120" json:"name"`
	Email       string    `gorm:"size:120" json:"email"`
	Phone       string    `gorm:"size:32" json:"phone"`
	Address     string    `gorm:"size:255" json:"address"`
	TrustRating int       `gorm:"column:trust_rating" json:"trust_rating"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

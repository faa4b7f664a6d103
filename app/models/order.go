package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// CartItem is one line of an order as submitted by the client.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

// CartItems stores the submitted cart as a JSON text column and round-trips
// it unchanged through the API.
type CartItems json.RawMessage

func (c CartItems) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	return string(c), nil
}

func (c *CartItems) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = CartItems("[]")
	case string:
		*c = CartItems(v)
	case []byte:
		*c = CartItems(append([]byte(nil), v...))
	default:
		return fmt.Errorf("models: cannot scan %T into CartItems", src)
	}
	return nil
}

func (c CartItems) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("[]"), nil
	}
	return c, nil
}

func (c *CartItems) UnmarshalJSON(data []byte) error {
	if c == nil {
		return errors.New("models: CartItems: unmarshal into nil pointer")
	}
	*c = CartItems(append([]byte(nil), data...))
	return nil
}

// Order is a placed order. IDs look like ORD-3F2A9C; Status moves through
// PENDING, APPROVED, REJECTED, SHIPPED, DELIVERED.
type Order struct {
	ID         string    `gorm:"primaryKey;size:32" json:"id"`
	UserID     string    `gorm:"column:userId;size:64;not null;index" json:"userId"`
	Username   string    `gorm:"size:255" json:"username"`
	Items      CartItems `gorm:"type:text" json:"items"`
	TotalPrice float64   `gorm:"column:totalPrice;not null" json:"totalPrice"`
	Status     string    `gorm:"size:32;not null;default:PENDING" json:"status"`
	CreatedAt  string    `gorm:"column:createdAt;size:64" json:"createdAt"`
}

func (Order) TableName() string { return "orders" }

package services

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/ibomiri431-oss/metra-feer/app/models"
	"github.com/ibomiri431-oss/metra-feer/app/repositories"
)

// OrderService handles order placement and the admin order workflow.
type OrderService struct {
	orders *repositories.OrderRepository
}

func NewOrderService(orders *repositories.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// ListForUser returns the caller's orders, newest first.
func (s *OrderService) ListForUser(userID string) ([]models.Order, error) {
	return s.orders.ListByUser(userID)
}

// ListAll returns every order for the admin panel, newest first.
func (s *OrderService) ListAll() ([]models.Order, error) {
	return s.orders.ListAll()
}

// Place creates a PENDING order with a fresh ORD- id. The item list is
// stored verbatim and the submitted total is trusted as-is.
func (s *OrderService) Place(userID, username string, items models.CartItems, totalPrice float64) (*models.Order, error) {
	order := &models.Order{
		ID:         NewOrderID(),
		UserID:     userID,
		Username:   username,
		Items:      items,
		TotalPrice: totalPrice,
		Status:     "PENDING",
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// SetStatus overwrites an order's status.
func (s *OrderService) SetStatus(id, status string) error {
	return s.orders.UpdateStatus(id, status)
}

// NewOrderID returns an id like ORD-3F2A9C: a fixed prefix plus 6 uppercase
// hex characters from a CSPRNG.
func NewOrderID() string {
	b := make([]byte, 3)
	rand.Read(b)
	return "ORD-" + strings.ToUpper(hex.EncodeToString(b))
}

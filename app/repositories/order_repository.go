package repositories

import (
	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/app/models"
)

// OrderRepository handles persistence for orders.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListByUser returns a user's orders, newest first.
func (r *OrderRepository) ListByUser(userID string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.Where("userId = ?", userID).
		Order("createdAt DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAll returns every order, newest first.
func (r *OrderRepository) ListAll() ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.db.Order("createdAt DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Create inserts an order.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// UpdateStatus overwrites an order's status. The transition is not
// validated against the previous value; any allowed status can replace any
// other. Returns gorm.ErrRecordNotFound for an unknown id.
func (r *OrderRepository) UpdateStatus(id, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repositories

import (
	"gorm.io/gorm"
)

// ToggleRepository manages a per-user product set backed by a two-column
// join table (userId, productId). Favorites and saved items are two
// instances over different tables.
type ToggleRepository struct {
	db    *gorm.DB
	table string
}

func NewToggleRepository(db *gorm.DB, table string) *ToggleRepository {
	return &ToggleRepository{db: db, table: table}
}

// Members returns the product ids in the user's set.
func (r *ToggleRepository) Members(userID string) ([]int, error) {
	ids := make([]int, 0)
	err := r.db.Table(r.table).Where("userId = ?", userID).
		Pluck("productId", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Toggle flips a product's membership in the user's set and returns the
// updated id list. The check-then-write runs inside a transaction so two
// concurrent toggles cannot double-insert.
func (r *ToggleRepository) Toggle(userID string, productID int) ([]int, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Table(r.table).
			Where("userId = ? AND productId = ?", userID, productID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return tx.Exec(
				"DELETE FROM "+r.table+" WHERE userId = ? AND productId = ?",
				userID, productID,
			).Error
		}
		return tx.Table(r.table).Create(map[string]any{
			"userId":    userID,
			"productId": productID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.Members(userID)
}

package repositories

import (
	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/app/models"
)

// CategoryAll is the category filter value that means "no filter".
const CategoryAll = "Tümü"

// ProductRepository handles persistence for the catalog.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns products matching the optional search substring and category.
// Search is a case-sensitive substring match on the name. An empty category
// or CategoryAll skips the category filter. Results come back oldest first.
func (r *ProductRepository) List(search, category string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	q := r.db.Model(&models.Product{})
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if category != "" && category != CategoryAll {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Find returns a product by id or gorm.ErrRecordNotFound.
func (r *ProductRepository) Find(id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Count returns the total number of products.
func (r *ProductRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Product{}).Count(&n).Error
	return n, err
}

// Create inserts a product and fills in its generated id.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update overwrites every column of an existing product. Returns
// gorm.ErrRecordNotFound when the id does not exist.
func (r *ProductRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", product.ID).
		Select("*").Omit("id").Updates(product)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a product row. Favorite and saved rows referencing it are
// left in place.
func (r *ProductRepository) Delete(id int) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

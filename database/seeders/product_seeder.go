package seeders

import (
	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/app/models"
)

func init() {
	Register(Seeder{
		Name: "sample_products",
		Run:  seedProducts,
	})
}

// seedProducts inserts two demo products, but only into a completely empty
// catalog so real data is never mixed with samples.
func seedProducts(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.Product{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	samples := []models.Product{
		{
			Name:        "iPhone 14 Pro",
			Price:       74999,
			Category:    "Elektronik",
			Image:       "https://picsum.photos/400/400?random=1",
			Description: "En yeni iPhone modeli.",
		},
		{
			Name:        "MacBook Air M2",
			Price:       42000,
			Category:    "Bilgisayar",
			Image:       "https://picsum.photos/400/400?random=2",
			Description: "Hafif ve güçlü.",
		},
	}
	return db.Create(&samples).Error
}

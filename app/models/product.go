package models

// Product is a catalog row. Column names stay camelCase where the JSON
// field names are camelCase, so raw SQL against an existing database file
// keeps working.
type Product struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name" validate:"required"`
	Price       float64 `gorm:"not null" json:"price" validate:"numeric,gte=0"`
	Image       string  `gorm:"size:1024" json:"image"`
	VideoURL    string  `gorm:"column:videoUrl;size:1024" json:"videoUrl"`
	FileURL     string  `gorm:"column:fileUrl;size:1024" json:"fileUrl"`
	Category    string  `gorm:"size:255" json:"category"`
	Description string  `gorm:"type:text" json:"description"`
}

func (Product) TableName() string { return "products" }

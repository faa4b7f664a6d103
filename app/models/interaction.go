package models

// Favorite marks a product a user hearted. The pair is the primary key, so
// a user can favorite a product at most once.
type Favorite struct {
	UserID    string `gorm:"column:userId;primaryKey;size:64" json:"userId"`
	ProductID int    `gorm:"column:productId;primaryKey" json:"productId"`
}

func (Favorite) TableName() string { return "favorites" }

// Saved marks a product a user bookmarked for later. Same shape as Favorite
// but a separate table, so the two sets never mix.
type Saved struct {
	UserID    string `gorm:"column:userId;primaryKey;size:64" json:"userId"`
	ProductID int    `gorm:"column:productId;primaryKey" json:"productId"`
}

func (Saved) TableName() string { return "saved" }

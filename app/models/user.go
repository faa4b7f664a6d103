package models

// User is an account row. IDs are random hex strings except the seeded
// admin, which is "admin_root". Password holds a bcrypt hash and is never
// serialized.
type User struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	Username  string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Role      string `gorm:"size:32;not null;default:user" json:"role"`
	CreatedAt string `gorm:"column:created_at;size:64" json:"created_at"`
}

func (User) TableName() string { return "users" }

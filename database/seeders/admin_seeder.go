package seeders

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/app/models"
	"github.com/ibomiri431-oss/metra-feer/pkg/auth"
)

func init() {
	Register(Seeder{
		Name: "admin_user",
		Run:  seedAdmin,
	})
}

// seedAdmin creates the built-in admin account once. The fixed id and
// credentials match what the shipped frontend bundle expects.
func seedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("id = ?", "admin_root").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword("FALCON2007YT")
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		ID:        "admin_root",
		Username:  "ibomiri431@gmail.com",
		Password:  hash,
		Role:      "admin",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}).Error
}

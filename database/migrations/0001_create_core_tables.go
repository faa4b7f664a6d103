// Package migrations holds the schema history. Each file registers one
// migration from init, so a blank import of this package is enough to make
// the runner aware of the full history.
package migrations

import (
	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/app/models"
	"github.com/ibomiri431-oss/metra-feer/pkg/migration"
)

func init() {
	migration.Register(migration.Migration{
		Name: "0001_create_core_tables",
		Up: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&models.User{},
				&models.Product{},
				&models.Order{},
				&models.Favorite{},
				&models.Saved{},
			)
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(
				&models.Saved{},
				&models.Favorite{},
				&models.Order{},
				&models.Product{},
				&models.User{},
			)
		},
	})
}

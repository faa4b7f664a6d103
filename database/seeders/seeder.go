// Package seeders fills an empty database with the baseline data the app
// expects on first run.
package seeders

import (
	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/pkg/logger"
)

// Seeder is one named, idempotent data seed.
type Seeder struct {
	Name string
	Run  func(db *gorm.DB) error
}

var registry []Seeder

// Register adds a seeder. Call from init.
func Register(s Seeder) {
	registry = append(registry, s)
}

// RunAll executes every registered seeder in order. Each seeder checks its
// own preconditions, so running twice changes nothing.
func RunAll(db *gorm.DB) error {
	for _, s := range registry {
		logger.Debug("seeding", "name", s.Name)
		if err := s.Run(db); err != nil {
			return err
		}
	}
	return nil
}

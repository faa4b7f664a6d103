// Package migration is a minimal forward/backward schema migration runner.
//
// Migrations register themselves from an init function and are tracked in a
// `migrations` table with a batch number, so Rollback undoes only the most
// recent batch.
package migration

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/pkg/logger"
)

// Migration is a single named schema change.
type Migration struct {
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

// record is a row of the tracking table.
type record struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:255"`
	Batch     int
	CreatedAt time.Time
}

func (record) TableName() string { return "migrations" }

var registry []Migration

// Register adds a migration to the registry. Call from init.
func Register(m Migration) {
	registry = append(registry, m)
}

// Runner applies and reverts registered migrations against a database.
type Runner struct {
	db *gorm.DB
}

func NewRunner(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

func (r *Runner) ensureTable() error {
	return r.db.AutoMigrate(&record{})
}

func (r *Runner) applied() (map[string]record, int, error) {
	var rows []record
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	done := make(map[string]record, len(rows))
	maxBatch := 0
	for _, row := range rows {
		done[row.Name] = row
		if row.Batch > maxBatch {
			maxBatch = row.Batch
		}
	}
	return done, maxBatch, nil
}

// Run applies all pending migrations as one new batch.
func (r *Runner) Run() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}
	done, maxBatch, err := r.applied()
	if err != nil {
		return fmt.Errorf("migration: read state: %w", err)
	}

	batch := maxBatch + 1
	ran := 0
	for _, m := range registry {
		if _, ok := done[m.Name]; ok {
			continue
		}
		logger.Info("migrating", "name", m.Name)
		if err := m.Up(r.db); err != nil {
			return fmt.Errorf("migration: %s: %w", m.Name, err)
		}
		if err := r.db.Create(&record{Name: m.Name, Batch: batch}).Error; err != nil {
			return fmt.Errorf("migration: track %s: %w", m.Name, err)
		}
		ran++
	}
	if ran == 0 {
		logger.Info("migrations: nothing to run")
	}
	return nil
}

// Rollback reverts the most recent batch, newest migration first.
func (r *Runner) Rollback() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}
	done, maxBatch, err := r.applied()
	if err != nil {
		return fmt.Errorf("migration: read state: %w", err)
	}
	if maxBatch == 0 {
		logger.Info("migrations: nothing to roll back")
		return nil
	}

	var batch []record
	for _, row := range done {
		if row.Batch == maxBatch {
			batch = append(batch, row)
		}
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].ID > batch[j].ID })

	byName := make(map[string]Migration, len(registry))
	for _, m := range registry {
		byName[m.Name] = m
	}

	for _, row := range batch {
		m, ok := byName[row.Name]
		if !ok || m.Down == nil {
			return fmt.Errorf("migration: no down step for %s", row.Name)
		}
		logger.Info("rolling back", "name", row.Name)
		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("migration: rollback %s: %w", row.Name, err)
		}
		if err := r.db.Delete(&record{}, "name = ?", row.Name).Error; err != nil {
			return fmt.Errorf("migration: untrack %s: %w", row.Name, err)
		}
	}
	return nil
}

// Status reports each registered migration with its batch, or "pending".
func (r *Runner) Status() ([]string, error) {
	if err := r.ensureTable(); err != nil {
		return nil, fmt.Errorf("migration: ensure table: %w", err)
	}
	done, _, err := r.applied()
	if err != nil {
		return nil, fmt.Errorf("migration: read state: %w", err)
	}
	lines := make([]string, 0, len(registry))
	for _, m := range registry {
		if row, ok := done[m.Name]; ok {
			lines = append(lines, fmt.Sprintf("[batch %d] %s", row.Batch, m.Name))
		} else {
			lines = append(lines, fmt.Sprintf("[pending] %s", m.Name))
		}
	}
	return lines, nil
}

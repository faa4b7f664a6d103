// Package database opens the GORM connection described by the environment.
//
// Supported drivers: sqlite (default), postgres, mysql, sqlserver.
package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ibomiri431-oss/metra-feer/config"
)

// DB is the application-wide connection, set by Connect.
var DB *gorm.DB

// Connect opens the database described by DB_DRIVER / DB_DSN and stores it
// in DB. TranslateError is on so duplicate-key failures surface as
// gorm.ErrDuplicatedKey regardless of dialect.
func Connect() (*gorm.DB, error) {
	driver := config.DatabaseDriver()
	dsn := config.DatabaseDSN()

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(dsn))
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlserver":
		dialector = sqlserver.Open(dsn)
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", driver)
	}

	gcfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if config.AppEnv() != "production" {
		gcfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	DB = db
	return db, nil
}

// sqliteDSN appends the case_sensitive_like pragma to the DSN. SQLite's LIKE
// is case-insensitive by default and pragmas are per-connection state, so the
// setting has to ride on the DSN where every pooled connection picks it up;
// a one-shot Exec would only configure whichever connection ran it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_case_sensitive_like") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_case_sensitive_like=1"
	}
	return dsn + "?_case_sensitive_like=1"
}

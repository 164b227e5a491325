package sheetd

import (
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config holds the daemon's own knobs, read from the environment so the dev
// backend stays independent of the ledger app's configuration.
type Config struct {
	Addr   string
	DBPath string
}

func LoadConfig() Config {
	return Config{
		Addr:   getenv("SHEETD_ADDR", ":9090"),
		DBPath: getenv("SHEETD_DB", "sheetd.db"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Open opens (or creates) the SQLite file and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&ProductRow{}, &CustomerRow{}, &TransactionRow{}, &UserRow{}); err != nil {
		return nil, err
	}
	return db, nil
}

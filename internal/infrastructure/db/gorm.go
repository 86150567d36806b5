package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"loantrust/internal/domain/client"
	"loantrust/internal/domain/loan"
)

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	gdb, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	// the session store is a single :memory: database; more than one
	// connection would mean more than one database
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return gdb, nil
}

// OpenSQLite opens the session-scoped store. The default DSN is an
// in-memory database that lives exactly as long as the process.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(sqlite.Open(dsn))
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&client.Client{}, &loan.LoanRecord{}, &loan.Payment{})
}

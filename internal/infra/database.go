package infra

import (
	"fmt"

	"iego3d/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the configured store, runs AutoMigrate for every model and
// then applies idempotent patches for databases created by older versions.
//
// driver is "sqlite" (dsn is a file path, or ":memory:") or "postgres".
func NewDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if db.Dialector.Name() == "sqlite" {
		// One writer at a time; also keeps ":memory:" databases on a single connection.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates or updates all tables and applies schema patches.
// Integration tests call it directly on a container database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// applySchemaPatches runs idempotent DDL that AutoMigrate does not cover on
// databases created before a column existed.
func applySchemaPatches(db *gorm.DB) error {
	m := db.Migrator()

	// gastos.es_filamento was added after the first release; older rows read as false.
	if !m.HasColumn(&model.Gasto{}, "EsFilamento") {
		if err := m.AddColumn(&model.Gasto{}, "EsFilamento"); err != nil {
			return fmt.Errorf("patch gastos.es_filamento: %w", err)
		}
	}
	if err := db.Exec("UPDATE gastos SET es_filamento = ? WHERE es_filamento IS NULL", false).Error; err != nil {
		return fmt.Errorf("backfill gastos.es_filamento: %w", err)
	}
	return nil
}

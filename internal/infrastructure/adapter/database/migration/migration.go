package migration

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion is the version the migrator converges the store to
const CurrentSchemaVersion = "1.0.0"

// MigrationManager drives the store schema to CurrentSchemaVersion
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a migration manager on the system clock
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{db: db, logger: logger}
}

// NewMigrationManagerWithTimeProvider creates a migration manager with an
// injected clock for the applied_at stamps
func NewMigrationManagerWithTimeProvider(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{db: db, logger: logger, timeProvider: timeProvider}
}

// MigrateAll brings the schema to the current version: version bookkeeping
// table, the three store tables, their indexes, then the version stamp.
// Already-current stores are left untouched.
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("failed to create migration version table: %w", err)
	}

	installed, err := m.GetCurrentVersion(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if installed == CurrentSchemaVersion {
		m.logger.Info("Schema already at target version", map[string]any{
			"version": installed,
		})
		return nil
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"tables", m.autoMigrateModels},
		{"indexes", m.createIndexes},
		{"version stamp", func() error {
			return m.setVersion(context.Background(), CurrentSchemaVersion, "Full schema migration")
		}},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"step":  step.name,
				"error": err.Error(),
			})
			return fmt.Errorf("migration step %s: %w", step.name, err)
		}
	}

	m.logger.Info("Database migrations completed", map[string]any{
		"from":    installed,
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the latest applied version, empty for a fresh store
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var row model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version, details string) error {
	appliedAt := time.Now()
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now()
	}

	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: appliedAt,
		Details:   details,
	}).Error
}

func (m *MigrationManager) autoMigrateModels() error {
	return m.db.AutoMigrate(
		&model.Product{},
		&model.Transaction{},
		&model.TransactionItem{},
	)
}

// createIndexes adds the indexes beyond what the model tags declare.
// Every statement is valid on both sqlite and postgres.
func (m *MigrationManager) createIndexes() error {
	statements := []string{
		// unique product codes back the duplicate-code conflict checks
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_products_code_unique ON products (code)",
		// item lookups during ledger reads and cascade deletes
		"CREATE INDEX IF NOT EXISTS idx_transaction_items_transaction_id ON transaction_items (transaction_id)",
		// referential checks when deleting products
		"CREATE INDEX IF NOT EXISTS idx_transaction_items_product_id ON transaction_items (product_id)",
		// ledger listings are ordered by date
		"CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date)",
	}

	for _, stmt := range statements {
		if err := m.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

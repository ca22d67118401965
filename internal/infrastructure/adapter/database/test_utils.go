package database

import (
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/zakinadhif/cashierku/internal/domain/port/core"
	"github.com/zakinadhif/cashierku/internal/infrastructure/adapter/model"
	timeprovider "github.com/zakinadhif/cashierku/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a manager backed by a throwaway sqlite store
// file under the test's temp directory
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:          "sqlite",
		Path:            filepath.Join(t.TempDir(), "cashierku_test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1, // fail fast in tests
		RetryDelay:      1,
	}

	manager := NewManager(config, logger, timeProvider)

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database
func (m *TestDBManager) Connect(t *testing.T) error {
	t.Helper()

	if _, err := m.Manager.Connect(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
		return err
	}

	return nil
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SetupTestDB sets up the test database with required tables
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()

	if err := db.AutoMigrate(
		&model.Product{},
		&model.Transaction{},
		&model.TransactionItem{},
	); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}
}

// TruncateAllTables clears all rows between test cases
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()

	// Items first; the product FK is RESTRICT
	for _, table := range []string{"transaction_items", "transactions", "products"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to clear table %s: %v", table, err)
		}
	}
}

// CreateTestProduct inserts a catalog product directly, bypassing the repository
func (m *TestDBManager) CreateTestProduct(t *testing.T, code, name string, price int64) uint64 {
	t.Helper()

	db := m.Manager.DB()

	product := model.Product{
		Code:  code,
		Name:  name,
		Price: price,
	}

	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}

	return product.ID
}

// CreateTestTransaction inserts a transaction row with items referencing
// the given products at their current prices
func (m *TestDBManager) CreateTestTransaction(t *testing.T, date time.Time, productIDs []uint64) uint64 {
	t.Helper()

	db := m.Manager.DB()

	var id uint64
	err := db.Transaction(func(tx *gorm.DB) error {
		txn := model.Transaction{Date: date}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		id = txn.ID

		for _, productID := range productIDs {
			var product model.Product
			if err := tx.First(&product, productID).Error; err != nil {
				return err
			}
			item := model.TransactionItem{
				TransactionID: txn.ID,
				ProductID:     productID,
				ProductPrice:  product.Price,
				Quantity:      1,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return id
}

package service_test

import (
	"fmt"
	"testing"

	"github.com/pkpu-id/tagihan/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an isolated in-memory database per test. TranslateError
// matches production: duplicate keys surface as gorm.ErrDuplicatedKey.
func SetupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	err = model.AutoMigrate(db)
	assert.NoError(t, err)

	return db
}

package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"docvault/internal/model"
)

// newTestDB opens an isolated in-memory sqlite database with the same error
// translation the production mysql handle uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Document{},
		&model.QnARecord{},
		&model.AuditEntry{},
	))
	return db
}

// capturingPublisher records published audit entries for assertions.
type capturingPublisher struct {
	entries []model.AuditEntry
}

func (p *capturingPublisher) Publish(_ context.Context, entry model.AuditEntry) error {
	p.entries = append(p.entries, entry)
	return nil
}

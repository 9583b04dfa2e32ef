package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	require.NoError(t, Migrate(db, &testRecord{}))
	assert.True(t, db.Migrator().HasTable(&testRecord{}))

	// ikinci çağrı mevcut tabloyu günceller
	require.NoError(t, Migrate(db, &testRecord{}))

	require.NoError(t, db.Create(&testRecord{Name: "deneme"}).Error)
	var count int64
	db.Model(&testRecord{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

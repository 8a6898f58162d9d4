package main

import (
	"compress/gzip"
	"egrow/database"
	"egrow/models"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func backupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	database.Database = database.DbInstance{Db: db}
	return db
}

func TestDumpTablePlainRoundTrip(t *testing.T) {
	db := backupTestDB(t)
	dir := t.TempDir()

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&models.User{
			Name:     fmt.Sprintf("User %d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
			Password: "x",
		}).Error)
	}

	require.NoError(t, dumpTable("users", dir, false, false))

	rows, err := readDump(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestDumpTableGzipRoundTrip(t *testing.T) {
	db := backupTestDB(t)
	dir := t.TempDir()

	// Enough rows to exceed the gzip writer's internal buffer
	for i := 0; i < 300; i++ {
		require.NoError(t, db.Create(&models.User{
			Name:     fmt.Sprintf("User %d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
			Password: "x",
		}).Error)
	}

	require.NoError(t, dumpTable("users", dir, true, false))
	path := filepath.Join(dir, "users.json.gz")

	// The raw artifact must be a complete gzip stream, footer included
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	gz, err := gzip.NewReader(file)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.NewDecoder(gz).Decode(&decoded))
	require.NoError(t, gz.Close())
	assert.Len(t, decoded, 300)

	rows, err := readDump(path)
	require.NoError(t, err)
	assert.Len(t, rows, 300)
}

func TestDumpTableEmptyTable(t *testing.T) {
	backupTestDB(t)
	dir := t.TempDir()

	require.NoError(t, dumpTable("users", dir, true, false))

	rows, err := readDump(filepath.Join(dir, "users.json.gz"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

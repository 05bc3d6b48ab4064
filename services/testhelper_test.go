package services

import (
	"testing"

	"backend/configs"
	"backend/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a second pooled connection would get its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    username + "@example.com",
		Username: username,
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedMenuItem(t *testing.T, db *gorm.DB, title string, price int64) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{Title: title, Price: price}
	require.NoError(t, db.Create(item).Error)
	return item
}

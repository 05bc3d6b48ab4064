package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"backend/configs"
	"backend/entity"
	"backend/routes"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, configs.SetupDatabase(db))

	cfg := &configs.Config{JWTSecret: testSecret, JWTTTL: time.Hour}
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func seedUserWithToken(t *testing.T, db *gorm.DB, username, role string) (*entity.User, string) {
	t.Helper()
	u := &entity.User{
		Email:    username + "@example.com",
		Username: username,
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(u).Error)

	token, err := utils.GenerateToken(u.ID, u.Role, testSecret, time.Hour)
	require.NoError(t, err)
	return u, token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMenuItemsRequireAuth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodGet, "/menu-items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNonManagerCannotCreateMenuItem(t *testing.T) {
	r, db := newTestServer(t)
	_, token := seedUserWithToken(t, db, "alice", entity.RoleCustomer)

	w := doJSON(r, http.MethodPost, "/menu-items", token,
		gin.H{"title": "Sneaky Dish", "price": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	assert.Zero(t, count)
}

func TestManagerMenuItemLifecycle(t *testing.T) {
	r, db := newTestServer(t)
	_, token := seedUserWithToken(t, db, "boss", entity.RoleManager)

	w := doJSON(r, http.MethodPost, "/menu-items", token,
		gin.H{"title": "Greek Salad", "price": 8})
	require.Equal(t, http.StatusCreated, w.Code)

	var item entity.MenuItem
	require.NoError(t, db.Where("title = ?", "Greek Salad").First(&item).Error)

	w = doJSON(r, http.MethodDelete, "/menu-items/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/menu-items/"+itoa(item.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMenuExportIsManagerOnly(t *testing.T) {
	r, db := newTestServer(t)
	_, custToken := seedUserWithToken(t, db, "alice", entity.RoleCustomer)
	_, mgrToken := seedUserWithToken(t, db, "boss", entity.RoleManager)
	require.NoError(t, db.Create(&entity.MenuItem{Title: "Greek Salad", Price: 8}).Error)

	w := doJSON(r, http.MethodGet, "/menu-items/export", custToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/menu-items/export", mgrToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "menu-items.xlsx")
}

func TestCheckoutFlow(t *testing.T) {
	r, db := newTestServer(t)
	_, token := seedUserWithToken(t, db, "alice", entity.RoleCustomer)

	itemA := entity.MenuItem{Title: "Item A", Price: 10}
	itemB := entity.MenuItem{Title: "Item B", Price: 5}
	require.NoError(t, db.Create(&itemA).Error)
	require.NoError(t, db.Create(&itemB).Error)

	// empty cart first
	w := doJSON(r, http.MethodPost, "/orders", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/cart/menu-items", token,
		gin.H{"menuItemId": itemA.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/cart/menu-items", token,
		gin.H{"menuItemId": itemB.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/orders", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var out struct {
		Data struct {
			Total int64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, int64(20), out.Data.Total)

	var cartCount int64
	db.Model(&entity.CartItem{}).Count(&cartCount)
	assert.Zero(t, cartCount)
}

func TestCartRejectsUnknownItem(t *testing.T) {
	r, db := newTestServer(t)
	_, token := seedUserWithToken(t, db, "alice", entity.RoleCustomer)

	w := doJSON(r, http.MethodPost, "/cart/menu-items", token, gin.H{"menuItemId": 777})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/cart/menu-items", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGroupEndpoints(t *testing.T) {
	r, db := newTestServer(t)
	_, mgrToken := seedUserWithToken(t, db, "boss", entity.RoleManager)
	rider, _ := seedUserWithToken(t, db, "rider", entity.RoleCustomer)

	// customers cannot touch groups
	_, custToken := seedUserWithToken(t, db, "alice", entity.RoleCustomer)
	w := doJSON(r, http.MethodGet, "/groups/manager/users", custToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/groups/delivery-crew/users", mgrToken,
		gin.H{"username": "rider"})
	require.Equal(t, http.StatusCreated, w.Code)

	var u entity.User
	require.NoError(t, db.First(&u, rider.ID).Error)
	assert.Equal(t, entity.RoleDelivery, u.Role)

	w = doJSON(r, http.MethodPost, "/groups/manager/users", mgrToken, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodDelete, "/groups/delivery-crew/users/"+itoa(rider.ID), mgrToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&u, rider.ID).Error)
	assert.Equal(t, entity.RoleCustomer, u.Role)
}

func TestRoleRevocationTakesEffectImmediately(t *testing.T) {
	r, db := newTestServer(t)
	demoted, token := seedUserWithToken(t, db, "boss", entity.RoleManager)

	// the token still says manager, but the row no longer does
	require.NoError(t, db.Model(demoted).Update("role", entity.RoleCustomer).Error)

	w := doJSON(r, http.MethodPost, "/menu-items", token, gin.H{"title": "Dish", "price": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func itoa(id uint) string {
	return strconv.Itoa(int(id))
}

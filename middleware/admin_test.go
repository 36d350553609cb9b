package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lozadandres/EcomercePGSQL/models"
)

func setupGateTest(t *testing.T, db *gorm.DB, identity gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	if identity != nil {
		r.Use(identity)
	}
	r.Use(RequireAdmin(db))
	r.GET("/guarded", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Cart{}, &models.CartItem{}))

	admin := models.User{Name: "Root", Email: "root@example.com", Password: "x", IsAdmin: true, IsActive: true}
	shopper := models.User{Name: "Shopper", Email: "shopper@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&admin).Error)
	require.NoError(t, db.Create(&shopper).Error)

	get := func(r *gin.Engine) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/guarded", nil))
		return recorder
	}

	t.Run("no identity is unauthorized", func(t *testing.T) {
		r := setupGateTest(t, db, nil)
		assert.Equal(t, http.StatusUnauthorized, get(r).Code)
	})

	t.Run("unknown user is unauthorized", func(t *testing.T) {
		r := setupGateTest(t, db, func(c *gin.Context) { c.Set("user_id", uint(9999)) })
		assert.Equal(t, http.StatusUnauthorized, get(r).Code)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		r := setupGateTest(t, db, func(c *gin.Context) { c.Set("user_id", shopper.ID) })
		assert.Equal(t, http.StatusForbidden, get(r).Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		r := setupGateTest(t, db, func(c *gin.Context) { c.Set("user_id", admin.ID) })
		assert.Equal(t, http.StatusOK, get(r).Code)
	})
}

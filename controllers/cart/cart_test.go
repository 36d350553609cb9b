package cartControllers

import (
	"bytes"
	"encoding/json"
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

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.ProductImage{}, &models.Cart{}, &models.CartItem{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// routerForUser wires the cart endpoints behind a stub identity, the way
// ValidateToken would populate it.
func routerForUser(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })

	r.GET("/cart", GetCart(db))
	r.POST("/cart", AddCartItem(db))
	r.PUT("/cart", UpdateCartItem(db))
	r.DELETE("/cart", ClearCart(db))
	r.DELETE("/cart/:product_id", DeleteCartItem(db))
	return r
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func seedUserWithCart(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Name:     "Shopper",
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password: "irrelevant",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: user.ID}).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Stock: 5}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddCartItem(t *testing.T) {
	db := setupTestDB(t)
	user := seedUserWithCart(t, db)
	product := seedProduct(t, db, "Chess", 10)
	r := routerForUser(db, user.ID)

	t.Run("creates a new item with the requested quantity", func(t *testing.T) {
		recorder := performJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 2})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var item models.CartItem
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &item))
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, product.ID, item.ProductID)
	})

	t.Run("adding again increments instead of overwriting", func(t *testing.T) {
		recorder := performJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 3})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var item models.CartItem
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &item))
		assert.Equal(t, 5, item.Quantity)

		// Exactly one row per (cart, product)
		var count int64
		db.Model(&models.CartItem{}).Where("product_id = ?", product.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("quantity defaults to one when omitted", func(t *testing.T) {
		other := seedProduct(t, db, "Checkers", 5)
		recorder := performJSON(r, http.MethodPost, "/cart", gin.H{"product_id": other.ID})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var item models.CartItem
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &item))
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("unknown product is a 404 with no partial effects", func(t *testing.T) {
		var before int64
		db.Model(&models.CartItem{}).Count(&before)

		recorder := performJSON(r, http.MethodPost, "/cart", gin.H{"product_id": 9999, "quantity": 1})
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var after int64
		db.Model(&models.CartItem{}).Count(&after)
		assert.Equal(t, before, after)
	})

	t.Run("missing cart is a 404", func(t *testing.T) {
		orphan := routerForUser(db, 424242)
		recorder := performJSON(orphan, http.MethodPost, "/cart", gin.H{"product_id": product.ID})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		recorder := performJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": -1})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestUpdateCartItem(t *testing.T) {
	db := setupTestDB(t)
	user := seedUserWithCart(t, db)
	product := seedProduct(t, db, "Chess", 10)
	r := routerForUser(db, user.ID)

	t.Run("overwrites the quantity instead of incrementing", func(t *testing.T) {
		recorder := performJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 2})
		require.Equal(t, http.StatusCreated, recorder.Code)

		recorder = performJSON(r, http.MethodPut, "/cart", gin.H{"product_id": product.ID, "quantity": 5})
		assert.Equal(t, http.StatusOK, recorder.Code)

		var item models.CartItem
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &item))
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("item not in cart is a 404", func(t *testing.T) {
		other := seedProduct(t, db, "Backgammon", 15)
		recorder := performJSON(r, http.MethodPut, "/cart", gin.H{"product_id": other.ID, "quantity": 2})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		recorder := performJSON(r, http.MethodPut, "/cart", gin.H{"product_id": product.ID, "quantity": 0})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var item models.CartItem
		require.NoError(t, db.Where("product_id = ?", product.ID).First(&item).Error)
		assert.Equal(t, 5, item.Quantity, "rejected update must not change the row")
	})
}

func TestDeleteCartItem(t *testing.T) {
	db := setupTestDB(t)
	user := seedUserWithCart(t, db)
	chess := seedProduct(t, db, "Chess", 10)
	checkers := seedProduct(t, db, "Checkers", 5)
	r := routerForUser(db, user.ID)

	performJSON(r, http.MethodPost, "/cart", gin.H{"product_id": chess.ID, "quantity": 1})
	performJSON(r, http.MethodPost, "/cart", gin.H{"product_id": checkers.ID, "quantity": 2})

	t.Run("removes only the matching pairing", func(t *testing.T) {
		recorder := performJSON(r, http.MethodDelete, fmt.Sprintf("/cart/%d", chess.ID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)

		var count int64
		db.Model(&models.CartItem{}).Where("product_id = ?", chess.ID).Count(&count)
		assert.Equal(t, int64(0), count)

		db.Model(&models.CartItem{}).Where("product_id = ?", checkers.ID).Count(&count)
		assert.Equal(t, int64(1), count, "other pairings must be untouched")
	})

	t.Run("removing a non-existent pairing is a 404", func(t *testing.T) {
		recorder := performJSON(r, http.MethodDelete, fmt.Sprintf("/cart/%d", chess.ID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestClearCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUserWithCart(t, db)
	product := seedProduct(t, db, "Chess", 10)
	r := routerForUser(db, user.ID)

	t.Run("clears all items", func(t *testing.T) {
		performJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 3})

		recorder := performJSON(r, http.MethodDelete, "/cart", nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)

		var count int64
		db.Model(&models.CartItem{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("clearing an already-empty cart still succeeds", func(t *testing.T) {
		recorder := performJSON(r, http.MethodDelete, "/cart", nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("missing cart is a 404", func(t *testing.T) {
		orphan := routerForUser(db, 424242)
		recorder := performJSON(orphan, http.MethodDelete, "/cart", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestGetCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUserWithCart(t, db)
	product := seedProduct(t, db, "Chess", 10)
	r := routerForUser(db, user.ID)

	t.Run("empty cart reads as an empty item list", func(t *testing.T) {
		recorder := performJSON(r, http.MethodGet, "/cart", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var cart models.Cart
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &cart))
		assert.NotNil(t, cart.Items)
		assert.Len(t, cart.Items, 0)
	})

	t.Run("items carry the product and a computed subtotal", func(t *testing.T) {
		performJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 3})

		recorder := performJSON(r, http.MethodGet, "/cart", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var cart models.Cart
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &cart))
		require.Len(t, cart.Items, 1)
		item := cart.Items[0]
		assert.Equal(t, 3, item.Quantity)
		require.NotNil(t, item.Product)
		assert.Equal(t, "Chess", item.Product.Name)
		assert.Equal(t, 30.0, item.Subtotal)
	})

	t.Run("missing cart is a 404", func(t *testing.T) {
		orphan := routerForUser(db, 424242)
		recorder := performJSON(orphan, http.MethodGet, "/cart", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

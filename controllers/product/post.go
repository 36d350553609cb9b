package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lozadandres/EcomercePGSQL/models"
	"gorm.io/gorm"
)

// CreateProduct creates a product from a multipart form with up to ten
// "images" files. The product row, its image set and the legacy image field
// are written in a single transaction.
func CreateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var stock int
		if v := c.PostForm("stock"); v != "" {
			stock, err = strconv.Atoi(v)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		var categoryID *uint
		if v := c.PostForm("category_id"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, id64).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category_id"})
				return
			}
			categoryID = &category.ID
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}
		files := form.File["images"]
		if len(files) > maxProductImages {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Too many images (max 10)"})
			return
		}

		urls, err := saveUploadedImages(c, files, uploadDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save images"})
			return
		}

		product := models.Product{
			Name:        name,
			Price:       price,
			Description: c.PostForm("description"),
			Stock:       stock,
			CategoryID:  categoryID,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			return replaceImages(tx, &product, urls)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		var created models.Product
		if err := withIncludes(db).First(&created, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch created product"})
			return
		}
		created.Cover = created.CoverURL(placeholderImage)

		c.JSON(http.StatusCreated, created)
	}
}

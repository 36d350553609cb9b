package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lozadandres/EcomercePGSQL/models"
	"gorm.io/gorm"
)

// UpdateProduct updates a product by ID. All form fields are optional. When
// new "images" files are supplied the existing image set is fully replaced
// (delete + insert + legacy field sync) in one transaction; with no files
// the current images carry forward unchanged.
func UpdateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			product.Stock = stock
		}
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
			product.CategoryID = &category.ID
		}

		var urls []string
		if form, err := c.MultipartForm(); err == nil {
			files := form.File["images"]
			if len(files) > maxProductImages {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Too many images (max 10)"})
				return
			}
			if urls, err = saveUploadedImages(c, files, uploadDir); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save images"})
				return
			}
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
			return replaceImages(tx, &product, urls)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		var updated models.Product
		if err := withIncludes(db).First(&updated, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated product"})
			return
		}
		updated.Cover = updated.CoverURL(placeholderImage)

		c.JSON(http.StatusOK, updated)
	}
}

package productcontroller

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lozadandres/EcomercePGSQL/models"
	"gorm.io/gorm"
)

const maxProductImages = 10

const placeholderImage = "/images/placeholder.png"

// saveUploadedImages writes the files to uploadDir under collision-free
// names and returns their public URLs in input order.
func saveUploadedImages(c *gin.Context, files []*multipart.FileHeader, uploadDir string) ([]string, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		filename := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
			return nil, err
		}
		urls = append(urls, "/uploads/"+filename)
	}
	return urls, nil
}

// replaceImages swaps the product's image set for the given URLs: position
// follows input order, the image at position 0 becomes the primary, and the
// legacy Image field is pointed at it. An empty slice leaves the current set
// untouched. Must run inside the caller's transaction so a failure between
// the delete and the insert never commits.
func replaceImages(tx *gorm.DB, product *models.Product, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}

	images := make([]models.ProductImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, models.ProductImage{
			ProductID: product.ID,
			URL:       url,
			Position:  i,
			IsPrimary: i == 0,
		})
	}
	if err := tx.Create(&images).Error; err != nil {
		return err
	}

	product.Images = images
	product.Image = urls[0]
	return tx.Model(product).Update("image", urls[0]).Error
}

// withIncludes applies the query shape shared by every product read:
// category plus images ordered by position.
func withIncludes(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

package models

import "time"

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Price       float64        `gorm:"not null;check:price >= 0" json:"price"`
	Description string         `json:"description"`
	Stock       int            `gorm:"check:stock >= 0" json:"stock"`
	Image       string         `json:"image"` // legacy single-image field, kept in sync with the primary image
	CategoryID  *uint          `json:"category_id"`
	Category    *Category      `json:"category,omitempty"`
	Images      []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Cover       string         `gorm:"-" json:"cover_image,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ProductImage rows are owned by their product and replaced as a whole set;
// Position mirrors upload order and the image at position 0 is the primary.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"uniqueIndex:uq_product_position" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
	Position  int    `gorm:"uniqueIndex:uq_product_position" json:"position"`
	IsPrimary bool   `json:"is_primary"`
}

// CoverURL resolves the image used to represent the product in listings:
// the primary image, else the first image by position, else the legacy
// Image field, else the caller's fallback.
func (p *Product) CoverURL(fallback string) string {
	var first *ProductImage
	for i := range p.Images {
		img := &p.Images[i]
		if img.IsPrimary {
			return img.URL
		}
		if first == nil || img.Position < first.Position {
			first = img
		}
	}
	if first != nil {
		return first.URL
	}
	if p.Image != "" {
		return p.Image
	}
	return fallback
}

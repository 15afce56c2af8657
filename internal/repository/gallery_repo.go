package repository

import (
	"mocar/internal/models"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// ListURLs returns gallery URLs in insertion order.
func (r *GalleryRepository) ListURLs() ([]string, error) {
	urls := []string{}
	err := r.db.Model(&models.GalleryImage{}).Order("id ASC").Pluck("url", &urls).Error
	return urls, err
}

func (r *GalleryRepository) Add(url string) error {
	return r.db.Create(&models.GalleryImage{URL: url}).Error
}

// DeleteByURL removes every row with the exact URL; duplicates are allowed
// on insert, so one delete may remove several rows.
func (r *GalleryRepository) DeleteByURL(url string) error {
	return r.db.Where("url = ?", url).Delete(&models.GalleryImage{}).Error
}

package repository

import (
	"errors"

	"mocar/internal/models"

	"gorm.io/gorm"
)

type AboutRepository struct {
	db *gorm.DB
}

func NewAboutRepository(db *gorm.DB) *AboutRepository {
	return &AboutRepository{db: db}
}

// Get returns the current about image, or nil when none is set.
func (r *AboutRepository) Get() (*models.AboutImage, error) {
	var a models.AboutImage
	err := r.db.First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Replace clears the table and inserts the one new row inside a
// transaction, so readers never observe more than a single image.
func (r *AboutRepository) Replace(img string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.AboutImage{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.AboutImage{Img: img}).Error
	})
}

func (r *AboutRepository) Clear() error {
	return r.db.Where("1 = 1").Delete(&models.AboutImage{}).Error
}

package repository

import (
	"mocar/internal/models"

	"gorm.io/gorm"
)

type HeroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *HeroRepository {
	return &HeroRepository{db: db}
}

func (r *HeroRepository) List() ([]models.HeroImage, error) {
	var list []models.HeroImage
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *HeroRepository) Add(url string) (*models.HeroImage, error) {
	h := &models.HeroImage{URL: url}
	if err := r.db.Create(h).Error; err != nil {
		return nil, err
	}
	return h, nil
}

func (r *HeroRepository) DeleteByID(id uint) error {
	return r.db.Where("id = ?", id).Delete(&models.HeroImage{}).Error
}

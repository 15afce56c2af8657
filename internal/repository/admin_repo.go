package repository

import (
	"mocar/internal/models"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByUsername(username string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByID(id uint) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// First returns the lowest-id admin row. Password resets target this row;
// the deployment assumption is a single admin account.
func (r *AdminRepository) First() (*models.Admin, error) {
	var a models.Admin
	if err := r.db.Order("id ASC").First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Admin{}).Count(&n).Error
	return n, err
}

func (r *AdminRepository) Create(a *models.Admin) error {
	err := r.db.Create(a).Error
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *AdminRepository) UpdatePassword(id uint, hash string) error {
	return r.db.Model(&models.Admin{}).Where("id = ?", id).Update("password_hash", hash).Error
}

func (r *AdminRepository) UpdateUsername(id uint, username string) error {
	err := r.db.Model(&models.Admin{}).Where("id = ?", id).Update("username", username).Error
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

package repository

import (
	"errors"
	"time"

	"mocar/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PasswordResetRepository keeps pending one-time passcodes in the database
// rather than in process memory, so they survive restarts and are shared
// across workers.
type PasswordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// Put stores a code for the email, replacing any previous one.
func (r *PasswordResetRepository) Put(email, code string, expiresAt time.Time) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at"}),
	}).Create(&models.PasswordReset{Email: email, Code: code, ExpiresAt: expiresAt}).Error
}

// Get returns the pending record for the email, or nil when none exists.
func (r *PasswordResetRepository) Get(email string) (*models.PasswordReset, error) {
	var rec models.PasswordReset
	err := r.db.Where("email = ?", email).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PasswordResetRepository) Delete(email string) error {
	return r.db.Where("email = ?", email).Delete(&models.PasswordReset{}).Error
}

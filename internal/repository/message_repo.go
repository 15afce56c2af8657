package repository

import (
	"mocar/internal/models"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(m *models.Message) error {
	return r.db.Create(m).Error
}

// List returns all messages in store order. Callers needing chronology
// sort on CreatedAt themselves.
func (r *MessageRepository) List() ([]models.Message, error) {
	var list []models.Message
	err := r.db.Find(&list).Error
	return list, err
}

func (r *MessageRepository) DeleteByID(id uint) error {
	return r.db.Where("id = ?", id).Delete(&models.Message{}).Error
}

func (r *MessageRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Message{}).Count(&n).Error
	return n, err
}

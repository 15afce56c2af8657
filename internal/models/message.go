package models

import "time"

// Message is a contact-form inquiry. Rows are write-once: created by the
// public form, read and deleted by the admin panel, never updated.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	InquiryType string    `gorm:"column:inquiry_type" json:"inquiryType"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

package repository

import (
	"mocar/internal/models"

	"gorm.io/gorm"
)

// PlaceRepository serves one of the two named-set tables (cities or
// locations).
type PlaceRepository struct {
	db    *gorm.DB
	table string
}

func NewPlaceRepository(db *gorm.DB, table string) *PlaceRepository {
	return &PlaceRepository{db: db, table: table}
}

// ListNames returns all names sorted lexicographically.
func (r *PlaceRepository) ListNames() ([]string, error) {
	names := []string{}
	err := r.db.Table(r.table).Order("name ASC").Pluck("name", &names).Error
	return names, err
}

func (r *PlaceRepository) Create(name string) error {
	err := r.db.Table(r.table).Create(&models.Place{Name: name}).Error
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// DeleteByName removes by exact name; deleting an absent name is a no-op.
func (r *PlaceRepository) DeleteByName(name string) error {
	return r.db.Table(r.table).Where("name = ?", name).Delete(&models.Place{}).Error
}

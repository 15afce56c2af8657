package repository

import (
	"mocar/internal/models"

	"gorm.io/gorm"
)

// VehicleRepository serves one of the two vehicle tables (cars or bikes).
type VehicleRepository struct {
	db    *gorm.DB
	table string
}

func NewVehicleRepository(db *gorm.DB, table string) *VehicleRepository {
	return &VehicleRepository{db: db, table: table}
}

func (r *VehicleRepository) List() ([]models.Vehicle, error) {
	var list []models.Vehicle
	err := r.db.Table(r.table).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *VehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := r.db.Table(r.table).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) Create(v *models.Vehicle) error {
	return r.db.Table(r.table).Create(v).Error
}

// Update rewrites every column of the row, nulls included, so a price
// removed by the admin actually goes away. Returns gorm.ErrRecordNotFound
// when no row has the id.
func (r *VehicleRepository) Update(v *models.Vehicle) error {
	res := r.db.Table(r.table).Where("id = ?", v.ID).Updates(map[string]interface{}{
		"name":     v.Name,
		"badge":    v.Badge,
		"img":      v.Img,
		"specs":    v.Specs,
		"price6h":  v.Price6h,
		"price12h": v.Price12h,
		"price24h": v.Price24h,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VehicleRepository) Delete(id uint) error {
	return r.db.Table(r.table).Where("id = ?", id).Delete(&models.Vehicle{}).Error
}

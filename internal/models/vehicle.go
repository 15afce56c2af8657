package models

// Vehicle backs both the cars and bikes tables. The two collections share
// one shape and one contract; callers address them by table name.
//
// Specs holds the stored encoding (see specs.go). Prices are pointers so
// an absent price stays absent instead of collapsing to zero.
type Vehicle struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"not null"`
	Badge    *string
	Img      *string
	Specs    string
	Price6h  *int64 `gorm:"column:price6h"`
	Price12h *int64 `gorm:"column:price12h"`
	Price24h *int64 `gorm:"column:price24h"`
}

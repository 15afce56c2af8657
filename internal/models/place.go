package models

// Place is a named pickup option. The cities and locations tables share
// this shape; callers address them by table name. Names are unique per
// table, exact match.
type Place struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

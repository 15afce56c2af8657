package models

// GalleryImage rows carry no uniqueness constraint; the same URL may
// appear more than once.
type GalleryImage struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	URL string `gorm:"not null" json:"url"`
}

func (GalleryImage) TableName() string { return "gallery" }

// HeroImage is listed as full rows, unlike gallery, so entries can be
// deleted by id even when URLs collide.
type HeroImage struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	URL string `gorm:"not null" json:"url"`
}

// AboutImage holds the single about-page photo. At most one row exists;
// every write goes through AboutRepository.Replace which clears the table
// first.
type AboutImage struct {
	ID  uint   `gorm:"primaryKey"`
	Img string
}

func (AboutImage) TableName() string { return "about_info" }

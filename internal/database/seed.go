package database

import (
	"log"

	"mocar/config"
	"mocar/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the admin account from config on first boot. The
// configured password is hashed before it is stored.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[seed] admin: %v", err)
		return
	}
	if err := db.Create(&models.Admin{Username: cfg.Username, PasswordHash: string(hash)}).Error; err != nil {
		log.Printf("[seed] admin: %v", err)
		return
	}
	log.Printf("[seed] initialized admin user: %s", cfg.Username)
}

// SeedDefaults loads the default site content into any collection that is
// still empty, so a fresh install renders a full page.
func SeedDefaults(db *gorm.DB) {
	seedVehicles(db, "cars", defaultCars())
	seedVehicles(db, "bikes", defaultBikes())
	seedPlaces(db, "cities", []string{"Bhubaneswar", "Cuttack", "Puri", "Other"})
	seedPlaces(db, "locations", []string{"Nayapalli", "Airport", "Railway Station", "Bus Stand"})
	seedGallery(db)
	seedHero(db)
}

func tableEmpty(db *gorm.DB, table string) bool {
	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		log.Printf("[seed] count %s: %v", table, err)
		return false
	}
	return count == 0
}

func seedVehicles(db *gorm.DB, table string, defaults []models.Vehicle) {
	if !tableEmpty(db, table) {
		return
	}
	for i := range defaults {
		if err := db.Table(table).Create(&defaults[i]).Error; err != nil {
			log.Printf("[seed] %s: %v", table, err)
			return
		}
	}
}

func seedPlaces(db *gorm.DB, table string, names []string) {
	if !tableEmpty(db, table) {
		return
	}
	for _, name := range names {
		if err := db.Table(table).Create(&models.Place{Name: name}).Error; err != nil {
			log.Printf("[seed] %s: %v", table, err)
			return
		}
	}
}

func seedGallery(db *gorm.DB) {
	if !tableEmpty(db, "gallery") {
		return
	}
	for _, url := range []string{
		"/assets/images/gallery-1.png",
		"/assets/images/gallery-2.png",
		"/assets/images/hero-bg/hero-1.png",
		"/assets/images/hero-bg/hero-2.png",
		"/assets/images/hero-bg/hero-3.png",
	} {
		if err := db.Create(&models.GalleryImage{URL: url}).Error; err != nil {
			log.Printf("[seed] gallery: %v", err)
			return
		}
	}
}

func seedHero(db *gorm.DB) {
	if !tableEmpty(db, "hero_images") {
		return
	}
	for _, url := range []string{
		"/assets/images/hero-bg/hero-1.png",
		"/assets/images/hero-bg/hero-2.png",
		"/assets/images/hero-bg/hero-3.png",
	} {
		if err := db.Create(&models.HeroImage{URL: url}).Error; err != nil {
			log.Printf("[seed] hero: %v", err)
			return
		}
	}
}

func seedVehicle(name, badge, img string, specs []string, p6, p12, p24 int64) models.Vehicle {
	return models.Vehicle{
		Name:     name,
		Badge:    &badge,
		Img:      &img,
		Specs:    models.EncodeSpecs(specs),
		Price6h:  seedPrice(p6),
		Price12h: seedPrice(p12),
		Price24h: seedPrice(p24),
	}
}

// seedPrice treats zero as "not offered"; the seed data has no zero-priced
// rentals.
func seedPrice(n int64) *int64 {
	if n == 0 {
		return nil
	}
	return &n
}

func defaultCars() []models.Vehicle {
	return []models.Vehicle{
		seedVehicle("Swift Dzire", "Popular", "/assets/images/swift-dzire.jpg", []string{"A/C", "Manual", "Petrol", "5 Seats"}, 1200, 1300, 1600),
		seedVehicle("Maruti Alto", "Budget", "/assets/images/maruti-alto.jpg", []string{"A/C", "Manual", "Petrol", "4 Seats"}, 800, 1020, 1320),
		seedVehicle("Mahindra Thar", "Adventure", "/assets/images/mahindra-thar.jpg", []string{"A/C", "Manual", "Diesel", "4 Seats"}, 0, 3000, 3500),
		seedVehicle("Honda City", "Premium", "/assets/images/honda-city.jpg", []string{"A/C", "Automatic", "Petrol", "5 Seats"}, 0, 2500, 3000),
		seedVehicle("Hyundai Eon", "Economy", "/assets/images/hyundai-eon.jpg", []string{"A/C", "Manual", "Petrol", "4 Seats"}, 600, 800, 1000),
		seedVehicle("Kia Carens", "Family", "/assets/images/kia-carens.jpg", []string{"A/C", "Automatic", "Petrol", "7 Seats"}, 0, 2800, 3200),
	}
}

func defaultBikes() []models.Vehicle {
	return []models.Vehicle{
		seedVehicle("Royal Enfield Bullet 350", "Popular", "/assets/images/royal-enfield.jpg", []string{"Cruiser", "350cc", "Petrol"}, 0, 800, 1100),
		seedVehicle("Honda Activa 4G", "Economy", "/assets/images/honda-activa.jpg", []string{"Scooter", "110cc", "Petrol"}, 0, 400, 500),
		seedVehicle("KTM RC 200", "Sports", "/assets/images/ktm-rc200.jpg", []string{"Sports", "200cc", "Petrol"}, 0, 1000, 1400),
		seedVehicle("Bajaj Pulsar 150", "Cruiser", "/assets/images/bajaj-pulsar.jpg", []string{"Cruiser", "150cc", "Petrol"}, 0, 600, 900),
		seedVehicle("TVS Apache RTR 160", "Adventure", "/assets/images/tvs-apache.jpg", []string{"Street", "160cc", "Petrol"}, 0, 700, 1000),
		seedVehicle("Hero Splendor", "Commuter", "/assets/images/hero-splendor.jpg", []string{"Commuter", "100cc", "Petrol"}, 0, 350, 450),
	}
}

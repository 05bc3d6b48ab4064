package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the superuser account on first boot.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Username: "admin",
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedLookups fills the default menu categories.
func SeedLookups(db *gorm.DB) error {
	defaults := []entity.Category{
		{Slug: "appetizers", Title: "Appetizers"},
		{Slug: "mains", Title: "Main Dishes"},
		{Slug: "desserts", Title: "Desserts"},
		{Slug: "drinks", Title: "Drinks"},
	}
	for _, cat := range defaults {
		if err := db.FirstOrCreate(&entity.Category{}, cat).Error; err != nil {
			return err
		}
	}
	log.Println("lookup tables seeded")
	return nil
}

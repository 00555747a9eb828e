package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Saketh-S5/mobile-store/models"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// Seed inserts the sample catalog and the default admin account.
// Sample products are only inserted when the products table is empty,
// so operator-added catalog entries survive restarts. Safe to call on
// every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count == 0 {
		products := []models.Product{
			{Name: "Asus ROG Phone 7", Price: 80000, Image: "asusrog7.jpg"},
			{Name: "Realme GT 6t", Price: 40000, Image: "gt6.png"},
			{Name: "iPhone 15 Pro", Price: 120000, Image: "ipn15pro.png"},
			{Name: "OnePlus 12", Price: 70000, Image: "oneplus12.jpg"},
			{Name: "Samsung Galaxy S24", Price: 95600, Image: "s24.jpeg"},
			{Name: "Samsung Galaxy S24fe", Price: 75600, Image: "s24fe.png"},
			{Name: "Vivo X100", Price: 50000, Image: "vivox100.png"},
			{Name: "Oppo Find N2 Flip", Price: 90000, Image: "oppon2flip.jpg"},
			{Name: "Google Pixel 8", Price: 85000, Image: "pixel8.jpg"},
			{Name: "Xiomi 14", Price: 65000, Image: "xiaomi14.jpg"},
			{Name: "Redmagic 9 pro", Price: 92000, Image: "redmagic.jpg"},
			{Name: "iqoo 12", Price: 48000, Image: "iqoo.png"},
		}
		if err := db.Create(&products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}

	var admins int64
	if err := db.Model(&models.Admin{}).
		Where("username = ?", defaultAdminUsername).
		Count(&admins).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		admin := models.Admin{Username: defaultAdminUsername, Password: string(hash)}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	return nil
}

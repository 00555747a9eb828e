package models

type Product struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"unique;not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
	Image string  `json:"image"`
}

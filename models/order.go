package models

import "time"

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string      `gorm:"not null" json:"username"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	Total     float64     `json:"total"`
	Reference string      `json:"reference"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem snapshots a purchased product at checkout time, so the
// receipt survives later catalog price changes.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"-"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
}

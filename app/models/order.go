package models

import "time"

// Order is a placed customer order. ProductID references the catalog row;
// ProductName and TotalPrice are snapshots taken at order time so the order
// history survives later price changes and product deletions.
type Order struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName  string    `gorm:"size:255;not null" json:"customer_name"`
	Phone         string    `gorm:"size:20;not null" json:"phone"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	Pincode       string    `gorm:"size:10;not null" json:"pincode"`
	ProductID     uint      `gorm:"not null;index" json:"product_id"`
	ProductName   string    `gorm:"size:255;not null" json:"product_name"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	TotalPrice    float64   `gorm:"not null" json:"total_price"`
	PaymentMethod string    `gorm:"size:50;not null" json:"payment_method"`
	UPIID         string    `gorm:"size:255" json:"upi_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Order) TableName() string { return "orders" }

// Payment method values accepted on an order.
const (
	PaymentCashOnDelivery = "Cash On Delivery"
	PaymentUPI            = "UPI Payment"
)

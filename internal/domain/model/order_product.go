package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 注文と商品の中間行。(order_id, product_id) は重複不可。
type OrderProduct struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	OrderID   string    `gorm:"type:uuid;not null;uniqueIndex:uq_order_products_pair;index" json:"orderId"`
	ProductID string    `gorm:"type:uuid;not null;uniqueIndex:uq_order_products_pair" json:"productId"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`

	// 合計計算のために商品をぶら下げる。商品側が消えていても行は残る。
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

func (OrderProduct) TableName() string { return "order_products" }

func (op *OrderProduct) BeforeCreate(tx *gorm.DB) error {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	return nil
}

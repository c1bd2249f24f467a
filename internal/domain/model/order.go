package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// 遷移グラフは持たない。更新で指定された値をそのまま保存する。
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// 注文。キャンセルは is_canceled + status=cancelled を立てる論理削除。
type Order struct {
	ID                 string      `gorm:"primaryKey;type:uuid" json:"id"`
	Status             OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CancellationReason string      `gorm:"type:text" json:"cancellationReason"`
	CustomerName       string      `gorm:"type:varchar(100);not null" json:"customerName"`
	CustomerEmail      string      `gorm:"type:varchar(255);not null" json:"customerEmail"`
	CustomerPhone      string      `gorm:"type:varchar(50);not null" json:"customerPhone"`
	Notes              string      `gorm:"type:text" json:"notes"`
	IsCanceled         bool        `gorm:"not null;default:false" json:"isCanceled"`
	CreatedAt          time.Time   `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time   `gorm:"not null;autoUpdateTime" json:"updatedAt"`

	// 注文を消すと中間行もDB側でカスケード削除される
	OrderProducts []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderProducts"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

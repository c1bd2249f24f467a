package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 商品。削除は is_deleted を立てる論理削除。
// 名前の一意制約は部分インデックスで「未削除の行」だけに効かせるので、
// 削除後は同じ名前で再登録できる。
type Product struct {
	ID        string          `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null;uniqueIndex:uq_products_live_name,where:is_deleted = false" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	IsActive  bool            `gorm:"not null;default:true" json:"isActive"`
	IsDeleted bool            `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

// IDはアプリ側で採番する
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"
)

type OrderProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderProductGormRepository(db *gorm.DB) *OrderProductGormRepository {
	return &OrderProductGormRepository{db: db}
}

func (r *OrderProductGormRepository) CreateBulk(ctx context.Context, links []model.OrderProduct) error {
	if len(links) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// 指定注文×指定商品の中間行を物理削除し、消えた行数を返す
func (r *OrderProductGormRepository) DeleteByOrderAndProducts(ctx context.Context, orderID string, productIDs []string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id IN ?", orderID, productIDs).
		Delete(&model.OrderProduct{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"
	repo "github.com/hayderAbdulsahib/revest-assignment/internal/repository"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 中間行とその商品まで結合して注文一覧を返す
func (r *OrderGormRepository) List(ctx context.Context, q repo.ListQuery) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Order{})
	tx = applyWhere(tx, q.Where)

	if err := tx.Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	tx = tx.Order(orderClause(q.Sort))
	tx = applyWindow(tx, q)

	if err := tx.Preload("OrderProducts.Product").Find(&orders).Error; err != nil {
		return []model.Order{}, 0, err
	}

	return orders, total, nil
}

// IDで注文を取得（中間行と商品つき）
func (r *OrderGormRepository) FindByID(ctx context.Context, id string) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("OrderProducts.Product").
		Where("id = ?", id).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 注文の作成。OrderProductsが積んであれば中間行も同じトランザクションで入る。
func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Order{}, translateError(err)
	}
	return o, nil
}

// 指定カラムだけ更新して影響行数を返す
func (r *OrderGormRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return 0, translateError(res.Error)
	}
	return res.RowsAffected, nil
}

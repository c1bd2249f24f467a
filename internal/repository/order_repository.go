package repository

import (
	"context"

	"github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"
)

type OrderRepository interface {
	// orderProducts.product まで結合して返す
	List(ctx context.Context, q ListQuery) ([]model.Order, int64, error)
	FindByID(ctx context.Context, id string) (model.Order, error)
	// OrderProductsを積んで渡せば中間行も同じ書き込みで保存される
	Create(ctx context.Context, o model.Order) (model.Order, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error)
}

package repository

import (
	"context"

	"github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"
)

type OrderProductRepository interface {
	CreateBulk(ctx context.Context, links []model.OrderProduct) error
	// 物理削除。消えた行数を返す。
	DeleteByOrderAndProducts(ctx context.Context, orderID string, productIDs []string) (int64, error)
}

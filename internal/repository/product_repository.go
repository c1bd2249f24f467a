package repository

import (
	"context"
	"errors"

	"github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")

	// 未削除の商品名がぶつかったとき
	ErrDuplicateName = errors.New("duplicate name")

	// 中間行が存在しない商品を指したとき
	ErrProductReference = errors.New("invalid product reference")
)

type ProductRepository interface {
	// 件数は窓を当てる前の絞り込み結果で数える
	List(ctx context.Context, q ListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	// 指定カラムだけ更新し、影響行数を返す
	UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error)
}

package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"
)

// 注文の読み取りビュー。合計は保存せず、返すたびに計算する。
type OrderOutput struct {
	model.Order
	TotalProducts int             `json:"totalProducts"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

// totalProductsは中間行の件数、totalPriceは解決できた商品価格の合計。
// 商品が引けない行は0円扱いにして、1行でも壊れていても注文全体は返す。
func calculateTotals(orders []model.Order) []OrderOutput {
	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		total := decimal.Zero
		for _, link := range o.OrderProducts {
			if link.Product != nil {
				total = total.Add(link.Product.Price)
			}
		}
		outs = append(outs, OrderOutput{
			Order:         o,
			TotalProducts: len(o.OrderProducts),
			TotalPrice:    total,
		})
	}
	return outs
}

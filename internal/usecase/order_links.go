package usecase

import "github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"

// リクエスト内の重複productIdを除く（先勝ち）
func uniqueProductIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// 既存の紐付けとの差分から、新規に挿入する中間行だけを作る。
// 追加専用: リクエストに無い商品を外すことはしない（外すのは明示的な削除API）。
func newOrderLinks(orderID string, existing []model.OrderProduct, requested []string) []model.OrderProduct {
	current := make(map[string]struct{}, len(existing))
	for _, link := range existing {
		current[link.ProductID] = struct{}{}
	}

	links := make([]model.OrderProduct, 0, len(requested))
	for _, productID := range requested {
		if _, ok := current[productID]; ok {
			continue
		}
		links = append(links, model.OrderProduct{OrderID: orderID, ProductID: productID})
	}
	return links
}

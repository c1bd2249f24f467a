package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"
	repo "github.com/hayderAbdulsahib/revest-assignment/internal/repository"
)

type OrderUsecase struct {
	txManager        repo.TransactionManager
	orderRepo        repo.OrderRepository
	orderProductRepo repo.OrderProductRepository
}

// DI
func NewOrderUsecase(
	txManager repo.TransactionManager,
	orderRepo repo.OrderRepository,
	orderProductRepo repo.OrderProductRepository,
) *OrderUsecase {
	return &OrderUsecase{
		txManager:        txManager,
		orderRepo:        orderRepo,
		orderProductRepo: orderProductRepo,
	}
}

type CreateOrderInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	ProductIDs    []string
}

func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (OrderOutput, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return OrderOutput{}, NewDomainError(KindValidation, "customerName required")
	}
	if len(name) > 100 {
		return OrderOutput{}, NewDomainError(KindValidation, "customerName must be at most 100 characters")
	}
	email := strings.TrimSpace(in.CustomerEmail)
	if email == "" {
		return OrderOutput{}, NewDomainError(KindValidation, "customerEmail required")
	}
	if len(email) > 255 {
		return OrderOutput{}, NewDomainError(KindValidation, "customerEmail must be at most 255 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return OrderOutput{}, NewDomainError(KindValidation, "invalid customerEmail")
	}
	phone := strings.TrimSpace(in.CustomerPhone)
	if phone == "" {
		return OrderOutput{}, NewDomainError(KindValidation, "customerPhone required")
	}
	if len(phone) > 50 {
		return OrderOutput{}, NewDomainError(KindValidation, "customerPhone must be at most 50 characters")
	}
	if len(in.Notes) > 1000 {
		return OrderOutput{}, NewDomainError(KindValidation, "notes must be at most 1000 characters")
	}

	order := model.Order{
		Status:        model.OrderStatusPending,
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		Notes:         in.Notes,
	}
	// 同じ商品を2回書いてきても中間行は1本にする
	for _, productID := range uniqueProductIDs(in.ProductIDs) {
		order.OrderProducts = append(order.OrderProducts, model.OrderProduct{ProductID: productID})
	}

	created, err := u.orderRepo.Create(ctx, order)
	if errors.Is(err, repo.ErrProductReference) {
		return OrderOutput{}, NewDomainError(KindProductReference, "One or more of the provided product IDs are invalid")
	}
	if err != nil {
		return OrderOutput{}, storageError(err)
	}

	// 商品を結合した形で読み直して合計を付ける
	return u.loadWithTotals(ctx, created.ID)
}

type UpdateOrderInput struct {
	Status             *string
	CancellationReason *string
	CustomerName       *string
	CustomerEmail      *string
	CustomerPhone      *string
	Notes              *string
	IsCanceled         *bool
	// nilなら紐付けは触らない
	ProductIDs []string
}

func (u *OrderUsecase) UpdateOrderByID(ctx context.Context, id string, in UpdateOrderInput) (OrderOutput, error) {
	fields := map[string]any{}

	if in.Status != nil {
		if !model.OrderStatus(*in.Status).Valid() {
			return OrderOutput{}, NewDomainError(KindValidation, "invalid status")
		}
		fields["status"] = *in.Status
	}
	if in.CancellationReason != nil {
		fields["cancellation_reason"] = *in.CancellationReason
	}
	if in.CustomerName != nil {
		name := strings.TrimSpace(*in.CustomerName)
		if name == "" {
			return OrderOutput{}, NewDomainError(KindValidation, "customerName required")
		}
		if len(name) > 100 {
			return OrderOutput{}, NewDomainError(KindValidation, "customerName must be at most 100 characters")
		}
		fields["customer_name"] = name
	}
	if in.CustomerEmail != nil {
		email := strings.TrimSpace(*in.CustomerEmail)
		if len(email) > 255 {
			return OrderOutput{}, NewDomainError(KindValidation, "customerEmail must be at most 255 characters")
		}
		if _, err := mail.ParseAddress(email); err != nil {
			return OrderOutput{}, NewDomainError(KindValidation, "invalid customerEmail")
		}
		fields["customer_email"] = email
	}
	if in.CustomerPhone != nil {
		phone := strings.TrimSpace(*in.CustomerPhone)
		if phone == "" || len(phone) > 50 {
			return OrderOutput{}, NewDomainError(KindValidation, "customerPhone must be at most 50 characters")
		}
		fields["customer_phone"] = phone
	}
	if in.Notes != nil {
		if len(*in.Notes) > 1000 {
			return OrderOutput{}, NewDomainError(KindValidation, "notes must be at most 1000 characters")
		}
		fields["notes"] = *in.Notes
	}
	if in.IsCanceled != nil {
		fields["is_canceled"] = *in.IsCanceled
	}

	// 既存の紐付けを読む。注文が無ければここで終わり。
	existing, err := u.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewDomainError(KindNotFound, "Order not found")
	}
	if err != nil {
		return OrderOutput{}, storageError(err)
	}

	var links []model.OrderProduct
	if in.ProductIDs != nil {
		links = newOrderLinks(id, existing.OrderProducts, uniqueProductIDs(in.ProductIDs))
	}

	// スカラー更新と紐付け追加は1トランザクション
	err = u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		if len(fields) > 0 {
			if _, err := r.Orders().UpdateFields(ctx, id, fields); err != nil {
				return err
			}
		}
		if len(links) > 0 {
			if err := r.OrderProducts().CreateBulk(ctx, links); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, repo.ErrProductReference) {
		return OrderOutput{}, NewDomainError(KindProductReference, "One or more of the provided product IDs are invalid")
	}
	if err != nil {
		return OrderOutput{}, storageError(err)
	}

	return u.loadWithTotals(ctx, id)
}

// 注文のキャンセル。行は消さず、isCanceledとstatusの両方を倒す。
func (u *OrderUsecase) DeleteOrderByID(ctx context.Context, id string) error {
	affected, err := u.orderRepo.UpdateFields(ctx, id, map[string]any{
		"is_canceled": true,
		"status":      model.OrderStatusCancelled,
	})
	if err != nil {
		return storageError(err)
	}
	if affected == 0 {
		return NewDomainError(KindNotFound, "Order not found")
	}
	return nil
}

func (u *OrderUsecase) FindOrderByID(ctx context.Context, id string) (OrderOutput, error) {
	return u.loadWithTotals(ctx, id)
}

type ListOrdersOutput struct {
	TotalFiltersCount int64         `json:"totalFiltersCount"`
	Orders            []OrderOutput `json:"orders"`
}

func (u *OrderUsecase) ListOrders(ctx context.Context, in ListOrdersInput) (ListOrdersOutput, error) {
	if in.Status != nil && !model.OrderStatus(*in.Status).Valid() {
		return ListOrdersOutput{}, NewDomainError(KindValidation, "invalid status")
	}
	if err := validateDateRanges(in.CreatedFrom, in.CreatedTo, in.UpdatedFrom, in.UpdatedTo); err != nil {
		return ListOrdersOutput{}, err
	}

	sort, err := resolveSort(orderSortDefaults, in.SortBy, in.SortOrder)
	if err != nil {
		return ListOrdersOutput{}, err
	}
	offset, limit := resolveWindow(in.Page, in.Limit)

	orders, total, err := u.orderRepo.List(ctx, repo.ListQuery{
		Where:  buildOrderFilters(in),
		Sort:   sort,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return ListOrdersOutput{}, storageError(err)
	}

	return ListOrdersOutput{
		TotalFiltersCount: total,
		Orders:            calculateTotals(orders),
	}, nil
}

// 中間行の物理削除。注文が無いのか商品が元々付いていないのかはここでは区別しない。
func (u *OrderUsecase) DeleteOrderProducts(ctx context.Context, orderID string, productIDs []string) error {
	if len(productIDs) == 0 {
		return NewDomainError(KindValidation, "at least one product ID must be provided")
	}

	affected, err := u.orderProductRepo.DeleteByOrderAndProducts(ctx, orderID, uniqueProductIDs(productIDs))
	if err != nil {
		return storageError(err)
	}
	if affected == 0 {
		return NewDomainError(KindNotFound, "Either The Order Or The Product Id Is Not Found")
	}
	return nil
}

func (u *OrderUsecase) loadWithTotals(ctx context.Context, id string) (OrderOutput, error) {
	o, err := u.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewDomainError(KindNotFound, "Order not found")
	}
	if err != nil {
		return OrderOutput{}, storageError(err)
	}
	return calculateTotals([]model.Order{o})[0], nil
}

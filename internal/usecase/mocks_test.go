package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"
	repo "github.com/hayderAbdulsahib/revest-assignment/internal/repository"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) List(ctx context.Context, q repo.ListQuery) ([]model.Order, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id string) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

type OrderProductRepoMock struct{ mock.Mock }

func (m *OrderProductRepoMock) CreateBulk(ctx context.Context, links []model.OrderProduct) error {
	args := m.Called(ctx, links)
	return args.Error(0)
}

func (m *OrderProductRepoMock) DeleteByOrderAndProducts(ctx context.Context, orderID string, productIDs []string) (int64, error) {
	args := m.Called(ctx, orderID, productIDs)
	return args.Get(0).(int64), args.Error(1)
}

// トランザクションは素通しでfnを呼ぶだけ
type txReposStub struct {
	products      repo.ProductRepository
	orders        repo.OrderRepository
	orderProducts repo.OrderProductRepository
}

func (r *txReposStub) Products() repo.ProductRepository           { return r.products }
func (r *txReposStub) Orders() repo.OrderRepository               { return r.orders }
func (r *txReposStub) OrderProducts() repo.OrderProductRepository { return r.orderProducts }

type TxManagerStub struct {
	repos repo.TxRepos
}

func (tm *TxManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(tm.repos)
}

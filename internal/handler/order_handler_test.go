package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"
	repo "github.com/hayderAbdulsahib/revest-assignment/internal/repository"
	"github.com/hayderAbdulsahib/revest-assignment/internal/usecase"
)

type orderRepoMock struct{ mock.Mock }

func (m *orderRepoMock) List(ctx context.Context, q repo.ListQuery) ([]model.Order, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *orderRepoMock) FindByID(ctx context.Context, id string) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *orderRepoMock) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

type orderProductRepoMock struct{ mock.Mock }

func (m *orderProductRepoMock) CreateBulk(ctx context.Context, links []model.OrderProduct) error {
	args := m.Called(ctx, links)
	return args.Error(0)
}

func (m *orderProductRepoMock) DeleteByOrderAndProducts(ctx context.Context, orderID string, productIDs []string) (int64, error) {
	args := m.Called(ctx, orderID, productIDs)
	return args.Get(0).(int64), args.Error(1)
}

type txManagerStub struct{ repos repo.TxRepos }

func (tm *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(tm.repos)
}

type txReposStub struct {
	orders        repo.OrderRepository
	orderProducts repo.OrderProductRepository
}

func (r *txReposStub) Products() repo.ProductRepository           { return nil }
func (r *txReposStub) Orders() repo.OrderRepository               { return r.orders }
func (r *txReposStub) OrderProducts() repo.OrderProductRepository { return r.orderProducts }

func newOrderServer(oRepo *orderRepoMock, opRepo *orderProductRepoMock) *echo.Echo {
	e := echo.New()
	tm := &txManagerStub{repos: &txReposStub{orders: oRepo, orderProducts: opRepo}}
	h := NewOrderHandler(usecase.NewOrderUsecase(tm, oRepo, opRepo))
	h.RegisterRoutes(e)
	return e
}

func TestOrderHandler_Create_RejectsNonUUIDProductIDs(t *testing.T) {
	e := newOrderServer(new(orderRepoMock), new(orderProductRepoMock))

	body := `{"customerName":"Alice","customerEmail":"alice@example.com","customerPhone":"0700000000","productIds":["nope"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/order", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var env Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Each product ID must be a valid UUID", env.Message)
}

func TestOrderHandler_Create_Success(t *testing.T) {
	oRepo := new(orderRepoMock)
	e := newOrderServer(oRepo, new(orderProductRepoMock))

	oRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).
		Return(model.Order{ID: "o1"}, nil)
	oRepo.On("FindByID", mock.Anything, "o1").
		Return(model.Order{ID: "o1", Status: model.OrderStatusPending}, nil)

	body := `{"customerName":"Alice","customerEmail":"alice@example.com","customerPhone":"0700000000"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/order", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var env Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.IsError)

	data, ok := env.Data.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, float64(0), data["totalProducts"])
}

func TestOrderHandler_DeleteProducts_CoarseNotFound(t *testing.T) {
	oRepo := new(orderRepoMock)
	opRepo := new(orderProductRepoMock)
	e := newOrderServer(oRepo, opRepo)

	orderID := "3f2c9a6e-9f0a-4f42-9a3e-000000000002"
	productID := "3f2c9a6e-9f0a-4f42-9a3e-000000000003"
	opRepo.On("DeleteByOrderAndProducts", mock.Anything, orderID, []string{productID}).
		Return(int64(0), nil)

	body := `{"productIds":["` + productID + `"]}`
	req := httptest.NewRequest(http.MethodDelete, "/v1/order/"+orderID+"/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var env Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Either The Order Or The Product Id Is Not Found", env.Message)
}

func TestOrderHandler_Delete_Cancels(t *testing.T) {
	oRepo := new(orderRepoMock)
	e := newOrderServer(oRepo, new(orderProductRepoMock))

	orderID := "3f2c9a6e-9f0a-4f42-9a3e-000000000004"
	oRepo.On("UpdateFields", mock.Anything, orderID, map[string]any{
		"is_canceled": true,
		"status":      model.OrderStatusCancelled,
	}).Return(int64(1), nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/order/"+orderID, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	oRepo.AssertExpectations(t)
}

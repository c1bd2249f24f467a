package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hayderAbdulsahib/revest-assignment/internal/usecase"
)

// /v1/order の注文API
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/v1/order")

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.find)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
	g.DELETE("/:id/products", h.removeProducts)
}

type OrderCreateRequest struct {
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPhone string   `json:"customerPhone"`
	Notes         string   `json:"notes"`
	ProductIDs    []string `json:"productIds"`
}

type OrderUpdateRequest struct {
	Status             *string  `json:"status"`
	CancellationReason *string  `json:"cancellationReason"`
	CustomerName       *string  `json:"customerName"`
	CustomerEmail      *string  `json:"customerEmail"`
	CustomerPhone      *string  `json:"customerPhone"`
	Notes              *string  `json:"notes"`
	IsCanceled         *bool    `json:"isCanceled"`
	ProductIDs         []string `json:"productIds"`
}

type OrderProductsDeleteRequest struct {
	ProductIDs []string `json:"productIds"`
}

// productIdsはUUIDだけ受け付ける
func validProductIDs(ids []string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if !validProductIDs(req.ProductIDs) {
		return badRequest(c, "Each product ID must be a valid UUID")
	}

	o, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		ProductIDs:    req.ProductIDs,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusCreated, o)
}

func (h *OrderHandler) list(c echo.Context) error {
	in := usecase.ListOrdersInput{
		SortBy:        c.QueryParam("sortBy"),
		SortOrder:     c.QueryParam("sortOrder"),
		Search:        c.QueryParam("search"),
		Status:        stringParam(c, "status"),
		CustomerName:  stringParam(c, "customerName"),
		CustomerEmail: stringParam(c, "customerEmail"),
		CustomerPhone: stringParam(c, "customerPhone"),
	}

	var err error
	if in.Page, err = intParam(c, "page"); err != nil {
		return badRequest(c, "invalid page")
	}
	if in.Limit, err = intParam(c, "limit"); err != nil {
		return badRequest(c, "invalid limit")
	}
	if in.IsCanceled, err = boolParam(c, "isCanceled"); err != nil {
		return badRequest(c, "invalid isCanceled")
	}
	if in.CreatedFrom, err = timeParam(c, "createdFrom"); err != nil {
		return badRequest(c, "invalid createdFrom")
	}
	if in.CreatedTo, err = timeParam(c, "createdTo"); err != nil {
		return badRequest(c, "invalid createdTo")
	}
	if in.UpdatedFrom, err = timeParam(c, "updatedFrom"); err != nil {
		return badRequest(c, "invalid updatedFrom")
	}
	if in.UpdatedTo, err = timeParam(c, "updatedTo"); err != nil {
		return badRequest(c, "invalid updatedTo")
	}

	if in.Page != nil && *in.Page < 0 {
		return badRequest(c, "invalid page")
	}
	if in.Limit != nil && *in.Limit < 0 {
		return badRequest(c, "invalid limit")
	}

	out, err := h.uc.ListOrders(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusOK, out)
}

func (h *OrderHandler) find(c echo.Context) error {
	id, ok := uuidParam(c)
	if !ok {
		return badRequest(c, "Invalid UUID format")
	}

	o, err := h.uc.FindOrderByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusOK, o)
}

func (h *OrderHandler) update(c echo.Context) error {
	id, ok := uuidParam(c)
	if !ok {
		return badRequest(c, "Invalid UUID format")
	}

	var req OrderUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if !validProductIDs(req.ProductIDs) {
		return badRequest(c, "Each product ID must be a valid UUID")
	}

	o, err := h.uc.UpdateOrderByID(c.Request().Context(), id, usecase.UpdateOrderInput{
		Status:             req.Status,
		CancellationReason: req.CancellationReason,
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		Notes:              req.Notes,
		IsCanceled:         req.IsCanceled,
		ProductIDs:         req.ProductIDs,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusOK, o)
}

func (h *OrderHandler) remove(c echo.Context) error {
	id, ok := uuidParam(c)
	if !ok {
		return badRequest(c, "Invalid UUID format")
	}

	if err := h.uc.DeleteOrderByID(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusOK, echo.Map{"affected": 1})
}

func (h *OrderHandler) removeProducts(c echo.Context) error {
	id, ok := uuidParam(c)
	if !ok {
		return badRequest(c, "Invalid UUID format")
	}

	var req OrderProductsDeleteRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if !validProductIDs(req.ProductIDs) {
		return badRequest(c, "Each product ID must be a valid UUID")
	}

	if err := h.uc.DeleteOrderProducts(c.Request().Context(), id, req.ProductIDs); err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusOK, echo.Map{"deleted": len(req.ProductIDs)})
}

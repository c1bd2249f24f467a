package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/hayderAbdulsahib/revest-assignment/internal/usecase"
)

// /v1/product の商品API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/v1/product")

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.find)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type ProductCreateRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ProductUpdateRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	IsActive *bool            `json:"isActive"`
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusCreated, p)
}

func (h *ProductHandler) list(c echo.Context) error {
	in := usecase.ListProductsInput{
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
		Search:    c.QueryParam("search"),
	}

	var err error
	if in.Page, err = intParam(c, "page"); err != nil {
		return badRequest(c, "invalid page")
	}
	if in.Limit, err = intParam(c, "limit"); err != nil {
		return badRequest(c, "invalid limit")
	}
	if in.IsActive, err = boolParam(c, "isActive"); err != nil {
		return badRequest(c, "invalid isActive")
	}
	if in.IsDeleted, err = boolParam(c, "isDeleted"); err != nil {
		return badRequest(c, "invalid isDeleted")
	}
	if in.MinPrice, err = decimalParam(c, "minPrice"); err != nil {
		return badRequest(c, "invalid minPrice")
	}
	if in.MaxPrice, err = decimalParam(c, "maxPrice"); err != nil {
		return badRequest(c, "invalid maxPrice")
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

	out, err := h.uc.ListProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusOK, out)
}

func (h *ProductHandler) find(c echo.Context) error {
	id, ok := uuidParam(c)
	if !ok {
		return badRequest(c, "Invalid UUID format")
	}

	p, err := h.uc.FindProductByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusOK, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, ok := uuidParam(c)
	if !ok {
		return badRequest(c, "Invalid UUID format")
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	p, err := h.uc.UpdateProductByID(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		IsActive: req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusOK, p)
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, ok := uuidParam(c)
	if !ok {
		return badRequest(c, "Invalid UUID format")
	}

	if err := h.uc.DeleteProductByID(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, http.StatusOK, echo.Map{"affected": 1})
}

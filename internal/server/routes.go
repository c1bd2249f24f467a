package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hayderAbdulsahib/revest-assignment/internal/handler"
)

func RegisterRoutes(e *echo.Echo, productH *handler.ProductHandler, orderH *handler.OrderHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	productH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
}

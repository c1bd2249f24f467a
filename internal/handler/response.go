package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hayderAbdulsahib/revest-assignment/internal/usecase"
)

// 全レスポンス共通の封筒
type Envelope struct {
	IsError bool   `json:"isError"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func writeSuccess(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{
		IsError: false,
		Message: "success",
		Data:    data,
	})
}

// ドメインエラーは種類を問わず400で返す。それ以外は500。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if de, ok := usecase.AsDomainError(err); ok {
		return badRequest(c, de.Message)
	}

	//500
	return c.JSON(http.StatusInternalServerError, Envelope{
		IsError: true,
		Message: "internal error",
		Data:    map[string]any{},
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		IsError: true,
		Message: message,
		Data:    map[string]any{},
	})
}

package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CheckoutResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders/:customerId/checkout", h.checkout)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	customerID, ok := customerIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid customer id"})
	}

	orderID, err := h.uc.Checkout(c.Request().Context(), customerID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CheckoutResponse{
		Message: "Order placed successfully",
		OrderID: orderID,
	})
}

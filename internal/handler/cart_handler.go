package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// リクエストbodyのキーはproductId/quantity（既存クライアント互換）
type AddItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type AddItemResponse struct {
	Message string `json:"message"`
	CartID  int64  `json:"cart_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("/:customerId", h.getCart)
	g.POST("/:customerId/add", h.addItem)
	g.DELETE("/:customerId/remove/:productId", h.removeItem)
}

func customerIDParam(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("customerId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *CartHandler) getCart(c echo.Context) error {
	customerID, ok := customerIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid customer id"})
	}

	out, err := h.uc.GetCart(c.Request().Context(), customerID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	customerID, ok := customerIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid customer id"})
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid body"})
	}

	cartID, err := h.uc.AddToCart(c.Request().Context(), customerID, usecase.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, AddItemResponse{
		Message: "Item added to cart",
		CartID:  cartID,
	})
}

func (h *CartHandler) removeItem(c echo.Context) error {
	customerID, ok := customerIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid customer id"})
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || productID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid product id"})
	}

	if err := h.uc.RemoveFromCart(c.Request().Context(), customerID, productID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Item removed from cart"})
}

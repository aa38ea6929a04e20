package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	// 顧客のCART注文を取得し、無ければ作成
	GetOrCreateCartByCustomerID(ctx context.Context, customerID int64) (model.Order, error)
	FindCartByCustomerID(ctx context.Context, customerID int64) (model.Order, error)
	// viewCart/checkout用。明細と商品をまとめて読む
	FindCartWithItems(ctx context.Context, customerID int64) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	UpdateTotalAmount(ctx context.Context, orderID int64, total decimal.Decimal) error
}

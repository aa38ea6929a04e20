package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

type OrderItemRepository interface {
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	// 同一商品は数量加算。priceSnapshotは新規作成時のみ使う
	UpsertByOrderAndProduct(ctx context.Context, orderID int64, productID int64, addQty int64, priceSnapshot decimal.Decimal) error
	// 数量に関係なく明細行ごと削除
	DeleteByOrderAndProduct(ctx context.Context, orderID int64, productID int64) error
}

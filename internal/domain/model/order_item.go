package model

import "github.com/shopspring/decimal"

// 明細の price は追加時点の価格スナップショット（商品価格が変わっても更新しない）
type OrderItem struct {
	ID        int64           `gorm:"column:order_item_id;primaryKey;autoIncrement" json:"order_item_id"`
	OrderID   int64           `gorm:"column:order_id;not null;uniqueIndex:uq_order_item_order_product" json:"order_id"`
	ProductID int64           `gorm:"column:product_id;not null;uniqueIndex:uq_order_item_order_product" json:"product_id"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
}

func (OrderItem) TableName() string {
	return "order_item"
}

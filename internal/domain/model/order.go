package model

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderStatusCart   OrderStatus = "CART"
	OrderStatusPlaced OrderStatus = "PLACED"
)

// status=CARTの注文がそのままカート。1顧客につきCARTは1つ
type Order struct {
	ID          int64           `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	CustomerID  int64           `gorm:"column:customer_id;not null;index" json:"customer_id"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'CART';index" json:"status"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	Customer    Customer        `gorm:"foreignKey:CustomerID" json:"-"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// orderは予約語なのでGORM側でクォートされる
func (Order) TableName() string {
	return "order"
}

package model

import "github.com/shopspring/decimal"

// このAPIからは読み取り専用（在庫も減らさない）
type Product struct {
	ID            int64           `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int64           `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
}

func (Product) TableName() string {
	return "product"
}

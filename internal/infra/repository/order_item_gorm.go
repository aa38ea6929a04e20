package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

// 注文の明細を一覧取得
func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("order_item_id asc").
		Find(&items).Error; err != nil {
		return []model.OrderItem{}, err
	}

	return items, nil
}

// 同一商品は数量加算。新規作成時のみ価格スナップショットを保存
func (r *OrderItemGormRepository) UpsertByOrderAndProduct(ctx context.Context, orderID int64, productID int64, addQty int64, priceSnapshot decimal.Decimal) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.OrderItem

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ? AND product_id = ?", orderID, productID).
			First(&item).Error

		if err == nil {
			// 既存ありだったら数量を増やす（priceは触らない）
			newQty := item.Quantity + addQty

			res := tx.Model(&model.OrderItem{}).
				Where("order_item_id = ?", item.ID).
				Update("quantity", newQty)

			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return repo.ErrNotFound
			}
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		//無い場合は新規作成
		newItem := model.OrderItem{
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  addQty,
			Price:     priceSnapshot,
		}

		if err := tx.Create(&newItem).Error; err != nil {
			return err
		}

		return nil
	})
}

// 明細を削除（部分的な数量減算はしない）
func (r *OrderItemGormRepository) DeleteByOrderAndProduct(ctx context.Context, orderID int64, productID int64) error {
	res := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&model.OrderItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

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

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 顧客のCART注文を取得し、無ければ作成
func (r *OrderGormRepository) GetOrCreateCartByCustomerID(ctx context.Context, customerID int64) (model.Order, error) {

	var cart model.Order

	//トランザクションで探す→無ければ作る
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("customer_id = ? AND status = ?", customerID, model.OrderStatusCart).
			Order("order_id desc").
			First(&cart).Error

		if findErr == nil {
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 無ければ作る
		newCart := model.Order{
			CustomerID:  customerID,
			Status:      model.OrderStatusCart,
			TotalAmount: decimal.Zero,
		}

		if err := tx.Create(&newCart).Error; err != nil {
			// 同時作成でuniqueに弾かれた場合はもう一度探して返す
			retryErr := tx.
				Where("customer_id = ? AND status = ?", customerID, model.OrderStatusCart).
				Order("order_id desc").
				First(&cart).Error
			if retryErr == nil {
				return nil
			}
			return err
		}

		cart = newCart
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return cart, nil
}

// 顧客のCART注文を取得
func (r *OrderGormRepository) FindCartByCustomerID(ctx context.Context, customerID int64) (model.Order, error) {
	var cart model.Order

	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, model.OrderStatusCart).
		Order("order_id desc").
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return cart, nil
}

// 明細・商品込みでCART注文を取得
func (r *OrderGormRepository) FindCartWithItems(ctx context.Context, customerID int64) (model.Order, error) {
	var cart model.Order

	err := r.db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_item_id asc")
		}).
		Preload("Items.Product").
		Where("customer_id = ? AND status = ?", customerID, model.OrderStatusCart).
		Order("order_id desc").
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return cart, nil
}

// orderのstatusを更新
func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 再計算した合計金額を保存
func (r *OrderGormRepository) UpdateTotalAmount(ctx context.Context, orderID int64, total decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Update("total_amount", total)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

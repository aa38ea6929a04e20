package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// OrderUsecase はチェックアウト（CART→PLACED）を担当。
type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

// Checkout はカートをそのままPLACEDに確定する。
// 合計金額は直近のadd/removeで計算済みの値を使い、ここでは再計算しない。
// 新しいカートも作らない（次のaddで作られる）。
func (u *OrderUsecase) Checkout(ctx context.Context, customerID int64) (int64, error) {
	if customerID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "Invalid customer id")
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Orders().FindCartWithItems(ctx, customerID)
		if err == repo.ErrNotFound {
			// カート自体が無いのも「空」として扱う
			return NewHTTPError(http.StatusBadRequest, "Cart is empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Failed to checkout")
		}
		if len(cart.Items) == 0 {
			return NewHTTPError(http.StatusBadRequest, "Cart is empty")
		}

		if err := r.Orders().UpdateStatus(ctx, cart.ID, model.OrderStatusPlaced); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Failed to checkout")
		}

		orderID = cart.ID
		return nil
	})

	if err != nil {
		return 0, err
	}
	return orderID, nil
}

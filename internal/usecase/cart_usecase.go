package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジックです。
// カートは status=CART の注文そのもの。
type CartUsecase struct {
	tx       repo.TransactionManager
	resolver CustomerResolver
}

func NewCartUsecase(tx repo.TransactionManager, resolver CustomerResolver) *CartUsecase {
	return &CartUsecase{
		tx:       tx,
		resolver: resolver,
	}
}

type AddItemInput struct {
	ProductID int64
	Quantity  int64
}

// CartView はGET /cartのレスポンス。
// カートが無いときは cart_id 無し・空items・合計0を返す（エラーにしない）。
type CartView struct {
	CartID      int64             `json:"cart_id,omitempty"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Items       []model.OrderItem `json:"items"`
}

// GetCart はカート取得（無ければ空表現を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, customerID int64) (CartView, error) {
	if customerID <= 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "Invalid customer id")
	}

	var view CartView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Orders().FindCartWithItems(ctx, customerID)
		if err == repo.ErrNotFound {
			view = CartView{TotalAmount: decimal.Zero, Items: []model.OrderItem{}}
			return nil
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Failed to fetch cart")
		}

		items := cart.Items
		if items == nil {
			items = []model.OrderItem{}
		}

		view = CartView{
			CartID:      cart.ID,
			TotalAmount: cart.TotalAmount,
			Items:       items,
		}
		return nil
	})

	if err != nil {
		return CartView{}, err
	}
	return view, nil
}

// AddToCart はカートに追加（同一商品は数量加算、価格は追加時点のまま）。
// カートが無ければ作り、顧客が未知なら resolver が自動作成する。
func (u *CartUsecase) AddToCart(ctx context.Context, customerID int64, in AddItemInput) (int64, error) {
	if customerID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "Invalid customer id")
	}
	if in.ProductID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}
	if in.Quantity < 1 {
		return 0, NewHTTPError(http.StatusBadRequest, "Invalid quantity")
	}

	if _, err := u.resolver.Resolve(ctx, customerID); err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "Failed to add item to cart")
	}

	var cartID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, in.ProductID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Failed to add item to cart")
		}

		cart, err := r.Orders().GetOrCreateCartByCustomerID(ctx, customerID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Failed to add item to cart")
		}

		// Upsert（既存明細は加算、priceスナップショットは新規時のみ）
		if err := r.OrderItems().UpsertByOrderAndProduct(ctx, cart.ID, in.ProductID, in.Quantity, p.Price); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Failed to add item to cart")
		}

		if err := u.recomputeTotal(ctx, r, cart.ID); err != nil {
			return err
		}

		cartID = cart.ID
		return nil
	})

	if err != nil {
		return 0, err
	}
	return cartID, nil
}

// RemoveFromCart は明細行ごと削除する（数量の一部減算はしない）。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, customerID int64, productID int64) error {
	if customerID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid customer id")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Orders().FindCartByCustomerID(ctx, customerID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Failed to remove item from cart")
		}

		err = r.OrderItems().DeleteByOrderAndProduct(ctx, cart.ID, productID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Item not found in cart")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Failed to remove item from cart")
		}

		return u.recomputeTotal(ctx, r, cart.ID)
	})
}

// 合計金額を明細から再計算して保存（price×quantityのdecimal合計）
func (u *CartUsecase) recomputeTotal(ctx context.Context, r repo.TxRepos, orderID int64) error {
	items, err := r.OrderItems().ListByOrderID(ctx, orderID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Failed to update cart total")
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}

	if err := r.Orders().UpdateTotalAmount(ctx, orderID, total); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "Failed to update cart total")
	}
	return nil
}

package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderUsecase(orders repo.OrderRepository) *usecase.OrderUsecase {
	tx := &CartTxManagerMock{Repos: &CartTxReposMock{orders: orders}}
	return usecase.NewOrderUsecase(tx)
}

func TestOrderUsecase_Checkout_NoCart_IsEmptyCart(t *testing.T) {
	ctx := context.Background()

	orders := new(CartOrderRepoMock)
	orders.On("FindCartWithItems", mock.Anything, int64(1)).Return(model.Order{}, repo.ErrNotFound)

	uc := newOrderUsecase(orders)

	_, err := uc.Checkout(ctx, 1)
	assertErrContains(t, err, "Cart is empty")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

// 空カートのチェックアウトは失敗し、statusはCARTのまま
func TestOrderUsecase_Checkout_EmptyCart_StatusUnchanged(t *testing.T) {
	ctx := context.Background()

	orders := new(CartOrderRepoMock)
	orders.On("FindCartWithItems", mock.Anything, int64(1)).Return(model.Order{
		ID:     7,
		Status: model.OrderStatusCart,
		Items:  []model.OrderItem{},
	}, nil)

	uc := newOrderUsecase(orders)

	_, err := uc.Checkout(ctx, 1)
	assertErrContains(t, err, "Cart is empty")
}

func TestOrderUsecase_Checkout_PlacesCart(t *testing.T) {
	ctx := context.Background()

	orders := new(OrderRepoWithStatusMock)
	orders.On("FindCartWithItems", mock.Anything, int64(1)).Return(model.Order{
		ID:          7,
		Status:      model.OrderStatusCart,
		TotalAmount: decimal.RequireFromString("34.99"),
		Items: []model.OrderItem{
			{ID: 10, OrderID: 7, ProductID: 2, Quantity: 1, Price: decimal.RequireFromString("34.99")},
		},
	}, nil)
	orders.On("UpdateStatus", mock.Anything, int64(7), model.OrderStatusPlaced).Return(nil)

	uc := newOrderUsecase(orders)

	orderID, err := uc.Checkout(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), orderID)

	orders.AssertExpectations(t)
	orders.AssertNumberOfCalls(t, "UpdateStatus", 1)
}

// PLACED後の顧客にはCART注文が無いので、再チェックアウトは「空」になる
func TestOrderUsecase_Checkout_AfterPlace_NoCartLeft(t *testing.T) {
	ctx := context.Background()

	orders := new(CartOrderRepoMock)
	orders.On("FindCartWithItems", mock.Anything, int64(1)).Return(model.Order{}, repo.ErrNotFound)

	uc := newOrderUsecase(orders)

	_, err := uc.Checkout(ctx, 1)
	assertErrContains(t, err, "Cart is empty")
}

// UpdateStatusまで呼べるOrderRepositoryモック
type OrderRepoWithStatusMock struct{ mock.Mock }

func (m *OrderRepoWithStatusMock) GetOrCreateCartByCustomerID(ctx context.Context, customerID int64) (model.Order, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrderRepoWithStatusMock) FindCartByCustomerID(ctx context.Context, customerID int64) (model.Order, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrderRepoWithStatusMock) FindCartWithItems(ctx context.Context, customerID int64) (model.Order, error) {
	args := m.Called(ctx, customerID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoWithStatusMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoWithStatusMock) UpdateTotalAmount(ctx context.Context, orderID int64, total decimal.Decimal) error {
	panic("not used in OrderUsecase tests")
}

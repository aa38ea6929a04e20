package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TEST_DATABASE_URL があるときだけ実DBで回す
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}

	if err := db.Sync(gormDB); err != nil {
		t.Fatalf("db.Sync failed: %v", err)
	}

	return gormDB
}

// 顧客を作成し、ぶら下がる注文・明細ごと後片付けする
func createTestCustomer(t *testing.T, gormDB *gorm.DB) model.Customer {
	t.Helper()

	c := model.Customer{
		ID:        time.Now().UnixNano(),
		FirstName: "Test",
		LastName:  "Customer",
	}
	c.Email = fmt.Sprintf("test%d@example.com", c.ID)

	if err := gormDB.Create(&c).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	t.Cleanup(func() {
		gormDB.Exec(`DELETE FROM order_item WHERE order_id IN (SELECT order_id FROM "order" WHERE customer_id = ?)`, c.ID)
		gormDB.Exec(`DELETE FROM "order" WHERE customer_id = ?`, c.ID)
		gormDB.Exec(`DELETE FROM customer WHERE customer_id = ?`, c.ID)
	})

	return c
}

func createTestProduct(t *testing.T, gormDB *gorm.DB, price string) model.Product {
	t.Helper()

	p := model.Product{
		ID:            time.Now().UnixNano(),
		Name:          "Desk Lamp",
		Price:         decimal.RequireFromString(price),
		StockQuantity: 10,
	}

	if err := gormDB.Create(&p).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	t.Cleanup(func() {
		gormDB.Exec(`DELETE FROM product WHERE product_id = ?`, p.ID)
	})

	return p
}

// 同じ顧客で連続してresolveしてもカートは1つだけ
func TestOrderGormRepository_GetOrCreateCart_Idempotent(t *testing.T) {
	gormDB := testDB(t)
	ctx := context.Background()

	c := createTestCustomer(t, gormDB)
	orders := infraRepo.NewOrderGormRepository(gormDB)

	first, err := orders.GetOrCreateCartByCustomerID(ctx, c.ID)
	assert.NoError(t, err)
	second, err := orders.GetOrCreateCartByCustomerID(ctx, c.ID)
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	err = gormDB.Model(&model.Order{}).
		Where("customer_id = ? AND status = ?", c.ID, model.OrderStatusCart).
		Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// 同一商品の二重追加は1行に数量加算され、priceスナップショットは最初の値のまま
func TestOrderItemGormRepository_Upsert_MergesIntoOneRow(t *testing.T) {
	gormDB := testDB(t)
	ctx := context.Background()

	c := createTestCustomer(t, gormDB)
	p := createTestProduct(t, gormDB, "19.99")

	orders := infraRepo.NewOrderGormRepository(gormDB)
	cart, err := orders.GetOrCreateCartByCustomerID(ctx, c.ID)
	assert.NoError(t, err)

	items := infraRepo.NewOrderItemGormRepository(gormDB)

	err = items.UpsertByOrderAndProduct(ctx, cart.ID, p.ID, 2, decimal.RequireFromString("19.99"))
	assert.NoError(t, err)

	// 2回目は値上がり後の価格を渡しても、既存明細は数量だけ増える
	err = items.UpsertByOrderAndProduct(ctx, cart.ID, p.ID, 3, decimal.RequireFromString("25.00"))
	assert.NoError(t, err)

	got, err := items.ListByOrderID(ctx, cart.ID)
	assert.NoError(t, err)
	if assert.Equal(t, 1, len(got)) {
		assert.Equal(t, int64(5), got[0].Quantity)
		assert.True(t, got[0].Price.Equal(decimal.RequireFromString("19.99")))
	}
}

// order.customer_id の外部キーがマイグレーションで作られている
func TestSync_DeclaresOrderCustomerConstraint(t *testing.T) {
	gormDB := testDB(t)

	assert.True(t, gormDB.Migrator().HasConstraint(&model.Order{}, "Customer"))
}

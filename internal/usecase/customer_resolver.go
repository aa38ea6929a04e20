package usecase

import (
	"context"
	"fmt"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CustomerResolver は顧客IDを顧客レコードに解決するポリシー。
// カート操作の前に必ず通す。
type CustomerResolver interface {
	Resolve(ctx context.Context, customerID int64) (model.Customer, error)
}

// AutoProvisionCustomerResolver は未知の顧客をプレースホルダ名義で自動作成する。
type AutoProvisionCustomerResolver struct {
	customers repo.CustomerRepository
}

// DI
func NewAutoProvisionCustomerResolver(customers repo.CustomerRepository) *AutoProvisionCustomerResolver {
	return &AutoProvisionCustomerResolver{customers: customers}
}

func (r *AutoProvisionCustomerResolver) Resolve(ctx context.Context, customerID int64) (model.Customer, error) {
	c, err := r.customers.FindByID(ctx, customerID)
	if err == nil {
		return c, nil
	}
	if err != repo.ErrNotFound {
		return model.Customer{}, err
	}

	//無ければ Test Customer / test<id>@example.com で作成
	return r.customers.Create(ctx, model.Customer{
		ID:        customerID,
		FirstName: "Test",
		LastName:  "Customer",
		Email:     fmt.Sprintf("test%d@example.com", customerID),
	})
}

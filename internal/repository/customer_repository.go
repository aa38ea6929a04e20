package repository

import (
	"context"

	"app/internal/domain/model"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, customerID int64) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
}

package repository

import (
	"context"
	"errors"

	"product-catalog/internal/model"
)

// ErrNotFound reports absence of an entity. Callers check it with
// errors.Is; no operation panics or throws for a missing identifier.
var ErrNotFound = errors.New("product not found")

// ProductRepository is the storage capability surface. One production
// implementation serves it at a time; tests substitute doubles.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}

package repository

import (
	"context"

	"product-catalog/internal/logger"
	"product-catalog/internal/model"
	"product-catalog/internal/store"

	"go.opentelemetry.io/otel"
)

// MemoryProductRepository realizes the repository contract over the
// shared in-memory store. Instances are built per request; the store
// they wrap is process-wide.
type MemoryProductRepository struct {
	store *store.Store
}

var MemoryProductRepositoryTracer = otel.Tracer("MemoryProductRepository")

func NewMemoryProductRepository(s *store.Store) *MemoryProductRepository {
	return &MemoryProductRepository{store: s}
}

func (r *MemoryProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	ctx, span := MemoryProductRepositoryTracer.Start(ctx, "MemoryProductRepository.GetAll")
	defer span.End()
	logger.Info(ctx, "Repository")

	return r.store.Snapshot(), nil
}

func (r *MemoryProductRepository) GetByID(ctx context.Context, id int64) (model.Product, error) {
	ctx, span := MemoryProductRepositoryTracer.Start(ctx, "MemoryProductRepository.GetByID")
	defer span.End()
	logger.Info(ctx, "Repository")

	p, ok := r.store.Get(id)
	if !ok {
		return model.Product{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	ctx, span := MemoryProductRepositoryTracer.Start(ctx, "MemoryProductRepository.Create")
	defer span.End()
	logger.Info(ctx, "Repository")

	return r.store.Insert(p), nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, p model.Product) error {
	ctx, span := MemoryProductRepositoryTracer.Start(ctx, "MemoryProductRepository.Update")
	defer span.End()
	logger.Info(ctx, "Repository")

	if !r.store.Replace(p) {
		return ErrNotFound
	}
	return nil
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := MemoryProductRepositoryTracer.Start(ctx, "MemoryProductRepository.Delete")
	defer span.End()
	logger.Info(ctx, "Repository")

	if !r.store.Remove(id) {
		return ErrNotFound
	}
	return nil
}

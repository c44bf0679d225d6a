package service

import (
	"context"
	"errors"

	"product-catalog/internal/logger"
	"product-catalog/internal/model"
	"product-catalog/internal/repository"

	"go.opentelemetry.io/otel"
)

// ProductService is the business capability surface exposed to
// transport handlers.
type ProductService interface {
	GetAllProducts(ctx context.Context) ([]model.ProductResponse, error)
	GetProductByID(ctx context.Context, id int64) (model.ProductResponse, error)
	CreateProduct(ctx context.Context, req model.CreateProductRequest) (model.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int64, req model.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id int64) error
}

// productService orchestrates repository calls and maps entities to
// their transfer representations. It holds no state of its own.
//
// strictNotFound selects the absence policy for update and delete:
// false swallows a missing identifier (the operation completes without
// effect), true surfaces repository.ErrNotFound.
type productService struct {
	repo           repository.ProductRepository
	strictNotFound bool
}

var ProductServiceTracer = otel.Tracer("ProductService")

func NewProductService(repo repository.ProductRepository, strictNotFound bool) ProductService {
	return &productService{repo: repo, strictNotFound: strictNotFound}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]model.ProductResponse, error) {
	ctx, span := ProductServiceTracer.Start(ctx, "ProductService.GetAllProducts")
	defer span.End()
	logger.Info(ctx, "Service")

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return model.ToResponses(products), nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (model.ProductResponse, error) {
	ctx, span := ProductServiceTracer.Start(ctx, "ProductService.GetProductByID")
	defer span.End()
	logger.Info(ctx, "Service")

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.ProductResponse{}, err
	}
	return model.ToResponse(p), nil
}

func (s *productService) CreateProduct(ctx context.Context, req model.CreateProductRequest) (model.ProductResponse, error) {
	ctx, span := ProductServiceTracer.Start(ctx, "ProductService.CreateProduct")
	defer span.End()
	logger.Info(ctx, "Service")

	created, err := s.repo.Create(ctx, req.Entity())
	if err != nil {
		return model.ProductResponse{}, err
	}
	return model.ToResponse(created), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req model.UpdateProductRequest) error {
	ctx, span := ProductServiceTracer.Start(ctx, "ProductService.UpdateProduct")
	defer span.End()
	logger.Info(ctx, "Service")

	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return s.absence(err)
	}
	if err != nil {
		return err
	}

	req.Apply(&p)
	if err := s.repo.Update(ctx, p); errors.Is(err, repository.ErrNotFound) {
		return s.absence(err)
	} else if err != nil {
		return err
	}
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	ctx, span := ProductServiceTracer.Start(ctx, "ProductService.DeleteProduct")
	defer span.End()
	logger.Info(ctx, "Service")

	if err := s.repo.Delete(ctx, id); errors.Is(err, repository.ErrNotFound) {
		return s.absence(err)
	} else if err != nil {
		return err
	}
	return nil
}

func (s *productService) absence(err error) error {
	if s.strictNotFound {
		return err
	}
	return nil
}

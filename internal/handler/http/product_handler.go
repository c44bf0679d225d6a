package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"product-catalog/internal/container"
	"product-catalog/internal/logger"
	"product-catalog/internal/model"
	"product-catalog/internal/repository"
	"product-catalog/internal/service"

	"go.opentelemetry.io/otel"
)

// ServiceBinding is the container name the handler resolves the
// product service under.
const ServiceBinding = "product.service"

// ProductHandler translates HTTP calls into service invocations. It
// holds the composition root, not a service: a fresh scope is opened
// per request so the repository/service pair lives exactly as long as
// the request that asked for it.
type ProductHandler struct {
	container *container.Container
}

var HttpProductHandlerTracer = otel.Tracer("HttpProductHandler")

func NewProductHandler(c *container.Container) *ProductHandler {
	return &ProductHandler{container: c}
}

func (h *ProductHandler) service(w http.ResponseWriter) (service.ProductService, bool) {
	scope := h.container.Request()
	svc, err := container.Resolve[service.ProductService](scope, ServiceBinding)
	if err != nil {
		http.Error(w, "Service resolution failed", http.StatusInternalServerError)
		return nil, false
	}
	return svc, true
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpProductHandlerTracer.Start(r.Context(), "HttpProductHandler.GetAll")
	defer span.End()
	logger.Info(ctx, "HttpProductHandler")

	svc, ok := h.service(w)
	if !ok {
		return
	}

	products, err := svc.GetAllProducts(ctx)
	if err != nil {
		http.Error(w, "Failed to fetch products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpProductHandlerTracer.Start(r.Context(), "HttpProductHandler.GetByID")
	defer span.End()
	logger.Info(ctx, "HttpProductHandler")

	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}

	svc, ok := h.service(w)
	if !ok {
		return
	}

	product, err := svc.GetProductByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpProductHandlerTracer.Start(r.Context(), "HttpProductHandler.Create")
	defer span.End()
	logger.Info(ctx, "HttpProductHandler")

	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	svc, ok := h.service(w)
	if !ok {
		return
	}

	created, err := svc.CreateProduct(ctx, req)
	if err != nil {
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/products/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpProductHandlerTracer.Start(r.Context(), "HttpProductHandler.Update")
	defer span.End()
	logger.Info(ctx, "HttpProductHandler")

	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}

	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	svc, ok := h.service(w)
	if !ok {
		return
	}

	err = svc.UpdateProduct(ctx, id, req)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpProductHandlerTracer.Start(r.Context(), "HttpProductHandler.Delete")
	defer span.End()
	logger.Info(ctx, "HttpProductHandler")

	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}

	svc, ok := h.service(w)
	if !ok {
		return
	}

	err = svc.DeleteProduct(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

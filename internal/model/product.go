package model

// Product is the stored entity. The ID is assigned by the repository on
// create and never changes afterwards.
type Product struct {
	ID          int64   `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description" bson:"description"`
	Stock       int     `json:"stock" bson:"stock"`
}

// ProductResponse is the outward shape of a product.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
}

// CreateProductRequest carries the attributes of a product to create.
// The identifier is server-assigned.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
}

// UpdateProductRequest carries the full replacement attributes of a
// product; the identifier travels separately as the lookup key.
type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
}

// Entity builds a Product from the request, identifier unset.
func (r CreateProductRequest) Entity() Product {
	return Product{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Stock:       r.Stock,
	}
}

// Apply overwrites every mutable field of p from the request.
func (r UpdateProductRequest) Apply(p *Product) {
	p.Name = r.Name
	p.Price = r.Price
	p.Description = r.Description
	p.Stock = r.Stock
}

// ToResponse maps an entity to its read representation.
func ToResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Stock:       p.Stock,
	}
}

// ToResponses maps a slice of entities in order. The result is non-nil
// even for empty input so JSON encodes an empty array.
func ToResponses(products []Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToResponse(p))
	}
	return out
}

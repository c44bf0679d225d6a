// Package store owns the process-wide product collection. Every
// mutation funnels through its methods; nothing else touches the slice
// or the counter.
package store

import (
	"context"
	"sync"

	"product-catalog/internal/model"
)

type Store struct {
	mu       sync.RWMutex
	products []model.Product
	nextID   int64
}

// New returns an empty store with the counter at 1.
func New() *Store {
	return &Store{nextID: 1}
}

// Seed returns a store preloaded with three products, counter at 4.
func Seed() *Store {
	return &Store{
		products: []model.Product{
			{ID: 1, Name: "Laptop", Price: 1499.99, Description: "14-inch ultrabook", Stock: 12},
			{ID: 2, Name: "Mouse", Price: 24.99, Description: "Wireless optical mouse", Stock: 40},
			{ID: 3, Name: "Keyboard", Price: 79.99, Description: "Mechanical keyboard", Stock: 25},
		},
		nextID: 4,
	}
}

// Snapshot returns a copy of the current contents in insertion order.
func (s *Store) Snapshot() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Get(id int64) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Insert assigns the next identifier, appends the entity and returns
// it with the identifier populated. Identifiers are never reused
// within a process lifetime.
func (s *Store) Insert(p model.Product) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	s.products = append(s.products, p)
	return p
}

// Replace overwrites the stored entity with the same identifier.
// Returns false when no such entity exists.
func (s *Store) Replace(p model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return true
		}
	}
	return false
}

// Remove deletes the entity with the given identifier. Returns false
// when no such entity exists.
func (s *Store) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Ping satisfies the health probe; an in-memory store is always up.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

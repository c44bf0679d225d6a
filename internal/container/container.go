// Package container is the composition root mechanism: named bindings
// from an abstraction to exactly one provider, each with a declared
// lifetime. The binding graph is validated eagerly at startup so a
// missing binding or a cycle is reported before any request is served,
// never discovered lazily.
package container

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Lifetime declares how long a resolved instance is shared.
type Lifetime int

const (
	// Singleton instances are built once and shared process-wide.
	Singleton Lifetime = iota
	// PerRequest instances are shared within one Scope and rebuilt for
	// the next.
	PerRequest
)

// Provider builds an instance, resolving its declared dependencies
// from the scope it is handed.
type Provider func(s *Scope) (any, error)

type binding struct {
	lifetime Lifetime
	deps     []string
	provide  Provider
}

type Container struct {
	mu         sync.Mutex
	bindings   map[string]binding
	singletons map[string]any
}

func New() *Container {
	return &Container{
		bindings:   make(map[string]binding),
		singletons: make(map[string]any),
	}
}

// Register binds name to a provider. deps lists the binding names the
// provider will resolve; Validate checks them. Registering the same
// name twice replaces the earlier binding.
func (c *Container) Register(name string, lifetime Lifetime, deps []string, provide Provider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[name] = binding{lifetime: lifetime, deps: deps, provide: provide}
}

// Validate checks the whole binding graph: every declared dependency
// must be bound and the graph must be acyclic. Call it before serving;
// a non-nil error means the process must not start.
func (c *Container) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.bindings))
	for name := range c.bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, dep := range c.bindings[name].deps {
			if _, ok := c.bindings[dep]; !ok {
				return fmt.Errorf("binding %q requires %q, which is not registered", name, dep)
			}
		}
	}

	// Cycle check: depth-first walk with a three-color marking.
	const (
		white = 0
		grey  = 1
		black = 2
	)
	color := make(map[string]int, len(c.bindings))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch color[name] {
		case black:
			return nil
		case grey:
			start := 0
			for i, p := range path {
				if p == name {
					start = i
					break
				}
			}
			cycle := append(path[start:], name)
			return fmt.Errorf("circular binding: %s", strings.Join(cycle, " -> "))
		}
		color[name] = grey
		for _, dep := range c.bindings[name].deps {
			if err := visit(dep, append(path, name)); err != nil {
				return err
			}
		}
		color[name] = black
		return nil
	}

	for _, name := range names {
		if err := visit(name, nil); err != nil {
			return err
		}
	}
	return nil
}

// Request opens a fresh per-request scope.
func (c *Container) Request() *Scope {
	return &Scope{
		container: c,
		instances: make(map[string]any),
	}
}

// Scope memoizes PerRequest instances for one logical request. Every
// consumer resolving the same name within a scope receives the same
// instance; a new scope starts empty. Scopes are used by a single
// request goroutine and need no locking of their own.
type Scope struct {
	container *Container
	instances map[string]any
}

// Resolve returns the instance bound to name, constructing it on first
// use within the applicable lifetime.
func (s *Scope) Resolve(name string) (any, error) {
	s.container.mu.Lock()
	b, ok := s.container.bindings[name]
	if !ok {
		s.container.mu.Unlock()
		return nil, fmt.Errorf("no binding registered for %q", name)
	}
	if b.lifetime == Singleton {
		if inst, done := s.container.singletons[name]; done {
			s.container.mu.Unlock()
			return inst, nil
		}
	}
	s.container.mu.Unlock()

	if b.lifetime == PerRequest {
		if inst, done := s.instances[name]; done {
			return inst, nil
		}
	}

	inst, err := b.provide(s)
	if err != nil {
		return nil, fmt.Errorf("building %q: %w", name, err)
	}

	switch b.lifetime {
	case Singleton:
		s.container.mu.Lock()
		// Another scope may have built it concurrently; keep the first.
		if prior, done := s.container.singletons[name]; done {
			inst = prior
		} else {
			s.container.singletons[name] = inst
		}
		s.container.mu.Unlock()
	case PerRequest:
		s.instances[name] = inst
	}
	return inst, nil
}

// Resolve is the typed form of Scope.Resolve.
func Resolve[T any](s *Scope, name string) (T, error) {
	var zero T
	inst, err := s.Resolve(name)
	if err != nil {
		return zero, err
	}
	typed, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("binding %q is %T, not %T", name, inst, zero)
	}
	return typed, nil
}

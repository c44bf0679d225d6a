package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct{ n int }

func TestPerRequestSharedWithinScope(t *testing.T) {
	c := New()
	built := 0
	c.Register("counter", PerRequest, nil, func(*Scope) (any, error) {
		built++
		return &counter{}, nil
	})
	require.NoError(t, c.Validate())

	scope := c.Request()
	a, err := Resolve[*counter](scope, "counter")
	require.NoError(t, err)
	b, err := Resolve[*counter](scope, "counter")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, built)
}

func TestPerRequestDistinctAcrossScopes(t *testing.T) {
	c := New()
	c.Register("counter", PerRequest, nil, func(*Scope) (any, error) {
		return &counter{}, nil
	})
	require.NoError(t, c.Validate())

	a, err := Resolve[*counter](c.Request(), "counter")
	require.NoError(t, err)
	b, err := Resolve[*counter](c.Request(), "counter")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
}

func TestSingletonSharedAcrossScopes(t *testing.T) {
	c := New()
	built := 0
	c.Register("shared", Singleton, nil, func(*Scope) (any, error) {
		built++
		return &counter{}, nil
	})
	require.NoError(t, c.Validate())

	a, err := Resolve[*counter](c.Request(), "shared")
	require.NoError(t, err)
	b, err := Resolve[*counter](c.Request(), "shared")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, built)
}

func TestDependenciesResolveThroughScope(t *testing.T) {
	c := New()
	c.Register("leaf", Singleton, nil, func(*Scope) (any, error) {
		return &counter{n: 7}, nil
	})
	c.Register("node", PerRequest, []string{"leaf"}, func(s *Scope) (any, error) {
		leaf, err := Resolve[*counter](s, "leaf")
		if err != nil {
			return nil, err
		}
		return &counter{n: leaf.n + 1}, nil
	})
	require.NoError(t, c.Validate())

	node, err := Resolve[*counter](c.Request(), "node")
	require.NoError(t, err)
	assert.Equal(t, 8, node.n)
}

func TestValidateMissingBinding(t *testing.T) {
	c := New()
	c.Register("node", PerRequest, []string{"ghost"}, func(*Scope) (any, error) {
		return nil, nil
	})

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"node"`)
	assert.Contains(t, err.Error(), `"ghost"`)
}

func TestValidateCircularBindings(t *testing.T) {
	c := New()
	provide := func(*Scope) (any, error) { return nil, nil }
	c.Register("a", PerRequest, []string{"b"}, provide)
	c.Register("b", PerRequest, []string{"a"}, provide)

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular binding")
}

func TestValidateSelfCycle(t *testing.T) {
	c := New()
	c.Register("a", PerRequest, []string{"a"}, func(*Scope) (any, error) {
		return nil, nil
	})

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a -> a")
}

func TestResolveUnknownName(t *testing.T) {
	c := New()
	require.NoError(t, c.Validate())

	_, err := c.Request().Resolve("missing")
	assert.Error(t, err)
}

func TestResolveTypeMismatch(t *testing.T) {
	c := New()
	c.Register("value", Singleton, nil, func(*Scope) (any, error) {
		return "a string", nil
	})
	require.NoError(t, c.Validate())

	_, err := Resolve[*counter](c.Request(), "value")
	assert.Error(t, err)
}

package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog/internal/model"
)

func TestSeedContents(t *testing.T) {
	s := Seed()
	require.Equal(t, 3, s.Len())

	snap := s.Snapshot()
	ids := []int64{snap[0].ID, snap[1].ID, snap[2].ID}
	assert.Equal(t, []int64{1, 2, 3}, ids)

	created := s.Insert(model.Product{Name: "Monitor"})
	assert.Equal(t, int64(4), created.ID)
}

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	s := New()
	a := s.Insert(model.Product{Name: "a"})
	b := s.Insert(model.Product{Name: "b"})
	require.Equal(t, int64(1), a.ID)
	require.Equal(t, int64(2), b.ID)

	// Removing an entity must not free its identifier for reuse.
	require.True(t, s.Remove(b.ID))
	c := s.Insert(model.Product{Name: "c"})
	assert.Equal(t, int64(3), c.ID)
}

func TestReplaceAndRemoveAbsent(t *testing.T) {
	s := Seed()
	assert.False(t, s.Replace(model.Product{ID: 999, Name: "ghost"}))
	assert.False(t, s.Remove(999))
	assert.Equal(t, 3, s.Len())
}

func TestSnapshotIsACopy(t *testing.T) {
	s := Seed()
	snap := s.Snapshot()
	snap[0].Name = "mutated"

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Laptop", got.Name)
}

func TestConcurrentInserts(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Insert(model.Product{Name: "p"})
		}()
	}
	wg.Wait()

	require.Equal(t, 100, s.Len())
	seen := make(map[int64]bool)
	for _, p := range s.Snapshot() {
		assert.False(t, seen[p.ID], "id %d assigned twice", p.ID)
		seen[p.ID] = true
	}
}

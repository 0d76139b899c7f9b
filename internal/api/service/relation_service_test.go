package service

import (
	"context"
	"testing"

	"foodgram/internal/api/models"
	"foodgram/internal/api/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeEdgeStore is an in-memory EdgeStore keyed by (user, target).
type fakeEdgeStore struct {
	edges map[string]map[int64]bool
}

func newFakeEdgeStore() *fakeEdgeStore {
	return &fakeEdgeStore{edges: map[string]map[int64]bool{}}
}

func (f *fakeEdgeStore) Add(ctx context.Context, userID string, targetID int64) error {
	if f.edges[userID][targetID] {
		return repository.ErrEdgeExists
	}
	if f.edges[userID] == nil {
		f.edges[userID] = map[int64]bool{}
	}
	f.edges[userID][targetID] = true
	return nil
}

func (f *fakeEdgeStore) Remove(ctx context.Context, userID string, targetID int64) error {
	if !f.edges[userID][targetID] {
		return repository.ErrEdgeNotFound
	}
	delete(f.edges[userID], targetID)
	return nil
}

func (f *fakeEdgeStore) Exists(ctx context.Context, userID string, targetID int64) (bool, error) {
	return f.edges[userID][targetID], nil
}

func (f *fakeEdgeStore) TargetIDs(ctx context.Context, userID string) ([]int64, error) {
	var ids []int64
	for id := range f.edges[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func recipeLookupFrom(recipes map[int64]*models.Recipe) func(context.Context, int64) (*models.Recipe, error) {
	return func(ctx context.Context, id int64) (*models.Recipe, error) {
		if r, ok := recipes[id]; ok {
			return r, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
}

func TestRelationServiceAdd(t *testing.T) {
	recipes := map[int64]*models.Recipe{
		1: {ID: 1, Name: "Borscht"},
	}

	t.Run("AddReturnsTarget", func(t *testing.T) {
		svc := NewRelationService[models.Recipe, int64](newFakeEdgeStore(), recipeLookupFrom(recipes), nil)

		got, err := svc.Add(context.Background(), "user-1", 1)
		assert.NoError(t, err)
		assert.Equal(t, "Borscht", got.Name)

		has, err := svc.Has(context.Background(), "user-1", 1)
		assert.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("AddMissingTarget", func(t *testing.T) {
		svc := NewRelationService[models.Recipe, int64](newFakeEdgeStore(), recipeLookupFrom(recipes), nil)

		_, err := svc.Add(context.Background(), "user-1", 42)
		assert.ErrorIs(t, err, ErrTargetNotFound)
	})

	t.Run("AddTwiceIsConflict", func(t *testing.T) {
		store := newFakeEdgeStore()
		svc := NewRelationService[models.Recipe, int64](store, recipeLookupFrom(recipes), nil)

		_, err := svc.Add(context.Background(), "user-1", 1)
		assert.NoError(t, err)

		_, err = svc.Add(context.Background(), "user-1", 1)
		assert.ErrorIs(t, err, ErrRelationExists)

		// still exactly one edge
		ids, _ := store.TargetIDs(context.Background(), "user-1")
		assert.Len(t, ids, 1)
	})

	t.Run("GuardVetoesAdd", func(t *testing.T) {
		store := newFakeEdgeStore()
		guard := func(ctx context.Context, userID string, targetID int64) error {
			return ErrSelfSubscription
		}
		svc := NewRelationService[models.Recipe, int64](store, recipeLookupFrom(recipes), guard)

		_, err := svc.Add(context.Background(), "user-1", 1)
		assert.ErrorIs(t, err, ErrSelfSubscription)

		ids, _ := store.TargetIDs(context.Background(), "user-1")
		assert.Empty(t, ids)
	})
}

func TestRelationServiceRemove(t *testing.T) {
	recipes := map[int64]*models.Recipe{
		1: {ID: 1, Name: "Borscht"},
	}

	t.Run("RemoveExisting", func(t *testing.T) {
		svc := NewRelationService[models.Recipe, int64](newFakeEdgeStore(), recipeLookupFrom(recipes), nil)

		_, err := svc.Add(context.Background(), "user-1", 1)
		assert.NoError(t, err)
		assert.NoError(t, svc.Remove(context.Background(), "user-1", 1))

		has, _ := svc.Has(context.Background(), "user-1", 1)
		assert.False(t, has)
	})

	t.Run("RemoveAbsentIsNotFound", func(t *testing.T) {
		svc := NewRelationService[models.Recipe, int64](newFakeEdgeStore(), recipeLookupFrom(recipes), nil)

		err := svc.Remove(context.Background(), "user-1", 1)
		assert.ErrorIs(t, err, ErrRelationNotFound)
	})

	t.Run("RemoveMissingTarget", func(t *testing.T) {
		svc := NewRelationService[models.Recipe, int64](newFakeEdgeStore(), recipeLookupFrom(recipes), nil)

		err := svc.Remove(context.Background(), "user-1", 42)
		assert.ErrorIs(t, err, ErrTargetNotFound)
	})
}

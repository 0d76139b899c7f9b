package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodgram/internal/api/dto"
	"foodgram/internal/api/handler"
	"foodgram/internal/api/models"
	"foodgram/internal/api/repository"
	"foodgram/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// in-memory EdgeStore keyed by (user, recipe)
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

func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("username", "testuser")
		c.Set("role", "user")
		c.Next()
	}
}

func setupFavoriteRouter(store *fakeEdgeStore, recipes map[int64]*models.Recipe) *gin.Engine {
	gin.SetMode(gin.TestMode)

	lookup := func(ctx context.Context, id int64) (*models.Recipe, error) {
		if r, ok := recipes[id]; ok {
			return r, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
	relation := service.NewRelationService[models.Recipe, int64](store, lookup, nil)
	project := func(r models.Recipe) any {
		return dto.FromRecipeToShortResponse(r, "/media/"+r.Image)
	}
	h := handler.NewRecipeRelationHandler(relation, project)

	r := gin.New()
	r.POST("/api/recipes/:id/favorite", fakeAuth("user-1"), h.Add)
	r.DELETE("/api/recipes/:id/favorite", fakeAuth("user-1"), h.Remove)
	return r
}

func TestRecipeRelationHandler_Add(t *testing.T) {
	recipes := map[int64]*models.Recipe{
		7: {ID: 7, Name: "Borscht", Image: "borscht.png", CookingTime: 90},
	}

	t.Run("ReturnsShortProjection", func(t *testing.T) {
		r := setupFavoriteRouter(newFakeEdgeStore(), recipes)

		req := httptest.NewRequest(http.MethodPost, "/api/recipes/7/favorite", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.ShortRecipeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "Borscht", resp.Name)
		assert.Equal(t, "/media/borscht.png", resp.Image)
		assert.Equal(t, 90, resp.CookingTime)
	})

	t.Run("SecondAddConflicts", func(t *testing.T) {
		r := setupFavoriteRouter(newFakeEdgeStore(), recipes)

		req := httptest.NewRequest(http.MethodPost, "/api/recipes/7/favorite", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		req = httptest.NewRequest(http.MethodPost, "/api/recipes/7/favorite", nil)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("UnknownRecipe", func(t *testing.T) {
		r := setupFavoriteRouter(newFakeEdgeStore(), recipes)

		req := httptest.NewRequest(http.MethodPost, "/api/recipes/99/favorite", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		r := setupFavoriteRouter(newFakeEdgeStore(), recipes)

		req := httptest.NewRequest(http.MethodPost, "/api/recipes/abc/favorite", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRecipeRelationHandler_Remove(t *testing.T) {
	recipes := map[int64]*models.Recipe{
		7: {ID: 7, Name: "Borscht"},
	}

	t.Run("RemoveAfterAdd", func(t *testing.T) {
		r := setupFavoriteRouter(newFakeEdgeStore(), recipes)

		req := httptest.NewRequest(http.MethodPost, "/api/recipes/7/favorite", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		req = httptest.NewRequest(http.MethodDelete, "/api/recipes/7/favorite", nil)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("RemoveAbsentIsNotFound", func(t *testing.T) {
		r := setupFavoriteRouter(newFakeEdgeStore(), recipes)

		req := httptest.NewRequest(http.MethodDelete, "/api/recipes/7/favorite", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

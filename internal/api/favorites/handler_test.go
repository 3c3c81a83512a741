package favorites

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"artify-server/internal/apperr"
	"artify-server/internal/domain/works"
	"artify-server/internal/store"
)

// memRepo enforces pair uniqueness on Insert the way the unique index does.
type memRepo struct {
	mu   sync.Mutex
	docs []works.Favorite
	err  error

	// skipExists makes Exists always report false, as if a concurrent
	// request had not inserted yet when the check ran.
	skipExists bool
}

func (m *memRepo) Exists(_ context.Context, artworkID, email any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	if m.skipExists {
		return false, nil
	}
	return m.indexPair(artworkID, email) >= 0, nil
}

func (m *memRepo) Insert(_ context.Context, f works.Favorite) (bson.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return bson.NilObjectID, m.err
	}
	if m.indexPair(f.Pair()) >= 0 {
		return bson.NilObjectID, fmt.Errorf("insert favorite: %w", apperr.ErrDuplicateResource)
	}
	id := bson.NewObjectID()
	f[works.FieldID] = id
	m.docs = append(m.docs, maps.Clone(f))
	return id, nil
}

func (m *memRepo) ListByOwner(_ context.Context, email string) ([]works.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []works.Favorite{}
	for _, f := range m.docs {
		if f[works.FieldUserEmail] == email {
			out = append(out, maps.Clone(f))
		}
	}
	return out, nil
}

func (m *memRepo) Delete(_ context.Context, id bson.ObjectID) (store.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return store.DeleteResult{}, m.err
	}
	for i, f := range m.docs {
		if f.ID() == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return store.DeleteResult{Acknowledged: true}, nil
}

func (m *memRepo) indexPair(artworkID, email any) int {
	for i, f := range m.docs {
		a, e := f.Pair()
		if reflect.DeepEqual(a, artworkID) && reflect.DeepEqual(e, email) {
			return i
		}
	}
	return -1
}

func newTestRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(repo)

	r := gin.New()
	r.POST("/favorites", h.AddFavorite)
	r.GET("/favorites/:email", h.ListFavorites)
	r.DELETE("/favorites/:id", h.RemoveFavorite)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAddFavoriteTwice(t *testing.T) {
	repo := &memRepo{}
	r := newTestRouter(repo)
	body := map[string]any{
		"artworkId": "665f1c2e9b1d8a0012ab34cd",
		"userEmail": "ana@example.com",
		"title":     "Golden Sunset",
	}

	rec := do(t, r, http.MethodPost, "/favorites", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, true, created["success"])
	assert.Len(t, created["insertedId"], 24)

	rec = do(t, r, http.MethodPost, "/favorites", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Already in favorites"}`, rec.Body.String())
	assert.Len(t, repo.docs, 1)
	assert.Equal(t, "Golden Sunset", repo.docs[0]["title"])
}

func TestAddFavoriteKeepsPayloadAsSent(t *testing.T) {
	repo := &memRepo{}
	r := newTestRouter(repo)

	rec := do(t, r, http.MethodPost, "/favorites", map[string]any{
		"_id":       bson.NewObjectID().Hex(),
		"artworkId": "665f1c2e9b1d8a0012ab34cd",
		"userEmail": "ana@example.com",
		"price":     "250",
		"addedFrom": "gallery",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, r, http.MethodGet, "/favorites/ana@example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "250", list[0]["price"])
	assert.Equal(t, "gallery", list[0]["addedFrom"])
	assert.Equal(t, repo.docs[0].ID().Hex(), list[0]["_id"])
}

func TestAddFavoriteMissingPair(t *testing.T) {
	repo := &memRepo{}
	r := newTestRouter(repo)

	rec := do(t, r, http.MethodPost, "/favorites", map[string]any{"title": "no ids"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodPost, "/favorites", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Already in favorites"}`, rec.Body.String())
}

func TestAddFavoriteSamePairDifferentUsers(t *testing.T) {
	r := newTestRouter(&memRepo{})

	for _, email := range []string{"ana@example.com", "leo@example.com"} {
		rec := do(t, r, http.MethodPost, "/favorites", map[string]any{"artworkId": "A", "userEmail": email})
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestAddFavoriteRaceLoserIsDuplicate(t *testing.T) {
	repo := &memRepo{skipExists: true}
	r := newTestRouter(repo)
	body := map[string]any{"artworkId": "A", "userEmail": "ana@example.com"}

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/favorites", body).Code)

	rec := do(t, r, http.MethodPost, "/favorites", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Already in favorites"}`, rec.Body.String())
	assert.Len(t, repo.docs, 1)
}

func TestAddFavoriteStoreFailure(t *testing.T) {
	r := newTestRouter(&memRepo{err: apperr.Internal("find favorite", errors.New("timeout"))})

	rec := do(t, r, http.MethodPost, "/favorites", map[string]any{"artworkId": "A", "userEmail": "ana@example.com"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to add favorite"}`, rec.Body.String())
}

func TestListAndRemoveFavorites(t *testing.T) {
	repo := &memRepo{}
	r := newTestRouter(repo)

	for _, a := range []string{"A", "B"} {
		do(t, r, http.MethodPost, "/favorites", map[string]any{"artworkId": a, "userEmail": "ana@example.com"})
	}
	do(t, r, http.MethodPost, "/favorites", map[string]any{"artworkId": "A", "userEmail": "leo@example.com"})

	rec := do(t, r, http.MethodGet, "/favorites/ana@example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)

	id := repo.docs[0].ID().Hex()
	rec = do(t, r, http.MethodDelete, "/favorites/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec.Body.String())

	rec = do(t, r, http.MethodDelete, "/favorites/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, rec.Body.String())

	rec = do(t, r, http.MethodDelete, "/favorites/nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodGet, "/favorites/nobody@example.com", nil)
	assert.Equal(t, "[]", rec.Body.String())
}

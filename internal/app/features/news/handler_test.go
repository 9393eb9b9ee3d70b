package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
	"github.com/fcunirea/clubsite/internal/app/system/upload"
)

type fakeNewsStore struct {
	articles []Article
	err      error

	lastMode    string
	lastCreated Article
	lastSet     bson.M
}

func (f *fakeNewsStore) List(ctx context.Context, publishedMode string) ([]Article, error) {
	f.lastMode = publishedMode
	return f.articles, f.err
}

func (f *fakeNewsStore) Get(ctx context.Context, id string) (Article, error) {
	if f.err != nil {
		return Article{}, f.err
	}
	for _, a := range f.articles {
		if a.ID.Hex() == id {
			return a, nil
		}
	}
	return Article{}, crud.ErrNotFound
}

func (f *fakeNewsStore) Create(ctx context.Context, a Article) (Article, error) {
	if f.err != nil {
		return Article{}, f.err
	}
	a.ID = primitive.NewObjectID()
	f.lastCreated = a
	return a, nil
}

func (f *fakeNewsStore) Update(ctx context.Context, id string, set bson.M) (Article, error) {
	if f.err != nil {
		return Article{}, f.err
	}
	f.lastSet = set
	for _, a := range f.articles {
		if a.ID.Hex() == id {
			return a, nil
		}
	}
	return Article{}, crud.ErrNotFound
}

func (f *fakeNewsStore) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range f.articles {
		if a.ID.Hex() == id {
			return nil
		}
	}
	return crud.ErrNotFound
}

func newNewsRouter(t *testing.T, store Store) chi.Router {
	t.Helper()
	saver, err := upload.NewSaver(t.TempDir(), "/resources")
	require.NoError(t, err)

	h := NewHandler(store, saver, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/news", h.List)
	r.Get("/news/{id}", h.Get)
	r.Post("/news", h.Create)
	r.Put("/news/{id}", h.Update)
	r.Delete("/news/{id}", h.Delete)
	return r
}

func TestListNewsPassesPublishedMode(t *testing.T) {
	store := &fakeNewsStore{}
	r := newNewsRouter(t, store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news?published=all", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, PublishedAll, store.lastMode)
}

func TestCreateArticleDefaults(t *testing.T) {
	store := &fakeNewsStore{}
	r := newNewsRouter(t, store)

	body := `{"title":"Season opener","content":"We won.","author":"Press"}`
	req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, CategoryGeneral, store.lastCreated.Category)
	require.NotNil(t, store.lastCreated.Published)
	assert.True(t, *store.lastCreated.Published)
}

func TestCreateArticleDraft(t *testing.T) {
	store := &fakeNewsStore{}
	r := newNewsRouter(t, store)

	body := `{"title":"Draft","content":"WIP","author":"Press","published":false}`
	req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, store.lastCreated.Published)
	assert.False(t, *store.lastCreated.Published)
}

func TestCreateArticleRejectsUnknownCategory(t *testing.T) {
	r := newNewsRouter(t, &fakeNewsStore{})

	body := `{"title":"T","content":"C","author":"A","category":"gossip"}`
	req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid category")
}

func TestPublishedFilter(t *testing.T) {
	// The default filter must also match legacy articles that predate the
	// published field.
	def := publishedFilter(PublishedDefault)
	assert.Equal(t, bson.M{"$or": []bson.M{
		{"published": true},
		{"published": bson.M{"$exists": false}},
	}}, def)

	assert.Equal(t, bson.M{}, publishedFilter(PublishedAll))
	assert.Equal(t, bson.M{"published": false}, publishedFilter(PublishedFalse))
}

func TestGetArticleNotFound(t *testing.T) {
	r := newNewsRouter(t, &fakeNewsStore{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news/"+primitive.NewObjectID().Hex(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "News item not found")
}

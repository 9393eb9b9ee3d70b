package players

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
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

type fakePlayerStore struct {
	players []Player
	err     error

	lastCreated Player
	lastSet     bson.M
}

func (f *fakePlayerStore) List(ctx context.Context) ([]Player, error) {
	return f.players, f.err
}

func (f *fakePlayerStore) Get(ctx context.Context, id string) (Player, error) {
	if f.err != nil {
		return Player{}, f.err
	}
	for _, p := range f.players {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return Player{}, crud.ErrNotFound
}

func (f *fakePlayerStore) Create(ctx context.Context, p Player) (Player, error) {
	if f.err != nil {
		return Player{}, f.err
	}
	for _, existing := range f.players {
		if existing.JerseyNumber == p.JerseyNumber {
			return Player{}, crud.ErrDuplicate
		}
	}
	p.ID = primitive.NewObjectID()
	f.lastCreated = p
	return p, nil
}

func (f *fakePlayerStore) Update(ctx context.Context, id string, set bson.M) (Player, error) {
	if f.err != nil {
		return Player{}, f.err
	}
	f.lastSet = set
	for _, p := range f.players {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return Player{}, crud.ErrNotFound
}

func (f *fakePlayerStore) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.players {
		if p.ID.Hex() == id {
			return nil
		}
	}
	return crud.ErrNotFound
}

func newPlayerRouter(t *testing.T, store Store) chi.Router {
	t.Helper()
	saver, err := upload.NewSaver(t.TempDir(), "/resources")
	require.NoError(t, err)

	h := NewHandler(store, saver, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/players", h.List)
	r.Get("/players/{id}", h.Get)
	r.Post("/players", h.Create)
	r.Put("/players/{id}", h.Update)
	r.Delete("/players/{id}", h.Delete)
	return r
}

func postJSON(r chi.Router, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreatePlayer(t *testing.T) {
	store := &fakePlayerStore{}
	r := newPlayerRouter(t, store)

	rec := postJSON(r, "/players", `{"name":"Ana","position":"forward","jerseyNumber":9,"age":24}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created Player
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Ana", created.Name)
	// Lowercase input is normalized to the canonical casing.
	assert.Equal(t, PositionForward, created.Position)
	assert.Equal(t, 9, created.JerseyNumber)
}

func TestCreatePlayerValidation(t *testing.T) {
	r := newPlayerRouter(t, &fakePlayerStore{})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"position":"Forward","jerseyNumber":9,"age":24}`, "Name is required"},
		{"missing position", `{"name":"Ana","jerseyNumber":9,"age":24}`, "Position is required"},
		{"unknown position", `{"name":"Ana","position":"Striker","jerseyNumber":9,"age":24}`, "Invalid position"},
		{"missing jersey", `{"name":"Ana","position":"Forward","age":24}`, "Jersey number is required"},
		{"missing age", `{"name":"Ana","position":"Forward","jerseyNumber":9}`, "Age is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(r, "/players", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestCreatePlayerDuplicateJersey(t *testing.T) {
	store := &fakePlayerStore{players: []Player{
		{ID: primitive.NewObjectID(), Name: "Maria", JerseyNumber: 9},
	}}
	r := newPlayerRouter(t, store)

	rec := postJSON(r, "/players", `{"name":"Ana","position":"Forward","jerseyNumber":9,"age":24}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jersey number already exists")
}

func TestCreatePlayerMultipartWithPhoto(t *testing.T) {
	store := &fakePlayerStore{}
	r := newPlayerRouter(t, store)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "Ana"))
	require.NoError(t, w.WriteField("position", "Goalkeeper"))
	require.NoError(t, w.WriteField("jerseyNumber", "1"))
	require.NoError(t, w.WriteField("age", "27"))
	part, err := w.CreateFormFile("photo", "ana.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/players", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, strings.HasPrefix(store.lastCreated.Photo, "/resources/"))
	assert.True(t, strings.HasSuffix(store.lastCreated.Photo, ".jpg"))
}

func TestUpdatePlayerMergesOnlySuppliedFields(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakePlayerStore{players: []Player{{ID: id, Name: "Ana", JerseyNumber: 9}}}
	r := newPlayerRouter(t, store)

	req := httptest.NewRequest(http.MethodPut, "/players/"+id.Hex(), strings.NewReader(`{"age":25}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, bson.M{"age": 25}, store.lastSet)
}

func TestGetPlayerNotFound(t *testing.T) {
	r := newPlayerRouter(t, &fakePlayerStore{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/"+primitive.NewObjectID().Hex(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Player not found")
}

func TestDeletePlayer(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakePlayerStore{players: []Player{{ID: id}}}
	r := newPlayerRouter(t, store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/players/"+id.Hex(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Player deleted successfully")
}

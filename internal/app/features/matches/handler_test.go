package matches

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
)

type fakeMatchStore struct {
	matches  []Match
	upcoming []Match
	err      error

	upcomingCutoff time.Time
	lastCreated    Match
	lastSet        bson.M
}

func (f *fakeMatchStore) List(ctx context.Context) ([]Match, error) {
	return f.matches, f.err
}

func (f *fakeMatchStore) ListByStatus(ctx context.Context, status string) ([]Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []Match{}
	for _, m := range f.matches {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMatchStore) ListUpcoming(ctx context.Context, now time.Time) ([]Match, error) {
	f.upcomingCutoff = now
	return f.upcoming, f.err
}

func (f *fakeMatchStore) Get(ctx context.Context, id string) (Match, error) {
	if f.err != nil {
		return Match{}, f.err
	}
	for _, m := range f.matches {
		if m.ID.Hex() == id {
			return m, nil
		}
	}
	return Match{}, crud.ErrNotFound
}

func (f *fakeMatchStore) Create(ctx context.Context, m Match) (Match, error) {
	if f.err != nil {
		return Match{}, f.err
	}
	m.ID = primitive.NewObjectID()
	f.lastCreated = m
	return m, nil
}

func (f *fakeMatchStore) Update(ctx context.Context, id string, set bson.M) (Match, error) {
	if f.err != nil {
		return Match{}, f.err
	}
	f.lastSet = set
	for _, m := range f.matches {
		if m.ID.Hex() == id {
			return m, nil
		}
	}
	return Match{}, crud.ErrNotFound
}

func (f *fakeMatchStore) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for _, m := range f.matches {
		if m.ID.Hex() == id {
			return nil
		}
	}
	return crud.ErrNotFound
}

func newMatchRouter(store Store, clock clockwork.Clock) chi.Router {
	h := NewHandlerWithClock(store, clock, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/matches", h.List)
	r.Get("/matches/upcoming", h.Upcoming)
	r.Get("/matches/results", h.Results)
	r.Get("/matches/stats", h.Stats)
	r.Get("/matches/{id}", h.Get)
	r.Post("/matches", h.Create)
	r.Put("/matches/{id}", h.Update)
	r.Delete("/matches/{id}", h.Delete)
	return r
}

func TestUpcomingUsesInjectedClock(t *testing.T) {
	now := time.Date(2025, 4, 12, 15, 0, 0, 0, time.UTC)
	store := &fakeMatchStore{}
	r := newMatchRouter(store, clockwork.NewFakeClockAt(now))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matches/upcoming", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, now, store.upcomingCutoff)
}

func TestResultsDeriveOutcomes(t *testing.T) {
	store := &fakeMatchStore{matches: []Match{
		{ID: primitive.NewObjectID(), Status: StatusCompleted, IsHome: true, HomeScore: intPtr(2), AwayScore: intPtr(0)},
		{ID: primitive.NewObjectID(), Status: StatusCompleted, IsHome: false, HomeScore: intPtr(4), AwayScore: intPtr(1)},
		{ID: primitive.NewObjectID(), Status: StatusUpcoming},
	}}
	r := newMatchRouter(store, clockwork.NewFakeClock())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matches/results", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []ResultRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, OutcomeWin, rows[0].Result.Outcome)
	assert.Equal(t, OutcomeLoss, rows[1].Result.Outcome)
	assert.Equal(t, 1, rows[1].Result.OurScore)
	assert.Equal(t, 4, rows[1].Result.TheirScore)
}

func TestResultsOutcomeFilter(t *testing.T) {
	store := &fakeMatchStore{matches: []Match{
		{ID: primitive.NewObjectID(), Status: StatusCompleted, IsHome: true, HomeScore: intPtr(2), AwayScore: intPtr(0)},
		{ID: primitive.NewObjectID(), Status: StatusCompleted, IsHome: true, HomeScore: intPtr(0), AwayScore: intPtr(3)},
	}}
	r := newMatchRouter(store, clockwork.NewFakeClock())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matches/results?outcome=win", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []ResultRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, OutcomeWin, rows[0].Result.Outcome)
}

func TestResultsRejectsUnknownOutcome(t *testing.T) {
	r := newMatchRouter(&fakeMatchStore{}, clockwork.NewFakeClock())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matches/results?outcome=victory", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMatchDefaults(t *testing.T) {
	store := &fakeMatchStore{}
	r := newMatchRouter(store, clockwork.NewFakeClock())

	body := `{"opponent":"Rovers","date":"2025-05-01","time":"15:00","venue":"Home Ground"}`
	req := httptest.NewRequest(http.MethodPost, "/matches", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, store.lastCreated.IsHome)
	assert.Equal(t, StatusUpcoming, store.lastCreated.Status)
	assert.Nil(t, store.lastCreated.HomeScore)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), store.lastCreated.Date)
}

func TestCreateMatchValidation(t *testing.T) {
	r := newMatchRouter(&fakeMatchStore{}, clockwork.NewFakeClock())

	tests := []struct {
		name string
		body string
	}{
		{"missing opponent", `{"date":"2025-05-01","time":"15:00","venue":"Home"}`},
		{"missing date", `{"opponent":"Rovers","time":"15:00","venue":"Home"}`},
		{"bad date", `{"opponent":"Rovers","date":"next friday","time":"15:00","venue":"Home"}`},
		{"bad status", `{"opponent":"Rovers","date":"2025-05-01","time":"15:00","venue":"Home","status":"paused"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/matches", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateMatchMergesOnlySuppliedFields(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeMatchStore{matches: []Match{{ID: id, Opponent: "Rovers", Status: StatusUpcoming}}}
	r := newMatchRouter(store, clockwork.NewFakeClock())

	body := `{"status":"completed","homeScore":2,"awayScore":1}`
	req := httptest.NewRequest(http.MethodPut, "/matches/"+id.Hex(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, bson.M{"status": "completed", "homeScore": 2, "awayScore": 1}, store.lastSet)
}

func TestGetMatchNotFound(t *testing.T) {
	r := newMatchRouter(&fakeMatchStore{}, clockwork.NewFakeClock())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matches/"+primitive.NewObjectID().Hex(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Match not found")
}

func TestDeleteMatch(t *testing.T) {
	id := primitive.NewObjectID()
	store := &fakeMatchStore{matches: []Match{{ID: id}}}
	r := newMatchRouter(store, clockwork.NewFakeClock())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/matches/"+id.Hex(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Match deleted successfully")
}

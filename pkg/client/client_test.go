package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCarriesSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var body struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin@club.test", body.Email)
			http.SetCookie(w, &http.Cookie{Name: "clubsite_session", Value: "tok123", Path: "/"})
			_ = json.NewEncoder(w).Encode(User{ID: "1", Email: body.Email, Role: "admin"})
		case "/api/auth/profile":
			cookie, err := r.Cookie("clubsite_session")
			require.NoError(t, err)
			assert.Equal(t, "tok123", cookie.Value)
			_ = json.NewEncoder(w).Encode(User{ID: "1", Role: "admin"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	u, err := c.Login(context.Background(), "admin@club.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)

	_, err = c.Profile(context.Background())
	require.NoError(t, err)
}

func TestErrorEnvelopeDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Player not found","code":"NOT_FOUND"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.GetPlayer(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Player not found", apiErr.Message)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestCreatePlayerMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Ana", r.FormValue("name"))
		assert.Equal(t, "9", r.FormValue("jerseyNumber"))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "ana.jpg", header.Filename)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Player{ID: "abc", Name: "Ana", JerseyNumber: 9})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	name := "Ana"
	jersey := 9
	created, err := c.CreatePlayer(context.Background(), PlayerInput{Name: &name, JerseyNumber: &jersey}, &Upload{
		Field:    "photo",
		Filename: "ana.jpg",
		Content:  strings.NewReader("image bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", created.ID)
}

func TestMatchResultsOutcomeQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/matches/results", r.URL.Path)
		assert.Equal(t, "win", r.URL.Query().Get("outcome"))
		_ = json.NewEncoder(w).Encode([]ResultRow{
			{Result: MatchResult{OurScore: 2, TheirScore: 0, Outcome: "win"}},
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	rows, err := c.MatchResults(context.Background(), "win")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "win", rows[0].Result.Outcome)
}

func TestSubmitContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact", r.URL.Path)
		var body ContactSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Tickets", body.Subject)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Contact form submitted successfully"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	err = c.SubmitContact(context.Background(), ContactSubmission{
		Name: "Visitor", Email: "v@example.com", Subject: "Tickets", Message: "Any left?",
	})
	require.NoError(t, err)
}

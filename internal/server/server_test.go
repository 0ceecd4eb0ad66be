package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apts18o9/leaderboard/internal/domain"
	"github.com/apts18o9/leaderboard/internal/leaderboard"
)

type fakePool struct {
	pingErr error
}

func (f *fakePool) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakePool) Close()                         {}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	repo := leaderboard.NewFakeRepository()
	svc := leaderboard.NewService(repo, repo)
	return NewServer(0, []string{"*"}, &fakePool{}, svc)
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t)
	router := srv.httpServer.Handler

	register := func(t *testing.T, name string) domain.Participant {
		t.Helper()
		body, _ := json.Marshal(map[string]string{"name": name})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/participants", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var p domain.Participant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		return p
	}

	alice := register(t, "Alice")
	bob := register(t, "Bob")

	t.Run("claim route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/participants/"+alice.ID+"/claim", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("leaderboard route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/participants", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var ranked []domain.RankedParticipant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ranked))
		require.Len(t, ranked, 2)
		assert.Equal(t, alice.ID, ranked[0].ID)
		assert.Equal(t, bob.ID, ranked[1].ID)
	})

	t.Run("history route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/history?participant_id="+alice.ID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var events []domain.ClaimEvent
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
		require.Len(t, events, 1)
		assert.Equal(t, alice.ID, events[0].ParticipantID)
	})

	t.Run("healthz", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("readyz", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("security headers applied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/participants", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	})
}

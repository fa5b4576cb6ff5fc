package ring

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/ringside-labs/boxing-platform/internal/boxer"
)

type stubLookup struct {
	boxers map[string]boxer.Boxer
}

func (s stubLookup) GetByName(_ context.Context, name string) (boxer.Boxer, error) {
	b, ok := s.boxers[name]
	if !ok {
		return boxer.Boxer{}, boxer.ErrNotFound
	}
	return b, nil
}

func newRingHandlers(store *memoryStore, lookup stubLookup) *HTTPHandlers {
	svc := NewService(store, &stubStats{}, nil, nil, nil, zerolog.Nop())
	return NewHTTPHandlers(svc, lookup, zerolog.Nop())
}

func enterRing(t *testing.T, h *HTTPHandlers, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/enter-ring", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.EnterRing(rec, req)
	return rec
}

func TestEnterRingHandler(t *testing.T) {
	a := boxer.Boxer{ID: 1, Name: "Ace", Weight: 170}
	h := newRingHandlers(&memoryStore{}, stubLookup{boxers: map[string]boxer.Boxer{"Ace": a}})

	rec := enterRing(t, h, `{"name":"Ace"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
	assert.Contains(t, rec.Body.String(), "Ace")
}

func TestEnterRingHandlerRingFull(t *testing.T) {
	a := boxer.Boxer{ID: 1, Name: "Ace"}
	b := boxer.Boxer{ID: 2, Name: "Champ"}
	c := boxer.Boxer{ID: 3, Name: "Contender"}
	store := &memoryStore{members: []boxer.Boxer{a, b}}
	h := newRingHandlers(store, stubLookup{boxers: map[string]boxer.Boxer{"Contender": c}})

	rec := enterRing(t, h, `{"name":"Contender"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ring_full")
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
}

func TestEnterRingHandlerAlreadyInRing(t *testing.T) {
	a := boxer.Boxer{ID: 1, Name: "Ace"}
	store := &memoryStore{members: []boxer.Boxer{a}}
	h := newRingHandlers(store, stubLookup{boxers: map[string]boxer.Boxer{"Ace": a}})

	rec := enterRing(t, h, `{"name":"Ace"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already_in_ring")
}

func TestEnterRingHandlerUnknownBoxer(t *testing.T) {
	h := newRingHandlers(&memoryStore{}, stubLookup{})

	rec := enterRing(t, h, `{"name":"Ghost"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "boxer_not_found")
}

func TestEnterRingHandlerMissingName(t *testing.T) {
	h := newRingHandlers(&memoryStore{}, stubLookup{})

	rec := enterRing(t, h, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_field")
}

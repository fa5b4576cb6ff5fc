package boxer

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestHandlers(store *mockStore) *HTTPHandlers {
	svc := NewService(store, &stubRing{}, &stubRanking{}, zerolog.Nop())
	return NewHTTPHandlers(svc, zerolog.Nop())
}

func TestAddBoxerHandler(t *testing.T) {
	store := new(mockStore)
	h := newTestHandlers(store)

	created := Boxer{ID: 1, Name: "Ace", Weight: 170, Height: 71, Reach: 74, Age: 27, WeightClass: ClassMiddleweight}
	store.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	body := `{"name":"Ace","weight":170,"height":71,"reach":74,"age":27}`
	req := httptest.NewRequest(http.MethodPost, "/add-boxer", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.AddBoxer(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
	assert.Contains(t, rec.Body.String(), `"weight_class":"MIDDLEWEIGHT"`)
}

func TestAddBoxerHandlerRejectsBadJSON(t *testing.T) {
	h := newTestHandlers(new(mockStore))

	req := httptest.NewRequest(http.MethodPost, "/add-boxer", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h.AddBoxer(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
}

func TestAddBoxerHandlerValidation(t *testing.T) {
	h := newTestHandlers(new(mockStore))

	body := `{"name":"Ace","weight":90,"height":71,"reach":74,"age":27}`
	req := httptest.NewRequest(http.MethodPost, "/add-boxer", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.AddBoxer(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid weight")
}

func TestAddBoxerHandlerDuplicateName(t *testing.T) {
	store := new(mockStore)
	h := newTestHandlers(store)

	store.On("Create", mock.Anything, mock.Anything).Return(Boxer{}, ErrDuplicateName)

	body := `{"name":"Ace","weight":170,"height":71,"reach":74,"age":27}`
	req := httptest.NewRequest(http.MethodPost, "/add-boxer", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.AddBoxer(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate_boxer")
}

func TestGetBoxerByIDHandler(t *testing.T) {
	store := new(mockStore)
	h := newTestHandlers(store)

	store.On("GetByID", mock.Anything, int64(5)).
		Return(Boxer{ID: 5, Name: "Champ", Weight: 210, WeightClass: ClassHeavyweight}, nil)

	req := httptest.NewRequest(http.MethodGet, "/get-boxer-by-id/5", nil)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()

	h.GetBoxerByID(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
	assert.Contains(t, rec.Body.String(), `"Champ"`)
}

func TestGetBoxerByIDHandlerNotFound(t *testing.T) {
	store := new(mockStore)
	h := newTestHandlers(store)

	store.On("GetByID", mock.Anything, int64(99)).Return(Boxer{}, ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/get-boxer-by-id/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()

	h.GetBoxerByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "boxer_not_found")
}

func TestGetBoxerByIDHandlerBadID(t *testing.T) {
	h := newTestHandlers(new(mockStore))

	req := httptest.NewRequest(http.MethodGet, "/get-boxer-by-id/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()

	h.GetBoxerByID(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_boxer_id")
}

func TestDeleteBoxerHandler(t *testing.T) {
	store := new(mockStore)
	h := newTestHandlers(store)

	store.On("Delete", mock.Anything, int64(2)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/delete-boxer/2", nil)
	req.SetPathValue("id", "2")
	rec := httptest.NewRecorder()

	h.DeleteBoxer(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
}

func TestClearBoxersHandler(t *testing.T) {
	store := new(mockStore)
	h := newTestHandlers(store)

	store.On("DeleteAll", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/clear-boxers", nil)
	rec := httptest.NewRecorder()

	h.ClearBoxers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
}

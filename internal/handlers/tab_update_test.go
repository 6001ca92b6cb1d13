package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/knlox/guitar-tab-api/internal/models"
	"github.com/knlox/guitar-tab-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUpdateTabHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	createdAt := time.Date(2021, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run("updates existing tab", func(t *testing.T) {
		mockSvc := NewMockTabUpdater(ctrl)
		mockSvc.EXPECT().
			UpdateByID(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ interface{}, id int64, tab *models.TabDB) (*models.TabDB, error) {
				updated := *tab
				updated.ID = id
				updated.CreatedAt = createdAt
				return &updated, nil
			})

		r := chi.NewRouter()
		r.Put("/api/tabs/{id}", NewUpdateTabHandler(mockSvc))

		body := `{"title":"Layla","artist":"Clapton","tuning":"DADGAD","tabContent":"e|--3--|"}`
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/tabs/5", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusOK, rr.Code)

		var tab models.TabDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tab))
		assert.Equal(t, int64(5), tab.ID)
		assert.Equal(t, "DADGAD", tab.Tuning)
		assert.True(t, createdAt.Equal(tab.CreatedAt))
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockTabUpdater(ctrl)
		mockSvc.EXPECT().
			UpdateByID(gomock.Any(), int64(99), gomock.Any()).
			Return(nil, services.ErrTabNotFound)

		r := chi.NewRouter()
		r.Put("/api/tabs/{id}", NewUpdateTabHandler(mockSvc))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/tabs/99", bytes.NewBufferString(`{"title":"x"}`)))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		mockSvc := NewMockTabUpdater(ctrl)

		r := chi.NewRouter()
		r.Put("/api/tabs/{id}", NewUpdateTabHandler(mockSvc))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/tabs/abc", bytes.NewBufferString(`{"title":"x"}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		mockSvc := NewMockTabUpdater(ctrl)

		r := chi.NewRouter()
		r.Put("/api/tabs/{id}", NewUpdateTabHandler(mockSvc))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/tabs/5", bytes.NewBufferString("{invalid json}")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

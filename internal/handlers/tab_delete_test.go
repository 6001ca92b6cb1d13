package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/knlox/guitar-tab-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteTabHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		url          string
		mockSetup    func(m *MockTabDeleter)
		expectedCode int
	}{
		{
			name: "deleted",
			url:  "/api/tabs/1",
			mockSetup: func(m *MockTabDeleter) {
				m.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(nil)
			},
			expectedCode: 204,
		},
		{
			name: "missing id fails with not found",
			url:  "/api/tabs/99",
			mockSetup: func(m *MockTabDeleter) {
				m.EXPECT().DeleteByID(gomock.Any(), int64(99)).Return(services.ErrTabNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "invalid id",
			url:          "/api/tabs/abc",
			expectedCode: 400,
		},
		{
			name: "internal server error",
			url:  "/api/tabs/2",
			mockSetup: func(m *MockTabDeleter) {
				m.EXPECT().DeleteByID(gomock.Any(), int64(2)).Return(errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTabDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Delete("/api/tabs/{id}", NewDeleteTabHandler(mockSvc))

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, tt.url, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 204 {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

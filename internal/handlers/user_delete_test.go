package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/knlox/guitar-tab-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		url          string
		mockSetup    func(m *MockUserDeleter)
		expectedCode int
	}{
		{
			name: "deleted",
			url:  "/api/users/1",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(nil)
			},
			expectedCode: 204,
		},
		{
			name: "missing id fails with not found",
			url:  "/api/users/99",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().DeleteByID(gomock.Any(), int64(99)).Return(services.ErrUserNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "invalid id",
			url:          "/api/users/abc",
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Delete("/api/users/{id}", NewDeleteUserHandler(mockSvc))

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, tt.url, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

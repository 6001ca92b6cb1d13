package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/knlox/guitar-tab-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"email":"a@b.com","password":"pw1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), &models.UserDB{Email: "a@b.com", Password: "pw1"}).
					Return(&models.UserDB{ID: 1, Email: "a@b.com", Password: "pw1"}, nil)
			},
			expectedCode: 200,
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: 400,
		},
		{
			name: "internal server error",
			body: `{"email":"a@b.com","password":"pw1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var user models.UserDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
				assert.Equal(t, int64(1), user.ID)
				assert.Equal(t, "a@b.com", user.Email)
				// Stored password comes back verbatim
				assert.Equal(t, "pw1", user.Password)
			}
		})
	}
}

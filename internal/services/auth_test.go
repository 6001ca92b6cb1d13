package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/knlox/guitar-tab-api/internal/models"
	"github.com/knlox/guitar-tab-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter)

	tests := []struct {
		name      string
		user      *models.UserDB
		saved     *models.UserDB
		writerErr error
		wantErr   error
	}{
		{
			name:  "successful registration",
			user:  &models.UserDB{Email: "a@b.com", Password: "pw1"},
			saved: &models.UserDB{ID: 1, Email: "a@b.com", Password: "pw1"},
		},
		{
			name:      "writer error",
			user:      &models.UserDB{Email: "c@d.com", Password: "pw2"},
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Save(gomock.Any(), tt.user).
				Return(tt.saved, tt.writerErr)

			saved, err := svc.Register(context.Background(), tt.user)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.saved, saved)
				// The stored password comes back verbatim
				assert.Equal(t, "pw1", saved.Password)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter)

	stored := &models.UserDB{ID: 1, Email: "a@b.com", Password: "pw1"}

	tests := []struct {
		name      string
		email     string
		password  string
		storedUsr *models.UserDB
		readerErr error
		wantUser  *models.UserDB
		wantErr   error
	}{
		{
			name:      "exact password match",
			email:     "a@b.com",
			password:  "pw1",
			storedUsr: stored,
			wantUser:  stored,
		},
		{
			name:      "wrong password",
			email:     "a@b.com",
			password:  "wrong",
			storedUsr: stored,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "unknown email",
			email:     "nobody@b.com",
			password:  "pw1",
			readerErr: sql.ErrNoRows,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "a@b.com",
			password:  "pw1",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.storedUsr, tt.readerErr)

			user, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUser, user)
			}
		})
	}
}

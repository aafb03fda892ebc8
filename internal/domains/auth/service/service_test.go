package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"garage/config"
	"garage/infras/jwt"
	jwtMocks "garage/infras/jwt/mocks"
	"garage/infras/otel/mocks"
	"garage/internal/domains/auth/model/dto"
	"garage/internal/domains/auth/service"
	userMocks "garage/internal/domains/user/mocks"
	userModel "garage/internal/domains/user/model"
	"garage/shared/constant"
	gModel "garage/shared/model"
	"garage/shared/password"
	"garage/shared/timezone"
)

func validUser(t *testing.T) userModel.User {
	t.Helper()

	hashed, err := password.Hash("password123")
	assert.NoError(t, err)

	return userModel.User{
		ID:       "user-id-123",
		Username: "budi",
		Email:    "budi@example.com",
		Password: hashed,
		FullName: "Budi Santoso",
		Role:     constant.RoleCustomer,
		Status:   constant.UserStatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(repo *userMocks.MockUser)
		wantErr   bool
	}{
		{
			name: "successful registration",
			req: dto.RegisterRequest{
				Username: "budi",
				Email:    "budi@example.com",
				Password: "password123",
				FullName: "Budi Santoso",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, constant.RoleCustomer, user.Role)
						assert.Equal(t, constant.UserStatusActive, user.Status)
						assert.NotEqual(t, "password123", user.Password, "password must be hashed")

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "duplicate username or email",
			req: dto.RegisterRequest{
				Username: "budi",
				Email:    "budi@example.com",
				Password: "password123",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.RegisterRequest{
				Username: "budi",
				Email:    "budi@example.com",
				Password: "password123",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := userMocks.NewMockUser(ctrl)
			mockJWT := jwtMocks.NewMockJWT(ctrl)

			svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)
			tt.setupMock(mockUserRepo)

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(repo *userMocks.MockUser, jwtMock *jwtMocks.MockJWT, user userModel.User)
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Username: "budi",
				Password: "password123",
			},
			setupMock: func(repo *userMocks.MockUser, jwtMock *jwtMocks.MockJWT, user userModel.User) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				jwtMock.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.FullName, user.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
						ExpiresIn:    900,
					}, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown account",
			req: dto.LoginRequest{
				Username: "nobody",
				Password: "password123",
			},
			setupMock: func(repo *userMocks.MockUser, jwtMock *jwtMocks.MockJWT, user userModel.User) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Username: "budi",
				Password: "wrong-password",
			},
			setupMock: func(repo *userMocks.MockUser, jwtMock *jwtMocks.MockJWT, user userModel.User) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req: dto.LoginRequest{
				Username: "budi",
				Password: "password123",
			},
			setupMock: func(repo *userMocks.MockUser, jwtMock *jwtMocks.MockJWT, user userModel.User) {
				user.Status = constant.UserStatusInactive

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := userMocks.NewMockUser(ctrl)
			mockJWT := jwtMocks.NewMockJWT(ctrl)

			svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)
			tt.setupMock(mockUserRepo, mockJWT, validUser(t))

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", res.AccessToken)
				assert.Equal(t, "budi", res.Username)
				assert.Equal(t, constant.RoleCustomer, res.Role)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("successful refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := userMocks.NewMockUser(ctrl)
		mockJWT := jwtMocks.NewMockJWT(ctrl)

		svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

		mockJWT.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{
				AccessToken:  "new-access-token",
				RefreshToken: "new-refresh-token",
			}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access-token", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := userMocks.NewMockUser(ctrl)
		mockJWT := jwtMocks.NewMockJWT(ctrl)

		svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

		mockJWT.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, errors.New("token expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(repo *userMocks.MockUser, user userModel.User)
		wantErr   bool
	}{
		{
			name: "successful change",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password123",
				NewPassword:     "newpassword456",
			},
			setupMock: func(repo *userMocks.MockUser, user userModel.User) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "not-the-password",
				NewPassword:     "newpassword456",
			},
			setupMock: func(repo *userMocks.MockUser, user userModel.User) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "user not found",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password123",
				NewPassword:     "newpassword456",
			},
			setupMock: func(repo *userMocks.MockUser, user userModel.User) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := userMocks.NewMockUser(ctrl)
			mockJWT := jwtMocks.NewMockJWT(ctrl)

			svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)
			tt.setupMock(mockUserRepo, validUser(t))

			err := svc.ChangePassword(context.Background(), tt.req, "user-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

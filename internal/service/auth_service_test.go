package service

import (
	"context"
	"testing"
	"time"

	"github.com/Krittamet-rrt/walletapi/internal/core/domain"
	"github.com/Krittamet-rrt/walletapi/internal/core/ports"
	"github.com/Krittamet-rrt/walletapi/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authTestDeps struct {
	svc      *AuthServiceImpl
	userRepo *mocks.MockUserRepository
	hashSvc  *mocks.MockHashService
	tokenSvc *mocks.MockTokenService
	ctrl     *gomock.Controller
}

func setupAuthService(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		userRepo: mocks.NewMockUserRepository(ctrl),
		hashSvc:  mocks.NewMockHashService(ctrl),
		tokenSvc: mocks.NewMockTokenService(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewAuthService(d.userRepo, d.hashSvc, d.tokenSvc, zerolog.Nop())
	return d
}

func TestAuthService_Register_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := ports.RegisterRequest{
		Username:  "user1",
		Password:  "password123",
		Email:     "user1@test.com",
		FirstName: "First",
		LastName:  "Last",
	}

	d.userRepo.EXPECT().GetByUsername(ctx, "user1").Return(nil, nil)
	d.hashSvc.EXPECT().Hash("password123").Return("hashed", nil)
	d.userRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) error {
			u.ID = 7
			return nil
		})

	user, err := d.svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "user1", user.Username)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByUsername(ctx, "user1").Return(&domain.User{ID: 1}, nil)

	user, err := d.svc.Register(ctx, ports.RegisterRequest{Username: "user1", Password: "x"})
	assert.Nil(t, user)
	assertAppError(t, err, "AUTH_002")
}

func TestAuthService_Login_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	expiry := time.Now().Add(5 * time.Hour)

	d.userRepo.EXPECT().GetByUsername(ctx, "user1").Return(&domain.User{
		ID: 7, Username: "user1", PasswordHash: "hashed",
	}, nil)
	d.hashSvc.EXPECT().Verify("password123", "hashed").Return(true, nil)
	d.tokenSvc.EXPECT().Generate(int64(7)).Return("token", expiry, nil)
	d.userRepo.EXPECT().Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) error {
			require.NotNil(t, u.LastLoginDate)
			return nil
		})

	token, exp, err := d.svc.Login(ctx, "user1", "password123")
	require.NoError(t, err)
	assert.Equal(t, "token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByUsername(ctx, "user1").Return(&domain.User{
		ID: 7, PasswordHash: "hashed",
	}, nil)
	d.hashSvc.EXPECT().Verify("wrong", "hashed").Return(false, nil)

	_, _, err := d.svc.Login(ctx, "user1", "wrong")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, nil)

	_, _, err := d.svc.Login(ctx, "ghost", "x")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_GetUser_NotFound(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, int64(999)).Return(nil, nil)

	user, err := d.svc.GetUser(ctx, 999)
	assert.Nil(t, user)
	assertAppError(t, err, "LEDGER_008")
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, int64(7)).Return(&domain.User{
		ID: 7, PasswordHash: "old_hash",
	}, nil)
	d.hashSvc.EXPECT().Verify("oldpass", "old_hash").Return(true, nil)
	d.hashSvc.EXPECT().Hash("newpass").Return("new_hash", nil)
	d.userRepo.EXPECT().Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) error {
			assert.Equal(t, "new_hash", u.PasswordHash)
			return nil
		})

	err := d.svc.ChangePassword(ctx, 7, "oldpass", "newpass")
	assert.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, int64(7)).Return(&domain.User{
		ID: 7, PasswordHash: "old_hash",
	}, nil)
	d.hashSvc.EXPECT().Verify("wrong", "old_hash").Return(false, nil)

	err := d.svc.ChangePassword(ctx, 7, "wrong", "newpass")
	assertAppError(t, err, "AUTH_004")
}

func TestAuthService_UpdateProfile_PartialMerge(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, int64(7)).Return(&domain.User{
		ID: 7, Username: "user1", Email: "old@test.com", FirstName: "First", PasswordHash: "hashed",
	}, nil)
	d.hashSvc.EXPECT().Verify("password123", "hashed").Return(true, nil)
	d.userRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	email := "new@test.com"
	user, err := d.svc.UpdateProfile(ctx, 7, "password123", domain.UserUpdate{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "new@test.com", user.Email)
	assert.Equal(t, "First", user.FirstName, "fields absent from the update stay put")
}

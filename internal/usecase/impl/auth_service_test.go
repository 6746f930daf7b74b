package impl

import (
	"context"
	"testing"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	domainservice "wishlist/internal/domain/service"
	mockRepo "wishlist/internal/mocks/repository"
	mockSvc "wishlist/internal/mocks/service"
	"wishlist/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := newID()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "Alice" && u.Email == "alice@example.com" && u.PasswordHash == "hashed"
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = userID }).
		Return(nil)
	fx.tokenService.EXPECT().IssueToken(userID).Return("token", nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
	assert.Equal(t, userID, out.User.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(&entity.User{ID: newID()}, nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Name: "A", Email: "alice@example.com", Password: "x"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_RaceOnInsert(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("x").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserAlreadyExists)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Name: "A", Email: "alice@example.com", Password: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_Failures(t *testing.T) {
	ctx := context.Background()
	input := usecase.RegisterInput{Name: "A", Email: "a@example.com", Password: "x"}

	t.Run("lookup fails", func(t *testing.T) {
		fx := createTestAuthService(t)
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("down"), "lookup")
		fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, dbErr)

		_, err := fx.service.Register(ctx, input)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	})

	t.Run("hash fails", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("x").Return("", errors.New("too long"))

		_, err := fx.service.Register(ctx, input)

		assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	})

	t.Run("password too long", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("x").Return("", errors.WithStack(domainservice.ErrPasswordTooLong))

		_, err := fx.service.Register(ctx, input)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		assert.Equal(t, "password must be at most 72 bytes", appErr.Message())
		fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("token fails", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("x").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		fx.tokenService.EXPECT().IssueToken(mock.Anything).Return("", errors.New("sign"))

		_, err := fx.service.Register(ctx, input)

		assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: newID(), Email: "alice@example.com", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("right", "hashed").Return(true)
		fx.tokenService.EXPECT().IssueToken(user.ID).Return("token", nil)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "right"})

		require.NoError(t, err)
		assert.Equal(t, "token", out.Token)
		assert.Same(t, user, out.User)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "wrong"})
		_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong"})

		var unknownApp, wrongApp domainerrors.AppError
		require.True(t, errors.As(unknownErr, &unknownApp))
		require.True(t, errors.As(wrongErr, &wrongApp))
		assert.Equal(t, unknownApp.Message(), wrongApp.Message())
		assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
		assert.Equal(t, "invalid credentials", wrongApp.Message())
		fx.tokenService.AssertNotCalled(t, "IssueToken", mock.Anything)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	userID := newID()

	t.Run("found", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Alice"}, nil)

		user, err := fx.service.Me(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("deleted account", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		user, err := fx.service.Me(ctx, userID)

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}

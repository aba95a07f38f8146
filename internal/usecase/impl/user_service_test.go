package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "recetario/internal/domain/errors"
	"recetario/internal/infra/auth"
	"recetario/internal/infra/persistence/memory"
	"recetario/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserServiceForTest(t *testing.T) usecase.UserUsecase {
	t.Helper()

	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserService(UserServiceParams{
		TxManager:  memory.NewTransactionManager(store),
		UserRepo:   memory.NewUserRepository(store),
		RecetaRepo: memory.NewRecetaRepository(store),
		Hasher:     auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Logger:     logger,
	})
}

func registerInput(username, email string) *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username: username,
		Email:    email,
		Password: "secret123",
		Phone:    600123456,
	}
}

func TestUserService_Register(t *testing.T) {
	svc := newUserServiceForTest(t)
	ctx := context.Background()

	usuario, err := svc.Register(ctx, registerInput("bob", "bob@example.com"))
	require.NoError(t, err)

	assert.NotZero(t, usuario.ID)
	assert.Equal(t, "bob", usuario.Username)
	assert.Equal(t, "bob@example.com", usuario.Email)
	assert.NotEqual(t, "secret123", usuario.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte("secret123")))
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	svc := newUserServiceForTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("bob", "bob@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerInput("bob", "other@example.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	// The failed registration must not leave a second user behind.
	usuarios, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, usuarios, 1)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc := newUserServiceForTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("bob", "bob@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerInput("alice", "bob@example.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login(t *testing.T) {
	svc := newUserServiceForTest(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput("bob", "bob@example.com"))
	require.NoError(t, err)

	usuario, err := svc.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, usuario.ID)
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	svc := newUserServiceForTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("bob", "bob@example.com"))
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "nope"})
	require.Error(t, wrongPassword)
	assert.ErrorIs(t, wrongPassword, domainerrors.ErrInvalidCredentials)

	_, missingUser := svc.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "secret123"})
	require.Error(t, missingUser)
	assert.ErrorIs(t, missingUser, domainerrors.ErrInvalidCredentials)

	// Both failure modes surface the same user-facing message.
	var appErr1, appErr2 domainerrors.AppError
	require.ErrorAs(t, wrongPassword, &appErr1)
	require.ErrorAs(t, missingUser, &appErr2)
	assert.Equal(t, appErr1.Message(), appErr2.Message())
	assert.Equal(t, appErr1.HTTPCode(), appErr2.HTTPCode())
}

func TestUserService_GetByID_AttachesRecetas(t *testing.T) {
	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recetaRepo := memory.NewRecetaRepository(store)

	userSvc := NewUserService(UserServiceParams{
		TxManager:  memory.NewTransactionManager(store),
		UserRepo:   memory.NewUserRepository(store),
		RecetaRepo: recetaRepo,
		Hasher:     auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Logger:     logger,
	})
	recetaSvc := NewRecetaService(RecetaServiceParams{
		RecetaRepo: recetaRepo,
		Logger:     logger,
	})

	ctx := context.Background()
	usuario, err := userSvc.Register(ctx, registerInput("bob", "bob@example.com"))
	require.NoError(t, err)

	titulo := "Tortilla"
	_, err = recetaSvc.Create(ctx, &usecase.CreateRecetaInput{Titulo: &titulo, AutorID: &usuario.ID})
	require.NoError(t, err)

	fetched, err := userSvc.GetByID(ctx, usuario.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Recetas, 1)
	assert.Equal(t, "Tortilla", fetched.Recetas[0].Titulo)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := newUserServiceForTest(t)

	_, err := svc.GetByID(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

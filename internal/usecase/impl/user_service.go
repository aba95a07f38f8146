// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "recetario/internal/delivery/context"
	"recetario/internal/domain/entity"
	domainerrors "recetario/internal/domain/errors"
	"recetario/internal/domain/repository"
	"recetario/internal/domain/service"
	"recetario/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	recetaRepo repository.RecetaRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	RecetaRepo repository.RecetaRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		recetaRepo: params.RecetaRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the registration flow: uniqueness check, hash,
// insert. The check and insert run in one transaction so a failed insert
// leaves no partial row behind.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Usuario, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registered *entity.Usuario
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Reject the registration when either the username or the email
		// is already taken.
		_, err := userRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check user uniqueness")
		}

		newUser := &entity.Usuario{
			Username: input.Username,
			Email:    input.Email,
			Password: hashedPassword,
			Phone:    input.Phone,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			// The unique index is the second line of defense against a
			// concurrent registration racing past the check above.
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		registered = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registered.ID))

	return registered, nil
}

// Login verifies the credentials. A missing user and a wrong password both
// collapse into the same unauthorized error; callers must not be able to
// tell which case occurred.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Usuario, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return user, nil
}

// List returns all users ordered by ascending ID.
func (srv *userService) List(ctx context.Context) ([]*entity.Usuario, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetByID returns a single user with their authored recipes attached.
func (srv *userService) GetByID(ctx context.Context, id uint) (*entity.Usuario, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	recetas, err := srv.recetaRepo.FindByAutor(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user recipes")
	}
	user.Recetas = make([]entity.Receta, 0, len(recetas))
	for _, receta := range recetas {
		user.Recetas = append(user.Recetas, *receta)
	}

	return user, nil
}

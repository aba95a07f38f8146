package sqlite

import (
	"context"

	"recetario/internal/domain/entity"
	"recetario/internal/domain/repository"
	"recetario/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user row and writes the assigned ID back to the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.Usuario) error {
	userM := fromUsuarioDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(err, "failed to create usuario")
	}

	user.ID = userM.ID

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.Usuario, error) {
	var userM model.UsuarioModel
	err := repo.db.WithContext(ctx).First(&userM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find usuario by id")
	}

	return toUsuarioDomain(&userM), nil
}

// FindByUsername retrieves a single user by their username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	var userM model.UsuarioModel
	err := repo.db.WithContext(ctx).Where("username = ?", username).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find usuario by username")
	}

	return toUsuarioDomain(&userM), nil
}

// FindByUsernameOrEmail retrieves the first user matching either value.
func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Usuario, error) {
	var userM model.UsuarioModel
	err := repo.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find usuario by username or email")
	}

	return toUsuarioDomain(&userM), nil
}

// List returns all users ordered by ascending ID.
func (repo *userRepository) List(ctx context.Context) ([]*entity.Usuario, error) {
	var userModels []model.UsuarioModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list usuarios")
	}

	users := make([]*entity.Usuario, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUsuarioDomain(&userModels[i]))
	}

	return users, nil
}

// Count returns the number of stored users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UsuarioModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count usuarios")
	}

	return count, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUsuarioDomain converts a GORM UsuarioModel to a domain Usuario entity.
func toUsuarioDomain(data *model.UsuarioModel) *entity.Usuario {
	if data == nil {
		return nil
	}

	user := &entity.Usuario{
		ID:       data.ID,
		Username: data.Username,
		Email:    data.Email,
		Password: data.Password,
		Phone:    data.Phone,
	}

	for i := range data.Recetas {
		user.Recetas = append(user.Recetas, *toRecetaDomain(&data.Recetas[i]))
	}

	return user
}

// fromUsuarioDomain converts a domain Usuario entity to a GORM UsuarioModel for persistence.
func fromUsuarioDomain(data *entity.Usuario) *model.UsuarioModel {
	if data == nil {
		return nil
	}

	return &model.UsuarioModel{
		ID:       data.ID,
		Username: data.Username,
		Email:    data.Email,
		Password: data.Password,
		Phone:    data.Phone,
	}
}

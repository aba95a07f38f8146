package memory

import (
	"context"
	"sort"

	"recetario/internal/domain/entity"
	"recetario/internal/domain/repository"
)

// userRepository implements the domain.UserRepository interface over the
// in-memory store. With inTx set the locking is skipped, because the
// transaction manager already holds the store's write lock.
type userRepository struct {
	store *Store
	inTx  bool
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// lock takes the store's write lock and returns its release, as a no-op
// inside a transaction.
func (repo *userRepository) lock() func() {
	if repo.inTx {
		return func() {}
	}
	repo.store.mu.Lock()

	return repo.store.mu.Unlock
}

// rlock takes the store's read lock and returns its release, as a no-op
// inside a transaction.
func (repo *userRepository) rlock() func() {
	if repo.inTx {
		return func() {}
	}
	repo.store.mu.RLock()

	return repo.store.mu.RUnlock
}

// Create assigns the next ID and inserts the user, enforcing username/email
// uniqueness the same way the sqlite unique indexes do.
func (repo *userRepository) Create(_ context.Context, user *entity.Usuario) error {
	defer repo.lock()()
	s := repo.store

	for _, existing := range s.usuarios {
		if existing.Username == user.Username || existing.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}

	user.ID = s.nextUsuarioID
	s.nextUsuarioID++
	s.usuarios[user.ID] = *user

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(_ context.Context, id uint) (*entity.Usuario, error) {
	defer repo.rlock()()

	user, ok := repo.store.usuarios[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

// FindByUsername retrieves a single user by their username.
func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.Usuario, error) {
	defer repo.rlock()()

	for _, user := range repo.store.usuarios {
		if user.Username == username {
			user := user

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByUsernameOrEmail retrieves the first user matching either value.
func (repo *userRepository) FindByUsernameOrEmail(_ context.Context, username, email string) (*entity.Usuario, error) {
	defer repo.rlock()()

	for _, user := range repo.store.usuarios {
		if user.Username == username || user.Email == email {
			user := user

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// List returns all users ordered by ascending ID.
func (repo *userRepository) List(_ context.Context) ([]*entity.Usuario, error) {
	defer repo.rlock()()
	s := repo.store

	users := make([]*entity.Usuario, 0, len(s.usuarios))
	for id := range s.usuarios {
		user := s.usuarios[id]
		users = append(users, &user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

// Count returns the number of stored users.
func (repo *userRepository) Count(_ context.Context) (int64, error) {
	defer repo.rlock()()

	return int64(len(repo.store.usuarios)), nil
}

package memory

import (
	"context"
	"sync"
	"testing"

	"recetario/internal/domain/entity"
	"recetario/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	first := &entity.Usuario{Username: "a", Email: "a@x.com"}
	second := &entity.Usuario{Username: "b", Email: "b@x.com"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
}

func TestUserRepository_CreateEnforcesUniqueness(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Usuario{Username: "a", Email: "a@x.com"}))

	err := repo.Create(ctx, &entity.Usuario{Username: "a", Email: "other@x.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)

	err = repo.Create(ctx, &entity.Usuario{Username: "other", Email: "a@x.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestUserRepository_ReadsReturnCopies(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Usuario{Username: "a", Email: "a@x.com"}))

	fetched, err := repo.FindByUsername(ctx, "a")
	require.NoError(t, err)
	fetched.Email = "mutated@x.com"

	again, err := repo.FindByUsername(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", again.Email)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	tm := NewTransactionManager(store)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		if err := userRepo.Create(ctx, &entity.Usuario{Username: "a", Email: "a@x.com"}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := NewUserRepository(store).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	store := NewStore()
	tm := NewTransactionManager(store)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			_ = repoFactory.UserRepo().Create(ctx, &entity.Usuario{Username: "a", Email: "a@x.com"})
			panic("boom")
		})
	})

	count, err := NewUserRepository(store).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	store := NewStore()
	tm := NewTransactionManager(store)
	ctx := context.Background()

	err := tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, &entity.Usuario{Username: "a", Email: "a@x.com"})
	})
	require.NoError(t, err)

	count, err := NewUserRepository(store).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTransactionManager_RollbackSparesConcurrentWrites(t *testing.T) {
	store := NewStore()
	tm := NewTransactionManager(store)
	userRepo := NewUserRepository(store)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	txDone := make(chan error, 1)

	go func() {
		txDone <- tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			_ = repoFactory.UserRepo().Create(ctx, &entity.Usuario{Username: "tx", Email: "tx@x.com"})
			close(entered)
			<-release

			return errors.New("abort")
		})
	}()

	// This write starts while the transaction is in flight; it must block
	// until the transaction finishes and then land untouched by the
	// rollback.
	<-entered
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = userRepo.Create(ctx, &entity.Usuario{Username: "outside", Email: "outside@x.com"})
	}()

	close(release)
	require.Error(t, <-txDone)
	wg.Wait()

	usuarios, err := userRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, usuarios, 1)
	assert.Equal(t, "outside", usuarios[0].Username)
}

func TestTransactionManager_IDSequenceRestoredOnRollback(t *testing.T) {
	store := NewStore()
	tm := NewTransactionManager(store)
	userRepo := NewUserRepository(store)
	ctx := context.Background()

	_ = tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_ = repoFactory.UserRepo().Create(ctx, &entity.Usuario{Username: "a", Email: "a@x.com"})

		return errors.New("abort")
	})

	after := &entity.Usuario{Username: "b", Email: "b@x.com"}
	require.NoError(t, userRepo.Create(ctx, after))
	assert.Equal(t, uint(1), after.ID)
}

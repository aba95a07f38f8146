package impl

import (
	"context"
	"log/slog"

	deliverycontext "recetario/internal/delivery/context"
	"recetario/internal/domain/entity"
	domainerrors "recetario/internal/domain/errors"
	"recetario/internal/domain/repository"
	"recetario/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultAutorID is used when a recipe is created without an author
// reference. The seed user holds id 1 on a freshly initialized store.
const defaultAutorID uint = 1

// recetaService implements the RecetaUsecase interface.
type recetaService struct {
	recetaRepo repository.RecetaRepository
	logger     *slog.Logger
}

// RecetaServiceParams holds dependencies for recetaService, injected by Fx.
type RecetaServiceParams struct {
	fx.In

	RecetaRepo repository.RecetaRepository
	Logger     *slog.Logger
}

// NewRecetaService is the constructor for recetaService.
func NewRecetaService(params RecetaServiceParams) usecase.RecetaUsecase {
	return &recetaService{
		recetaRepo: params.RecetaRepo,
		logger:     params.Logger,
	}
}

func (srv *recetaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all recipes ordered by ascending ID.
func (srv *recetaService) List(ctx context.Context) ([]*entity.Receta, error) {
	recetas, err := srv.recetaRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recetas, nil
}

// Get returns a single recipe.
func (srv *recetaService) Get(ctx context.Context, id uint) (*entity.Receta, error) {
	receta, err := srv.recetaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecetaNotFound) {
			return nil, domainerrors.ErrRecetaNotFound.WrapMessage("recipe lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return receta, nil
}

// Create stores a new recipe. Absent string fields default to "" and an
// absent author defaults to user id 1; the author's existence is not
// checked, matching the store's write semantics.
func (srv *recetaService) Create(ctx context.Context, input *usecase.CreateRecetaInput) (*entity.Receta, error) {
	if input == nil {
		input = &usecase.CreateRecetaInput{}
	}

	receta := &entity.Receta{
		Titulo:           stringOrEmpty(input.Titulo),
		Descripcion:      stringOrEmpty(input.Descripcion),
		Ingredientes:     stringOrEmpty(input.Ingredientes),
		PasosPreparacion: stringOrEmpty(input.PasosPreparacion),
		AutorID:          defaultAutorID,
	}
	if input.AutorID != nil {
		receta.AutorID = *input.AutorID
	}

	if err := srv.recetaRepo.Create(ctx, receta); err != nil {
		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.log(ctx).Debug("Recipe created", slog.Any("recetaID", receta.ID))

	return receta, nil
}

// Update merges only the supplied fields over the stored recipe and returns
// the updated entity.
func (srv *recetaService) Update(ctx context.Context, id uint, input *usecase.UpdateRecetaInput) (*entity.Receta, error) {
	if input == nil {
		input = &usecase.UpdateRecetaInput{}
	}

	receta, err := srv.recetaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecetaNotFound) {
			return nil, domainerrors.ErrRecetaNotFound.WrapMessage("recipe update failed")
		}

		return nil, errors.Wrap(err, "failed to load recipe for update")
	}

	if input.Titulo != nil {
		receta.Titulo = *input.Titulo
	}
	if input.Descripcion != nil {
		receta.Descripcion = *input.Descripcion
	}
	if input.Ingredientes != nil {
		receta.Ingredientes = *input.Ingredientes
	}
	if input.PasosPreparacion != nil {
		receta.PasosPreparacion = *input.PasosPreparacion
	}
	if input.AutorID != nil {
		receta.AutorID = *input.AutorID
	}

	if err := srv.recetaRepo.Update(ctx, receta); err != nil {
		if errors.Is(err, repository.ErrRecetaNotFound) {
			return nil, domainerrors.ErrRecetaNotFound.WrapMessage("recipe update failed")
		}

		return nil, errors.Wrap(err, "failed to update recipe")
	}

	return receta, nil
}

// Delete removes a recipe and returns the removed entity.
func (srv *recetaService) Delete(ctx context.Context, id uint) (*entity.Receta, error) {
	receta, err := srv.recetaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecetaNotFound) {
			return nil, domainerrors.ErrRecetaNotFound.WrapMessage("recipe delete failed")
		}

		return nil, errors.Wrap(err, "failed to load recipe for delete")
	}

	removed, err := srv.recetaRepo.Delete(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete recipe")
	}
	if !removed {
		return nil, domainerrors.ErrRecetaNotFound.WrapMessage("recipe delete failed")
	}

	srv.log(ctx).Debug("Recipe deleted", slog.Any("recetaID", id))

	return receta, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

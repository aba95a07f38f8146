package sqlite

import (
	"context"

	"recetario/internal/domain/entity"
	"recetario/internal/domain/repository"
	"recetario/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recetaRepository implements the domain.RecetaRepository interface using GORM.
type recetaRepository struct {
	db *gorm.DB
}

// NewRecetaRepository is the constructor for recetaRepository.
func NewRecetaRepository(db *gorm.DB) repository.RecetaRepository {
	return &recetaRepository{db: db}
}

// Create persists a new recipe row and writes the assigned ID back to the entity.
// The author reference is stored as given; existence is not validated.
func (repo *recetaRepository) Create(ctx context.Context, receta *entity.Receta) error {
	recetaM := fromRecetaDomain(receta)

	if err := repo.db.WithContext(ctx).Create(recetaM).Error; err != nil {
		return errors.Wrap(err, "failed to create receta")
	}

	receta.ID = recetaM.ID

	return nil
}

// FindByID retrieves a single recipe by its unique ID.
func (repo *recetaRepository) FindByID(ctx context.Context, id uint) (*entity.Receta, error) {
	var recetaM model.RecetaModel
	err := repo.db.WithContext(ctx).First(&recetaM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecetaNotFound
		}

		return nil, errors.Wrap(err, "failed to find receta by id")
	}

	return toRecetaDomain(&recetaM), nil
}

// List returns all recipes ordered by ascending ID.
func (repo *recetaRepository) List(ctx context.Context) ([]*entity.Receta, error) {
	var recetaModels []model.RecetaModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&recetaModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recetas")
	}

	recetas := make([]*entity.Receta, 0, len(recetaModels))
	for i := range recetaModels {
		recetas = append(recetas, toRecetaDomain(&recetaModels[i]))
	}

	return recetas, nil
}

// FindByAutor returns all recipes authored by the given user, ordered by
// ascending ID.
func (repo *recetaRepository) FindByAutor(ctx context.Context, autorID uint) ([]*entity.Receta, error) {
	var recetaModels []model.RecetaModel
	err := repo.db.WithContext(ctx).
		Where("autor_id = ?", autorID).
		Order("id ASC").
		Find(&recetaModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recetas by autor")
	}

	recetas := make([]*entity.Receta, 0, len(recetaModels))
	for i := range recetaModels {
		recetas = append(recetas, toRecetaDomain(&recetaModels[i]))
	}

	return recetas, nil
}

// Update overwrites the stored row with the given recipe's fields.
func (repo *recetaRepository) Update(ctx context.Context, receta *entity.Receta) error {
	recetaM := fromRecetaDomain(receta)

	result := repo.db.WithContext(ctx).
		Model(&model.RecetaModel{}).
		Where("id = ?", recetaM.ID).
		Select("titulo", "descripcion", "ingredientes", "pasos_preparacion", "autor_id").
		Updates(recetaM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update receta")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecetaNotFound
	}

	return nil
}

// Delete removes the recipe with the given ID; the boolean reports whether a
// row was actually removed.
func (repo *recetaRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := repo.db.WithContext(ctx).Delete(&model.RecetaModel{}, id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete receta")
	}

	return result.RowsAffected > 0, nil
}

// Count returns the number of stored recipes.
func (repo *recetaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RecetaModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recetas")
	}

	return count, nil
}

// toRecetaDomain converts a GORM RecetaModel to a domain Receta entity.
func toRecetaDomain(data *model.RecetaModel) *entity.Receta {
	if data == nil {
		return nil
	}

	return &entity.Receta{
		ID:               data.ID,
		Titulo:           data.Titulo,
		Descripcion:      data.Descripcion,
		Ingredientes:     data.Ingredientes,
		PasosPreparacion: data.PasosPreparacion,
		AutorID:          data.AutorID,
	}
}

// fromRecetaDomain converts a domain Receta entity to a GORM RecetaModel for persistence.
func fromRecetaDomain(data *entity.Receta) *model.RecetaModel {
	if data == nil {
		return nil
	}

	return &model.RecetaModel{
		ID:               data.ID,
		Titulo:           data.Titulo,
		Descripcion:      data.Descripcion,
		Ingredientes:     data.Ingredientes,
		PasosPreparacion: data.PasosPreparacion,
		AutorID:          data.AutorID,
	}
}

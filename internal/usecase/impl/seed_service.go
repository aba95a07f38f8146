package impl

import (
	"context"
	"log/slog"

	"recetario/config"
	"recetario/internal/domain/entity"
	"recetario/internal/domain/repository"
	"recetario/internal/domain/service"

	"go.uber.org/fx"
)

// Seeder populates default data when the store is empty: one default user
// and two example recipes. It runs once at process start, before the server
// accepts requests, and is a no-op against a non-empty store.
type Seeder struct {
	userRepo   repository.UserRepository
	recetaRepo repository.RecetaRepository
	hasher     service.PasswordHasher
	cfg        *config.Config
	logger     *slog.Logger
}

// SeederParams holds dependencies for the Seeder, injected by Fx.
type SeederParams struct {
	fx.In

	UserRepo   repository.UserRepository
	RecetaRepo repository.RecetaRepository
	Hasher     service.PasswordHasher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSeeder is the constructor for Seeder.
func NewSeeder(params SeederParams) *Seeder {
	return &Seeder{
		userRepo:   params.UserRepo,
		recetaRepo: params.RecetaRepo,
		hasher:     params.Hasher,
		cfg:        params.Config,
		logger:     params.Logger,
	}
}

// Seed ensures the default user and example recipes exist. Failures are
// logged and never abort startup; a partially seeded store (user created,
// recipes missing) is an accepted outcome.
func (s *Seeder) Seed(ctx context.Context) {
	autorID := s.seedUsuario(ctx)
	s.seedRecetas(ctx, autorID)
}

// seedUsuario creates the default user when no user exists and returns the
// author id subsequent recipe seeding should use.
func (s *Seeder) seedUsuario(ctx context.Context) uint {
	autorID := defaultAutorID

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Seeding: failed to count users", slog.Any("error", err))

		return autorID
	}
	if count > 0 {
		return autorID
	}

	seed := s.cfg.Seed
	digest, err := s.hasher.Hash(seed.Password)
	if err != nil {
		s.logger.Error("Seeding: failed to hash default password", slog.Any("error", err))

		return autorID
	}

	usuario := &entity.Usuario{
		Username: seed.Username,
		Email:    seed.Email,
		Password: digest,
		Phone:    seed.Phone,
	}
	if err := s.userRepo.Create(ctx, usuario); err != nil {
		s.logger.Error("Seeding: failed to create default user", slog.Any("error", err))

		return autorID
	}

	s.logger.Info("Seeding: default user created", slog.String("username", usuario.Username))

	return usuario.ID
}

// seedRecetas creates the two example recipes when no recipe exists.
func (s *Seeder) seedRecetas(ctx context.Context, autorID uint) {
	count, err := s.recetaRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Seeding: failed to count recipes", slog.Any("error", err))

		return
	}
	if count > 0 {
		return
	}

	ejemplos := []entity.Receta{
		{
			Titulo:           "Pasta al Pesto",
			Descripcion:      "Pasta con salsa pesto casera",
			Ingredientes:     "Pasta, Albahaca, Ajo, Piñones, Aceite de oliva, Queso parmesano",
			PasosPreparacion: "1. Cocer la pasta al dente\n2. Preparar el pesto mezclando albahaca, ajo, piñones y aceite\n3. Mezclar la pasta con el pesto y servir con queso parmesano",
			AutorID:          autorID,
		},
		{
			Titulo:           "Ensalada Mediterránea",
			Descripcion:      "Ensalada fresca con ingredientes del mediterráneo",
			Ingredientes:     "Tomate, Pepino, Aceitunas, Queso feta, Cebolla roja, Aceite de oliva, Limón",
			PasosPreparacion: "1. Cortar tomate y pepino en cubos\n2. Picar cebolla roja finamente\n3. Mezclar todos los ingredientes\n4. Aliñar con aceite de oliva y jugo de limón",
			AutorID:          autorID,
		},
	}

	for i := range ejemplos {
		if err := s.recetaRepo.Create(ctx, &ejemplos[i]); err != nil {
			s.logger.Error("Seeding: failed to create example recipe",
				slog.String("titulo", ejemplos[i].Titulo), slog.Any("error", err))

			return
		}
	}

	s.logger.Info("Seeding: example recipes created", slog.Int("count", len(ejemplos)))
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/platform/logger"
	"github.com/medtrack/medtrack-api/internal/store"
)

// PostgresVaccinationStore implements the store.VaccinationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVaccinationStore struct {
	db     store.Querier
	logger *slog.Logger
}

// NewPostgresVaccinationStore creates a new PostgreSQL implementation of the
// VaccinationStore interface. If logger is nil, a default logger will be used.
func NewPostgresVaccinationStore(db store.Querier, logger *slog.Logger) *PostgresVaccinationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVaccinationStore{
		db:     db,
		logger: logger.With(slog.String("component", "vaccination_store")),
	}
}

// Ensure PostgresVaccinationStore implements store.VaccinationStore interface
var _ store.VaccinationStore = (*PostgresVaccinationStore)(nil)

// Create implements store.VaccinationStore.Create
// It saves a new vaccination record after domain validation. The drug_id is
// persisted as-is; no referential check against the drugs table is made.
func (s *PostgresVaccinationStore) Create(ctx context.Context, vaccination *domain.Vaccination) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := vaccination.Validate(); err != nil {
		log.Warn("vaccination validation failed during create",
			slog.String("error", err.Error()),
			slog.String("vaccination_id", vaccination.ID.String()))
		return err
	}

	query := `
		INSERT INTO vaccinations (id, name, drug_id, dose, date)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.Exec(ctx, query,
		vaccination.ID, vaccination.Name, vaccination.DrugID, vaccination.Dose, vaccination.Date)
	if err != nil {
		log.Error("failed to create vaccination",
			slog.String("error", err.Error()),
			slog.String("vaccination_id", vaccination.ID.String()))
		return err
	}

	log.Info("vaccination created successfully",
		slog.String("vaccination_id", vaccination.ID.String()),
		slog.String("drug_id", vaccination.DrugID))
	return nil
}

// List implements store.VaccinationStore.List
func (s *PostgresVaccinationStore) List(ctx context.Context) ([]domain.Vaccination, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, drug_id, dose, date
		FROM vaccinations
		ORDER BY date
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		log.Error("failed to list vaccinations", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	var vaccinations []domain.Vaccination
	for rows.Next() {
		var v domain.Vaccination
		if err := rows.Scan(&v.ID, &v.Name, &v.DrugID, &v.Dose, &v.Date); err != nil {
			log.Error("failed to scan vaccination row", slog.String("error", err.Error()))
			return nil, err
		}
		vaccinations = append(vaccinations, v)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed to iterate vaccination rows", slog.String("error", err.Error()))
		return nil, err
	}

	return vaccinations, nil
}

// GetByID implements store.VaccinationStore.GetByID
// Returns store.ErrVaccinationNotFound if the record does not exist.
func (s *PostgresVaccinationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vaccination, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, drug_id, dose, date
		FROM vaccinations
		WHERE id = $1
	`

	var v domain.Vaccination
	err := s.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.DrugID, &v.Dose, &v.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug("vaccination not found", slog.String("vaccination_id", id.String()))
			return nil, store.ErrVaccinationNotFound
		}
		log.Error("failed to get vaccination by ID",
			slog.String("error", err.Error()),
			slog.String("vaccination_id", id.String()))
		return nil, err
	}

	return &v, nil
}

// Update implements store.VaccinationStore.Update
// It builds the SET clause from the non-nil patch fields only and returns
// the affected-row count.
func (s *PostgresVaccinationStore) Update(ctx context.Context, id uuid.UUID, patch store.VaccinationPatch) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.DrugID != nil {
		add("drug_id", *patch.DrugID)
	}
	if patch.Dose != nil {
		add("dose", *patch.Dose)
	}
	if patch.Date != nil {
		add("date", *patch.Date)
	}

	if len(sets) == 0 {
		return 0, fmt.Errorf("%w: empty vaccination patch", store.ErrInvalidEntity)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE vaccinations SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		log.Error("failed to update vaccination",
			slog.String("error", err.Error()),
			slog.String("vaccination_id", id.String()))
		return 0, err
	}

	log.Debug("vaccination update executed",
		slog.String("vaccination_id", id.String()),
		slog.Int64("affected", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

// Delete implements store.VaccinationStore.Delete
// Returns the affected-row count; a missing row yields 0.
func (s *PostgresVaccinationStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag, err := s.db.Exec(ctx, `DELETE FROM vaccinations WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete vaccination",
			slog.String("error", err.Error()),
			slog.String("vaccination_id", id.String()))
		return 0, err
	}

	log.Debug("vaccination delete executed",
		slog.String("vaccination_id", id.String()),
		slog.Int64("affected", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

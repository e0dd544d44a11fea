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

// PostgresDrugStore implements the store.DrugStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDrugStore struct {
	db     store.Querier
	logger *slog.Logger
}

// NewPostgresDrugStore creates a new PostgreSQL implementation of the
// DrugStore interface. If logger is nil, a default logger will be used.
func NewPostgresDrugStore(db store.Querier, logger *slog.Logger) *PostgresDrugStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDrugStore{
		db:     db,
		logger: logger.With(slog.String("component", "drug_store")),
	}
}

// Ensure PostgresDrugStore implements store.DrugStore interface
var _ store.DrugStore = (*PostgresDrugStore)(nil)

// Create implements store.DrugStore.Create
// It saves a new drug to the database after domain validation.
func (s *PostgresDrugStore) Create(ctx context.Context, drug *domain.Drug) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := drug.Validate(); err != nil {
		log.Warn("drug validation failed during create",
			slog.String("error", err.Error()),
			slog.String("drug_id", drug.ID.String()))
		return err
	}

	query := `
		INSERT INTO drugs (id, name, approved, min_dose, max_dose, available_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.Exec(ctx, query,
		drug.ID, drug.Name, drug.Approved, drug.MinDose, drug.MaxDose, drug.AvailableAt)
	if err != nil {
		log.Error("failed to create drug",
			slog.String("error", err.Error()),
			slog.String("drug_id", drug.ID.String()))
		return err
	}

	log.Info("drug created successfully",
		slog.String("drug_id", drug.ID.String()),
		slog.String("name", drug.Name))
	return nil
}

// List implements store.DrugStore.List
func (s *PostgresDrugStore) List(ctx context.Context) ([]domain.Drug, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, approved, min_dose, max_dose, available_at
		FROM drugs
		ORDER BY name
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		log.Error("failed to list drugs", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	var drugs []domain.Drug
	for rows.Next() {
		var d domain.Drug
		if err := rows.Scan(&d.ID, &d.Name, &d.Approved, &d.MinDose, &d.MaxDose, &d.AvailableAt); err != nil {
			log.Error("failed to scan drug row", slog.String("error", err.Error()))
			return nil, err
		}
		drugs = append(drugs, d)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed to iterate drug rows", slog.String("error", err.Error()))
		return nil, err
	}

	return drugs, nil
}

// GetByID implements store.DrugStore.GetByID
// Returns store.ErrDrugNotFound if the drug does not exist.
func (s *PostgresDrugStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Drug, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, approved, min_dose, max_dose, available_at
		FROM drugs
		WHERE id = $1
	`

	var d domain.Drug
	err := s.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Approved, &d.MinDose, &d.MaxDose, &d.AvailableAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug("drug not found", slog.String("drug_id", id.String()))
			return nil, store.ErrDrugNotFound
		}
		log.Error("failed to get drug by ID",
			slog.String("error", err.Error()),
			slog.String("drug_id", id.String()))
		return nil, err
	}

	return &d, nil
}

// Update implements store.DrugStore.Update
// It builds the SET clause from the non-nil patch fields only and returns
// the affected-row count.
func (s *PostgresDrugStore) Update(ctx context.Context, id uuid.UUID, patch store.DrugPatch) (int64, error) {
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
	if patch.Approved != nil {
		add("approved", *patch.Approved)
	}
	if patch.MinDose != nil {
		add("min_dose", *patch.MinDose)
	}
	if patch.MaxDose != nil {
		add("max_dose", *patch.MaxDose)
	}
	if patch.AvailableAt != nil {
		add("available_at", *patch.AvailableAt)
	}

	if len(sets) == 0 {
		return 0, fmt.Errorf("%w: empty drug patch", store.ErrInvalidEntity)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE drugs SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		log.Error("failed to update drug",
			slog.String("error", err.Error()),
			slog.String("drug_id", id.String()))
		return 0, err
	}

	log.Debug("drug update executed",
		slog.String("drug_id", id.String()),
		slog.Int64("affected", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

// Delete implements store.DrugStore.Delete
// Returns the affected-row count; a missing row yields 0.
func (s *PostgresDrugStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag, err := s.db.Exec(ctx, `DELETE FROM drugs WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete drug",
			slog.String("error", err.Error()),
			slog.String("drug_id", id.String()))
		return 0, err
	}

	log.Debug("drug delete executed",
		slog.String("drug_id", id.String()),
		slog.Int64("affected", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/pkg/apperrors"
	"github.com/ebsuite/claimsportal/internal/pkg/dberrors"
)

// ServiceCodeRepository handles database operations for the billing catalog
type ServiceCodeRepository struct {
	db *pgxpool.Pool
}

// NewServiceCodeRepository creates a new service code repository
func NewServiceCodeRepository(db *pgxpool.Pool) *ServiceCodeRepository {
	return &ServiceCodeRepository{db: db}
}

// GetAll retrieves service codes, optionally including inactive ones
func (r *ServiceCodeRepository) GetAll(ctx context.Context, includeInactive bool) ([]*models.ServiceCode, error) {
	query := `
		SELECT id, code, description, unit_rate, is_active
		FROM service_codes
	`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []*models.ServiceCode
	for rows.Next() {
		var sc models.ServiceCode
		if err := rows.Scan(
			&sc.ID,
			&sc.Code,
			&sc.Description,
			&sc.UnitRate,
			&sc.IsActive,
		); err != nil {
			return nil, err
		}
		codes = append(codes, &sc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return codes, nil
}

// GetByID retrieves a service code by ID
func (r *ServiceCodeRepository) GetByID(ctx context.Context, id int64) (*models.ServiceCode, error) {
	query := `
		SELECT id, code, description, unit_rate, is_active
		FROM service_codes
		WHERE id = $1
	`

	var sc models.ServiceCode
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sc.ID,
		&sc.Code,
		&sc.Description,
		&sc.UnitRate,
		&sc.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrServiceCodeNotFound
		}
		return nil, fmt.Errorf("error retrieving service code: %w", err)
	}

	return &sc, nil
}

// GetByCode retrieves a service code by its billing code
func (r *ServiceCodeRepository) GetByCode(ctx context.Context, code string) (*models.ServiceCode, error) {
	query := `
		SELECT id, code, description, unit_rate, is_active
		FROM service_codes
		WHERE code = $1
	`

	var sc models.ServiceCode
	err := r.db.QueryRow(ctx, query, code).Scan(
		&sc.ID,
		&sc.Code,
		&sc.Description,
		&sc.UnitRate,
		&sc.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrServiceCodeNotFound
		}
		return nil, fmt.Errorf("error retrieving service code: %w", err)
	}

	return &sc, nil
}

// Create creates a new service code
func (r *ServiceCodeRepository) Create(ctx context.Context, sc *models.ServiceCode) error {
	query := `
		INSERT INTO service_codes (code, description, unit_rate, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, sc.Code, sc.Description, sc.UnitRate, sc.IsActive).Scan(&sc.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "service_codes_code_key") {
			return apperrors.ErrServiceCodeAlreadyExists
		}
		return fmt.Errorf("error creating service code: %w", err)
	}

	return nil
}

// Update updates an existing service code
func (r *ServiceCodeRepository) Update(ctx context.Context, sc *models.ServiceCode) error {
	query := `
		UPDATE service_codes
		SET code = $1, description = $2, unit_rate = $3, is_active = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, sc.Code, sc.Description, sc.UnitRate, sc.IsActive, sc.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "service_codes_code_key") {
			return apperrors.ErrServiceCodeAlreadyExists
		}
		return fmt.Errorf("error updating service code: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrServiceCodeNotFound
	}

	return nil
}

// Delete deactivates a service code. Codes are never hard-deleted because
// historical claims reference them by value.
func (r *ServiceCodeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE service_codes SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating service code: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrServiceCodeNotFound
	}

	return nil
}

package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/pkg/apperrors"
	"github.com/ebsuite/claimsportal/internal/pkg/dberrors"
)

// DistrictRepository handles database operations for school districts
type DistrictRepository struct {
	db *pgxpool.Pool
}

// NewDistrictRepository creates a new district repository
func NewDistrictRepository(db *pgxpool.Pool) *DistrictRepository {
	return &DistrictRepository{db: db}
}

// Create creates a new district
func (r *DistrictRepository) Create(ctx context.Context, district *models.District) error {
	query := `
		INSERT INTO districts (name, code)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, district.Name, district.Code).Scan(&district.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "districts_name_key") ||
			dberrors.IsDuplicateConstraintError(err, "districts_code_key") {
			return apperrors.ErrDistrictAlreadyExists
		}
		return fmt.Errorf("error creating district: %w", err)
	}

	return nil
}

// GetByID retrieves a district by ID
func (r *DistrictRepository) GetByID(ctx context.Context, id int64) (*models.District, error) {
	query := `
		SELECT id, name, code
		FROM districts
		WHERE id = $1
	`

	var district models.District
	err := r.db.QueryRow(ctx, query, id).Scan(
		&district.ID,
		&district.Name,
		&district.Code,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrDistrictNotFound
		}
		return nil, fmt.Errorf("error retrieving district: %w", err)
	}

	return &district, nil
}

// GetAll retrieves all districts
func (r *DistrictRepository) GetAll(ctx context.Context) ([]*models.District, error) {
	query := `
		SELECT id, name, code
		FROM districts
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var districts []*models.District
	for rows.Next() {
		var district models.District
		if err := rows.Scan(
			&district.ID,
			&district.Name,
			&district.Code,
		); err != nil {
			return nil, err
		}
		districts = append(districts, &district)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return districts, nil
}

// ExistsByNameOrCode checks if a district exists by name or code
func (r *DistrictRepository) ExistsByNameOrCode(ctx context.Context, name, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM districts WHERE name = $1 OR code = $2)`,
		name, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking district existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing district
func (r *DistrictRepository) Update(ctx context.Context, district *models.District) error {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM districts WHERE (name = $1 OR code = $2) AND id != $3)`,
		district.Name, district.Code, district.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking district uniqueness: %w", err)
	}

	if exists {
		return apperrors.ErrDistrictAlreadyExists
	}

	query := `
		UPDATE districts
		SET name = $1, code = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, district.Name, district.Code, district.ID)
	if err != nil {
		return fmt.Errorf("error updating district: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDistrictNotFound
	}

	return nil
}

// Delete deletes a district by ID. Districts with enrolled students or
// assigned practitioners cannot be removed.
func (r *DistrictRepository) Delete(ctx context.Context, id int64) error {
	var hasRelatedEntities bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE district_id = $1)
			OR EXISTS(SELECT 1 FROM practitioners WHERE district_id = $1)`,
		id).Scan(&hasRelatedEntities)
	if err != nil {
		return fmt.Errorf("error checking related entities: %w", err)
	}

	if hasRelatedEntities {
		return apperrors.ErrDistrictHasRelations
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM districts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting district: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDistrictNotFound
	}

	return nil
}

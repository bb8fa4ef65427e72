package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/pkg/apperrors"
)

// PractitionerRepository handles database operations for practitioners
type PractitionerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPractitionerRepository creates a new practitioner repository
func NewPractitionerRepository(db *pgxpool.Pool) *PractitionerRepository {
	return &PractitionerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves practitioners, optionally filtered by district
func (r *PractitionerRepository) GetAll(ctx context.Context, districtID *int64) ([]models.Practitioner, error) {
	query := r.sb.Select("id", "user_id", "first_name", "last_name", "credential", "npi", "district_id").
		From("practitioners").
		OrderBy("last_name", "first_name")

	if districtID != nil {
		query = query.Where("district_id = ?", *districtID)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var practitioners []models.Practitioner
	for rows.Next() {
		var p models.Practitioner
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.FirstName,
			&p.LastName,
			&p.Credential,
			&p.NPI,
			&p.DistrictID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		practitioners = append(practitioners, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return practitioners, nil
}

// GetByID retrieves a practitioner by ID
func (r *PractitionerRepository) GetByID(ctx context.Context, id int64) (*models.Practitioner, error) {
	query := `
		SELECT id, user_id, first_name, last_name, credential, npi, district_id
		FROM practitioners
		WHERE id = $1
	`

	var p models.Practitioner
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.Credential,
		&p.NPI,
		&p.DistrictID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPractitionerNotFound
		}
		return nil, fmt.Errorf("error retrieving practitioner: %w", err)
	}

	return &p, nil
}

// GetByUserID retrieves the practitioner linked to a portal account
func (r *PractitionerRepository) GetByUserID(ctx context.Context, userID int64) (*models.Practitioner, error) {
	query := `
		SELECT id, user_id, first_name, last_name, credential, npi, district_id
		FROM practitioners
		WHERE user_id = $1
	`

	var p models.Practitioner
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.Credential,
		&p.NPI,
		&p.DistrictID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPractitionerNotFound
		}
		return nil, fmt.Errorf("error retrieving practitioner: %w", err)
	}

	return &p, nil
}

// Create creates a new practitioner
func (r *PractitionerRepository) Create(ctx context.Context, p *models.Practitioner) error {
	query := `
		INSERT INTO practitioners (user_id, first_name, last_name, credential, npi, district_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		p.UserID, p.FirstName, p.LastName, p.Credential, p.NPI, p.DistrictID,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("error creating practitioner: %w", err)
	}

	return nil
}

// Update updates an existing practitioner
func (r *PractitionerRepository) Update(ctx context.Context, p *models.Practitioner) error {
	query := `
		UPDATE practitioners
		SET user_id = $1, first_name = $2, last_name = $3,
			credential = $4, npi = $5, district_id = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		p.UserID, p.FirstName, p.LastName, p.Credential, p.NPI, p.DistrictID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating practitioner: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPractitionerNotFound
	}

	return nil
}

// Delete deletes a practitioner by ID
func (r *PractitionerRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM practitioners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting practitioner: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPractitionerNotFound
	}

	return nil
}

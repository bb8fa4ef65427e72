package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/db"
	"github.com/ebsuite/claimsportal/internal/pkg/apperrors"
	"github.com/ebsuite/claimsportal/internal/pkg/dberrors"
)

const claimColumns = `id, claim_number, batch_number, status,
		service_date, billed_amount, paid_amount, finalized_date,
		service_code, service_description, rendering_provider, district,
		student_ssid, student_name, student_dob,
		insurance_type, insurance_carrier, modifiers,
		created_at, updated_at, created_by, updated_by`

// ClaimRepository handles database operations for claims. It satisfies the
// workflow.ClaimStore contract used by the batch transition engine.
type ClaimRepository struct {
	db *pgxpool.Pool
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *pgxpool.Pool) *ClaimRepository {
	return &ClaimRepository{db: db}
}

func scanClaim(row pgx.Row) (*models.Claim, error) {
	var claim models.Claim
	err := row.Scan(
		&claim.ID,
		&claim.ClaimNumber,
		&claim.BatchNumber,
		&claim.Status,
		&claim.ServiceDate,
		&claim.BilledAmount,
		&claim.PaidAmount,
		&claim.FinalizedDate,
		&claim.ServiceCode,
		&claim.ServiceDescription,
		&claim.RenderingProvider,
		&claim.District,
		&claim.StudentSSID,
		&claim.StudentName,
		&claim.StudentDOB,
		&claim.InsuranceType,
		&claim.InsuranceCarrier,
		&claim.Modifiers,
		&claim.CreatedAt,
		&claim.UpdatedAt,
		&claim.CreatedBy,
		&claim.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// ListClaims retrieves every claim in insertion order.
func (r *ClaimRepository) ListClaims(ctx context.Context) ([]*models.Claim, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM claims
		ORDER BY id
	`, claimColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing claims: %w", err)
	}
	defer rows.Close()

	var claims []*models.Claim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning claim: %w", err)
		}
		claims = append(claims, claim)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return claims, nil
}

// GetByID retrieves a claim by ID
func (r *ClaimRepository) GetByID(ctx context.Context, id int64) (*models.Claim, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM claims
		WHERE id = $1
	`, claimColumns)

	claim, err := scanClaim(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrClaimNotFound
		}
		return nil, fmt.Errorf("error retrieving claim: %w", err)
	}

	return claim, nil
}

// Create inserts a new claim and fills in its generated fields.
func (r *ClaimRepository) Create(ctx context.Context, claim *models.Claim) error {
	query := `
		INSERT INTO claims (claim_number, batch_number, status,
			service_date, billed_amount, paid_amount, finalized_date,
			service_code, service_description, rendering_provider, district,
			student_ssid, student_name, student_dob,
			insurance_type, insurance_carrier, modifiers,
			created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		claim.ClaimNumber, claim.BatchNumber, claim.Status,
		claim.ServiceDate, claim.BilledAmount, claim.PaidAmount, claim.FinalizedDate,
		claim.ServiceCode, claim.ServiceDescription, claim.RenderingProvider, claim.District,
		claim.StudentSSID, claim.StudentName, claim.StudentDOB,
		claim.InsuranceType, claim.InsuranceCarrier, claim.Modifiers,
		claim.CreatedBy, claim.UpdatedBy,
	).Scan(&claim.ID, &claim.CreatedAt, &claim.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "claims_claim_number_key") {
			return apperrors.ErrClaimNumberExists
		}
		return fmt.Errorf("error creating claim: %w", err)
	}

	return nil
}

// Update rewrites the editable fields of an existing claim. Status changes go
// through UpdateStatuses instead; the editor never moves a claim between
// workflow states.
func (r *ClaimRepository) Update(ctx context.Context, claim *models.Claim) error {
	query := `
		UPDATE claims
		SET claim_number = $1, service_date = $2, billed_amount = $3,
			service_code = $4, service_description = $5, rendering_provider = $6,
			district = $7, student_ssid = $8, student_name = $9, student_dob = $10,
			insurance_type = $11, insurance_carrier = $12, modifiers = $13,
			updated_at = NOW(), updated_by = $14
		WHERE id = $15
	`

	cmdTag, err := r.db.Exec(ctx, query,
		claim.ClaimNumber, claim.ServiceDate, claim.BilledAmount,
		claim.ServiceCode, claim.ServiceDescription, claim.RenderingProvider,
		claim.District, claim.StudentSSID, claim.StudentName, claim.StudentDOB,
		claim.InsuranceType, claim.InsuranceCarrier, claim.Modifiers,
		claim.UpdatedBy, claim.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "claims_claim_number_key") {
			return apperrors.ErrClaimNumberExists
		}
		return fmt.Errorf("error updating claim: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClaimNotFound
	}

	return nil
}

// Delete removes a claim by ID
func (r *ClaimRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM claims WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting claim: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClaimNotFound
	}

	return nil
}

// transitionSources lists the statuses a claim may hold for a bulk move into
// newStatus. Both bulk transitions draw from the same pool, so a retry after
// a partial network failure matches the already-moved rows too.
func transitionSources(newStatus models.ClaimStatus) []string {
	switch newStatus {
	case models.StatusApproved:
		return []string{string(models.StatusNeedsApproval), string(models.StatusApproved)}
	case models.StatusSubmitted:
		return []string{string(models.StatusNeedsApproval), string(models.StatusApproved), string(models.StatusSubmitted)}
	default:
		return nil
	}
}

// UpdateStatuses moves every claim in ids to newStatus inside a single
// transaction. The update is conditional on each row still holding an
// acceptable source status; if any row was changed by another session since
// the caller validated its selection, the whole batch rolls back and
// apperrors.ErrClaimStatusConflict is returned.
//
// A batch number is stamped on submission for rows that do not have one yet.
func (r *ClaimRepository) UpdateStatuses(ctx context.Context, ids []int64, newStatus models.ClaimStatus, actor int64) error {
	if len(ids) == 0 {
		return nil
	}

	sources := transitionSources(newStatus)
	if sources == nil {
		return fmt.Errorf("%w: %q is not a bulk transition target", apperrors.ErrInvalidClaimStatus, newStatus)
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var cmdTag pgconn.CommandTag
		var err error

		if newStatus == models.StatusSubmitted {
			batchNumber := newBatchNumber()
			cmdTag, err = tx.Exec(ctx, `
				UPDATE claims
				SET status = $1, batch_number = COALESCE(batch_number, $2),
					updated_at = NOW(), updated_by = $3
				WHERE id = ANY($4) AND status = ANY($5)
			`, newStatus, batchNumber, actor, ids, sources)
		} else {
			cmdTag, err = tx.Exec(ctx, `
				UPDATE claims
				SET status = $1, updated_at = NOW(), updated_by = $2
				WHERE id = ANY($3) AND status = ANY($4)
			`, newStatus, actor, ids, sources)
		}

		if err != nil {
			return fmt.Errorf("error updating claim statuses: %w", err)
		}

		if cmdTag.RowsAffected() != int64(len(ids)) {
			return fmt.Errorf("%w: %d of %d claims matched", apperrors.ErrClaimStatusConflict,
				cmdTag.RowsAffected(), len(ids))
		}

		return nil
	})
}

// newBatchNumber derives a short, human-readable batch identifier.
func newBatchNumber() string {
	raw := strings.ToUpper(uuid.New().String())
	return "B-" + raw[:8]
}

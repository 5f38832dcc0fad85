package postgres

import (
	"context"
	"errors"

	"go-care-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type carerRepo struct {
	db *pgxpool.Pool
}

func NewCarerRepository(db *pgxpool.Pool) domain.CarerRepository {
	return &carerRepo{db: db}
}

func (r *carerRepo) GetByUserID(ctx context.Context, userID string) (*domain.Carer, error) {
	query := `
		SELECT user_id, display_name, COALESCE(bio, ''), approval_status, dbs_verified,
		       latitude, longitude, years_experience, specializations,
		       EXISTS (SELECT 1 FROM placements p WHERE p.carer_id = user_id AND p.status = 'active'),
		       created_at, updated_at
		FROM carers WHERE user_id = $1`

	var c domain.Carer
	var specializations []string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&c.UserID, &c.DisplayName, &c.Bio, &c.ApprovalStatus, &c.DBSVerified,
		&c.Latitude, &c.Longitude, &c.YearsExperience, pq.Array(&specializations),
		&c.HasActivePlacement, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	c.Specializations = specializations

	rates, err := r.fetchRates(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.Rates = rates

	return &c, nil
}

func (r *carerRepo) Create(ctx context.Context, carer *domain.Carer) error {
	query := `INSERT INTO carers (user_id, display_name, bio, approval_status, dbs_verified, latitude, longitude, years_experience, specializations, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		carer.UserID, carer.DisplayName, carer.Bio, carer.ApprovalStatus, carer.DBSVerified,
		carer.Latitude, carer.Longitude, carer.YearsExperience, pq.Array(carer.Specializations),
		carer.CreatedAt, carer.UpdatedAt,
	)
	return err
}

func (r *carerRepo) Update(ctx context.Context, carer *domain.Carer) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE carers SET display_name = $2, bio = $3, latitude = $4, longitude = $5,
              years_experience = $6, specializations = $7, updated_at = NOW()
              WHERE user_id = $1`
	result, err := tx.Exec(ctx, query,
		carer.UserID, carer.DisplayName, carer.Bio, carer.Latitude, carer.Longitude,
		carer.YearsExperience, pq.Array(carer.Specializations),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	// Rates are replaced wholesale on profile update
	if _, err := tx.Exec(ctx, `DELETE FROM carer_rates WHERE carer_id = $1`, carer.UserID); err != nil {
		return err
	}
	for _, rate := range carer.Rates {
		if _, err := tx.Exec(ctx,
			`INSERT INTO carer_rates (carer_id, care_type, rate) VALUES ($1, $2, $3)`,
			carer.UserID, rate.CareType, rate.Rate,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *carerRepo) UpdateApproval(ctx context.Context, userID string, status string) error {
	query := `UPDATE carers SET approval_status = $2, updated_at = NOW() WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query, userID, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *carerRepo) FetchByStatus(ctx context.Context, status string, limit, offset int) ([]domain.Carer, int64, error) {
	query := `
		SELECT user_id, display_name, COALESCE(bio, ''), approval_status, dbs_verified,
		       latitude, longitude, years_experience, specializations, created_at, updated_at
		FROM carers WHERE approval_status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var carers []domain.Carer
	for rows.Next() {
		var c domain.Carer
		var specializations []string
		if err := rows.Scan(
			&c.UserID, &c.DisplayName, &c.Bio, &c.ApprovalStatus, &c.DBSVerified,
			&c.Latitude, &c.Longitude, &c.YearsExperience, pq.Array(&specializations),
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		c.Specializations = specializations
		carers = append(carers, c)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM carers WHERE approval_status = $1`, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	return carers, total, nil
}

// FindEligible returns approved, DBS-verified carers with a configured rate
// for the care type, ordered by user_id so candidate order (and therefore
// tie-breaking downstream) is stable.
func (r *carerRepo) FindEligible(ctx context.Context, careType string) ([]domain.CarerCandidate, error) {
	query := `
		SELECT c.user_id, c.display_name, COALESCE(c.bio, ''), c.approval_status, c.dbs_verified,
		       c.latitude, c.longitude, c.years_experience, c.specializations,
		       EXISTS (SELECT 1 FROM placements p WHERE p.carer_id = c.user_id AND p.status = 'active'),
		       c.created_at, c.updated_at
		FROM carers c
		WHERE c.approval_status = 'approved'
		  AND c.dbs_verified = TRUE
		  AND EXISTS (SELECT 1 FROM carer_rates cr WHERE cr.carer_id = c.user_id AND cr.care_type = $1)
		ORDER BY c.user_id`

	rows, err := r.db.Query(ctx, query, careType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.CarerCandidate
	for rows.Next() {
		var c domain.CarerCandidate
		var specializations []string
		if err := rows.Scan(
			&c.UserID, &c.DisplayName, &c.Bio, &c.ApprovalStatus, &c.DBSVerified,
			&c.Latitude, &c.Longitude, &c.YearsExperience, pq.Array(&specializations),
			&c.HasActivePlacement, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		c.Specializations = specializations
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attach rates and reviews per candidate
	for i := range candidates {
		rates, err := r.fetchRates(ctx, candidates[i].UserID)
		if err != nil {
			return nil, err
		}
		candidates[i].Rates = rates

		reviews, err := r.fetchReviews(ctx, candidates[i].UserID)
		if err != nil {
			return nil, err
		}
		candidates[i].Reviews = reviews
	}

	return candidates, nil
}

func (r *carerRepo) fetchRates(ctx context.Context, carerID string) ([]domain.CarerRate, error) {
	rows, err := r.db.Query(ctx, `SELECT care_type, rate FROM carer_rates WHERE carer_id = $1 ORDER BY care_type`, carerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []domain.CarerRate
	for rows.Next() {
		var rate domain.CarerRate
		if err := rows.Scan(&rate.CareType, &rate.Rate); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}

func (r *carerRepo) fetchReviews(ctx context.Context, carerID string) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, carer_id, rating, comment, created_at FROM reviews WHERE carer_id = $1 ORDER BY created_at DESC`, carerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.CarerID, &review.Rating, &review.Comment, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
